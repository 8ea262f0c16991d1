package usecase

import (
	"bytes"
	"context"
	"log"
	"sync"
	"time"

	"intern-match/internal/domain/profile"
	"intern-match/internal/domain/resume"
)

type resumeInfo = resume.Info

func discardLogger() *log.Logger {
	return log.New(&bytes.Buffer{}, "", 0)
}

type fakeCandidateRepo struct {
	items []profile.Candidate
	err   error
}

func (f *fakeCandidateRepo) List(context.Context) ([]profile.Candidate, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]profile.Candidate(nil), f.items...), nil
}

func (f *fakeCandidateRepo) Append(_ context.Context, c profile.Candidate) (profile.Candidate, error) {
	if f.err != nil {
		return profile.Candidate{}, f.err
	}
	f.items = append(f.items, c)
	return c, nil
}

func (f *fakeCandidateRepo) Count(context.Context) (int, error) {
	return len(f.items), f.err
}

type fakePostingRepo struct {
	items []profile.Posting
	err   error
}

func (f *fakePostingRepo) List(context.Context) ([]profile.Posting, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]profile.Posting(nil), f.items...), nil
}

func (f *fakePostingRepo) Append(_ context.Context, p profile.Posting) (profile.Posting, error) {
	if f.err != nil {
		return profile.Posting{}, f.err
	}
	f.items = append(f.items, p)
	return p, nil
}

func (f *fakePostingRepo) Count(context.Context) (int, error) {
	return len(f.items), f.err
}

type publishedEvent struct {
	Type    string
	Payload any
}

type fakePublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (f *fakePublisher) Publish(eventType string, payload any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, publishedEvent{Type: eventType, Payload: payload})
}

type fakeCounter struct {
	kinds []string
}

func (f *fakeCounter) IncProfilesCreated(kind string) {
	f.kinds = append(f.kinds, kind)
}

type fakeCache struct {
	data   map[string]any
	gets   int
	sets   int
	getErr error
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string]any{}}
}

func (f *fakeCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	f.gets++
	if f.getErr != nil {
		return false, f.getErr
	}
	v, ok := f.data[key]
	if !ok {
		return false, nil
	}
	if dst, ok := out.(*resumeInfo); ok {
		*dst = v.(resumeInfo)
	}
	return true, nil
}

func (f *fakeCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	f.sets++
	f.data[key] = value
	return nil
}

type fakeDecoder struct {
	text  string
	err   error
	calls int
}

func (f *fakeDecoder) Decode(string, []byte) (string, error) {
	f.calls++
	return f.text, f.err
}

type observedAnalysis struct {
	format, outcome string
	score           int
}

type fakeResumeObserver struct {
	calls []observedAnalysis
}

func (f *fakeResumeObserver) ObserveResumeAnalysis(format, outcome string, score int) {
	f.calls = append(f.calls, observedAnalysis{format: format, outcome: outcome, score: score})
}
