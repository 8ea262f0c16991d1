package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"testing"

	"intern-match/internal/delivery/http/middleware"
	"intern-match/internal/domain/profile"
	"intern-match/internal/domain/resume"
	"intern-match/internal/domain/user"
	"intern-match/internal/usecase"
	ucauth "intern-match/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp() *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(log.New(io.Discard, "", 0)).Middleware())
	return app
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) (int, envelope) {
	t.Helper()
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	var env envelope
	body, _ := io.ReadAll(resp.Body)
	if len(body) > 0 {
		if err := json.Unmarshal(body, &env); err != nil {
			t.Fatalf("decode body %q: %v", body, err)
		}
	}
	return resp.StatusCode, env
}

func jsonRequest(method, target string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func multipartRequest(t *testing.T, target, field, filename string, content []byte, values map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if field != "" {
		fw, err := w.CreateFormFile(field, filename)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		_, _ = fw.Write(content)
	}
	for k, v := range values {
		_ = w.WriteField(k, v)
	}
	_ = w.Close()

	req, _ := http.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

type fakeProfileUC struct {
	savedCandidate profile.Candidate
	savedPosting   profile.Posting
	candidates     []profile.Candidate
	postings       []profile.Posting
	err            error
}

func (f *fakeProfileUC) SaveCandidate(_ context.Context, c profile.Candidate) (profile.Candidate, error) {
	if f.err != nil {
		return profile.Candidate{}, f.err
	}
	c.ID = uuid.New()
	f.savedCandidate = c
	return c, nil
}

func (f *fakeProfileUC) SavePosting(_ context.Context, p profile.Posting) (profile.Posting, error) {
	if f.err != nil {
		return profile.Posting{}, f.err
	}
	p.ID = uuid.New()
	f.savedPosting = p
	return p, nil
}

func (f *fakeProfileUC) ListCandidates(context.Context) ([]profile.Candidate, error) {
	return f.candidates, f.err
}

func (f *fakeProfileUC) ListPostings(context.Context) ([]profile.Posting, error) {
	return f.postings, f.err
}

type fakeMatchUC struct {
	postingMatches   []usecase.PostingMatch
	candidateMatches []usecase.CandidateMatch
	pairs            []usecase.PairMatch
	message          string
	gotTopN          int
	gotCandidate     profile.Candidate
	gotPosting       profile.Posting
	err              error
}

func (f *fakeMatchUC) MatchesForCandidate(_ context.Context, c profile.Candidate, topN int) ([]usecase.PostingMatch, string, error) {
	f.gotCandidate = c
	f.gotTopN = topN
	return f.postingMatches, f.message, f.err
}

func (f *fakeMatchUC) MatchesForPosting(_ context.Context, p profile.Posting, topN int) ([]usecase.CandidateMatch, string, error) {
	f.gotPosting = p
	f.gotTopN = topN
	return f.candidateMatches, f.message, f.err
}

func (f *fakeMatchUC) MatchAll(_ context.Context, topN int) ([]usecase.PairMatch, error) {
	f.gotTopN = topN
	return f.pairs, f.err
}

type fakeResumeUC struct {
	got  usecase.AnalyzeResumeInput
	info resume.Info
	err  error
}

func (f *fakeResumeUC) Analyze(_ context.Context, in usecase.AnalyzeResumeInput) (resume.Info, error) {
	f.got = in
	return f.info, f.err
}

type fakeStatsUC struct {
	stats usecase.Stats
	err   error
}

func (f *fakeStatsUC) Get(context.Context) (usecase.Stats, error) {
	return f.stats, f.err
}

type fakeAuthUC struct {
	usr    user.User
	tokens usecase.TokenPair
	err    error
	gotReg ucauth.RegisterInput
}

func (f *fakeAuthUC) Register(_ context.Context, in ucauth.RegisterInput) (user.User, usecase.TokenPair, error) {
	f.gotReg = in
	return f.usr, f.tokens, f.err
}

func (f *fakeAuthUC) Login(context.Context, ucauth.LoginInput) (user.User, usecase.TokenPair, error) {
	return f.usr, f.tokens, f.err
}

func (f *fakeAuthUC) Refresh(context.Context, string) (usecase.TokenPair, error) {
	return f.tokens, f.err
}

func (f *fakeAuthUC) Me(_ context.Context, id uuid.UUID) (user.User, error) {
	if f.err != nil {
		return user.User{}, f.err
	}
	if id != f.usr.ID {
		return user.User{}, user.ErrNotFound
	}
	return f.usr, nil
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

var errBoom = errors.New("boom")
