package usecase

import (
	"context"
	"log"
	"strings"

	"intern-match/internal/domain/profile"
)

const (
	EventCandidateCreated = "candidate_created"
	EventPostingCreated   = "posting_created"
)

type EventPublisher interface {
	Publish(eventType string, payload any)
}

type ProfileCounter interface {
	IncProfilesCreated(kind string)
}

type ProfileUsecase interface {
	SaveCandidate(ctx context.Context, c profile.Candidate) (profile.Candidate, error)
	SavePosting(ctx context.Context, p profile.Posting) (profile.Posting, error)
	ListCandidates(ctx context.Context) ([]profile.Candidate, error)
	ListPostings(ctx context.Context) ([]profile.Posting, error)
}

type Profiles struct {
	candidates profile.CandidateRepository
	postings   profile.PostingRepository
	events     EventPublisher
	counter    ProfileCounter
	logger     *log.Logger
}

func NewProfileUsecase(
	candidates profile.CandidateRepository,
	postings profile.PostingRepository,
	events EventPublisher,
	counter ProfileCounter,
	logger *log.Logger,
) *Profiles {
	if logger == nil {
		logger = log.Default()
	}
	return &Profiles{candidates: candidates, postings: postings, events: events, counter: counter, logger: logger}
}

func (u *Profiles) SaveCandidate(ctx context.Context, c profile.Candidate) (profile.Candidate, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return profile.Candidate{}, ErrInvalidInput
	}
	if c.ResumeScore < 0 || c.ResumeScore > 100 {
		return profile.Candidate{}, ErrInvalidInput
	}
	if c.Certifications == nil {
		c.Certifications = []string{}
	}

	saved, err := u.candidates.Append(ctx, c)
	if err != nil {
		u.logger.Printf("[Profile] save candidate failed err=%v", err)
		return profile.Candidate{}, ErrInternal
	}

	if u.counter != nil {
		u.counter.IncProfilesCreated("candidate")
	}
	if u.events != nil {
		u.events.Publish(EventCandidateCreated, map[string]any{
			"id":     saved.ID,
			"name":   saved.Name,
			"skills": saved.Skills,
		})
	}
	return saved, nil
}

func (u *Profiles) SavePosting(ctx context.Context, p profile.Posting) (profile.Posting, error) {
	p.Title = strings.TrimSpace(p.Title)
	if p.Title == "" {
		return profile.Posting{}, ErrInvalidInput
	}
	if p.Benefits == nil {
		p.Benefits = []string{}
	}

	saved, err := u.postings.Append(ctx, p)
	if err != nil {
		u.logger.Printf("[Profile] save posting failed err=%v", err)
		return profile.Posting{}, ErrInternal
	}

	if u.counter != nil {
		u.counter.IncProfilesCreated("posting")
	}
	if u.events != nil {
		u.events.Publish(EventPostingCreated, map[string]any{
			"id":              saved.ID,
			"title":           saved.Title,
			"company":         saved.Company,
			"required_skills": saved.RequiredSkills,
		})
	}
	return saved, nil
}

func (u *Profiles) ListCandidates(ctx context.Context) ([]profile.Candidate, error) {
	items, err := u.candidates.List(ctx)
	if err != nil {
		u.logger.Printf("[Profile] list candidates failed err=%v", err)
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Profiles) ListPostings(ctx context.Context) ([]profile.Posting, error) {
	items, err := u.postings.List(ctx)
	if err != nil {
		u.logger.Printf("[Profile] list postings failed err=%v", err)
		return nil, ErrInternal
	}
	return items, nil
}

var _ ProfileUsecase = (*Profiles)(nil)
