package seeder

import (
	"context"
	"fmt"

	"intern-match/internal/domain/profile"
)

// PostingSeeder appends Postings when the repository is empty.
type PostingSeeder struct {
	Repo     profile.PostingRepository
	Postings []profile.Posting
}

func (PostingSeeder) Name() string { return "postings" }

func (s PostingSeeder) Run(ctx context.Context) (int, error) {
	if s.Repo == nil {
		return 0, fmt.Errorf("nil posting repository")
	}
	n, err := s.Repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}

	for _, p := range s.Postings {
		if _, err := s.Repo.Append(ctx, p); err != nil {
			return 0, fmt.Errorf("append posting %q: %w", p.Title, err)
		}
	}
	return len(s.Postings), nil
}

type CandidateSeeder struct {
	Repo       profile.CandidateRepository
	Candidates []profile.Candidate
}

func (CandidateSeeder) Name() string { return "candidates" }

func (s CandidateSeeder) Run(ctx context.Context) (int, error) {
	if s.Repo == nil {
		return 0, fmt.Errorf("nil candidate repository")
	}
	n, err := s.Repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}

	for _, c := range s.Candidates {
		if _, err := s.Repo.Append(ctx, c); err != nil {
			return 0, fmt.Errorf("append candidate %q: %w", c.Name, err)
		}
	}
	return len(s.Candidates), nil
}
