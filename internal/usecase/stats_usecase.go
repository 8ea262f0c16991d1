package usecase

import (
	"context"
	"log"

	"intern-match/internal/domain/profile"
	"intern-match/internal/domain/user"
)

type Stats struct {
	TotalUsers      int
	TotalCandidates int
	TotalPostings   int
	// TotalMatches is the size of the candidate x posting grid.
	TotalMatches int
}

type StatsUsecase interface {
	Get(ctx context.Context) (Stats, error)
}

type StatsService struct {
	users      user.Repository
	candidates profile.CandidateRepository
	postings   profile.PostingRepository
	logger     *log.Logger
}

func NewStatsUsecase(users user.Repository, candidates profile.CandidateRepository, postings profile.PostingRepository, logger *log.Logger) *StatsService {
	if logger == nil {
		logger = log.Default()
	}
	return &StatsService{users: users, candidates: candidates, postings: postings, logger: logger}
}

func (u *StatsService) Get(ctx context.Context) (Stats, error) {
	users, err := u.users.CountUsers(ctx)
	if err != nil {
		u.logger.Printf("[Stats] count users failed err=%v", err)
		return Stats{}, ErrInternal
	}
	candidates, err := u.candidates.Count(ctx)
	if err != nil {
		u.logger.Printf("[Stats] count candidates failed err=%v", err)
		return Stats{}, ErrInternal
	}
	postings, err := u.postings.Count(ctx)
	if err != nil {
		u.logger.Printf("[Stats] count postings failed err=%v", err)
		return Stats{}, ErrInternal
	}

	return Stats{
		TotalUsers:      users,
		TotalCandidates: candidates,
		TotalPostings:   postings,
		TotalMatches:    candidates * postings,
	}, nil
}

var _ StatsUsecase = (*StatsService)(nil)
