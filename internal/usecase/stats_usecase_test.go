package usecase

import (
	"context"
	"testing"

	"intern-match/internal/domain/profile"
	"intern-match/internal/domain/user"
	"intern-match/internal/repository"

	"github.com/google/uuid"
)

func TestStats_Get(t *testing.T) {
	ctx := context.Background()
	users := repository.NewMemoryUserRepository()
	_ = users.CreateUser(ctx, user.User{ID: uuid.New(), Email: "a@b.io"})

	uc := NewStatsUsecase(
		users,
		&fakeCandidateRepo{items: make([]profile.Candidate, 3)},
		&fakePostingRepo{items: make([]profile.Posting, 6)},
		discardLogger(),
	)

	st, err := uc.Get(ctx)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if st.TotalUsers != 1 || st.TotalCandidates != 3 || st.TotalPostings != 6 || st.TotalMatches != 18 {
		t.Fatalf("unexpected stats: %+v", st)
	}
}
