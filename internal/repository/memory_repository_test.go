package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"intern-match/internal/domain/profile"
	"intern-match/internal/domain/user"

	"github.com/google/uuid"
)

func TestMemoryCandidateRepository_SnapshotIsolation(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCandidateRepository()

	saved, err := repo.Append(ctx, profile.Candidate{Name: "Rahul", Certifications: []string{"AWS"}})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if saved.ID == uuid.Nil {
		t.Fatalf("expected generated id")
	}
	if saved.CreatedAt.IsZero() {
		t.Fatalf("expected created_at to be set")
	}

	snap, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if _, err := repo.Append(ctx, profile.Candidate{Name: "Priya"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(snap) != 1 {
		t.Fatalf("snapshot observed a later append: %d", len(snap))
	}

	snap[0].Certifications[0] = "mutated"
	again, _ := repo.List(ctx)
	if again[0].Certifications[0] != "AWS" {
		t.Fatalf("snapshot mutation leaked into the store")
	}
	if n, _ := repo.Count(ctx); n != 2 {
		t.Fatalf("expected 2 candidates, got %d", n)
	}
}

func TestMemoryPostingRepository_PreservesOrderAndIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryPostingRepository()

	id := uuid.New()
	if _, err := repo.Append(ctx, profile.Posting{ID: id, Title: "first"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := repo.Append(ctx, profile.Posting{Title: "second"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	items, _ := repo.List(ctx)
	if len(items) != 2 || items[0].Title != "first" || items[1].Title != "second" {
		t.Fatalf("unexpected order: %+v", items)
	}
	if items[0].ID != id {
		t.Fatalf("expected supplied id to be kept")
	}
}

func TestMemoryPostingRepository_ConcurrentAppend(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryPostingRepository()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = repo.Append(ctx, profile.Posting{Title: "p"})
			_, _ = repo.List(ctx)
		}()
	}
	wg.Wait()

	if n, _ := repo.Count(ctx); n != 50 {
		t.Fatalf("expected 50 postings, got %d", n)
	}
}

func TestMemoryUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository()

	u := user.User{ID: uuid.New(), Email: "a@b.io", UserType: user.TypeStudent}
	if err := repo.CreateUser(ctx, u); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := repo.CreateUser(ctx, user.User{ID: uuid.New(), Email: "A@B.io"}); !errors.Is(err, user.ErrEmailConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}

	exists, _ := repo.ExistsByEmail(ctx, "a@b.io")
	if !exists {
		t.Fatalf("expected email to exist")
	}

	got, err := repo.GetUserByEmail(ctx, "a@b.io")
	if err != nil || got.ID != u.ID {
		t.Fatalf("unexpected lookup result: %+v err=%v", got, err)
	}
	if _, err := repo.GetUserByID(ctx, uuid.New()); !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if n, _ := repo.CountUsers(ctx); n != 1 {
		t.Fatalf("expected 1 user, got %d", n)
	}
}
