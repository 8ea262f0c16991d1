package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"intern-match/internal/domain/user"
	"intern-match/internal/pkg/jwt"
	"intern-match/internal/repository"
	ucauth "intern-match/internal/usecase/auth"

	"github.com/google/uuid"
)

func newAuthUsecase() *Auth {
	svc := jwt.NewHMACService("intern-match-test", "access", "refresh", time.Minute, time.Hour)
	return NewAuthUsecase(repository.NewMemoryUserRepository(), svc, discardLogger())
}

func TestAuth_RegisterLoginRefreshMe(t *testing.T) {
	ctx := context.Background()
	uc := newAuthUsecase()

	usr, pair, err := uc.Register(ctx, ucauth.RegisterInput{Name: "Priya", Email: " Priya@Example.com ", Password: "s3cretpass", UserType: "student"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if usr.Email != "priya@example.com" || usr.UserType != user.TypeStudent {
		t.Fatalf("unexpected user: %+v", usr)
	}
	if usr.PasswordHash != "" {
		t.Fatalf("password hash leaked")
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected token pair")
	}

	_, _, err = uc.Register(ctx, ucauth.RegisterInput{Email: "priya@example.com", Password: "anotherpass", UserType: "company"})
	if !errors.Is(err, ucauth.ErrEmailAlreadyRegistered) {
		t.Fatalf("expected duplicate registration error, got %v", err)
	}

	if _, _, err := uc.Login(ctx, ucauth.LoginInput{Email: "priya@example.com", Password: "wrong-password"}); !errors.Is(err, ucauth.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
	if _, _, err := uc.Login(ctx, ucauth.LoginInput{Email: "priya@example.com", Password: "s3cretpass"}); err != nil {
		t.Fatalf("unexpected login err: %v", err)
	}

	refreshed, err := uc.Refresh(ctx, pair.RefreshToken)
	if err != nil || refreshed.AccessToken == "" {
		t.Fatalf("unexpected refresh result: %+v err=%v", refreshed, err)
	}
	if _, err := uc.Refresh(ctx, pair.AccessToken); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected access token to be rejected for refresh, got %v", err)
	}

	me, err := uc.Me(ctx, usr.ID)
	if err != nil || me.ID != usr.ID || me.PasswordHash != "" {
		t.Fatalf("unexpected me: %+v err=%v", me, err)
	}
	if _, err := uc.Me(ctx, uuid.New()); !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestAuth_RegisterValidation(t *testing.T) {
	uc := newAuthUsecase()
	cases := []ucauth.RegisterInput{
		{Email: "", Password: "longenough", UserType: "student"},
		{Email: "a@b.io", Password: "short", UserType: "student"},
		{Email: "a@b.io", Password: "longenough", UserType: ""},
		{Email: "a@b.io", Password: "longenough", UserType: "admin"},
	}
	for _, in := range cases {
		if _, _, err := uc.Register(context.Background(), in); !errors.Is(err, ucauth.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", in, err)
		}
	}
}
