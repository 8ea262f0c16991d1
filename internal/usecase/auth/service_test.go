package auth

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"intern-match/internal/domain/user"
	"intern-match/internal/repository"
)

func newTestService() *Service {
	return NewService(repository.NewMemoryUserRepository()).WithCost(bcrypt.MinCost)
}

func TestRegister_NormalizesAndHashes(t *testing.T) {
	svc := newTestService()
	u, err := svc.Register(context.Background(), RegisterInput{
		Name:     "  Acme Labs ",
		Email:    " HR@Acme.IO ",
		Password: "correct horse",
		UserType: " Company ",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.Name != "Acme Labs" || u.Email != "hr@acme.io" || u.UserType != user.TypeCompany {
		t.Fatalf("unexpected user: %+v", u)
	}
	if u.PasswordHash != "" {
		t.Fatalf("password hash leaked")
	}

	if _, err := svc.Login(context.Background(), LoginInput{Email: "hr@ACME.io", Password: "correct horse"}); err != nil {
		t.Fatalf("login with mixed-case email: %v", err)
	}
}

func TestRegister_RejectsBadInput(t *testing.T) {
	svc := newTestService()
	cases := map[string]RegisterInput{
		"no at sign":     {Email: "acme.io", Password: "longenough", UserType: "student"},
		"blank password": {Email: "a@b.io", Password: "         ", UserType: "student"},
		"unknown type":   {Email: "a@b.io", Password: "longenough", UserType: "recruiter"},
	}
	for name, in := range cases {
		if _, err := svc.Register(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", name, err)
		}
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := newTestService()
	if _, err := svc.Login(context.Background(), LoginInput{Email: "nobody@b.io", Password: "whatever1"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(context.Background(), LoginInput{}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty input, got %v", err)
	}
}
