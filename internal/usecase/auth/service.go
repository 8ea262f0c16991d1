package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"intern-match/internal/domain/user"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidInput           = errors.New("invalid input")
	ErrInternal               = errors.New("internal error")
)

const minPasswordLen = 8

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	UserType string
}

// normalize trims and lower-cases the identifying fields and checks them.
func (in RegisterInput) normalize() (RegisterInput, error) {
	out := RegisterInput{
		Name:     strings.TrimSpace(in.Name),
		Email:    normalizeEmail(in.Email),
		Password: in.Password,
		UserType: strings.ToLower(strings.TrimSpace(in.UserType)),
	}
	switch {
	case !strings.Contains(out.Email, "@"):
		return RegisterInput{}, fmt.Errorf("%w: email", ErrInvalidInput)
	case len(strings.TrimSpace(out.Password)) < minPasswordLen:
		return RegisterInput{}, fmt.Errorf("%w: password shorter than %d", ErrInvalidInput, minPasswordLen)
	case !user.ValidType(out.UserType):
		return RegisterInput{}, fmt.Errorf("%w: user_type %q", ErrInvalidInput, in.UserType)
	}
	return out, nil
}

type LoginInput struct {
	Email    string
	Password string
}

// Service owns account creation and credential checks.
type Service struct {
	users user.Repository
	cost  int
}

func NewService(users user.Repository) *Service {
	return &Service{users: users, cost: bcrypt.DefaultCost}
}

// WithCost overrides the bcrypt cost; tests use bcrypt.MinCost.
func (s *Service) WithCost(cost int) *Service {
	s.cost = cost
	return s
}

func (s *Service) Register(ctx context.Context, raw RegisterInput) (user.User, error) {
	in, err := raw.normalize()
	if err != nil {
		return user.User{}, err
	}

	taken, err := s.users.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return user.User{}, fmt.Errorf("%w: lookup email: %v", ErrInternal, err)
	}
	if taken {
		return user.User{}, ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return user.User{}, fmt.Errorf("%w: hash password: %v", ErrInternal, err)
	}

	u := user.User{
		ID:           uuid.New(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		UserType:     in.UserType,
	}
	if err := s.users.CreateUser(ctx, u); err != nil {
		// a concurrent registration can win between the lookup and the insert
		if errors.Is(err, user.ErrEmailConflict) {
			return user.User{}, ErrEmailAlreadyRegistered
		}
		return user.User{}, fmt.Errorf("%w: create user: %v", ErrInternal, err)
	}

	created, err := s.users.GetUserByID(ctx, u.ID)
	if err != nil {
		return user.User{}, fmt.Errorf("%w: reload user: %v", ErrInternal, err)
	}
	return withoutHash(created), nil
}

func (s *Service) Login(ctx context.Context, in LoginInput) (user.User, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return user.User{}, ErrInvalidCredentials
	}

	u, err := s.users.GetUserByEmail(ctx, email)
	switch {
	case errors.Is(err, user.ErrNotFound):
		return user.User{}, ErrInvalidCredentials
	case err != nil:
		return user.User{}, fmt.Errorf("%w: lookup email: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return user.User{}, ErrInvalidCredentials
	}
	return withoutHash(u), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func withoutHash(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
