package user

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeStudent = "student"
	TypeCompany = "company"
)

type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	UserType     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func ValidType(t string) bool {
	return t == TypeStudent || t == TypeCompany
}
