package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrMissingFields      = errors.New("missing fields")
	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrTokenInvalid       = errors.New("token is invalid or expired")
	ErrUnauthorized       = errors.New("unauthorized")
)

// WeakPasswordError reports why a password was rejected at signup. Score is
// always included so clients can render strength feedback.
type WeakPasswordError struct {
	Score    int
	TooShort bool
}

func (e *WeakPasswordError) Error() string {
	if e.TooShort {
		return fmt.Sprintf("password is too short (score %d)", e.Score)
	}
	return fmt.Sprintf("password is too weak (score %d)", e.Score)
}

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
