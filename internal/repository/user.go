package repository

import (
	"context"

	"github.com/taskflowhq/taskflow-api/internal/domain"
)

// Usecases depend on interfaces, not concrete implementations, so the DB can
// be swapped without touching business logic and tests can inject fakes.
type UserRepository interface {
	// Create inserts a new user. Returns domain.ErrEmailTaken when the
	// email is already registered (exact, case-sensitive match enforced
	// by the store's unique index).
	Create(ctx context.Context, name, email, passwordHash string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
