package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/taskflowhq/taskflow-api/internal/domain"
	"github.com/taskflowhq/taskflow-api/internal/email"
	"github.com/taskflowhq/taskflow-api/internal/password"
	"github.com/taskflowhq/taskflow-api/internal/repository"
	"github.com/taskflowhq/taskflow-api/internal/token"
)

type AuthUsecase struct {
	users  repository.UserRepository
	hasher *password.Hasher
	tokens *token.Service
	email  email.Sender
	logger *slog.Logger
}

func NewAuthUsecase(users repository.UserRepository, hasher *password.Hasher, tokens *token.Service, emailSender email.Sender, logger *slog.Logger) *AuthUsecase {
	return &AuthUsecase{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		email:  emailSender,
		logger: logger.With("component", "auth_usecase"),
	}
}

// Signup validates strength, creates the user and returns it with a fresh
// token. The raw password is hashed immediately and never stored or logged.
func (u *AuthUsecase) Signup(ctx context.Context, name, email, pw string) (*domain.User, string, error) {
	if name == "" || email == "" || pw == "" {
		return nil, "", domain.ErrMissingFields
	}

	if !password.IsAcceptable(pw) {
		return nil, "", &domain.WeakPasswordError{
			Score:    password.Score(pw),
			TooShort: len(pw) < password.MinLength,
		}
	}

	hash, err := u.hasher.Hash(pw)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	// The unique index on users.email is the arbiter: no pre-check, so two
	// concurrent signups cannot both succeed.
	user, err := u.users.Create(ctx, name, email, hash)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, "", domain.ErrEmailTaken
		}
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	signed, err := u.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	// Best effort: a failed welcome mail must not fail the signup.
	if err := u.email.Send(ctx, user.Email, "Welcome to TaskFlow",
		fmt.Sprintf("<p>Hi %s, your TaskFlow account is ready.</p>", user.Name)); err != nil {
		u.logger.WarnContext(ctx, "welcome email", "error", err)
	}

	return user, signed, nil
}

// Login checks credentials and issues a token. Unknown email and wrong
// password surface the same ErrInvalidCredentials so registered addresses
// cannot be probed.
func (u *AuthUsecase) Login(ctx context.Context, email, pw string) (*domain.User, string, error) {
	if email == "" || pw == "" {
		return nil, "", domain.ErrMissingFields
	}

	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("find user: %w", err)
	}

	if !u.hasher.Verify(pw, user.PasswordHash) {
		return nil, "", domain.ErrInvalidCredentials
	}

	signed, err := u.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	return user, signed, nil
}

// CurrentUser resolves the identity attached by the auth middleware.
func (u *AuthUsecase) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}

	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}
