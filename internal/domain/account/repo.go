package account

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when no account matches.
	ErrNotFound = errors.New("account not found")
	// ErrDuplicateEmail rejects a second registration for the same email.
	ErrDuplicateEmail = errors.New("an account with this email already exists")
)

// Repository stores registered accounts.
type Repository interface {
	Create(ctx context.Context, a *Account) error
	FindByEmail(ctx context.Context, email string) (*Account, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Account, error)
}
