package repository

import (
	"context"

	"github.com/google/uuid"

	"gymplan/internal/model"
)

// AccountRepository defines credential persistence operations. Implementations
// normalize store-specific failures to the sentinels in internal/errors:
// Create returns ErrAccountConflict on a duplicate username or email, and the
// finders return ErrAccountNotFound when nothing matches. Uniqueness is
// arbitrated by the store's own constraints, never by a prior read.
type AccountRepository interface {
	Create(ctx context.Context, account *model.Account) error
	FindByUsername(ctx context.Context, username string) (*model.Account, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Account, error)
}
