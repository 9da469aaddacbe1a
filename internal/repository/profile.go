package repository

import (
	"context"

	"github.com/google/uuid"

	"gymplan/internal/model"
)

// ProfileRepository defines profile persistence operations.
type ProfileRepository interface {
	// FindByAccount returns the account's profile or ErrProfileNotFound.
	FindByAccount(ctx context.Context, accountID uuid.UUID) (*model.Profile, error)
	// Upsert creates the profile if absent, else overwrites all mutable
	// fields and refreshes updated_at. Keyed on account_id; a single
	// conditional write, idempotent under repeated identical input.
	Upsert(ctx context.Context, profile *model.Profile) (*model.Profile, error)
	// SetWorkoutPlan updates only the plan field of an existing profile and
	// returns ErrProfileNotFound if none exists for the account.
	SetWorkoutPlan(ctx context.Context, accountID uuid.UUID, plan string) error
	// ExistsByAccount reports whether the account has a profile.
	ExistsByAccount(ctx context.Context, accountID uuid.UUID) (bool, error)
}
