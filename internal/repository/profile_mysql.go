package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "gymplan/internal/errors"
	"gymplan/internal/model"
)

type mysqlProfileRepository struct {
	db *gorm.DB
}

// NewMySQLProfileRepository builds a GORM-backed profile repository.
func NewMySQLProfileRepository(db *gorm.DB) ProfileRepository {
	return &mysqlProfileRepository{db: db}
}

func (r *mysqlProfileRepository) FindByAccount(ctx context.Context, accountID uuid.UUID) (*model.Profile, error) {
	var profile model.Profile
	if err := r.db.WithContext(ctx).Where("account_id = ?", accountID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// Upsert relies on the unique index on account_id: a single INSERT ... ON
// DUPLICATE KEY UPDATE touching only the mutable fields.
func (r *mysqlProfileRepository) Upsert(ctx context.Context, profile *model.Profile) (*model.Profile, error) {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "account_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "age", "weight", "dietary_preference", "target_body_type", "updated_at",
		}),
	}).Create(profile).Error
	if err != nil {
		return nil, err
	}
	return r.FindByAccount(ctx, profile.AccountID)
}

func (r *mysqlProfileRepository) SetWorkoutPlan(ctx context.Context, accountID uuid.UUID, plan string) error {
	res := r.db.WithContext(ctx).Model(&model.Profile{}).
		Where("account_id = ?", accountID).
		Update("workout_plan", plan)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// MySQL reports zero affected rows both for a missing row and for a
		// no-op write of the same value; only the former is an error.
		exists, err := r.ExistsByAccount(ctx, accountID)
		if err != nil {
			return err
		}
		if !exists {
			return apperrors.ErrProfileNotFound
		}
	}
	return nil
}

func (r *mysqlProfileRepository) ExistsByAccount(ctx context.Context, accountID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Profile{}).
		Where("account_id = ?", accountID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
