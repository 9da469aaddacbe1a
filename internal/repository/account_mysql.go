package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "gymplan/internal/errors"
	"gymplan/internal/model"
)

type mysqlAccountRepository struct {
	db *gorm.DB
}

// NewMySQLAccountRepository builds a GORM-backed account repository.
func NewMySQLAccountRepository(db *gorm.DB) AccountRepository {
	return &mysqlAccountRepository{db: db}
}

// Create inserts the account. The unique indexes on username and email are
// the final arbiter for concurrent sign-ups; duplicates surface as
// ErrAccountConflict via gorm's error translation.
func (r *mysqlAccountRepository) Create(ctx context.Context, account *model.Account) error {
	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrAccountConflict
		}
		return err
	}
	return nil
}

func (r *mysqlAccountRepository) FindByUsername(ctx context.Context, username string) (*model.Account, error) {
	var account model.Account
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}

func (r *mysqlAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Account, error) {
	var account model.Account
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}
