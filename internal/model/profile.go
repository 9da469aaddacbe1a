package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Dietary preference values accepted on a profile.
const (
	DietVeg    = "veg"
	DietNonVeg = "nonveg"
)

// Profile holds one account's physical attributes, preferences and the
// generated workout plan. At most one profile exists per account.
type Profile struct {
	ID                uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	AccountID         uuid.UUID `json:"account_id" gorm:"type:char(36);uniqueIndex;not null"`
	Name              string    `json:"name" gorm:"size:255;not null"`
	Age               int       `json:"age" gorm:"not null"`
	Weight            float64   `json:"weight" gorm:"not null"`
	DietaryPreference string    `json:"dietary_preference" gorm:"size:16;not null"`
	TargetBodyType    string    `json:"target_body_type" gorm:"size:255;not null"`
	WorkoutPlan       string    `json:"workout_plan,omitempty" gorm:"type:text"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
