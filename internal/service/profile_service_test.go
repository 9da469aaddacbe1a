package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "gymplan/internal/errors"
	"gymplan/internal/model"
	"gymplan/internal/planner"
)

func testProfile(accountID uuid.UUID) *model.Profile {
	return &model.Profile{
		AccountID:         accountID,
		Name:              "Alice",
		Age:               30,
		Weight:            65,
		DietaryPreference: model.DietVeg,
		TargetBodyType:    "lean",
	}
}

func TestProfileService_SaveProfile(t *testing.T) {
	accountID := uuid.New()

	tests := []struct {
		name         string
		setupMocks   func(*MockProfileRepository, *MockGenerator)
		expectedPlan string
		expectError  bool
	}{
		{
			name: "generated plan persisted",
			setupMocks: func(repo *MockProfileRepository, gen *MockGenerator) {
				repo.On("Upsert", mock.Anything, mock.AnythingOfType("*model.Profile")).Return(testProfile(accountID), nil)
				gen.On("GeneratePlan", mock.Anything, mock.Anything).Return("Day 1: squats", nil)
				repo.On("SetWorkoutPlan", mock.Anything, accountID, "Day 1: squats").Return(nil)
			},
			expectedPlan: "Day 1: squats",
		},
		{
			name: "generation failure absorbed with fallback",
			setupMocks: func(repo *MockProfileRepository, gen *MockGenerator) {
				repo.On("Upsert", mock.Anything, mock.AnythingOfType("*model.Profile")).Return(testProfile(accountID), nil)
				gen.On("GeneratePlan", mock.Anything, mock.Anything).Return("", errors.New("quota exceeded"))
				repo.On("SetWorkoutPlan", mock.Anything, accountID, FallbackPlan).Return(nil)
			},
			expectedPlan: FallbackPlan,
		},
		{
			name: "upsert failure surfaces",
			setupMocks: func(repo *MockProfileRepository, gen *MockGenerator) {
				repo.On("Upsert", mock.Anything, mock.AnythingOfType("*model.Profile")).Return(nil, errors.New("connection refused"))
			},
			expectError: true,
		},
		{
			name: "plan store failure surfaces",
			setupMocks: func(repo *MockProfileRepository, gen *MockGenerator) {
				repo.On("Upsert", mock.Anything, mock.AnythingOfType("*model.Profile")).Return(testProfile(accountID), nil)
				gen.On("GeneratePlan", mock.Anything, mock.Anything).Return("Day 1: squats", nil)
				repo.On("SetWorkoutPlan", mock.Anything, accountID, "Day 1: squats").Return(errors.New("connection refused"))
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockProfileRepository)
			mockGen := new(MockGenerator)
			tt.setupMocks(mockRepo, mockGen)

			svc := NewProfileService(mockRepo, mockGen, nil)
			plan, err := svc.SaveProfile(context.Background(), testProfile(accountID))

			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, plan)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedPlan, plan)
			}

			mockRepo.AssertExpectations(t)
			mockGen.AssertExpectations(t)
		})
	}
}

func TestProfileService_SaveProfile_PassesProfileFieldsToGenerator(t *testing.T) {
	accountID := uuid.New()
	mockRepo := new(MockProfileRepository)
	mockGen := new(MockGenerator)

	mockRepo.On("Upsert", mock.Anything, mock.Anything).Return(testProfile(accountID), nil)
	mockGen.On("GeneratePlan", mock.Anything, planner.PlanRequest{
		Name:              "Alice",
		Age:               30,
		Weight:            65,
		DietaryPreference: model.DietVeg,
		TargetBodyType:    "lean",
	}).Return("plan", nil)
	mockRepo.On("SetWorkoutPlan", mock.Anything, accountID, "plan").Return(nil)

	svc := NewProfileService(mockRepo, mockGen, nil)
	_, err := svc.SaveProfile(context.Background(), testProfile(accountID))

	assert.NoError(t, err)
	mockGen.AssertExpectations(t)
}

func TestProfileService_GetProfile(t *testing.T) {
	accountID := uuid.New()

	t.Run("found", func(t *testing.T) {
		mockRepo := new(MockProfileRepository)
		mockRepo.On("FindByAccount", mock.Anything, accountID).Return(testProfile(accountID), nil)

		svc := NewProfileService(mockRepo, new(MockGenerator), nil)
		profile, err := svc.GetProfile(context.Background(), accountID)

		assert.NoError(t, err)
		assert.Equal(t, "Alice", profile.Name)
		mockRepo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(MockProfileRepository)
		mockRepo.On("FindByAccount", mock.Anything, accountID).Return(nil, apperrors.ErrProfileNotFound)

		svc := NewProfileService(mockRepo, new(MockGenerator), nil)
		profile, err := svc.GetProfile(context.Background(), accountID)

		assert.ErrorIs(t, err, apperrors.ErrProfileNotFound)
		assert.Nil(t, profile)
	})
}

func TestProfileService_HasProfile(t *testing.T) {
	accountID := uuid.New()
	mockRepo := new(MockProfileRepository)
	mockRepo.On("ExistsByAccount", mock.Anything, accountID).Return(true, nil)

	svc := NewProfileService(mockRepo, new(MockGenerator), nil)
	has, err := svc.HasProfile(context.Background(), accountID)

	assert.NoError(t, err)
	assert.True(t, has)
	mockRepo.AssertExpectations(t)
}
