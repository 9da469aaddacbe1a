package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"gymplan/internal/cache"
	apperrors "gymplan/internal/errors"
	"gymplan/internal/model"
	"gymplan/internal/planner"
	"gymplan/internal/repository"
)

// FallbackPlan is persisted when the generation service fails. Profile save
// must still succeed in that case.
const FallbackPlan = "Unable to generate workout plan at the moment. Please try again later."

const profileCacheTTL = 5 * time.Minute

// ProfileService exposes profile operations.
type ProfileService interface {
	// SaveProfile upserts the profile, generates a workout plan and stores
	// it. Generation failures are absorbed: the fallback text is persisted
	// and the save still reports success.
	SaveProfile(ctx context.Context, profile *model.Profile) (plan string, err error)
	GetProfile(ctx context.Context, accountID uuid.UUID) (*model.Profile, error)
	HasProfile(ctx context.Context, accountID uuid.UUID) (bool, error)
}

type profileService struct {
	profiles  repository.ProfileRepository
	generator planner.Generator
	cache     *cache.Client
}

// NewProfileService builds a ProfileService with repository, generator and cache.
func NewProfileService(profiles repository.ProfileRepository, generator planner.Generator, cache *cache.Client) ProfileService {
	return &profileService{profiles: profiles, generator: generator, cache: cache}
}

func (s *profileService) cacheKey(accountID uuid.UUID) string {
	return "profile:" + accountID.String()
}

func (s *profileService) SaveProfile(ctx context.Context, profile *model.Profile) (string, error) {
	saved, err := s.profiles.Upsert(ctx, profile)
	if err != nil {
		return "", fmt.Errorf("upsert profile: %w", err)
	}

	plan, err := s.generator.GeneratePlan(ctx, planner.PlanRequest{
		Name:              saved.Name,
		Age:               saved.Age,
		Weight:            saved.Weight,
		DietaryPreference: saved.DietaryPreference,
		TargetBodyType:    saved.TargetBodyType,
	})
	if err != nil {
		// Degrade gracefully: log, never retry, never surface.
		log.Printf("workout plan generation failed for account %s: %v", saved.AccountID, err)
		plan = FallbackPlan
	}

	if err := s.profiles.SetWorkoutPlan(ctx, saved.AccountID, plan); err != nil {
		return "", fmt.Errorf("store workout plan: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(saved.AccountID))
	return plan, nil
}

func (s *profileService) GetProfile(ctx context.Context, accountID uuid.UUID) (*model.Profile, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(accountID)); data != nil {
		var cached model.Profile
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	profile, err := s.profiles.FindByAccount(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrProfileNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}

	if payload, err := json.Marshal(profile); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(accountID), payload, profileCacheTTL)
	}
	return profile, nil
}

func (s *profileService) HasProfile(ctx context.Context, accountID uuid.UUID) (bool, error) {
	return s.profiles.ExistsByAccount(ctx, accountID)
}
