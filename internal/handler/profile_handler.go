package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "gymplan/internal/errors"
	"gymplan/internal/middleware"
	"gymplan/internal/model"
	"gymplan/internal/service"
)

// ProfileHandler handles profile save and fetch.
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// SaveProfileRequest represents a profile save request.
type SaveProfileRequest struct {
	Name              string  `json:"name" validate:"required"`
	Age               int     `json:"age" validate:"required,gt=0,lte=120"`
	Weight            float64 `json:"weight" validate:"required,gt=0"`
	DietaryPreference string  `json:"dietaryPreference" validate:"required,oneof=veg nonveg"`
	TargetBodyType    string  `json:"targetBodyType" validate:"required"`
}

// SaveProfileResponse is returned on successful profile save.
type SaveProfileResponse struct {
	Message     string `json:"message"`
	WorkoutPlan string `json:"workoutPlan"`
}

// ProfileResponse wraps the profile record.
type ProfileResponse struct {
	Profile *model.Profile `json:"profile"`
}

// SaveProfile godoc
// @Summary Save the profile and generate a workout plan
// @Tags profile
// @Accept json
// @Produce json
// @Param request body SaveProfileRequest true "Profile fields"
// @Success 200 {object} SaveProfileResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /profile [post]
func (h *ProfileHandler) SaveProfile(c echo.Context) error {
	var req SaveProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Message: "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Message: err.Error()})
	}

	accountID, ok := c.Get(middleware.ContextAccountID).(uuid.UUID)
	if !ok {
		return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{Message: "Authentication required"})
	}

	plan, err := h.profileService.SaveProfile(c.Request().Context(), &model.Profile{
		AccountID:         accountID,
		Name:              req.Name,
		Age:               req.Age,
		Weight:            req.Weight,
		DietaryPreference: req.DietaryPreference,
		TargetBodyType:    req.TargetBodyType,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, apperrors.ErrorResponse{Message: "Failed to save profile", Err: err.Error()})
	}

	return c.JSON(http.StatusOK, SaveProfileResponse{
		Message:     "Profile saved successfully",
		WorkoutPlan: plan,
	})
}

// GetProfile godoc
// @Summary Fetch the profile and workout plan
// @Tags profile
// @Produce json
// @Success 200 {object} ProfileResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	accountID, ok := c.Get(middleware.ContextAccountID).(uuid.UUID)
	if !ok {
		return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{Message: "Authentication required"})
	}

	profile, err := h.profileService.GetProfile(c.Request().Context(), accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrProfileNotFound) {
			return c.JSON(http.StatusNotFound, apperrors.ErrorResponse{Message: "Profile not found"})
		}
		return c.JSON(http.StatusInternalServerError, apperrors.ErrorResponse{Message: "Failed to get profile", Err: err.Error()})
	}

	return c.JSON(http.StatusOK, ProfileResponse{Profile: profile})
}
