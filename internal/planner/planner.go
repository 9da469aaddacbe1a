package planner

import "context"

// PlanRequest carries the profile fields the prompt is built from.
type PlanRequest struct {
	Name              string
	Age               int
	Weight            float64
	DietaryPreference string
	TargetBodyType    string
}

// Generator produces a workout plan for a profile. Implementations report
// failures as errors; the caller decides how to degrade.
type Generator interface {
	GeneratePlan(ctx context.Context, req PlanRequest) (string, error)
}
