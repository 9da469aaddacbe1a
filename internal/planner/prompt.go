package planner

import "fmt"

// buildPrompt renders the fixed prompt template for a profile. The wording is
// deliberately stable so identical profiles produce identical prompts.
func buildPrompt(req PlanRequest) string {
	return fmt.Sprintf(`Create a personalized 7-day workout plan for a person with the following details:
- Name: %s
- Age: %d
- Weight: %g kg
- Dietary Preference: %s
- Target Body Type: %s

Include specific exercises, sets, reps, and rest periods. Also include dietary suggestions based on their preference.
Format the response in an easy-to-read structure.`,
		req.Name, req.Age, req.Weight, req.DietaryPreference, req.TargetBodyType)
}
