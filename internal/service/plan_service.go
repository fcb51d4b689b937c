package service

import (
	"fmt"
	"math/rand"
	"strings"

	"nutritional-planner/internal/catalog"
)

// PlanService composes the human-readable nutrition plan: a deterministic
// part echoing the classification and preference inputs, plus a randomly
// sampled menu suggestion and daily tip.
type PlanService interface {
	ComposePlan(category, activityLevel, dietaryPreferences, allergies string) string
	SuggestMenu() string
	DailyTip() string
	BuildPlanText(category, activityLevel, dietaryPreferences, allergies string) string
}

type planService struct {
	rng *rand.Rand
}

// NewPlanService builds a PlanService around the given random source.
// Tests pass a fixed-seed rand.Rand to make the menu and tip draws
// reproducible.
func NewPlanService(rng *rand.Rand) PlanService {
	return &planService{rng: rng}
}

// ComposePlan is the deterministic portion of the plan: the category line
// followed by three labeled lines echoing the inputs verbatim. Unset inputs
// produce empty values, not omitted lines.
func (s *planService) ComposePlan(category, activityLevel, dietaryPreferences, allergies string) string {
	var b strings.Builder
	b.WriteString(category)
	fmt.Fprintf(&b, "\nActivity Level: %s", activityLevel)
	fmt.Fprintf(&b, "\nDietary Preferences: %s", dietaryPreferences)
	fmt.Fprintf(&b, "\nAllergies: %s", allergies)
	return b.String()
}

// SuggestMenu draws one item uniformly at random from each catalog category,
// in the fixed category order.
func (s *planService) SuggestMenu() string {
	var b strings.Builder
	b.WriteString("\nSuggested Healthy Menu:\n")
	for _, category := range catalog.CategoryOrder {
		items := catalog.Categories[category]
		fmt.Fprintf(&b, "%s: %s\n", category, items[s.rng.Intn(len(items))])
	}
	return b.String()
}

// DailyTip draws one tip uniformly at random from the fixed tip list.
func (s *planService) DailyTip() string {
	return catalog.DailyTips[s.rng.Intn(len(catalog.DailyTips))]
}

// BuildPlanText is the full plan text stored on a measurement record:
// deterministic plan, then menu suggestion, then daily tip.
func (s *planService) BuildPlanText(category, activityLevel, dietaryPreferences, allergies string) string {
	return s.ComposePlan(category, activityLevel, dietaryPreferences, allergies) +
		s.SuggestMenu() +
		s.DailyTip()
}
