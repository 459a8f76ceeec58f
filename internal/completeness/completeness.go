// Package completeness scores how filled-in a user profile is and
// suggests the next field worth completing. Pure computation: same
// profile in, same result out.
package completeness

import (
	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/model/entity"
)

// Section groups scored fields for sub-totals and tie-breaking.
type Section string

const (
	SectionBasic       Section = "basic_info"
	SectionPreferences Section = "preferences"
	SectionFood        Section = "food"
	SectionPersonality Section = "personality"
	SectionBudget      Section = "budget"
)

// sectionOrder is the tie-break priority for suggestions (and the
// display order of sub-scores).
var sectionOrder = []Section{
	SectionBasic,
	SectionPreferences,
	SectionFood,
	SectionPersonality,
	SectionBudget,
}

// fieldSpec declares one scored field. The table below is the single
// source of truth for weights, required-ness and array minimums; the
// scorer and the suggestion logic both read from it and nothing else.
type fieldSpec struct {
	Name     string
	Section  Section
	Points   int
	Required bool
	Reason   string
	Complete func(p *entity.UserProfile) bool
}

// Section budgets: basic 30, preferences 25, food 20, personality 15,
// budget 10. Field points per section must sum to the budget, and the
// budgets to 100; TestFieldTableSumsTo100 enforces both.
var fieldTable = []fieldSpec{
	{
		Name: "display_name", Section: SectionBasic, Points: 10, Required: true,
		Reason:   "a display name is shown next to your reviews",
		Complete: func(p *entity.UserProfile) bool { return p.DisplayName != "" },
	},
	{
		Name: "age", Section: SectionBasic, Points: 10, Required: true,
		Reason:   "age helps match places to your travel style",
		Complete: func(p *entity.UserProfile) bool { return p.Age > 0 },
	},
	{
		Name: "gender", Section: SectionBasic, Points: 10, Required: false,
		Reason:   "optional, used only for demographic insights",
		Complete: func(p *entity.UserProfile) bool { return p.Gender != "" },
	},
	{
		Name: "trip_style", Section: SectionPreferences, Points: 8, Required: true,
		Reason:   "trip style shapes every recommendation",
		Complete: func(p *entity.UserProfile) bool { return p.TripStyle != "" },
	},
	{
		Name: "activities", Section: SectionPreferences, Points: 7, Required: true,
		Reason:   "pick at least two activities you enjoy",
		Complete: func(p *entity.UserProfile) bool { return len(p.Activities) >= 2 },
	},
	{
		Name: "place_types", Section: SectionPreferences, Points: 6, Required: false,
		Reason:   "pick at least two kinds of places you seek out",
		Complete: func(p *entity.UserProfile) bool { return len(p.PlaceTypes) >= 2 },
	},
	{
		Name: "avoid_places", Section: SectionPreferences, Points: 4, Required: false,
		Reason: "tell us what to filter out, even if it is nothing",
		// Answered means non-nil; an explicit empty list counts.
		Complete: func(p *entity.UserProfile) bool { return p.AvoidPlaces != nil },
	},
	{
		Name: "food_preferences", Section: SectionFood, Points: 12, Required: true,
		Reason:   "at least one cuisine or food style to recommend around",
		Complete: func(p *entity.UserProfile) bool { return len(p.FoodPreferences) >= 1 },
	},
	{
		Name: "food_restrictions", Section: SectionFood, Points: 8, Required: false,
		Reason:   "restrictions keep unsuitable places out of your results",
		Complete: func(p *entity.UserProfile) bool { return p.FoodRestrictions != nil },
	},
	{
		Name: "personality_traits", Section: SectionPersonality, Points: 15, Required: false,
		Reason:   "two or more traits sharpen the experience matching",
		Complete: func(p *entity.UserProfile) bool { return len(p.PersonalityTraits) >= 2 },
	},
	{
		Name: "budget_tier", Section: SectionBudget, Points: 10, Required: true,
		Reason:   "budget keeps recommendations within reach",
		Complete: func(p *entity.UserProfile) bool { return p.BudgetTier.Known() },
	},
}

// SectionScore is a per-section sub-total.
type SectionScore struct {
	Section  Section `json:"section"`
	Earned   int     `json:"earned"`
	Possible int     `json:"possible"`
}

// ScoreResult is the full completeness report for one profile.
type ScoreResult struct {
	Total      int            `json:"total"`
	Sections   []SectionScore `json:"sections"`
	Missing    []string       `json:"missing"`
	IsComplete bool           `json:"is_complete"`
}

// FieldSuggestion is the single next-best field to fill in.
type FieldSuggestion struct {
	Field   string  `json:"field"`
	Section Section `json:"section"`
	Points  int     `json:"points"`
	Reason  string  `json:"reason"`
}

// Score computes the weighted completeness of a profile.
// IsComplete tracks only the required subset, so a profile can be
// complete while scoring below 100.
func Score(p *entity.UserProfile) ScoreResult {
	earned := make(map[Section]int, len(sectionOrder))
	possible := make(map[Section]int, len(sectionOrder))

	result := ScoreResult{IsComplete: true, Missing: []string{}}
	for _, f := range fieldTable {
		possible[f.Section] += f.Points
		if f.Complete(p) {
			earned[f.Section] += f.Points
			result.Total += f.Points
			continue
		}
		result.Missing = append(result.Missing, f.Name)
		if f.Required {
			result.IsComplete = false
		}
	}

	for _, s := range sectionOrder {
		result.Sections = append(result.Sections, SectionScore{
			Section:  s,
			Earned:   earned[s],
			Possible: possible[s],
		})
	}
	return result
}

// SuggestNextField returns the incomplete field with the highest
// remaining points; ties go to the earlier section in sectionOrder,
// then to table order. The second return is false when every scored
// field is already complete.
func SuggestNextField(p *entity.UserProfile) (FieldSuggestion, bool) {
	rank := make(map[Section]int, len(sectionOrder))
	for i, s := range sectionOrder {
		rank[s] = i
	}

	var best *fieldSpec
	for i := range fieldTable {
		f := &fieldTable[i]
		if f.Complete(p) {
			continue
		}
		if best == nil ||
			f.Points > best.Points ||
			(f.Points == best.Points && rank[f.Section] < rank[best.Section]) {
			best = f
		}
	}
	if best == nil {
		return FieldSuggestion{}, false
	}
	return FieldSuggestion{
		Field:   best.Name,
		Section: best.Section,
		Points:  best.Points,
		Reason:  best.Reason,
	}, true
}
