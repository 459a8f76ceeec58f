package entity

// UserProfile is a user's long-term preference profile.
//
// Slice fields are deduplicated sets. A nil slice means the user has never
// answered the question; an empty non-nil slice means "explicitly none".
// Callers must preserve that distinction when loading or mutating profiles.
type UserProfile struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Age         int    `json:"age"`
	Gender      string `json:"gender"`

	BudgetTier BudgetTier `json:"budget_tier"`
	TripStyle  string     `json:"trip_style"`

	Activities       []string `json:"activities"`
	PlaceTypes       []string `json:"place_types"`
	FoodPreferences  []string `json:"food_preferences"`
	FoodRestrictions []string `json:"food_restrictions"`
	AvoidPlaces      []string `json:"avoid_places"`

	PersonalityTraits []string `json:"personality_traits"`
}

// DedupeTags returns tags with duplicates and empty entries removed,
// preserving first-seen order. A nil input stays nil.
func DedupeTags(tags []string) []string {
	if tags == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// Normalize dedupes every set field of the profile in place.
func (p *UserProfile) Normalize() {
	p.Activities = DedupeTags(p.Activities)
	p.PlaceTypes = DedupeTags(p.PlaceTypes)
	p.FoodPreferences = DedupeTags(p.FoodPreferences)
	p.FoodRestrictions = DedupeTags(p.FoodRestrictions)
	p.AvoidPlaces = DedupeTags(p.AvoidPlaces)
	p.PersonalityTraits = DedupeTags(p.PersonalityTraits)
}
