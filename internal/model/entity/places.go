package entity

// Category classifies a place in the catalog.
type Category string

const (
	CategoryRestaurant Category = "restaurant"
	CategoryBar        Category = "bar"
	CategoryCafe       Category = "cafe"
	CategoryMuseum     Category = "museum"
	CategoryGallery    Category = "gallery"
	CategoryPark       Category = "park"
	CategoryTrail      Category = "trail"
	CategoryBeach      Category = "beach"
	CategoryMarket     Category = "market"
	CategoryLandmark   Category = "landmark"
)

// BudgetTier is an ordered price band. Compare with Leq, not string ordering.
type BudgetTier string

const (
	BudgetLow    BudgetTier = "low"
	BudgetMedium BudgetTier = "medium"
	BudgetHigh   BudgetTier = "high"
)

var budgetRank = map[BudgetTier]int{
	BudgetLow:    1,
	BudgetMedium: 2,
	BudgetHigh:   3,
}

// Known reports whether t is one of the declared tiers.
func (t BudgetTier) Known() bool {
	_, ok := budgetRank[t]
	return ok
}

// Leq reports whether t is at or below ceiling. Unknown tiers never compare.
func (t BudgetTier) Leq(ceiling BudgetTier) bool {
	a, okA := budgetRank[t]
	b, okB := budgetRank[ceiling]
	return okA && okB && a <= b
}

// Place represents a catalog entry. The recommendation engine never mutates it.
type Place struct {
	PlaceID       string     `json:"place_id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Category      Category   `json:"category"`
	Tags          []string   `json:"tags"`
	BudgetTier    BudgetTier `json:"budget_tier"`
	Area          string     `json:"area"`
	Accessibility []string   `json:"accessibility"`
	// Opening window in whole hours, local to the place. 0/0 means unknown.
	OpenHour  int     `json:"open_hour"`
	CloseHour int     `json:"close_hour"`
	Rating    float64 `json:"rating"`
}

// OpenAt reports whether the place is open at the given hour of day.
// Places with an unknown window count as open.
func (p Place) OpenAt(hour int) bool {
	if p.OpenHour == 0 && p.CloseHour == 0 {
		return true
	}
	if p.OpenHour <= p.CloseHour {
		return hour >= p.OpenHour && hour < p.CloseHour
	}
	// Window crosses midnight (e.g. bars: 18..2).
	return hour >= p.OpenHour || hour < p.CloseHour
}

// HasTag reports whether the place carries the given experience tag.
func (p Place) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// PlaceFilter narrows catalog queries by area and optionally category.
type PlaceFilter struct {
	Area     string   `json:"area"`
	Category Category `json:"category,omitempty"`
}
