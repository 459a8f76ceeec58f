package entity

import "time"

// TravelType describes who the trip is for.
type TravelType string

const (
	TravelSolo     TravelType = "solo"
	TravelDate     TravelType = "date"
	TravelFamily   TravelType = "family"
	TravelFriends  TravelType = "friends"
	TravelBusiness TravelType = "business"
)

// DateIntentType distinguishes an immediate outing from a scheduled trip.
type DateIntentType string

const (
	DateIntentNow       DateIntentType = "now"
	DateIntentScheduled DateIntentType = "scheduled"
)

// DateIntent is when the user wants to travel.
type DateIntent struct {
	Type  DateIntentType `json:"type"`
	Start time.Time      `json:"start,omitempty"`
	End   time.Time      `json:"end,omitempty"`
}

// TravelPlan is a session-scoped trip request from the planning form.
// It is consumed once by the recommendation engine and not persisted here.
type TravelPlan struct {
	Area           string     `json:"area" validate:"required"`
	Dates          DateIntent `json:"dates"`
	TravelType     TravelType `json:"travel_type" validate:"required"`
	ExperienceTags []string   `json:"experience_tags" validate:"min=1,max=3"`
	SpecialNeeds   []string   `json:"special_needs,omitempty"`
	Category       Category   `json:"category,omitempty"`
	BudgetCeiling  BudgetTier `json:"budget_ceiling,omitempty"`
}
