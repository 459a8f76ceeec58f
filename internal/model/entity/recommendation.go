package entity

// RecommendationRequest is the API request for ranked places. When
// Plan is omitted the caller's long-term profile drives the match, and
// Area names the destination to search.
type RecommendationRequest struct {
	Plan  *TravelPlan `json:"plan,omitempty"`
	Area  string      `json:"area,omitempty"`
	Limit int         `json:"limit,omitempty"`
}
