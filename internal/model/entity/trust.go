package entity

// TrustEdge connects two users with a derived strength in [0, 1].
// The pair is unordered; accessors store it with UserA < UserB.
type TrustEdge struct {
	UserA    string  `json:"user_a"`
	UserB    string  `json:"user_b"`
	Strength float64 `json:"strength"`
}

// Other returns the endpoint that is not userID, and whether userID is
// on the edge at all.
func (e TrustEdge) Other(userID string) (string, bool) {
	switch userID {
	case e.UserA:
		return e.UserB, true
	case e.UserB:
		return e.UserA, true
	}
	return "", false
}

// PlaceEndorsement is a trust connection's prior review of a place,
// with the star rating normalized to [0, 1].
type PlaceEndorsement struct {
	UserID  string  `json:"user_id"`
	PlaceID string  `json:"place_id"`
	Rating  float64 `json:"rating"`
}
