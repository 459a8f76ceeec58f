package entity

import "time"

// Review is a user's rating of a place.
type Review struct {
	ReviewID  string    `json:"review_id"`
	UserID    string    `json:"user_id" validate:"required"`
	PlaceID   string    `json:"place_id" validate:"required"`
	Stars     int       `json:"stars" validate:"required,min=1,max=5"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}
