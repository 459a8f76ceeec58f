package service

import (
	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/model/entity"
	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/recommend"
)

type PlaceService interface {
	GetPlaceByID(id string) (*entity.Place, error)
	FindPlaces(filter entity.PlaceFilter) ([]entity.Place, error)
	// Recommend ranks places for the request. userID may be empty for
	// anonymous callers; when set it enables the social-bias signal and
	// the profile fallback.
	Recommend(userID string, request *entity.RecommendationRequest) ([]recommend.RecommendedPlace, error)
}
