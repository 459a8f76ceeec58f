package repository

import "github.com/iv4shk3v1ch/trust-travel-sub001/internal/model/entity"

type ReviewRepository interface {
	CreateReview(review *entity.Review) error
	ListByPlace(placeID string) ([]entity.Review, error)
}
