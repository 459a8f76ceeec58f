package service

import "github.com/iv4shk3v1ch/trust-travel-sub001/internal/model/entity"

type ReviewService interface {
	SubmitReview(review *entity.Review) error
	ListByPlace(placeID string) ([]entity.Review, error)
}
