package review

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/metrics"
	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/model/entity"
)

// SubmitReview persists a review after confirming the place exists.
// Each accepted review also feeds the trust graph, since edges are
// derived from mutually reviewed places.
func (s *ReviewService) SubmitReview(review *entity.Review) error {
	if _, err := s.placeRepository.GetByID(review.PlaceID); err != nil {
		return err
	}

	review.ReviewID = uuid.NewString()
	review.CreatedAt = time.Now()

	if err := s.reviewRepository.CreateReview(review); err != nil {
		return err
	}

	metrics.ReviewsSubmitted.Inc()
	s.log.Info("review submitted",
		zap.String("place_id", review.PlaceID),
		zap.Int("stars", review.Stars))
	return nil
}

func (s *ReviewService) ListByPlace(placeID string) ([]entity.Review, error) {
	return s.reviewRepository.ListByPlace(placeID)
}
