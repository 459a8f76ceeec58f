package review

import (
	"go.uber.org/zap"

	"github.com/iv4shk3v1ch/trust-travel-sub001/config"
	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/repository"
	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/repository/util"
)

type ReviewService struct {
	reviewRepository repository.ReviewRepository
	placeRepository  repository.PlaceRepository
	log              *zap.Logger
}

func New(config *config.AppConfig, repo *util.RepoWrapper, log *zap.Logger) *ReviewService {
	return &ReviewService{
		reviewRepository: repo.ReviewRepo,
		placeRepository:  repo.PlaceRepo,
		log:              log,
	}
}
