package place

import (
	"go.uber.org/zap"

	"github.com/iv4shk3v1ch/trust-travel-sub001/config"
	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/repository"
	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/repository/util"
)

type PlaceService struct {
	placeRepository   repository.PlaceRepository
	profileRepository repository.ProfileRepository
	trustRepository   repository.TrustRepository
	planCache         repository.PlanCacheRepository
	maxResults        int
	log               *zap.Logger
}

func New(config *config.AppConfig, repo *util.RepoWrapper, log *zap.Logger) *PlaceService {
	return &PlaceService{
		placeRepository:   repo.PlaceRepo,
		profileRepository: repo.ProfileRepo,
		trustRepository:   repo.TrustRepo,
		planCache:         repo.PlanCache,
		maxResults:        config.MaxResults,
		log:               log,
	}
}
