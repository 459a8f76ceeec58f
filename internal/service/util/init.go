package util

import (
	"go.uber.org/zap"

	"github.com/iv4shk3v1ch/trust-travel-sub001/config"
	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/repository/util"
	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/service"
	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/service/chat"
	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/service/place"
	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/service/profile"
	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/service/review"
)

type ServiceWrapper struct {
	PlaceService   service.PlaceService
	ProfileService service.ProfileService
	ReviewService  service.ReviewService
	ChatService    service.ChatService
}

func New(config *config.AppConfig, repo *util.RepoWrapper, log *zap.Logger) *ServiceWrapper {
	return &ServiceWrapper{
		PlaceService:   place.New(config, repo, log),
		ProfileService: profile.New(config, repo, log),
		ReviewService:  review.New(config, repo, log),
		ChatService:    chat.New(config, repo, log),
	}
}
