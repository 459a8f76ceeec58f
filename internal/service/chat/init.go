package chat

import (
	"go.uber.org/zap"

	"github.com/iv4shk3v1ch/trust-travel-sub001/config"
	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/repository"
	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/repository/util"
)

type ChatService struct {
	profileRepository repository.ProfileRepository
	log               *zap.Logger
}

func New(config *config.AppConfig, repo *util.RepoWrapper, log *zap.Logger) *ChatService {
	return &ChatService{
		profileRepository: repo.ProfileRepo,
		log:               log,
	}
}
