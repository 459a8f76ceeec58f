package chat

import (
	"errors"

	script "github.com/iv4shk3v1ch/trust-travel-sub001/internal/chat"
	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/metrics"
	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/model/entity"
	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/repository"
)

// HandleMessage runs one scripted chat turn against the user's stored
// profile and persists whatever the turn filled in. A user with no
// profile yet starts from an empty one.
func (s *ChatService) HandleMessage(userID string, session script.Session, message string) (*script.Response, error) {
	profile, err := s.profileRepository.GetProfile(userID)
	if errors.Is(err, repository.ErrNotFound) {
		profile = &entity.UserProfile{UserID: userID}
	} else if err != nil {
		return nil, err
	}

	response := script.Respond(session, profile, message)

	if err := s.profileRepository.SaveProfile(profile); err != nil {
		return nil, err
	}

	metrics.ChatTurns.Inc()
	return &response, nil
}
