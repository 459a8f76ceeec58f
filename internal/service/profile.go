package service

import (
	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/completeness"
	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/model/entity"
)

type ProfileService interface {
	GetProfile(userID string) (*entity.UserProfile, error)
	SaveProfile(profile *entity.UserProfile) error
	ScoreProfile(userID string) (*completeness.ScoreResult, error)
	SuggestNextField(userID string) (*completeness.FieldSuggestion, error)
}
