package profile

import (
	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/completeness"
	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/model/entity"
)

func (s *ProfileService) GetProfile(userID string) (*entity.UserProfile, error) {
	return s.profileRepository.GetProfile(userID)
}

func (s *ProfileService) SaveProfile(profile *entity.UserProfile) error {
	profile.Normalize()
	return s.profileRepository.SaveProfile(profile)
}

func (s *ProfileService) ScoreProfile(userID string) (*completeness.ScoreResult, error) {
	profile, err := s.profileRepository.GetProfile(userID)
	if err != nil {
		return nil, err
	}
	result := completeness.Score(profile)
	return &result, nil
}

// SuggestNextField returns nil when every scored field is complete.
func (s *ProfileService) SuggestNextField(userID string) (*completeness.FieldSuggestion, error) {
	profile, err := s.profileRepository.GetProfile(userID)
	if err != nil {
		return nil, err
	}
	suggestion, ok := completeness.SuggestNextField(profile)
	if !ok {
		return nil, nil
	}
	return &suggestion, nil
}
