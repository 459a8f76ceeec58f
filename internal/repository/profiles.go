package repository

import "github.com/iv4shk3v1ch/trust-travel-sub001/internal/model/entity"

type ProfileRepository interface {
	GetProfile(userID string) (*entity.UserProfile, error)
	SaveProfile(profile *entity.UserProfile) error
}
