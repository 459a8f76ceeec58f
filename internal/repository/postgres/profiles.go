package postgres

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/model/entity"
	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/repository"
)

func (r *RepoDatabase) GetProfile(userID string) (*entity.UserProfile, error) {
	var row profileRow
	err := r.DB.First(&row, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	profile := row.toEntity()
	return &profile, nil
}

func (r *RepoDatabase) SaveProfile(profile *entity.UserProfile) error {
	row := profileRowFromEntity(profile)
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(&row).Error
}
