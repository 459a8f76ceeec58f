package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/model/entity"
	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/repository"
)

func (r *RepoDatabase) GetByID(id string) (*entity.Place, error) {
	var row placeRow
	err := r.DB.First(&row, "place_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	place := row.toEntity()
	return &place, nil
}

func (r *RepoDatabase) FindByFilter(filter entity.PlaceFilter) ([]entity.Place, error) {
	query := r.DB.Model(&placeRow{})
	if filter.Area != "" {
		query = query.Where("area = ?", filter.Area)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", string(filter.Category))
	}

	var rows []placeRow
	if err := query.Order("place_id").Find(&rows).Error; err != nil {
		return nil, err
	}

	places := make([]entity.Place, len(rows))
	for i, row := range rows {
		places[i] = row.toEntity()
	}
	return places, nil
}
