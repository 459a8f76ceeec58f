package postgres

import (
	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/model/entity"
)

func (r *RepoDatabase) CreateReview(review *entity.Review) error {
	row := reviewRowFromEntity(review)
	return r.DB.Create(&row).Error
}

func (r *RepoDatabase) ListByPlace(placeID string) ([]entity.Review, error) {
	var rows []reviewRow
	err := r.DB.Where("place_id = ?", placeID).Order("created_at DESC").Find(&rows).Error
	if err != nil {
		return nil, err
	}

	reviews := make([]entity.Review, len(rows))
	for i, row := range rows {
		reviews[i] = row.toEntity()
	}
	return reviews, nil
}
