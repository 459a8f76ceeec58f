package repository

import "github.com/iv4shk3v1ch/trust-travel-sub001/internal/model/entity"

type PlaceRepository interface {
	GetByID(id string) (*entity.Place, error)
	FindByFilter(filter entity.PlaceFilter) ([]entity.Place, error)
}
