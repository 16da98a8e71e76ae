package repository

import "github.com/secretosdecampo/carniceria-api/internal/domain/entity"

// WeightRangeRepository puerto de persistencia para rangos de peso.
// List devuelve los rangos ordenados por MinWeight ascendente (el resolver
// recorre en ese orden y gana la primera coincidencia).
type WeightRangeRepository interface {
	Create(r *entity.WeightRange) error
	GetByID(id string) (*entity.WeightRange, error)
	List() ([]entity.WeightRange, error)
}
