package repository

import "github.com/secretosdecampo/carniceria-api/internal/domain/entity"

// AnimalCategoryRepository puerto de persistencia para categorías de animal.
type AnimalCategoryRepository interface {
	Create(category *entity.AnimalCategory) error
	GetByID(id string) (*entity.AnimalCategory, error)
	GetByName(name string) (*entity.AnimalCategory, error)
	List(activeOnly bool) ([]*entity.AnimalCategory, error)
	Deactivate(id string) error
}
