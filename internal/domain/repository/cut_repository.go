package repository

import "github.com/secretosdecampo/carniceria-api/internal/domain/entity"

// CutRepository puerto de persistencia para cortes.
type CutRepository interface {
	Create(cut *entity.Cut) error
	GetByID(id string) (*entity.Cut, error)
	GetByName(name string) (*entity.Cut, error)
	List() ([]*entity.Cut, error)
	// ExistAll verifica integridad referencial: todos los IDs deben existir.
	ExistAll(ids []string) (bool, error)
}
