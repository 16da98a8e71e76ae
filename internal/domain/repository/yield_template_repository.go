package repository

import "github.com/secretosdecampo/carniceria-api/internal/domain/entity"

// YieldTemplateRepository puerto de persistencia para plantillas de rendimiento.
// Los métodos Get* cargan los items ordenados por display_order del corte.
type YieldTemplateRepository interface {
	Create(template *entity.YieldTemplate) error
	GetByID(id string) (*entity.YieldTemplate, error)
	// GetActiveByCategoryAndRange devuelve solo plantillas con status=active:
	// draft y archived quedan fuera del proyector.
	GetActiveByCategoryAndRange(categoryID, rangeID string) (*entity.YieldTemplate, error)
	List() ([]*entity.YieldTemplate, error)
	// ReplaceItems reemplaza el set completo de items de forma atómica con
	// chequeo optimista: falla con domain.ErrConflict si version no coincide
	// con la fila actual (dos aprendizajes simultáneos no pueden pisarse).
	ReplaceItems(templateID string, version int, items []entity.YieldTemplateItem) error
}
