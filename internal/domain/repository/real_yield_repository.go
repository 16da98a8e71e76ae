package repository

import "github.com/secretosdecampo/carniceria-api/internal/domain/entity"

// RealYieldRepository puerto de persistencia para despostes reales.
// Los registros son inmutables: solo se crea, se marca aplicado y se lista.
type RealYieldRepository interface {
	Create(ry *entity.RealYield) error
	// CountByCategoryAndRange cuenta las observaciones existentes para un
	// (categoría, rango); alimenta la tasa de aprendizaje.
	CountByCategoryAndRange(categoryID, rangeID string) (int, error)
	MarkApplied(id string) error
	ListRecent(limit int) ([]*entity.RealYield, error)
}
