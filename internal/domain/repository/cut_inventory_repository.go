package repository

import (
	"github.com/shopspring/decimal"

	"github.com/secretosdecampo/carniceria-api/internal/domain/entity"
)

// CutInventoryRepository puerto para el inventario por corte (kg en mostrador).
// AddQty se usa dentro de transacciones para sumar los deltas de proyección.
type CutInventoryRepository interface {
	Get(cutID string) (*entity.CutInventory, error)
	AddQty(cutID string, delta decimal.Decimal) error
	List() ([]*entity.CutInventory, error)
}
