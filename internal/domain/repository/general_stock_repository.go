package repository

import (
	"github.com/shopspring/decimal"

	"github.com/secretosdecampo/carniceria-api/internal/domain/entity"
)

// GeneralStockRepository puerto de persistencia para tropas de stock general.
type GeneralStockRepository interface {
	Create(stock *entity.GeneralStock) error
	GetByID(id string) (*entity.GeneralStock, error)
	List() ([]*entity.GeneralStock, error)
	// ListActiveFIFO devuelve las tropas activas ordenadas por entry_date
	// ascendente (la más vieja primero) bloqueando las filas para update.
	ListActiveFIFO() ([]*entity.GeneralStock, error)
	// UpdateSold fija soldKg y status de una tropa (deducción o reversión).
	UpdateSold(id string, soldKg decimal.Decimal, status string) error
}

// GeneralStockDeductionRepository puerto para las filas de deducción que unen
// una tropa con un cierre diario.
type GeneralStockDeductionRepository interface {
	Create(d *entity.GeneralStockDeduction) error
	ListByClose(dailyCloseID string) ([]*entity.GeneralStockDeduction, error)
	DeleteByClose(dailyCloseID string) error
}
