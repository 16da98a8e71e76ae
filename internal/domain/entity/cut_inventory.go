package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CutInventory kg disponibles de un corte en mostrador. Recibe los deltas de
// cada proyección de lote; los ajustes manuales corrigen la varianza visible.
type CutInventory struct {
	CutID         string
	CurrentQty    decimal.Decimal
	MinStockAlert decimal.Decimal
	UpdatedAt     time.Time
}
