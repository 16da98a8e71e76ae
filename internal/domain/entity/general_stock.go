package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una tropa de stock general.
const (
	GeneralStockActive   = "active"
	GeneralStockDepleted = "depleted"
)

// GeneralStock una tropa: carne a granel que entra al inventario antes del
// desposte por corte. Propiedad exclusiva del libro de stock general; ningún
// otro componente la muta. Transición active -> depleted cuando SoldKg alcanza
// SellableKg; la reversión de deducciones puede devolverla a active.
type GeneralStock struct {
	ID               string
	BatchDescription string
	AnimalCategory   string
	CategoryID       string
	SupplierID       string
	EntryDate        time.Time
	UnitCount        int
	TotalWeightKg    decimal.Decimal
	BonePercent      decimal.Decimal
	FatPercent       decimal.Decimal
	MermaPercent     decimal.Decimal
	SellableKg       decimal.Decimal
	SoldKg           decimal.Decimal
	Status           string // active | depleted
	Notes            string
	CreatedAt        time.Time
}

// RemainingKg capacidad restante de la tropa.
func (g GeneralStock) RemainingKg() decimal.Decimal {
	return g.SellableKg.Sub(g.SoldKg)
}

// GeneralStockDeduction une una tropa con un cierre diario: exactamente cuántos
// kg se dedujeron de esa tropa en ese cierre. Existe para que un re-cierre pueda
// revertirse y recalcularse sin ambigüedad.
type GeneralStockDeduction struct {
	ID             string
	GeneralStockID string
	DailyCloseID   string
	DeductedKg     decimal.Decimal
	DeductionDate  time.Time
	CreatedAt      time.Time
}
