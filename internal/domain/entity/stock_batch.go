package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockBatch un lote de compra de medias reses ya proyectado a cortes.
type StockBatch struct {
	ID          string
	CategoryID  string
	RangeID     string
	TemplateID  string
	SupplierID  string
	UnitCount   int
	TotalWeight decimal.Decimal
	TotalCost   decimal.Decimal
	Status      string // projected
	CreatedAt   time.Time
}

// StockBatchProjection kg estimados de un corte para un lote, con el porcentaje
// usado en el momento de la proyección (la plantilla sigue aprendiendo después).
type StockBatchProjection struct {
	ID             string
	BatchID        string
	CutID          string
	EstimatedKg    decimal.Decimal
	PercentageUsed decimal.Decimal
}
