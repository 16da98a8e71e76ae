package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RealYield registro histórico inmutable de un desposte real: la evidencia
// de auditoría de cada actualización de plantilla. Se crea una vez y no se muta
// (salvo marcar AppliedToTemplate al aplicarse el aprendizaje, en la misma tx).
type RealYield struct {
	ID                string
	YieldNumber       int
	CategoryID        string
	RangeID           string
	TotalWeight       decimal.Decimal
	Notes             string
	AppliedToTemplate bool
	Items             []RealYieldItem
	CreatedAt         time.Time
}

// RealYieldItem kg reales pesados de un corte y su porcentaje sobre el total.
type RealYieldItem struct {
	ID             string
	RealYieldID    string
	CutID          string
	ActualKg       decimal.Decimal
	PercentageReal decimal.Decimal
}
