package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una plantilla de rendimiento.
const (
	TemplateStatusActive   = "active"
	TemplateStatusDraft    = "draft"
	TemplateStatusArchived = "archived"
)

// YieldTemplate modelo de predicción de desposte, único por (CategoryID, RangeID).
// Invariante: la suma de PercentageYield de sus items es 100.00 ± 0.01 después
// de cada mutación del motor de aprendizaje.
// Version es el contador optimista: ReplaceItems falla si la fila cambió.
type YieldTemplate struct {
	ID              string
	CategoryID      string
	RangeID         string
	Name            string
	ReferenceWeight decimal.Decimal
	Status          string // active | draft | archived
	Notes           string
	Version         int
	Items           []YieldTemplateItem
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// YieldTemplateItem porcentaje de rendimiento de un corte dentro de la plantilla.
type YieldTemplateItem struct {
	ID              string
	TemplateID      string
	CutID           string
	PercentageYield decimal.Decimal
}

// PercentageSum suma de los porcentajes de todos los items.
func (t YieldTemplate) PercentageSum() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range t.Items {
		sum = sum.Add(it.PercentageYield)
	}
	return sum
}
