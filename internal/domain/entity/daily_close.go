package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// DailyCashClose cierre de caja del día. Único por CloseDate: re-cerrar el mismo
// día actualiza la fila y recalcula las deducciones FIFO desde cero.
// Los totales de ventas/gastos llegan ya calculados por la capa de caja (externa).
type DailyCashClose struct {
	ID                      string
	CloseDate               time.Time // normalizada a medianoche
	PosnetTotal             decimal.Decimal
	ExpectedCash            decimal.Decimal
	ActualCash              decimal.Decimal
	Difference              decimal.Decimal
	ScaleReadings           json.RawMessage
	GeneralStockDeductionKg decimal.Decimal
	Notes                   string
	ClosedBy                string
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// ScaleReading lectura de una balanza: kg acumulados al abrir y cerrar el día.
type ScaleReading struct {
	Scale   string          `json:"scale"`
	KgStart decimal.Decimal `json:"kgStart"`
	KgEnd   decimal.Decimal `json:"kgEnd"`
}

// TotalScaleKg suma de consumo de todas las balanzas (solo lecturas con KgEnd > KgStart).
func TotalScaleKg(readings []ScaleReading) decimal.Decimal {
	total := decimal.Zero
	for _, r := range readings {
		if r.KgEnd.GreaterThan(r.KgStart) {
			total = total.Add(r.KgEnd.Sub(r.KgStart))
		}
	}
	return total.Round(2)
}
