package dto

import "github.com/shopspring/decimal"

// ScaleReadingDTO lectura de balanza del día.
type ScaleReadingDTO struct {
	Scale   string          `json:"scale"`
	KgStart decimal.Decimal `json:"kgStart"`
	KgEnd   decimal.Decimal `json:"kgEnd"`
}

// DailyCloseRequest cierre de caja. Los totales de ventas/gastos llegan ya
// calculados por la capa de caja; este motor solo concilia las balanzas contra
// el stock general.
type DailyCloseRequest struct {
	Date          string            `json:"date,omitempty"` // YYYY-MM-DD, hoy por defecto
	PosnetTotal   decimal.Decimal   `json:"posnetTotal"`
	ExpectedCash  decimal.Decimal   `json:"expectedCash"`
	ActualCash    decimal.Decimal   `json:"actualCash"`
	ScaleReadings []ScaleReadingDTO `json:"scaleReadings"`
	Notes         string            `json:"notes,omitempty"`
	ClosedBy      string            `json:"closedBy,omitempty"`
}

// DailyCloseSummaryDTO cierre histórico para el listado de caja.
type DailyCloseSummaryDTO struct {
	ID                      string          `json:"id"`
	CloseDate               string          `json:"closeDate"`
	PosnetTotal             decimal.Decimal `json:"posnetTotal"`
	ExpectedCash            decimal.Decimal `json:"expectedCash"`
	ActualCash              decimal.Decimal `json:"actualCash"`
	Difference              decimal.Decimal `json:"difference"`
	GeneralStockDeductionKg decimal.Decimal `json:"generalStockDeductionKg"`
	Notes                   string          `json:"notes,omitempty"`
	ClosedBy                string          `json:"closedBy,omitempty"`
}

// FIFODeductionDTO kg deducidos de una tropa en este cierre.
type FIFODeductionDTO struct {
	GeneralStockID string          `json:"generalStockId"`
	Description    string          `json:"description"`
	Kg             decimal.Decimal `json:"kg"`
}

// DailyCloseResponse resultado del cierre. UnaccountedKg es señal visible de
// que el consumo de balanzas superó el stock conocido; nunca se recorta.
type DailyCloseResponse struct {
	DailyCloseID   string             `json:"dailyCloseId"`
	CloseDate      string             `json:"closeDate"`
	Difference     decimal.Decimal    `json:"difference"`
	TotalScaleKg   decimal.Decimal    `json:"totalScaleKg"`
	FIFODeductions []FIFODeductionDTO `json:"fifoDeductions"`
	UnaccountedKg  decimal.Decimal    `json:"unaccountedKg"`
}
