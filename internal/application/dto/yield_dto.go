package dto

import "github.com/shopspring/decimal"

// ProjectBatchRequest compra de medias reses a proyectar.
type ProjectBatchRequest struct {
	CategoryID  string          `json:"categoryId"`
	UnitCount   int             `json:"unitCount"`
	TotalWeight decimal.Decimal `json:"totalWeight"`
	TotalCost   decimal.Decimal `json:"totalCost"`
	SupplierID  string          `json:"supplierId,omitempty"`
}

// ProjectedCutDTO kg estimados de un corte.
type ProjectedCutDTO struct {
	CutID           string          `json:"cutId"`
	CutName         string          `json:"cutName"`
	PercentageYield decimal.Decimal `json:"percentageYield"`
	EstimatedKg     decimal.Decimal `json:"estimatedKg"`
	IsSellable      bool            `json:"isSellable"`
}

// ProjectionResponse resultado de proyectar un lote. Variance queda visible:
// si supera la tolerancia del negocio se corrige con un ajuste manual.
type ProjectionResponse struct {
	BatchID        string            `json:"batchId"`
	RangeLabel     string            `json:"rangeLabel"`
	TotalProjected decimal.Decimal   `json:"totalProjected"`
	Variance       decimal.Decimal   `json:"variance"`
	Cuts           []ProjectedCutDTO `json:"cuts"`
}

// StockBatchSummaryDTO lote proyectado para el listado.
type StockBatchSummaryDTO struct {
	ID          string          `json:"id"`
	CategoryID  string          `json:"categoryId"`
	UnitCount   int             `json:"unitCount"`
	TotalWeight decimal.Decimal `json:"totalWeight"`
	TotalCost   decimal.Decimal `json:"totalCost"`
	Status      string          `json:"status"`
	CreatedAt   string          `json:"createdAt"`
}

// RealYieldItemInput un corte pesado en el desposte real.
type RealYieldItemInput struct {
	CutID    string          `json:"cutId"`
	ActualKg decimal.Decimal `json:"actualKg"`
}

// RecordRealYieldRequest registro de un desposte real (una media res).
type RecordRealYieldRequest struct {
	CategoryID  string               `json:"categoryId"`
	TotalWeight decimal.Decimal      `json:"totalWeight"`
	Items       []RealYieldItemInput `json:"items"`
	Notes       string               `json:"notes,omitempty"`
}

// RealYieldSummaryDTO resumen del registro persistido.
type RealYieldSummaryDTO struct {
	ID                string          `json:"id"`
	YieldNumber       int             `json:"yieldNumber"`
	TotalWeight       decimal.Decimal `json:"totalWeight"`
	TotalKgRegistered decimal.Decimal `json:"totalKgRegistered"`
	Variance          decimal.Decimal `json:"variance"`
	VariancePercent   decimal.Decimal `json:"variancePercent"`
}

// RealYieldItemDTO item del desposte con nombre de corte resuelto.
type RealYieldItemDTO struct {
	CutID          string          `json:"cutId"`
	CutName        string          `json:"cutName"`
	ActualKg       decimal.Decimal `json:"actualKg"`
	PercentageReal decimal.Decimal `json:"percentageReal"`
}

// RealYieldHistoryDTO desposte histórico con items y nombres resueltos.
type RealYieldHistoryDTO struct {
	ID                string             `json:"id"`
	YieldNumber       int                `json:"yieldNumber"`
	CategoryID        string             `json:"categoryId"`
	TotalWeight       decimal.Decimal    `json:"totalWeight"`
	AppliedToTemplate bool               `json:"appliedToTemplate"`
	Notes             string             `json:"notes,omitempty"`
	CreatedAt         string             `json:"createdAt"`
	Items             []RealYieldItemDTO `json:"items"`
}

// LearningResultDTO resultado de la pasada de aprendizaje.
// Applied=false no es un error: la evidencia se guarda aunque falte plantilla.
type LearningResultDTO struct {
	Applied      bool            `json:"applied"`
	LearningRate decimal.Decimal `json:"learningRate"`
	Message      string          `json:"message"`
}

// RecordRealYieldResponse respuesta del registro de desposte.
type RecordRealYieldResponse struct {
	RealYield RealYieldSummaryDTO `json:"realYield"`
	Items     []RealYieldItemDTO  `json:"items"`
	Learning  LearningResultDTO   `json:"learning"`
}
