package dto

import "github.com/shopspring/decimal"

// CreateGeneralStockRequest alta de una tropa. Los porcentajes de hueso/grasa
// son opcionales: si faltan y hay CategoryID se estiman desde la plantilla.
type CreateGeneralStockRequest struct {
	BatchDescription string           `json:"batchDescription"`
	AnimalCategory   string           `json:"animalCategory"`
	CategoryID       string           `json:"categoryId,omitempty"`
	UnitCount        int              `json:"unitCount"`
	TotalWeightKg    decimal.Decimal  `json:"totalWeightKg"`
	BonePercent      *decimal.Decimal `json:"bonePercent,omitempty"`
	FatPercent       *decimal.Decimal `json:"fatPercent,omitempty"`
	MermaPercent     *decimal.Decimal `json:"mermaPercent,omitempty"`
	SupplierID       string           `json:"supplierId,omitempty"`
	EntryDate        string           `json:"entryDate,omitempty"` // YYYY-MM-DD, hoy por defecto
	Notes            string           `json:"notes,omitempty"`
}

// GeneralStockResponse una tropa con su capacidad restante.
type GeneralStockResponse struct {
	ID               string          `json:"id"`
	BatchDescription string          `json:"batchDescription"`
	AnimalCategory   string          `json:"animalCategory"`
	EntryDate        string          `json:"entryDate"`
	UnitCount        int             `json:"unitCount"`
	TotalWeightKg    decimal.Decimal `json:"totalWeightKg"`
	BonePercent      decimal.Decimal `json:"bonePercent"`
	FatPercent       decimal.Decimal `json:"fatPercent"`
	MermaPercent     decimal.Decimal `json:"mermaPercent"`
	SellableKg       decimal.Decimal `json:"sellableKg"`
	SoldKg           decimal.Decimal `json:"soldKg"`
	RemainingKg      decimal.Decimal `json:"remainingKg"`
	Status           string          `json:"status"`
	Notes            string          `json:"notes,omitempty"`
}

// YieldEstimateResponse estimación de hueso/grasa desde la plantilla activa.
type YieldEstimateResponse struct {
	Found        bool            `json:"found"`
	BonePercent  decimal.Decimal `json:"bonePercent"`
	FatPercent   decimal.Decimal `json:"fatPercent"`
	MermaPercent decimal.Decimal `json:"mermaPercent"`
	SellableKg   decimal.Decimal `json:"sellableKg"`
	Message      string          `json:"message,omitempty"`
}
