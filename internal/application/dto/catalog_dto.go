package dto

import "github.com/shopspring/decimal"

// CreateCategoryRequest alta de categoría animal.
type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CategoryResponse categoría animal.
type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
}

// CreateWeightRangeRequest alta de rango de peso [min, max] kg.
type CreateWeightRangeRequest struct {
	MinWeight decimal.Decimal `json:"minWeight"`
	MaxWeight decimal.Decimal `json:"maxWeight"`
	Label     string          `json:"label"`
}

// WeightRangeResponse rango de peso configurado.
type WeightRangeResponse struct {
	ID        string          `json:"id"`
	MinWeight decimal.Decimal `json:"minWeight"`
	MaxWeight decimal.Decimal `json:"maxWeight"`
	Label     string          `json:"label"`
}

// CreateCutRequest alta de corte. Role: sellable | bone | fat | trim.
type CreateCutRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Role         string `json:"role"`
	DisplayOrder int    `json:"displayOrder"`
}

// CutResponse corte configurado.
type CutResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Role         string `json:"role"`
	DisplayOrder int    `json:"displayOrder"`
}

// TemplateItemDTO item de plantilla (corte + porcentaje).
type TemplateItemDTO struct {
	CutID           string          `json:"cutId"`
	CutName         string          `json:"cutName,omitempty"`
	PercentageYield decimal.Decimal `json:"percentageYield"`
}

// TemplateResponse plantilla de rendimiento con sus items.
type TemplateResponse struct {
	ID            string            `json:"id"`
	CategoryID    string            `json:"categoryId"`
	RangeID       string            `json:"rangeId"`
	Name          string            `json:"name"`
	Status        string            `json:"status"`
	Version       int               `json:"version"`
	PercentageSum decimal.Decimal   `json:"percentageSum"`
	Items         []TemplateItemDTO `json:"items"`
}

// ReplaceTemplateItemsRequest reemplazo atómico del set de items de una plantilla.
// Version es el contador leído al cargar la plantilla (chequeo optimista).
type ReplaceTemplateItemsRequest struct {
	Version int               `json:"version"`
	Items   []TemplateItemDTO `json:"items"`
}
