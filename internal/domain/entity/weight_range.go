package entity

import "github.com/shopspring/decimal"

// WeightRange intervalo cerrado [MinWeight, MaxWeight] en kg con etiqueta visible.
// Los rangos se configuran disjuntos; la superposición se valida al crearlos.
type WeightRange struct {
	ID        string
	MinWeight decimal.Decimal
	MaxWeight decimal.Decimal
	Label     string
}

// Contains informa si el peso cae dentro del rango (inclusivo en ambos extremos).
func (r WeightRange) Contains(weight decimal.Decimal) bool {
	return weight.GreaterThanOrEqual(r.MinWeight) && weight.LessThanOrEqual(r.MaxWeight)
}

// Overlaps informa si dos rangos comparten algún peso.
func (r WeightRange) Overlaps(other WeightRange) bool {
	return r.MinWeight.LessThanOrEqual(other.MaxWeight) && other.MinWeight.LessThanOrEqual(r.MaxWeight)
}
