package yield

import (
	"github.com/shopspring/decimal"

	"github.com/secretosdecampo/carniceria-api/internal/domain"
	"github.com/secretosdecampo/carniceria-api/internal/domain/entity"
)

// ResolveRange devuelve el rango de peso que contiene avgWeight (inclusivo en
// ambos extremos). Los rangos se asumen disjuntos (validados al configurarlos);
// gana el primero que coincide. Sin coincidencia retorna ErrRangeNotFound:
// adivinar un rango corrompería las proyecciones aguas abajo.
func ResolveRange(ranges []entity.WeightRange, avgWeight decimal.Decimal) (*entity.WeightRange, error) {
	if !avgWeight.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	for i := range ranges {
		if ranges[i].Contains(avgWeight) {
			return &ranges[i], nil
		}
	}
	return nil, domain.ErrRangeNotFound
}

// ValidateNoOverlap verifica que candidate no se superponga con ninguno de los
// rangos existentes. Se valida al configurar, no al consultar.
func ValidateNoOverlap(existing []entity.WeightRange, candidate entity.WeightRange) error {
	if candidate.MinWeight.GreaterThan(candidate.MaxWeight) {
		return domain.ErrInvalidInput
	}
	for _, r := range existing {
		if r.ID == candidate.ID {
			continue
		}
		if r.Overlaps(candidate) {
			return domain.ErrRangeOverlap
		}
	}
	return nil
}
