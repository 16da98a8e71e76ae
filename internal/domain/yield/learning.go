package yield

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/secretosdecampo/carniceria-api/internal/domain"
	"github.com/secretosdecampo/carniceria-api/internal/domain/entity"
)

var (
	hundred = decimal.NewFromInt(100)

	// Tolerancia del invariante "los items suman 100.00" tras la corrección.
	sumTolerance = decimal.NewFromFloat(0.01)
	// Umbral por debajo del cual el residuo de redondeo se deja pasar sin corregir.
	residualThreshold = decimal.NewFromFloat(0.001)
)

// LearningRate tasa de aprendizaje EMA para la n-ésima observación de un
// (categoría, rango): α = max(0.1, 0.5/√n). Arranca agresiva (≈0.5) y decae
// hacia el piso de 0.1, así las primeras correcciones mueven rápido la plantilla
// y un outlier tardío no desestabiliza una plantilla madura.
func LearningRate(observationCount int) decimal.Decimal {
	if observationCount < 1 {
		observationCount = 1
	}
	alpha := 0.5 / math.Sqrt(float64(observationCount))
	if alpha < 0.1 {
		alpha = 0.1
	}
	return decimal.NewFromFloat(alpha)
}

// RealPercentages calcula percentageReal = actualKg/totalWeight*100 (round2)
// para cada corte pesado en el desposte.
func RealPercentages(items []entity.RealYieldItem, totalWeight decimal.Decimal) map[string]decimal.Decimal {
	pcts := make(map[string]decimal.Decimal, len(items))
	for _, it := range items {
		pcts[it.CutID] = it.ActualKg.Div(totalWeight).Mul(hundred).Round(2)
	}
	return pcts
}

// BlendTemplate aplica la pasada EMA a los items de la plantilla:
//
//	newPct = α*realPct + (1-α)*oldPct   si el corte fue pesado en este desposte
//	newPct = oldPct                     si no (ej. un subproducto sin pesar)
//
// redondea a 2 decimales y descarga el residuo de redondeo completo en el item
// más grande, dejando la suma en 100.00 exacto. El item dominante absorbe la
// distorsión porque su error relativo es proporcionalmente el menor.
//
// Nunca agrega ni quita cortes de la plantilla. Si tras la corrección la suma
// sigue fuera de 100±0.01 retorna ErrPercentageSum: eso es un bug, no un dato.
func BlendTemplate(items []entity.YieldTemplateItem, realPct map[string]decimal.Decimal, alpha decimal.Decimal) ([]entity.YieldTemplateItem, error) {
	if len(items) == 0 {
		return nil, domain.ErrNoTemplateItems
	}

	oneMinusAlpha := decimal.NewFromInt(1).Sub(alpha)
	updated := make([]entity.YieldTemplateItem, len(items))
	sum := decimal.Zero
	largest := 0

	for i, item := range items {
		newPct := item.PercentageYield
		if real, ok := realPct[item.CutID]; ok {
			newPct = alpha.Mul(real).Add(oneMinusAlpha.Mul(item.PercentageYield))
		}
		newPct = newPct.Round(2)

		updated[i] = item
		updated[i].PercentageYield = newPct
		sum = sum.Add(newPct)
		if newPct.GreaterThan(updated[largest].PercentageYield) {
			largest = i
		}
	}

	diff := hundred.Sub(sum)
	if diff.Abs().GreaterThan(residualThreshold) {
		updated[largest].PercentageYield = updated[largest].PercentageYield.Add(diff).Round(2)
	}

	final := decimal.Zero
	for _, item := range updated {
		final = final.Add(item.PercentageYield)
	}
	if final.Sub(hundred).Abs().GreaterThan(sumTolerance) {
		return nil, domain.ErrPercentageSum
	}

	return updated, nil
}
