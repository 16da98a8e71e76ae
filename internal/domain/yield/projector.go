package yield

import (
	"github.com/shopspring/decimal"

	"github.com/secretosdecampo/carniceria-api/internal/domain"
	"github.com/secretosdecampo/carniceria-api/internal/domain/entity"
)

// CutProjection kg estimados de un corte según la plantilla.
type CutProjection struct {
	CutID           string
	PercentageYield decimal.Decimal
	EstimatedKg     decimal.Decimal
}

// Projection resultado de proyectar una plantilla sobre un peso total.
// TotalProjected es la suma de los kg redondeados por corte, no el 100% teórico:
// el error de redondeo es real y queda visible en Variance, nunca se redistribuye.
// Enmascararlo ocultaría mermas, robos o errores de pesaje que el negocio necesita ver.
type Projection struct {
	PerCut         []CutProjection
	TotalProjected decimal.Decimal
	Variance       decimal.Decimal
}

// Project calcula los kg esperados por corte: round2(totalWeight * pct / 100).
// Puro y determinista: misma plantilla y peso, mismo resultado.
// Rechaza pesos no positivos y plantillas activas sin items (error de configuración).
func Project(template *entity.YieldTemplate, totalWeight decimal.Decimal) (*Projection, error) {
	if !totalWeight.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if len(template.Items) == 0 {
		return nil, domain.ErrNoTemplateItems
	}

	hundred := decimal.NewFromInt(100)
	perCut := make([]CutProjection, 0, len(template.Items))
	totalProjected := decimal.Zero

	for _, item := range template.Items {
		estimated := totalWeight.Mul(item.PercentageYield).Div(hundred).Round(2)
		perCut = append(perCut, CutProjection{
			CutID:           item.CutID,
			PercentageYield: item.PercentageYield,
			EstimatedKg:     estimated,
		})
		totalProjected = totalProjected.Add(estimated)
	}

	return &Projection{
		PerCut:         perCut,
		TotalProjected: totalProjected,
		Variance:       totalWeight.Sub(totalProjected),
	}, nil
}
