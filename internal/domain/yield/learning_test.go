package yield_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secretosdecampo/carniceria-api/internal/domain"
	"github.com/secretosdecampo/carniceria-api/internal/domain/entity"
	"github.com/secretosdecampo/carniceria-api/internal/domain/yield"
)

func TestLearningRate_PrimeraObservacion(t *testing.T) {
	assert.True(t, yield.LearningRate(1).Equal(dec("0.5")))
}

func TestLearningRate_DecaeConRaizCuadrada(t *testing.T) {
	// 0.5/√4 = 0.25
	assert.True(t, yield.LearningRate(4).Equal(dec("0.25")))
}

func TestLearningRate_PisoEnCeroComaUno(t *testing.T) {
	// 0.5/√25 = 0.1 exacto; de ahí en adelante rige el piso.
	assert.True(t, yield.LearningRate(25).Equal(dec("0.1")))
	assert.True(t, yield.LearningRate(100).Equal(dec("0.1")))
	assert.True(t, yield.LearningRate(10000).Equal(dec("0.1")))
}

func TestLearningRate_MonotonaNoCreciente(t *testing.T) {
	prev := yield.LearningRate(1)
	for n := 2; n <= 50; n++ {
		alpha := yield.LearningRate(n)
		assert.True(t, alpha.LessThanOrEqual(prev), "α(%d)=%s > α(%d)=%s", n, alpha, n-1, prev)
		assert.True(t, alpha.GreaterThanOrEqual(dec("0.1")), "α(%d)=%s por debajo del piso", n, alpha)
		prev = alpha
	}
}

func TestLearningRate_ConteoInvalidoSeNormaliza(t *testing.T) {
	assert.True(t, yield.LearningRate(0).Equal(dec("0.5")))
	assert.True(t, yield.LearningRate(-3).Equal(dec("0.5")))
}

func TestRealPercentages_Redondeo(t *testing.T) {
	items := []entity.RealYieldItem{
		{CutID: "hueso", ActualKg: dec("14.5")},
		{CutID: "lomo", ActualKg: dec("2.6")},
	}
	pcts := yield.RealPercentages(items, dec("92.5"))

	// 14.5/92.5*100 = 15.6756... -> 15.68
	assert.True(t, pcts["hueso"].Equal(dec("15.68")), "hueso: %s", pcts["hueso"])
	// 2.6/92.5*100 = 2.8108... -> 2.81
	assert.True(t, pcts["lomo"].Equal(dec("2.81")), "lomo: %s", pcts["lomo"])
}

func TestBlendTemplate_MezclaEMAYCorrige(t *testing.T) {
	// Plantilla: Hueso 16%, Carne 84%. El desposte pesó solo Hueso al 15%.
	// Con α=0.5: nuevo Hueso = 0.5*15 + 0.5*16 = 15.5. Carne no pesada queda
	// igual (84), la suma da 99.5 y el residuo 0.5 se descarga en Carne.
	items := []entity.YieldTemplateItem{
		{CutID: "hueso", PercentageYield: dec("16.00")},
		{CutID: "carne", PercentageYield: dec("84.00")},
	}
	realPct := map[string]decimal.Decimal{"hueso": dec("15")}

	updated, err := yield.BlendTemplate(items, realPct, dec("0.5"))
	require.NoError(t, err)
	require.Len(t, updated, 2)

	assert.True(t, updated[0].PercentageYield.Equal(dec("15.5")), "hueso: %s", updated[0].PercentageYield)
	assert.True(t, updated[1].PercentageYield.Equal(dec("84.5")), "carne: %s", updated[1].PercentageYield)

	sum := updated[0].PercentageYield.Add(updated[1].PercentageYield)
	assert.True(t, sum.Equal(dec("100")), "suma final: %s", sum)
}

func TestBlendTemplate_SinResiduoNoCorrige(t *testing.T) {
	// El corte pesado coincide con la plantilla: nada cambia.
	items := []entity.YieldTemplateItem{
		{CutID: "a", PercentageYield: dec("50.00")},
		{CutID: "b", PercentageYield: dec("50.00")},
	}
	realPct := map[string]decimal.Decimal{"a": dec("50")}

	updated, err := yield.BlendTemplate(items, realPct, dec("0.5"))
	require.NoError(t, err)

	assert.True(t, updated[0].PercentageYield.Equal(dec("50")))
	assert.True(t, updated[1].PercentageYield.Equal(dec("50")))
}

func TestBlendTemplate_ResiduoAlItemMasGrande(t *testing.T) {
	// B sube a 40.01 tras la mezcla; el exceso de 0.01 lo absorbe A, el item
	// dominante, porque su error relativo es el menor.
	items := []entity.YieldTemplateItem{
		{CutID: "a", PercentageYield: dec("60.00")},
		{CutID: "b", PercentageYield: dec("40.00")},
	}
	realPct := map[string]decimal.Decimal{"b": dec("40.01")}

	updated, err := yield.BlendTemplate(items, realPct, dec("0.5"))
	require.NoError(t, err)

	assert.True(t, updated[0].PercentageYield.Equal(dec("59.99")), "a: %s", updated[0].PercentageYield)
	assert.True(t, updated[1].PercentageYield.Equal(dec("40.01")), "b: %s", updated[1].PercentageYield)
}

func TestBlendTemplate_NoAgregaNiQuitaCortes(t *testing.T) {
	items := []entity.YieldTemplateItem{
		{CutID: "a", PercentageYield: dec("70.00")},
		{CutID: "b", PercentageYield: dec("30.00")},
	}
	// El desposte pesó un corte que no está en la plantilla: se ignora.
	realPct := map[string]decimal.Decimal{"z": dec("10")}

	updated, err := yield.BlendTemplate(items, realPct, dec("0.5"))
	require.NoError(t, err)
	require.Len(t, updated, 2)
	assert.Equal(t, "a", updated[0].CutID)
	assert.Equal(t, "b", updated[1].CutID)
	assert.True(t, updated[0].PercentageYield.Equal(dec("70")))
	assert.True(t, updated[1].PercentageYield.Equal(dec("30")))
}

func TestBlendTemplate_SinItems(t *testing.T) {
	_, err := yield.BlendTemplate(nil, map[string]decimal.Decimal{}, dec("0.5"))
	assert.ErrorIs(t, err, domain.ErrNoTemplateItems)
}
