package yield_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secretosdecampo/carniceria-api/internal/application/dto"
	appyield "github.com/secretosdecampo/carniceria-api/internal/application/yield"
	"github.com/secretosdecampo/carniceria-api/internal/domain"
	"github.com/secretosdecampo/carniceria-api/internal/domain/entity"
	"github.com/secretosdecampo/carniceria-api/internal/domain/repository"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeRangeRepo struct {
	ranges []entity.WeightRange
}

func (f *fakeRangeRepo) Create(r *entity.WeightRange) error { f.ranges = append(f.ranges, *r); return nil }
func (f *fakeRangeRepo) GetByID(id string) (*entity.WeightRange, error) {
	for i := range f.ranges {
		if f.ranges[i].ID == id {
			return &f.ranges[i], nil
		}
	}
	return nil, nil
}
func (f *fakeRangeRepo) List() ([]entity.WeightRange, error) { return f.ranges, nil }

type fakeCutRepo struct {
	cuts []*entity.Cut
}

func (f *fakeCutRepo) Create(c *entity.Cut) error { f.cuts = append(f.cuts, c); return nil }
func (f *fakeCutRepo) GetByID(id string) (*entity.Cut, error) {
	for _, c := range f.cuts {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}
func (f *fakeCutRepo) GetByName(name string) (*entity.Cut, error) {
	for _, c := range f.cuts {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}
func (f *fakeCutRepo) List() ([]*entity.Cut, error) { return f.cuts, nil }
func (f *fakeCutRepo) ExistAll(ids []string) (bool, error) {
	for _, id := range ids {
		c, _ := f.GetByID(id)
		if c == nil {
			return false, nil
		}
	}
	return true, nil
}

type fakeTemplateRepo struct {
	template *entity.YieldTemplate // nil = sin plantilla configurada
	replaced []entity.YieldTemplateItem
}

func (f *fakeTemplateRepo) Create(t *entity.YieldTemplate) error { f.template = t; return nil }
func (f *fakeTemplateRepo) GetByID(id string) (*entity.YieldTemplate, error) {
	if f.template != nil && f.template.ID == id {
		return f.template, nil
	}
	return nil, nil
}
func (f *fakeTemplateRepo) GetActiveByCategoryAndRange(categoryID, rangeID string) (*entity.YieldTemplate, error) {
	if f.template == nil {
		return nil, nil
	}
	if f.template.CategoryID == categoryID && f.template.RangeID == rangeID && f.template.Status == entity.TemplateStatusActive {
		return f.template, nil
	}
	return nil, nil
}
func (f *fakeTemplateRepo) List() ([]*entity.YieldTemplate, error) {
	if f.template == nil {
		return nil, nil
	}
	return []*entity.YieldTemplate{f.template}, nil
}
func (f *fakeTemplateRepo) ReplaceItems(templateID string, version int, items []entity.YieldTemplateItem) error {
	if f.template == nil || f.template.ID != templateID || f.template.Version != version {
		return domain.ErrConflict
	}
	f.template.Version++
	f.template.Items = items
	f.replaced = items
	return nil
}

type fakeRealYieldRepo struct {
	yields []*entity.RealYield
}

func (f *fakeRealYieldRepo) Create(ry *entity.RealYield) error {
	ry.YieldNumber = len(f.yields) + 1
	f.yields = append(f.yields, ry)
	return nil
}
func (f *fakeRealYieldRepo) CountByCategoryAndRange(categoryID, rangeID string) (int, error) {
	n := 0
	for _, ry := range f.yields {
		if ry.CategoryID == categoryID && ry.RangeID == rangeID {
			n++
		}
	}
	return n, nil
}
func (f *fakeRealYieldRepo) MarkApplied(id string) error {
	for _, ry := range f.yields {
		if ry.ID == id {
			ry.AppliedToTemplate = true
		}
	}
	return nil
}
func (f *fakeRealYieldRepo) ListRecent(limit int) ([]*entity.RealYield, error) {
	if len(f.yields) > limit {
		return f.yields[:limit], nil
	}
	return f.yields, nil
}

type fakeLearningTxRunner struct {
	templateRepo  *fakeTemplateRepo
	realYieldRepo *fakeRealYieldRepo
}

func (f *fakeLearningTxRunner) RunLearning(_ context.Context, fn func(
	templateRepo repository.YieldTemplateRepository,
	realYieldRepo repository.RealYieldRepository,
) error) error {
	return fn(f.templateRepo, f.realYieldRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func buildRecordUseCase(template *entity.YieldTemplate) (*appyield.RecordRealYieldUseCase, *fakeTemplateRepo, *fakeRealYieldRepo) {
	rangeRepo := &fakeRangeRepo{ranges: []entity.WeightRange{
		{ID: "r1", MinWeight: dec("80"), MaxWeight: dec("105"), Label: "80-105 kg"},
	}}
	cutRepo := &fakeCutRepo{cuts: []*entity.Cut{
		{ID: "hueso", Name: "Hueso", Role: entity.CutRoleBone},
		{ID: "carne", Name: "Carne", Role: entity.CutRoleSellable},
	}}
	templateRepo := &fakeTemplateRepo{template: template}
	realYieldRepo := &fakeRealYieldRepo{}
	uc := appyield.NewRecordRealYieldUseCase(&fakeLearningTxRunner{
		templateRepo:  templateRepo,
		realYieldRepo: realYieldRepo,
	}, rangeRepo, cutRepo, realYieldRepo)
	return uc, templateRepo, realYieldRepo
}

func baseTemplate() *entity.YieldTemplate {
	return &entity.YieldTemplate{
		ID:         "tpl",
		CategoryID: "cat",
		RangeID:    "r1",
		Name:       "Vaquillona 80-105 kg",
		Status:     entity.TemplateStatusActive,
		Version:    1,
		Items: []entity.YieldTemplateItem{
			{ID: "i1", TemplateID: "tpl", CutID: "hueso", PercentageYield: dec("16.00")},
			{ID: "i2", TemplateID: "tpl", CutID: "carne", PercentageYield: dec("84.00")},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestRecord_PrimeraObservacionActualizaPlantilla(t *testing.T) {
	uc, templateRepo, realYieldRepo := buildRecordUseCase(baseTemplate())

	// 100 kg de media res: 15 kg de hueso (15%) contra 16% de la plantilla.
	resp, err := uc.Record(context.Background(), dto.RecordRealYieldRequest{
		CategoryID:  "cat",
		TotalWeight: dec("100"),
		Items: []dto.RealYieldItemInput{
			{CutID: "hueso", ActualKg: dec("15")},
			{CutID: "carne", ActualKg: dec("84")},
		},
	})
	require.NoError(t, err)

	// Primera observación: α = 0.5. Hueso pasa de 16 a 15.5.
	assert.True(t, resp.Learning.Applied)
	assert.True(t, resp.Learning.LearningRate.Equal(dec("0.5")), "α: %s", resp.Learning.LearningRate)

	require.Len(t, templateRepo.replaced, 2)
	assert.True(t, templateRepo.replaced[0].PercentageYield.Equal(dec("15.5")), "hueso: %s", templateRepo.replaced[0].PercentageYield)
	assert.True(t, templateRepo.replaced[1].PercentageYield.Equal(dec("84.5")), "carne: %s", templateRepo.replaced[1].PercentageYield)

	// La evidencia queda marcada como aplicada.
	require.Len(t, realYieldRepo.yields, 1)
	assert.True(t, realYieldRepo.yields[0].AppliedToTemplate)

	// Varianza del desposte: 100 - (15 + 84) = 1 kg sin registrar.
	assert.True(t, resp.RealYield.Variance.Equal(dec("1")), "varianza: %s", resp.RealYield.Variance)
	assert.True(t, resp.RealYield.VariancePercent.Equal(dec("1")), "varianza %%: %s", resp.RealYield.VariancePercent)
}

func TestRecord_SinPlantillaGuardaEvidencia(t *testing.T) {
	uc, _, realYieldRepo := buildRecordUseCase(nil)

	resp, err := uc.Record(context.Background(), dto.RecordRealYieldRequest{
		CategoryID:  "cat",
		TotalWeight: dec("100"),
		Items: []dto.RealYieldItemInput{
			{CutID: "hueso", ActualKg: dec("15")},
		},
	})
	require.NoError(t, err)

	// Sin plantilla no es un error: el desposte se guarda igual.
	assert.False(t, resp.Learning.Applied)
	require.Len(t, realYieldRepo.yields, 1)
	assert.False(t, realYieldRepo.yields[0].AppliedToTemplate)
	// El porcentaje real se calcula aunque no haya aprendizaje.
	assert.True(t, realYieldRepo.yields[0].Items[0].PercentageReal.Equal(dec("15")))
}

func TestRecord_SegundaObservacionBajaLaTasa(t *testing.T) {
	uc, _, _ := buildRecordUseCase(baseTemplate())

	record := func() *dto.RecordRealYieldResponse {
		resp, err := uc.Record(context.Background(), dto.RecordRealYieldRequest{
			CategoryID:  "cat",
			TotalWeight: dec("100"),
			Items: []dto.RealYieldItemInput{
				{CutID: "hueso", ActualKg: dec("16")},
				{CutID: "carne", ActualKg: dec("84")},
			},
		})
		require.NoError(t, err)
		return resp
	}

	first := record()
	second := record()

	assert.True(t, first.Learning.LearningRate.Equal(dec("0.5")))
	// α(2) = 0.5/√2 ≈ 0.354
	assert.True(t, second.Learning.LearningRate.Equal(dec("0.354")), "α(2): %s", second.Learning.LearningRate)
}

func TestRecord_PesoFueraDeRango(t *testing.T) {
	uc, _, _ := buildRecordUseCase(baseTemplate())

	_, err := uc.Record(context.Background(), dto.RecordRealYieldRequest{
		CategoryID:  "cat",
		TotalWeight: dec("300"),
		Items:       []dto.RealYieldItemInput{{CutID: "hueso", ActualKg: dec("45")}},
	})
	assert.ErrorIs(t, err, domain.ErrRangeNotFound)
}

func TestRecord_CorteInexistente(t *testing.T) {
	uc, _, realYieldRepo := buildRecordUseCase(baseTemplate())

	_, err := uc.Record(context.Background(), dto.RecordRealYieldRequest{
		CategoryID:  "cat",
		TotalWeight: dec("100"),
		Items:       []dto.RealYieldItemInput{{CutID: "fantasma", ActualKg: dec("10")}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, realYieldRepo.yields, "no debe persistirse nada")
}

func TestRecord_EntradaInvalida(t *testing.T) {
	uc, _, _ := buildRecordUseCase(baseTemplate())
	ctx := context.Background()

	cases := []dto.RecordRealYieldRequest{
		{CategoryID: "", TotalWeight: dec("100"), Items: []dto.RealYieldItemInput{{CutID: "hueso", ActualKg: dec("1")}}},
		{CategoryID: "cat", TotalWeight: decimal.Zero, Items: []dto.RealYieldItemInput{{CutID: "hueso", ActualKg: dec("1")}}},
		{CategoryID: "cat", TotalWeight: dec("100")},
		{CategoryID: "cat", TotalWeight: dec("100"), Items: []dto.RealYieldItemInput{{CutID: "hueso", ActualKg: decimal.Zero}}},
	}
	for i, in := range cases {
		_, err := uc.Record(ctx, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "caso %d", i)
	}
}
