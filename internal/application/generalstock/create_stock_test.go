package generalstock_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secretosdecampo/carniceria-api/internal/application/dto"
	"github.com/secretosdecampo/carniceria-api/internal/application/generalstock"
	appyield "github.com/secretosdecampo/carniceria-api/internal/application/yield"
	"github.com/secretosdecampo/carniceria-api/internal/domain"
	"github.com/secretosdecampo/carniceria-api/internal/domain/entity"
)

// Fakes mínimos para armar un EstimateUseCase con plantilla activa.

type stubRangeRepo struct{ ranges []entity.WeightRange }

func (s *stubRangeRepo) Create(*entity.WeightRange) error            { return nil }
func (s *stubRangeRepo) GetByID(string) (*entity.WeightRange, error) { return nil, nil }
func (s *stubRangeRepo) List() ([]entity.WeightRange, error)         { return s.ranges, nil }

type stubCutRepo struct{ cuts []*entity.Cut }

func (s *stubCutRepo) Create(*entity.Cut) error              { return nil }
func (s *stubCutRepo) GetByID(string) (*entity.Cut, error)   { return nil, nil }
func (s *stubCutRepo) GetByName(string) (*entity.Cut, error) { return nil, nil }
func (s *stubCutRepo) List() ([]*entity.Cut, error)          { return s.cuts, nil }
func (s *stubCutRepo) ExistAll([]string) (bool, error)       { return true, nil }

type stubTemplateRepo struct{ template *entity.YieldTemplate }

func (s *stubTemplateRepo) Create(*entity.YieldTemplate) error            { return nil }
func (s *stubTemplateRepo) GetByID(string) (*entity.YieldTemplate, error) { return nil, nil }
func (s *stubTemplateRepo) List() ([]*entity.YieldTemplate, error)        { return nil, nil }
func (s *stubTemplateRepo) ReplaceItems(string, int, []entity.YieldTemplateItem) error {
	return nil
}
func (s *stubTemplateRepo) GetActiveByCategoryAndRange(categoryID, rangeID string) (*entity.YieldTemplate, error) {
	if s.template != nil && s.template.CategoryID == categoryID && s.template.RangeID == rangeID {
		return s.template, nil
	}
	return nil, nil
}

func estimateWithTemplate() *appyield.EstimateUseCase {
	return appyield.NewEstimateUseCase(
		&stubRangeRepo{ranges: []entity.WeightRange{
			{ID: "r1", MinWeight: dec("80"), MaxWeight: dec("105"), Label: "80-105 kg"},
		}},
		&stubTemplateRepo{template: &entity.YieldTemplate{
			ID: "tpl", CategoryID: "cat", RangeID: "r1", Status: entity.TemplateStatusActive,
			Items: []entity.YieldTemplateItem{
				{CutID: "hueso", PercentageYield: dec("18.00")},
				{CutID: "grasa", PercentageYield: dec("12.00")},
				{CutID: "carne", PercentageYield: dec("70.00")},
			},
		}},
		&stubCutRepo{cuts: []*entity.Cut{
			{ID: "hueso", Name: "Hueso", Role: entity.CutRoleBone},
			{ID: "grasa", Name: "Grasa", Role: entity.CutRoleFat},
			{ID: "carne", Name: "Carne", Role: entity.CutRoleSellable},
		}},
	)
}

func pct(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestCreateStock_PorcentajesExplicitos(t *testing.T) {
	stockRepo := newFakeStockRepo()
	uc := generalstock.NewCreateStockUseCase(stockRepo, nil)

	stock, err := uc.Create(context.Background(), dto.CreateGeneralStockRequest{
		BatchDescription: "Tropa marzo",
		AnimalCategory:   "Vaquillona",
		UnitCount:        4,
		TotalWeightKg:    dec("400"),
		BonePercent:      pct("20"),
		FatPercent:       pct("10"),
		MermaPercent:     pct("5"),
		EntryDate:        "2026-03-01",
	})
	require.NoError(t, err)

	// 400 * (1 - (20+10+5)/100) = 260
	assert.True(t, stock.SellableKg.Equal(dec("260")), "vendible: %s", stock.SellableKg)
	assert.Equal(t, entity.GeneralStockActive, stock.Status)
	assert.True(t, stock.SoldKg.IsZero())
	assert.Equal(t, "2026-03-01", stock.EntryDate.Format("2006-01-02"))
}

func TestCreateStock_MermaPorDefecto(t *testing.T) {
	stockRepo := newFakeStockRepo()
	uc := generalstock.NewCreateStockUseCase(stockRepo, nil)

	stock, err := uc.Create(context.Background(), dto.CreateGeneralStockRequest{
		BatchDescription: "Tropa sin merma indicada",
		AnimalCategory:   "Novillo",
		UnitCount:        2,
		TotalWeightKg:    dec("200"),
		BonePercent:      pct("0"),
		FatPercent:       pct("0"),
	})
	require.NoError(t, err)

	assert.True(t, stock.MermaPercent.Equal(dec("5")))
	// 200 * 0.95 = 190
	assert.True(t, stock.SellableKg.Equal(dec("190")), "vendible: %s", stock.SellableKg)
}

func TestCreateStock_AutocompletaDesdePlantilla(t *testing.T) {
	stockRepo := newFakeStockRepo()
	uc := generalstock.NewCreateStockUseCase(stockRepo, estimateWithTemplate())

	stock, err := uc.Create(context.Background(), dto.CreateGeneralStockRequest{
		BatchDescription: "Tropa con estimación",
		AnimalCategory:   "Vaquillona",
		CategoryID:       "cat",
		UnitCount:        4,
		TotalWeightKg:    dec("400"), // promedio 100 kg -> rango 80-105
	})
	require.NoError(t, err)

	assert.True(t, stock.BonePercent.Equal(dec("18")), "hueso: %s", stock.BonePercent)
	assert.True(t, stock.FatPercent.Equal(dec("12")), "grasa: %s", stock.FatPercent)
	// 400 * (1 - (18+12+5)/100) = 260
	assert.True(t, stock.SellableKg.Equal(dec("260")), "vendible: %s", stock.SellableKg)
}

func TestCreateStock_OverrideLeGanaALaPlantilla(t *testing.T) {
	stockRepo := newFakeStockRepo()
	uc := generalstock.NewCreateStockUseCase(stockRepo, estimateWithTemplate())

	stock, err := uc.Create(context.Background(), dto.CreateGeneralStockRequest{
		BatchDescription: "Tropa con hueso medido",
		AnimalCategory:   "Vaquillona",
		CategoryID:       "cat",
		UnitCount:        4,
		TotalWeightKg:    dec("400"),
		BonePercent:      pct("22"), // medido a mano, pisa la estimación
	})
	require.NoError(t, err)

	assert.True(t, stock.BonePercent.Equal(dec("22")), "hueso: %s", stock.BonePercent)
	// La grasa no indicada sí se autocompleta.
	assert.True(t, stock.FatPercent.Equal(dec("12")), "grasa: %s", stock.FatPercent)
}

func TestCreateStock_EntradaInvalida(t *testing.T) {
	uc := generalstock.NewCreateStockUseCase(newFakeStockRepo(), nil)
	ctx := context.Background()

	cases := []dto.CreateGeneralStockRequest{
		{AnimalCategory: "Vaquillona", UnitCount: 1, TotalWeightKg: dec("100")},
		{BatchDescription: "x", UnitCount: 1, TotalWeightKg: dec("100")},
		{BatchDescription: "x", AnimalCategory: "Vaquillona", UnitCount: 0, TotalWeightKg: dec("100")},
		{BatchDescription: "x", AnimalCategory: "Vaquillona", UnitCount: 1, TotalWeightKg: decimal.Zero},
		{BatchDescription: "x", AnimalCategory: "Vaquillona", UnitCount: 1, TotalWeightKg: dec("100"), EntryDate: "01/03/2026"},
	}
	for i, in := range cases {
		_, err := uc.Create(ctx, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "caso %d", i)
	}
}

func TestCreateStock_PorcentajesImposibles(t *testing.T) {
	uc := generalstock.NewCreateStockUseCase(newFakeStockRepo(), nil)

	// 60+40+5 > 100: el vendible daría negativo.
	_, err := uc.Create(context.Background(), dto.CreateGeneralStockRequest{
		BatchDescription: "Tropa imposible",
		AnimalCategory:   "Vaquillona",
		UnitCount:        1,
		TotalWeightKg:    dec("100"),
		BonePercent:      pct("60"),
		FatPercent:       pct("40"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
