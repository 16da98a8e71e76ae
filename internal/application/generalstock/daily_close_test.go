package generalstock_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secretosdecampo/carniceria-api/internal/application/dto"
	"github.com/secretosdecampo/carniceria-api/internal/application/generalstock"
	"github.com/secretosdecampo/carniceria-api/internal/domain/entity"
	"github.com/secretosdecampo/carniceria-api/internal/domain/repository"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeStockRepo struct {
	stocks map[string]*entity.GeneralStock
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{stocks: make(map[string]*entity.GeneralStock)}
}

func (f *fakeStockRepo) Create(s *entity.GeneralStock) error {
	cp := *s
	f.stocks[s.ID] = &cp
	return nil
}

func (f *fakeStockRepo) GetByID(id string) (*entity.GeneralStock, error) {
	s, ok := f.stocks[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (f *fakeStockRepo) List() ([]*entity.GeneralStock, error) {
	out := make([]*entity.GeneralStock, 0, len(f.stocks))
	for _, s := range f.stocks {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeStockRepo) ListActiveFIFO() ([]*entity.GeneralStock, error) {
	var out []*entity.GeneralStock
	for _, s := range f.stocks {
		if s.Status == entity.GeneralStockActive {
			cp := *s
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EntryDate.Before(out[j].EntryDate) })
	return out, nil
}

func (f *fakeStockRepo) UpdateSold(id string, soldKg decimal.Decimal, status string) error {
	s := f.stocks[id]
	s.SoldKg = soldKg
	s.Status = status
	return nil
}

type fakeDeductionRepo struct {
	deductions []*entity.GeneralStockDeduction
}

func (f *fakeDeductionRepo) Create(d *entity.GeneralStockDeduction) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	cp := *d
	f.deductions = append(f.deductions, &cp)
	return nil
}

func (f *fakeDeductionRepo) ListByClose(closeID string) ([]*entity.GeneralStockDeduction, error) {
	var out []*entity.GeneralStockDeduction
	for _, d := range f.deductions {
		if d.DailyCloseID == closeID {
			cp := *d
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeDeductionRepo) DeleteByClose(closeID string) error {
	kept := f.deductions[:0]
	for _, d := range f.deductions {
		if d.DailyCloseID != closeID {
			kept = append(kept, d)
		}
	}
	f.deductions = kept
	return nil
}

type fakeCloseRepo struct {
	closes map[string]*entity.DailyCashClose // por fecha YYYY-MM-DD
}

func newFakeCloseRepo() *fakeCloseRepo {
	return &fakeCloseRepo{closes: make(map[string]*entity.DailyCashClose)}
}

func (f *fakeCloseRepo) UpsertByDate(c *entity.DailyCashClose) (*entity.DailyCashClose, error) {
	key := c.CloseDate.Format("2006-01-02")
	if existing, ok := f.closes[key]; ok {
		c.ID = existing.ID // re-cierre: misma fila, mismo ID
	} else if c.ID == "" {
		c.ID = uuid.New().String()
	}
	cp := *c
	f.closes[key] = &cp
	return &cp, nil
}

func (f *fakeCloseRepo) GetByDate(date time.Time) (*entity.DailyCashClose, error) {
	c, ok := f.closes[date.Format("2006-01-02")]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCloseRepo) ListRecent(limit int) ([]*entity.DailyCashClose, error) {
	var out []*entity.DailyCashClose
	for _, c := range f.closes {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CloseDate.After(out[j].CloseDate) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeCloseTxRunner struct {
	stockRepo     *fakeStockRepo
	deductionRepo *fakeDeductionRepo
}

func (f *fakeCloseTxRunner) RunDailyClose(_ context.Context, fn func(
	stockRepo repository.GeneralStockRepository,
	deductionRepo repository.GeneralStockDeductionRepository,
) error) error {
	return fn(f.stockRepo, f.deductionRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func tropa(id, description string, entryDate string, sellable, sold string) *entity.GeneralStock {
	day, _ := time.ParseInLocation("2006-01-02", entryDate, time.Local)
	return &entity.GeneralStock{
		ID:               id,
		BatchDescription: description,
		AnimalCategory:   "Vaquillona",
		EntryDate:        day,
		UnitCount:        4,
		TotalWeightKg:    dec("400"),
		SellableKg:       dec(sellable),
		SoldKg:           dec(sold),
		Status:           entity.GeneralStockActive,
	}
}

func buildCloseUseCase(stocks ...*entity.GeneralStock) (*generalstock.DailyCloseUseCase, *fakeStockRepo, *fakeDeductionRepo) {
	stockRepo := newFakeStockRepo()
	for _, s := range stocks {
		_ = stockRepo.Create(s)
	}
	deductionRepo := &fakeDeductionRepo{}
	uc := generalstock.NewDailyCloseUseCase(newFakeCloseRepo(), &fakeCloseTxRunner{
		stockRepo:     stockRepo,
		deductionRepo: deductionRepo,
	})
	return uc, stockRepo, deductionRepo
}

func closeRequest(date string, scaleKg string) dto.DailyCloseRequest {
	return dto.DailyCloseRequest{
		Date:         date,
		PosnetTotal:  dec("100000"),
		ExpectedCash: dec("50000"),
		ActualCash:   dec("49500"),
		ScaleReadings: []dto.ScaleReadingDTO{
			{Scale: "balanza-1", KgStart: dec("0"), KgEnd: dec(scaleKg)},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestClose_DeduceFIFOPorFechaDeEntrada(t *testing.T) {
	uc, stockRepo, _ := buildCloseUseCase(
		tropa("nueva", "Tropa nueva", "2026-03-10", "100", "0"),
		tropa("vieja", "Tropa vieja", "2026-03-01", "100", "0"),
	)

	resp, err := uc.Close(context.Background(), closeRequest("2026-03-15", "150"))
	require.NoError(t, err)

	// La más vieja se consume entera primero, el resto sale de la nueva.
	require.Len(t, resp.FIFODeductions, 2)
	assert.Equal(t, "vieja", resp.FIFODeductions[0].GeneralStockID)
	assert.True(t, resp.FIFODeductions[0].Kg.Equal(dec("100")))
	assert.Equal(t, "nueva", resp.FIFODeductions[1].GeneralStockID)
	assert.True(t, resp.FIFODeductions[1].Kg.Equal(dec("50")))
	assert.True(t, resp.UnaccountedKg.IsZero())

	vieja, _ := stockRepo.GetByID("vieja")
	assert.Equal(t, entity.GeneralStockDepleted, vieja.Status)
	nueva, _ := stockRepo.GetByID("nueva")
	assert.Equal(t, entity.GeneralStockActive, nueva.Status)
	assert.True(t, nueva.SoldKg.Equal(dec("50")))
}

func TestClose_ConsumoSuperaStock_ReportaUnaccounted(t *testing.T) {
	uc, _, _ := buildCloseUseCase(
		tropa("unica", "Única tropa", "2026-03-01", "100", "0"),
	)

	resp, err := uc.Close(context.Background(), closeRequest("2026-03-15", "250"))
	require.NoError(t, err)

	require.Len(t, resp.FIFODeductions, 1)
	assert.True(t, resp.FIFODeductions[0].Kg.Equal(dec("100")))
	// Los 150 kg restantes quedan visibles, nunca se recortan.
	assert.True(t, resp.UnaccountedKg.Equal(dec("150")), "unaccounted: %s", resp.UnaccountedKg)
}

func TestClose_RecierreEsIdempotente(t *testing.T) {
	uc, stockRepo, deductionRepo := buildCloseUseCase(
		tropa("t1", "Tropa 1", "2026-03-01", "100", "0"),
	)

	_, err := uc.Close(context.Background(), closeRequest("2026-03-15", "60"))
	require.NoError(t, err)

	// Re-cierre del mismo día con la lectura corregida: revierte y reaplica.
	resp, err := uc.Close(context.Background(), closeRequest("2026-03-15", "30"))
	require.NoError(t, err)

	s, _ := stockRepo.GetByID("t1")
	assert.True(t, s.SoldKg.Equal(dec("30")), "soldKg final: %s", s.SoldKg)
	assert.Len(t, deductionRepo.deductions, 1, "una sola fila de deducción tras el re-cierre")
	assert.True(t, resp.FIFODeductions[0].Kg.Equal(dec("30")))
}

func TestClose_RecierreACeroReactivaTropaAgotada(t *testing.T) {
	uc, stockRepo, deductionRepo := buildCloseUseCase(
		tropa("t1", "Tropa 1", "2026-03-01", "100", "0"),
	)

	_, err := uc.Close(context.Background(), closeRequest("2026-03-15", "100"))
	require.NoError(t, err)
	s, _ := stockRepo.GetByID("t1")
	require.Equal(t, entity.GeneralStockDepleted, s.Status)

	// Lectura corregida a cero: la deducción anterior se revierte por completo.
	resp, err := uc.Close(context.Background(), closeRequest("2026-03-15", "0"))
	require.NoError(t, err)

	s, _ = stockRepo.GetByID("t1")
	assert.Equal(t, entity.GeneralStockActive, s.Status)
	assert.True(t, s.SoldKg.IsZero())
	assert.Empty(t, deductionRepo.deductions)
	assert.Empty(t, resp.FIFODeductions)
	assert.True(t, resp.TotalScaleKg.IsZero())
}

func TestClose_IgnoraLecturasInvertidas(t *testing.T) {
	uc, _, _ := buildCloseUseCase(
		tropa("t1", "Tropa 1", "2026-03-01", "100", "0"),
	)

	in := closeRequest("2026-03-15", "40")
	// KgEnd <= KgStart: balanza reseteada o lectura inválida, no suma.
	in.ScaleReadings = append(in.ScaleReadings, dto.ScaleReadingDTO{
		Scale: "balanza-2", KgStart: dec("500"), KgEnd: dec("480"),
	})

	resp, err := uc.Close(context.Background(), in)
	require.NoError(t, err)
	assert.True(t, resp.TotalScaleKg.Equal(dec("40")), "total balanzas: %s", resp.TotalScaleKg)
}

func TestClose_CalculaDiferenciaDeCaja(t *testing.T) {
	uc, _, _ := buildCloseUseCase()

	resp, err := uc.Close(context.Background(), closeRequest("2026-03-15", "0"))
	require.NoError(t, err)
	// actual 49500 - esperado 50000
	assert.True(t, resp.Difference.Equal(dec("-500")), "diferencia: %s", resp.Difference)
}

func TestClose_SaltaTropasSinCapacidad(t *testing.T) {
	llena := tropa("llena", "Tropa agotada en kg pero activa", "2026-03-01", "100", "100")
	uc, stockRepo, _ := buildCloseUseCase(
		llena,
		tropa("conResto", "Tropa con capacidad", "2026-03-05", "100", "0"),
	)

	resp, err := uc.Close(context.Background(), closeRequest("2026-03-15", "20"))
	require.NoError(t, err)

	require.Len(t, resp.FIFODeductions, 1)
	assert.Equal(t, "conResto", resp.FIFODeductions[0].GeneralStockID)

	s, _ := stockRepo.GetByID("llena")
	assert.True(t, s.SoldKg.Equal(dec("100")), "la tropa sin capacidad no se toca")
}
