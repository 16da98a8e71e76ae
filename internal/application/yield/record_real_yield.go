package yield

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/secretosdecampo/carniceria-api/internal/application/dto"
	"github.com/secretosdecampo/carniceria-api/internal/domain"
	"github.com/secretosdecampo/carniceria-api/internal/domain/entity"
	"github.com/secretosdecampo/carniceria-api/internal/domain/repository"
	domyield "github.com/secretosdecampo/carniceria-api/internal/domain/yield"
)

// RecordRealYieldUseCase registra un desposte real y actualiza la plantilla
// correspondiente vía EMA. El registro es evidencia inmutable: se persiste
// siempre, haya o no plantilla que aprender.
type RecordRealYieldUseCase struct {
	txRunner      LearningTxRunner
	rangeRepo     repository.WeightRangeRepository
	cutRepo       repository.CutRepository
	realYieldRepo repository.RealYieldRepository
}

// NewRecordRealYieldUseCase construye el caso de uso.
func NewRecordRealYieldUseCase(
	txRunner LearningTxRunner,
	rangeRepo repository.WeightRangeRepository,
	cutRepo repository.CutRepository,
	realYieldRepo repository.RealYieldRepository,
) *RecordRealYieldUseCase {
	return &RecordRealYieldUseCase{
		txRunner:      txRunner,
		rangeRepo:     rangeRepo,
		cutRepo:       cutRepo,
		realYieldRepo: realYieldRepo,
	}
}

// Record ejecuta el flujo completo:
//  1. Resuelve el rango de peso para el peso de la media res (un desposte es
//     un evento de una sola unidad, el promedio es el peso mismo).
//  2. Calcula percentageReal por corte y persiste el RealYield.
//  3. Si hay plantilla activa: α = max(0.1, 0.5/√observaciones), mezcla EMA,
//     normaliza a 100.00 y reemplaza los items con chequeo de versión.
//  4. Sin plantilla: el registro queda con applied=false y un mensaje; la
//     recolección de evidencia no se bloquea por configuración faltante.
//
// Los pasos 2–3 corren en una transacción: o aterriza todo o nada.
func (uc *RecordRealYieldUseCase) Record(ctx context.Context, in dto.RecordRealYieldRequest) (*dto.RecordRealYieldResponse, error) {
	if in.CategoryID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if !in.TotalWeight.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	for _, it := range in.Items {
		if it.CutID == "" || !it.ActualKg.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	}

	ranges, err := uc.rangeRepo.List()
	if err != nil {
		return nil, err
	}
	rng, err := domyield.ResolveRange(ranges, in.TotalWeight)
	if err != nil {
		return nil, err
	}

	cutIDs := make([]string, 0, len(in.Items))
	for _, it := range in.Items {
		cutIDs = append(cutIDs, it.CutID)
	}
	ok, err := uc.cutRepo.ExistAll(cutIDs)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	ry := &entity.RealYield{
		ID:          uuid.New().String(),
		CategoryID:  in.CategoryID,
		RangeID:     rng.ID,
		TotalWeight: in.TotalWeight,
		Notes:       in.Notes,
		CreatedAt:   now,
	}
	totalKgItems := decimal.Zero
	for _, it := range in.Items {
		totalKgItems = totalKgItems.Add(it.ActualKg)
		ry.Items = append(ry.Items, entity.RealYieldItem{
			ID:          uuid.New().String(),
			RealYieldID: ry.ID,
			CutID:       it.CutID,
			ActualKg:    it.ActualKg,
		})
	}
	realPct := domyield.RealPercentages(ry.Items, in.TotalWeight)
	for i := range ry.Items {
		ry.Items[i].PercentageReal = realPct[ry.Items[i].CutID]
	}

	learning := dto.LearningResultDTO{
		Applied: false,
		Message: "No se encontró plantilla para actualizar",
	}

	err = uc.txRunner.RunLearning(ctx, func(
		templateRepo repository.YieldTemplateRepository,
		realYieldRepo repository.RealYieldRepository,
	) error {
		if err := realYieldRepo.Create(ry); err != nil {
			return err
		}

		template, err := templateRepo.GetActiveByCategoryAndRange(in.CategoryID, rng.ID)
		if err != nil {
			return err
		}
		if template == nil {
			return nil // evidencia guardada, aprendizaje omitido
		}

		// Incluye el desposte recién creado: la primera observación da count=1.
		count, err := realYieldRepo.CountByCategoryAndRange(in.CategoryID, rng.ID)
		if err != nil {
			return err
		}
		alpha := domyield.LearningRate(count)

		updated, err := domyield.BlendTemplate(template.Items, realPct, alpha)
		if err != nil {
			return err
		}
		if err := templateRepo.ReplaceItems(template.ID, template.Version, updated); err != nil {
			return err
		}
		if err := realYieldRepo.MarkApplied(ry.ID); err != nil {
			return err
		}
		ry.AppliedToTemplate = true

		learning = dto.LearningResultDTO{
			Applied:      true,
			LearningRate: alpha.Round(3),
			Message: fmt.Sprintf("Plantilla actualizada con tasa de aprendizaje %s%%",
				alpha.Mul(decimal.NewFromInt(100)).Round(1)),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.buildResponse(ry, totalKgItems, learning)
}

// History despostes recientes con items y nombres de corte resueltos.
func (uc *RecordRealYieldUseCase) History(_ context.Context, limit int) ([]dto.RealYieldHistoryDTO, error) {
	if limit <= 0 || limit > 100 {
		limit = 30
	}
	yields, err := uc.realYieldRepo.ListRecent(limit)
	if err != nil {
		return nil, err
	}
	cuts, err := uc.cutRepo.List()
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(cuts))
	for _, c := range cuts {
		names[c.ID] = c.Name
	}

	out := make([]dto.RealYieldHistoryDTO, 0, len(yields))
	for _, ry := range yields {
		h := dto.RealYieldHistoryDTO{
			ID:                ry.ID,
			YieldNumber:       ry.YieldNumber,
			CategoryID:        ry.CategoryID,
			TotalWeight:       ry.TotalWeight,
			AppliedToTemplate: ry.AppliedToTemplate,
			Notes:             ry.Notes,
			CreatedAt:         ry.CreatedAt.Format(time.RFC3339),
		}
		for _, it := range ry.Items {
			h.Items = append(h.Items, dto.RealYieldItemDTO{
				CutID:          it.CutID,
				CutName:        names[it.CutID],
				ActualKg:       it.ActualKg,
				PercentageReal: it.PercentageReal,
			})
		}
		out = append(out, h)
	}
	return out, nil
}

func (uc *RecordRealYieldUseCase) buildResponse(ry *entity.RealYield, totalKgItems decimal.Decimal, learning dto.LearningResultDTO) (*dto.RecordRealYieldResponse, error) {
	cuts, err := uc.cutRepo.List()
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(cuts))
	for _, c := range cuts {
		names[c.ID] = c.Name
	}

	variance := ry.TotalWeight.Sub(totalKgItems)
	items := make([]dto.RealYieldItemDTO, 0, len(ry.Items))
	for _, it := range ry.Items {
		items = append(items, dto.RealYieldItemDTO{
			CutID:          it.CutID,
			CutName:        names[it.CutID],
			ActualKg:       it.ActualKg,
			PercentageReal: it.PercentageReal,
		})
	}

	return &dto.RecordRealYieldResponse{
		RealYield: dto.RealYieldSummaryDTO{
			ID:                ry.ID,
			YieldNumber:       ry.YieldNumber,
			TotalWeight:       ry.TotalWeight,
			TotalKgRegistered: totalKgItems.Round(2),
			Variance:          variance.Round(2),
			VariancePercent:   variance.Div(ry.TotalWeight).Mul(decimal.NewFromInt(100)).Round(2),
		},
		Items:    items,
		Learning: learning,
	}, nil
}
