package yield

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/secretosdecampo/carniceria-api/internal/application/dto"
	"github.com/secretosdecampo/carniceria-api/internal/domain"
	"github.com/secretosdecampo/carniceria-api/internal/domain/entity"
	"github.com/secretosdecampo/carniceria-api/internal/domain/repository"
	domyield "github.com/secretosdecampo/carniceria-api/internal/domain/yield"
)

// ProjectBatchUseCase convierte una compra de medias reses en kg proyectados
// por corte: resuelve el rango por peso promedio, busca la plantilla activa,
// proyecta y persiste lote + proyecciones + incrementos de inventario en una
// sola transacción.
type ProjectBatchUseCase struct {
	txRunner     ProjectionTxRunner
	rangeRepo    repository.WeightRangeRepository
	templateRepo repository.YieldTemplateRepository
	cutRepo      repository.CutRepository
	batchRepo    repository.StockBatchRepository
}

// NewProjectBatchUseCase construye el caso de uso.
func NewProjectBatchUseCase(
	txRunner ProjectionTxRunner,
	rangeRepo repository.WeightRangeRepository,
	templateRepo repository.YieldTemplateRepository,
	cutRepo repository.CutRepository,
	batchRepo repository.StockBatchRepository,
) *ProjectBatchUseCase {
	return &ProjectBatchUseCase{
		txRunner:     txRunner,
		rangeRepo:    rangeRepo,
		templateRepo: templateRepo,
		cutRepo:      cutRepo,
		batchRepo:    batchRepo,
	}
}

// ListRecent lotes proyectados, más nuevo primero.
func (uc *ProjectBatchUseCase) ListRecent(_ context.Context, limit int) ([]dto.StockBatchSummaryDTO, error) {
	if limit <= 0 || limit > 100 {
		limit = 30
	}
	batches, err := uc.batchRepo.ListRecent(limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockBatchSummaryDTO, 0, len(batches))
	for _, b := range batches {
		out = append(out, dto.StockBatchSummaryDTO{
			ID:          b.ID,
			CategoryID:  b.CategoryID,
			UnitCount:   b.UnitCount,
			TotalWeight: b.TotalWeight,
			TotalCost:   b.TotalCost,
			Status:      b.Status,
			CreatedAt:   b.CreatedAt.Format(time.RFC3339),
		})
	}
	return out, nil
}

// Project registra el lote. La varianza de redondeo viaja en la respuesta;
// corregirla es una decisión humana (ajuste manual), no del motor.
func (uc *ProjectBatchUseCase) Project(ctx context.Context, in dto.ProjectBatchRequest) (*dto.ProjectionResponse, error) {
	if in.CategoryID == "" || in.UnitCount <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if !in.TotalWeight.GreaterThan(decimal.Zero) || in.TotalCost.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	ranges, err := uc.rangeRepo.List()
	if err != nil {
		return nil, err
	}
	avgWeight := in.TotalWeight.Div(decimal.NewFromInt(int64(in.UnitCount)))
	rng, err := domyield.ResolveRange(ranges, avgWeight)
	if err != nil {
		return nil, err
	}

	template, err := uc.templateRepo.GetActiveByCategoryAndRange(in.CategoryID, rng.ID)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, domain.ErrTemplateNotFound
	}

	projection, err := domyield.Project(template, in.TotalWeight)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	batch := &entity.StockBatch{
		ID:          uuid.New().String(),
		CategoryID:  in.CategoryID,
		RangeID:     rng.ID,
		TemplateID:  template.ID,
		SupplierID:  in.SupplierID,
		UnitCount:   in.UnitCount,
		TotalWeight: in.TotalWeight,
		TotalCost:   in.TotalCost,
		Status:      "projected",
		CreatedAt:   now,
	}
	projections := make([]entity.StockBatchProjection, 0, len(projection.PerCut))
	for _, pc := range projection.PerCut {
		projections = append(projections, entity.StockBatchProjection{
			ID:             uuid.New().String(),
			BatchID:        batch.ID,
			CutID:          pc.CutID,
			EstimatedKg:    pc.EstimatedKg,
			PercentageUsed: pc.PercentageYield,
		})
	}

	err = uc.txRunner.RunProjection(ctx, func(
		batchRepo repository.StockBatchRepository,
		inventoryRepo repository.CutInventoryRepository,
	) error {
		if err := batchRepo.Create(batch); err != nil {
			return err
		}
		if err := batchRepo.CreateProjections(projections); err != nil {
			return err
		}
		for _, p := range projections {
			if err := inventoryRepo.AddQty(p.CutID, p.EstimatedKg); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.buildResponse(batch.ID, rng.Label, projection)
}

func (uc *ProjectBatchUseCase) buildResponse(batchID, rangeLabel string, projection *domyield.Projection) (*dto.ProjectionResponse, error) {
	cuts, err := uc.cutRepo.List()
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.Cut, len(cuts))
	for _, c := range cuts {
		byID[c.ID] = c
	}

	out := &dto.ProjectionResponse{
		BatchID:        batchID,
		RangeLabel:     rangeLabel,
		TotalProjected: projection.TotalProjected,
		Variance:       projection.Variance,
	}
	for _, pc := range projection.PerCut {
		cutDTO := dto.ProjectedCutDTO{
			CutID:           pc.CutID,
			PercentageYield: pc.PercentageYield,
			EstimatedKg:     pc.EstimatedKg,
		}
		if c, ok := byID[pc.CutID]; ok {
			cutDTO.CutName = c.Name
			cutDTO.IsSellable = c.IsSellable()
		}
		out.Cuts = append(out.Cuts, cutDTO)
	}
	return out, nil
}
