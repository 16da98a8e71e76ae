package generalstock

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/secretosdecampo/carniceria-api/internal/application/dto"
	"github.com/secretosdecampo/carniceria-api/internal/domain"
	"github.com/secretosdecampo/carniceria-api/internal/domain/entity"
	"github.com/secretosdecampo/carniceria-api/internal/domain/repository"
)

// DailyCloseUseCase cierra la caja del día y concilia el consumo de balanzas
// contra el stock general vía deducción FIFO.
//
// El cierre es idempotente por día: re-cerrar revierte las deducciones previas
// del mismo cierre y recalcula desde cero. Revertir-y-reaplicar en vez de
// parchear diferencias: el total de balanzas puede cambiar arbitrariamente
// entre intentos y el orden FIFO depende del estado vigente de las tropas.
type DailyCloseUseCase struct {
	closeRepo repository.DailyCloseRepository
	txRunner  CloseTxRunner
}

// NewDailyCloseUseCase construye el caso de uso.
func NewDailyCloseUseCase(closeRepo repository.DailyCloseRepository, txRunner CloseTxRunner) *DailyCloseUseCase {
	return &DailyCloseUseCase{closeRepo: closeRepo, txRunner: txRunner}
}

// Close hace upsert del cierre por fecha (la unicidad de close_date garantiza
// un solo escritor por día) y luego aplica la deducción FIFO transaccional.
func (uc *DailyCloseUseCase) Close(ctx context.Context, in dto.DailyCloseRequest) (*dto.DailyCloseResponse, error) {
	closeDate := time.Now()
	if in.Date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", in.Date, time.Local)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		closeDate = parsed
	}
	closeDate = time.Date(closeDate.Year(), closeDate.Month(), closeDate.Day(), 0, 0, 0, 0, time.Local)

	readings := make([]entity.ScaleReading, 0, len(in.ScaleReadings))
	for _, r := range in.ScaleReadings {
		readings = append(readings, entity.ScaleReading{Scale: r.Scale, KgStart: r.KgStart, KgEnd: r.KgEnd})
	}
	totalScaleKg := entity.TotalScaleKg(readings)

	rawReadings, err := json.Marshal(readings)
	if err != nil {
		return nil, err
	}

	close := &entity.DailyCashClose{
		CloseDate:               closeDate,
		PosnetTotal:             in.PosnetTotal.Round(2),
		ExpectedCash:            in.ExpectedCash.Round(2),
		ActualCash:              in.ActualCash.Round(2),
		Difference:              in.ActualCash.Sub(in.ExpectedCash).Round(2),
		ScaleReadings:           rawReadings,
		GeneralStockDeductionKg: totalScaleKg,
		Notes:                   in.Notes,
		ClosedBy:                in.ClosedBy,
	}
	saved, err := uc.closeRepo.UpsertByDate(close)
	if err != nil {
		return nil, err
	}

	deductions, unaccounted, err := uc.applyDailyDeduction(ctx, saved.ID, closeDate, totalScaleKg)
	if err != nil {
		return nil, err
	}

	return &dto.DailyCloseResponse{
		DailyCloseID:   saved.ID,
		CloseDate:      closeDate.Format("2006-01-02"),
		Difference:     close.Difference,
		TotalScaleKg:   totalScaleKg,
		FIFODeductions: deductions,
		UnaccountedKg:  unaccounted,
	}, nil
}

// applyDailyDeduction revierte las deducciones previas del cierre y reaplica
// FIFO sobre las tropas activas, todo en una transacción:
//
//  1. Por cada deducción existente del cierre: restar soldKg a la tropa de
//     origen y reactivarla (pudo haber quedado agotada); borrar las filas.
//  2. Tomar las tropas activas ordenadas por entry_date ascendente (la más
//     vieja primero, aproximando qué reses se consumieron físicamente antes).
//  3. Recorrer deduciendo de la capacidad restante de cada una hasta agotar
//     totalKg o quedarse sin tropas; cada deducción no nula se registra y si
//     soldKg alcanza sellableKg la tropa pasa a depleted.
//  4. El remanente se reporta como unaccountedKg: consumo registrado que supera
//     el stock conocido (probable tropa sin cargar). Nunca se recorta.
//
// Se ejecuta también con totalKg=0: un re-cierre con lectura corregida a cero
// debe revertir las deducciones del intento anterior.
func (uc *DailyCloseUseCase) applyDailyDeduction(ctx context.Context, closeID string, closeDate time.Time, totalKg decimal.Decimal) ([]dto.FIFODeductionDTO, decimal.Decimal, error) {
	deductions := make([]dto.FIFODeductionDTO, 0)
	unaccounted := decimal.Zero

	err := uc.txRunner.RunDailyClose(ctx, func(
		stockRepo repository.GeneralStockRepository,
		deductionRepo repository.GeneralStockDeductionRepository,
	) error {
		// Paso 1: reversión.
		previous, err := deductionRepo.ListByClose(closeID)
		if err != nil {
			return err
		}
		for _, d := range previous {
			stock, err := stockRepo.GetByID(d.GeneralStockID)
			if err != nil {
				return err
			}
			if stock == nil {
				return domain.ErrBatchNotFound
			}
			restored := stock.SoldKg.Sub(d.DeductedKg)
			if err := stockRepo.UpdateSold(stock.ID, restored, entity.GeneralStockActive); err != nil {
				return err
			}
		}
		if len(previous) > 0 {
			if err := deductionRepo.DeleteByClose(closeID); err != nil {
				return err
			}
		}

		// Paso 2: tropas activas en orden FIFO, con bloqueo de fila.
		active, err := stockRepo.ListActiveFIFO()
		if err != nil {
			return err
		}

		// Paso 3: recorrido de deducción.
		remaining := totalKg
		for _, tropa := range active {
			if !remaining.GreaterThan(decimal.Zero) {
				break
			}
			available := tropa.RemainingKg()
			if !available.GreaterThan(decimal.Zero) {
				continue
			}

			toDeduct := decimal.Min(remaining, available).Round(2)
			newSold := tropa.SoldKg.Add(toDeduct)
			status := entity.GeneralStockActive
			if newSold.GreaterThanOrEqual(tropa.SellableKg) {
				status = entity.GeneralStockDepleted
			}
			if err := stockRepo.UpdateSold(tropa.ID, newSold, status); err != nil {
				return err
			}
			if err := deductionRepo.Create(&entity.GeneralStockDeduction{
				GeneralStockID: tropa.ID,
				DailyCloseID:   closeID,
				DeductedKg:     toDeduct,
				DeductionDate:  closeDate,
			}); err != nil {
				return err
			}

			deductions = append(deductions, dto.FIFODeductionDTO{
				GeneralStockID: tropa.ID,
				Description:    tropa.BatchDescription,
				Kg:             toDeduct,
			})
			remaining = remaining.Sub(toDeduct)
		}

		// Paso 4: remanente visible.
		unaccounted = decimal.Max(decimal.Zero, remaining).Round(2)
		return nil
	})
	if err != nil {
		return nil, decimal.Zero, err
	}
	return deductions, unaccounted, nil
}

// ListRecent cierres recientes para el historial de caja.
func (uc *DailyCloseUseCase) ListRecent(_ context.Context, limit int) ([]dto.DailyCloseSummaryDTO, error) {
	if limit <= 0 || limit > 100 {
		limit = 30
	}
	closes, err := uc.closeRepo.ListRecent(limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DailyCloseSummaryDTO, 0, len(closes))
	for _, c := range closes {
		out = append(out, dto.DailyCloseSummaryDTO{
			ID:                      c.ID,
			CloseDate:               c.CloseDate.Format("2006-01-02"),
			PosnetTotal:             c.PosnetTotal,
			ExpectedCash:            c.ExpectedCash,
			ActualCash:              c.ActualCash,
			Difference:              c.Difference,
			GeneralStockDeductionKg: c.GeneralStockDeductionKg,
			Notes:                   c.Notes,
			ClosedBy:                c.ClosedBy,
		})
	}
	return out, nil
}
