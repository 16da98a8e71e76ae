package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/secretosdecampo/carniceria-api/internal/application/generalstock"
	appyield "github.com/secretosdecampo/carniceria-api/internal/application/yield"
	"github.com/secretosdecampo/carniceria-api/internal/domain/repository"
)

// Ensure TxRunner implements the application ports.
var _ appyield.LearningTxRunner = (*TxRunner)(nil)
var _ appyield.ProjectionTxRunner = (*TxRunner)(nil)
var _ generalstock.CloseTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunLearning transacción del motor de aprendizaje: desposte real + reemplazo
// de items de plantilla, Commit o Rollback como unidad.
func (r *TxRunner) RunLearning(ctx context.Context, fn func(
	templateRepo repository.YieldTemplateRepository,
	realYieldRepo repository.RealYieldRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewYieldTemplateRepository(tx), NewRealYieldRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunProjection transacción de proyección de lote: lote + proyecciones +
// incrementos de inventario por corte.
func (r *TxRunner) RunProjection(ctx context.Context, fn func(
	batchRepo repository.StockBatchRepository,
	inventoryRepo repository.CutInventoryRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewStockBatchRepository(tx), NewCutInventoryRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunDailyClose transacción del cierre diario: reversión + reaplicación FIFO.
func (r *TxRunner) RunDailyClose(ctx context.Context, fn func(
	stockRepo repository.GeneralStockRepository,
	deductionRepo repository.GeneralStockDeductionRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewGeneralStockRepository(tx), NewGeneralStockDeductionRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
