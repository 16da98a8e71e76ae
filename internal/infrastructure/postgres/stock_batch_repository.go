package postgres

import (
	"context"
	"fmt"

	"github.com/secretosdecampo/carniceria-api/internal/domain/entity"
	"github.com/secretosdecampo/carniceria-api/internal/domain/repository"
)

var _ repository.StockBatchRepository = (*StockBatchRepo)(nil)

// StockBatchRepo implementación sobre PostgreSQL (usable con pool o tx).
type StockBatchRepo struct {
	q Querier
}

// NewStockBatchRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockBatchRepository(q Querier) *StockBatchRepo {
	return &StockBatchRepo{q: q}
}

// Create persiste el lote proyectado.
func (r *StockBatchRepo) Create(batch *entity.StockBatch) error {
	query := `
		INSERT INTO stock_batches (id, category_id, range_id, template_id, supplier_id, unit_count, total_weight, total_cost, status, created_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		batch.ID, batch.CategoryID, batch.RangeID, batch.TemplateID, batch.SupplierID,
		batch.UnitCount, batch.TotalWeight, batch.TotalCost, batch.Status, batch.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock batch: %w", err)
	}
	return nil
}

// CreateProjections persiste las proyecciones por corte del lote.
func (r *StockBatchRepo) CreateProjections(projections []entity.StockBatchProjection) error {
	ctx := context.Background()
	for _, p := range projections {
		_, err := r.q.Exec(ctx,
			`INSERT INTO stock_batch_projections (id, batch_id, cut_id, estimated_kg, percentage_used)
			 VALUES ($1, $2, $3, $4, $5)`,
			p.ID, p.BatchID, p.CutID, p.EstimatedKg, p.PercentageUsed,
		)
		if err != nil {
			return fmt.Errorf("insert batch projection: %w", err)
		}
	}
	return nil
}

// ListRecent lotes recientes, más nuevo primero.
func (r *StockBatchRepo) ListRecent(limit int) ([]*entity.StockBatch, error) {
	query := `
		SELECT id, category_id, range_id, template_id, COALESCE(supplier_id, ''), unit_count, total_weight, total_cost, status, created_at
		FROM stock_batches ORDER BY created_at DESC LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list stock batches: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockBatch
	for rows.Next() {
		var b entity.StockBatch
		if err := rows.Scan(&b.ID, &b.CategoryID, &b.RangeID, &b.TemplateID, &b.SupplierID,
			&b.UnitCount, &b.TotalWeight, &b.TotalCost, &b.Status, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock batch: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}
