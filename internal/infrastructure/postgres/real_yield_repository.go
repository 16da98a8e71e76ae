package postgres

import (
	"context"
	"fmt"

	"github.com/secretosdecampo/carniceria-api/internal/domain/entity"
	"github.com/secretosdecampo/carniceria-api/internal/domain/repository"
)

var _ repository.RealYieldRepository = (*RealYieldRepo)(nil)

// RealYieldRepo implementación sobre PostgreSQL (usable con pool o tx).
type RealYieldRepo struct {
	q Querier
}

// NewRealYieldRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRealYieldRepository(q Querier) *RealYieldRepo {
	return &RealYieldRepo{q: q}
}

// Create persiste el desposte real y sus items. yield_number es un serial:
// se lee de vuelta para numerar el comprobante.
func (r *RealYieldRepo) Create(ry *entity.RealYield) error {
	ctx := context.Background()
	query := `
		INSERT INTO real_yields (id, category_id, range_id, total_weight, notes, applied_to_template, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING yield_number`
	err := r.q.QueryRow(ctx, query,
		ry.ID, ry.CategoryID, ry.RangeID, ry.TotalWeight, ry.Notes, ry.AppliedToTemplate, ry.CreatedAt,
	).Scan(&ry.YieldNumber)
	if err != nil {
		return fmt.Errorf("insert real yield: %w", err)
	}
	for _, item := range ry.Items {
		_, err := r.q.Exec(ctx,
			`INSERT INTO real_yield_items (id, real_yield_id, cut_id, actual_kg, percentage_real)
			 VALUES ($1, $2, $3, $4, $5)`,
			item.ID, item.RealYieldID, item.CutID, item.ActualKg, item.PercentageReal,
		)
		if err != nil {
			return fmt.Errorf("insert real yield item: %w", err)
		}
	}
	return nil
}

// CountByCategoryAndRange cuenta observaciones para la tasa de aprendizaje.
func (r *RealYieldRepo) CountByCategoryAndRange(categoryID, rangeID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM real_yields WHERE category_id = $1 AND range_id = $2`,
		categoryID, rangeID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count real yields: %w", err)
	}
	return count, nil
}

// MarkApplied marca el registro como aplicado a la plantilla (única mutación permitida).
func (r *RealYieldRepo) MarkApplied(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE real_yields SET applied_to_template = true WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("mark real yield applied: %w", err)
	}
	return nil
}

// ListRecent despostes recientes con items, más nuevo primero.
func (r *RealYieldRepo) ListRecent(limit int) ([]*entity.RealYield, error) {
	ctx := context.Background()
	query := `
		SELECT id, yield_number, category_id, range_id, total_weight, notes, applied_to_template, created_at
		FROM real_yields ORDER BY created_at DESC LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list real yields: %w", err)
	}
	defer rows.Close()
	var list []*entity.RealYield
	for rows.Next() {
		var ry entity.RealYield
		if err := rows.Scan(&ry.ID, &ry.YieldNumber, &ry.CategoryID, &ry.RangeID,
			&ry.TotalWeight, &ry.Notes, &ry.AppliedToTemplate, &ry.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan real yield: %w", err)
		}
		list = append(list, &ry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, ry := range list {
		itemRows, err := r.q.Query(ctx, `
			SELECT ryi.id, ryi.real_yield_id, ryi.cut_id, ryi.actual_kg, ryi.percentage_real
			FROM real_yield_items ryi
			JOIN cuts c ON c.id = ryi.cut_id
			WHERE ryi.real_yield_id = $1
			ORDER BY c.display_order ASC`, ry.ID)
		if err != nil {
			return nil, fmt.Errorf("list real yield items: %w", err)
		}
		for itemRows.Next() {
			var it entity.RealYieldItem
			if err := itemRows.Scan(&it.ID, &it.RealYieldID, &it.CutID, &it.ActualKg, &it.PercentageReal); err != nil {
				itemRows.Close()
				return nil, fmt.Errorf("scan real yield item: %w", err)
			}
			ry.Items = append(ry.Items, it)
		}
		if err := itemRows.Err(); err != nil {
			itemRows.Close()
			return nil, err
		}
		itemRows.Close()
	}
	return list, nil
}
