package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/secretosdecampo/carniceria-api/internal/domain/entity"
	"github.com/secretosdecampo/carniceria-api/internal/domain/repository"
)

var _ repository.CutInventoryRepository = (*CutInventoryRepo)(nil)

// CutInventoryRepo implementación sobre PostgreSQL (usable con pool o tx).
type CutInventoryRepo struct {
	q Querier
}

// NewCutInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCutInventoryRepository(q Querier) *CutInventoryRepo {
	return &CutInventoryRepo{q: q}
}

// Get obtiene el inventario de un corte; sin fila devuelve cantidad cero.
func (r *CutInventoryRepo) Get(cutID string) (*entity.CutInventory, error) {
	query := `SELECT cut_id, current_qty, min_stock_alert, updated_at FROM cut_inventory WHERE cut_id = $1`
	var inv entity.CutInventory
	err := r.q.QueryRow(context.Background(), query, cutID).Scan(
		&inv.CutID, &inv.CurrentQty, &inv.MinStockAlert, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.CutInventory{CutID: cutID, CurrentQty: decimal.Zero}, nil
		}
		return nil, fmt.Errorf("get cut inventory: %w", err)
	}
	return &inv, nil
}

// AddQty suma delta a los kg del corte (upsert). Se usa dentro de la
// transacción de proyección para aplicar los deltas por corte.
func (r *CutInventoryRepo) AddQty(cutID string, delta decimal.Decimal) error {
	query := `
		INSERT INTO cut_inventory (cut_id, current_qty, min_stock_alert, updated_at)
		VALUES ($1, $2, 0, now())
		ON CONFLICT (cut_id)
		DO UPDATE SET current_qty = cut_inventory.current_qty + EXCLUDED.current_qty, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, cutID, delta)
	if err != nil {
		return fmt.Errorf("add cut inventory qty: %w", err)
	}
	return nil
}

// List inventario completo por orden de exhibición del corte.
func (r *CutInventoryRepo) List() ([]*entity.CutInventory, error) {
	query := `
		SELECT ci.cut_id, ci.current_qty, ci.min_stock_alert, ci.updated_at
		FROM cut_inventory ci
		JOIN cuts c ON c.id = ci.cut_id
		ORDER BY c.display_order ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list cut inventory: %w", err)
	}
	defer rows.Close()
	var list []*entity.CutInventory
	for rows.Next() {
		var inv entity.CutInventory
		if err := rows.Scan(&inv.CutID, &inv.CurrentQty, &inv.MinStockAlert, &inv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan cut inventory: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}
