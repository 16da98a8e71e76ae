package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/secretosdecampo/carniceria-api/internal/domain/entity"
	"github.com/secretosdecampo/carniceria-api/internal/domain/repository"
)

var _ repository.GeneralStockDeductionRepository = (*GeneralStockDeductionRepo)(nil)

// GeneralStockDeductionRepo implementación sobre PostgreSQL (usable con pool o tx).
type GeneralStockDeductionRepo struct {
	q Querier
}

// NewGeneralStockDeductionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewGeneralStockDeductionRepository(q Querier) *GeneralStockDeductionRepo {
	return &GeneralStockDeductionRepo{q: q}
}

// Create persiste una deducción de un cierre sobre una tropa.
func (r *GeneralStockDeductionRepo) Create(d *entity.GeneralStockDeduction) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	query := `
		INSERT INTO general_stock_deductions (id, general_stock_id, daily_close_id, deducted_kg, deduction_date, created_at)
		VALUES ($1, $2, $3, $4, $5, now())`
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.GeneralStockID, d.DailyCloseID, d.DeductedKg, d.DeductionDate,
	)
	if err != nil {
		return fmt.Errorf("insert general stock deduction: %w", err)
	}
	return nil
}

// ListByClose deducciones registradas para un cierre (para revertirlas).
func (r *GeneralStockDeductionRepo) ListByClose(dailyCloseID string) ([]*entity.GeneralStockDeduction, error) {
	query := `
		SELECT id, general_stock_id, daily_close_id, deducted_kg, deduction_date, created_at
		FROM general_stock_deductions WHERE daily_close_id = $1`
	rows, err := r.q.Query(context.Background(), query, dailyCloseID)
	if err != nil {
		return nil, fmt.Errorf("list deductions by close: %w", err)
	}
	defer rows.Close()
	var list []*entity.GeneralStockDeduction
	for rows.Next() {
		var d entity.GeneralStockDeduction
		if err := rows.Scan(&d.ID, &d.GeneralStockID, &d.DailyCloseID, &d.DeductedKg, &d.DeductionDate, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan deduction: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// DeleteByClose elimina en bloque las deducciones de un cierre (re-cierre).
func (r *GeneralStockDeductionRepo) DeleteByClose(dailyCloseID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM general_stock_deductions WHERE daily_close_id = $1`, dailyCloseID)
	if err != nil {
		return fmt.Errorf("delete deductions by close: %w", err)
	}
	return nil
}
