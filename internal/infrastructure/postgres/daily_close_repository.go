package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/secretosdecampo/carniceria-api/internal/domain/entity"
	"github.com/secretosdecampo/carniceria-api/internal/domain/repository"
)

var _ repository.DailyCloseRepository = (*DailyCloseRepo)(nil)

// DailyCloseRepo implementación sobre PostgreSQL (usable con pool o tx).
type DailyCloseRepo struct {
	q Querier
}

// NewDailyCloseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDailyCloseRepository(q Querier) *DailyCloseRepo {
	return &DailyCloseRepo{q: q}
}

const dailyCloseColumns = `id, close_date, posnet_total, expected_cash, actual_cash, difference, scale_readings, general_stock_deduction_kg, notes, closed_by, created_at, updated_at`

// UpsertByDate crea o actualiza el cierre del día. El constraint único sobre
// close_date es el que garantiza un solo cierre (y un solo escritor) por día.
func (r *DailyCloseRepo) UpsertByDate(close *entity.DailyCashClose) (*entity.DailyCashClose, error) {
	if close.ID == "" {
		close.ID = uuid.New().String()
	}
	query := `
		INSERT INTO daily_cash_closes (id, close_date, posnet_total, expected_cash, actual_cash, difference, scale_readings, general_stock_deduction_kg, notes, closed_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now(), now())
		ON CONFLICT (close_date)
		DO UPDATE SET posnet_total = EXCLUDED.posnet_total,
			expected_cash = EXCLUDED.expected_cash,
			actual_cash = EXCLUDED.actual_cash,
			difference = EXCLUDED.difference,
			scale_readings = EXCLUDED.scale_readings,
			general_stock_deduction_kg = EXCLUDED.general_stock_deduction_kg,
			notes = EXCLUDED.notes,
			closed_by = EXCLUDED.closed_by,
			updated_at = now()
		RETURNING ` + dailyCloseColumns
	return r.scanOne(r.q.QueryRow(context.Background(), query,
		close.ID, close.CloseDate, close.PosnetTotal, close.ExpectedCash, close.ActualCash,
		close.Difference, close.ScaleReadings, close.GeneralStockDeductionKg, close.Notes, close.ClosedBy,
	))
}

// GetByDate obtiene el cierre de una fecha.
func (r *DailyCloseRepo) GetByDate(date time.Time) (*entity.DailyCashClose, error) {
	query := `SELECT ` + dailyCloseColumns + ` FROM daily_cash_closes WHERE close_date = $1`
	close, err := r.scanOne(r.q.QueryRow(context.Background(), query, date))
	if err != nil {
		return nil, err
	}
	return close, nil
}

func (r *DailyCloseRepo) scanOne(row pgx.Row) (*entity.DailyCashClose, error) {
	var c entity.DailyCashClose
	err := row.Scan(
		&c.ID, &c.CloseDate, &c.PosnetTotal, &c.ExpectedCash, &c.ActualCash, &c.Difference,
		&c.ScaleReadings, &c.GeneralStockDeductionKg, &c.Notes, &c.ClosedBy, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get daily close: %w", err)
	}
	return &c, nil
}

// ListRecent cierres recientes, más nuevo primero.
func (r *DailyCloseRepo) ListRecent(limit int) ([]*entity.DailyCashClose, error) {
	query := `SELECT ` + dailyCloseColumns + ` FROM daily_cash_closes ORDER BY close_date DESC LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list daily closes: %w", err)
	}
	defer rows.Close()
	var list []*entity.DailyCashClose
	for rows.Next() {
		var c entity.DailyCashClose
		if err := rows.Scan(&c.ID, &c.CloseDate, &c.PosnetTotal, &c.ExpectedCash, &c.ActualCash, &c.Difference,
			&c.ScaleReadings, &c.GeneralStockDeductionKg, &c.Notes, &c.ClosedBy, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan daily close: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
