package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/secretosdecampo/carniceria-api/internal/domain/entity"
	"github.com/secretosdecampo/carniceria-api/internal/domain/repository"
)

var _ repository.WeightRangeRepository = (*WeightRangeRepo)(nil)

// WeightRangeRepo implementación sobre PostgreSQL (usable con pool o tx).
type WeightRangeRepo struct {
	q Querier
}

// NewWeightRangeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWeightRangeRepository(q Querier) *WeightRangeRepo {
	return &WeightRangeRepo{q: q}
}

// Create persiste un rango de peso.
func (r *WeightRangeRepo) Create(wr *entity.WeightRange) error {
	query := `
		INSERT INTO weight_ranges (id, min_weight, max_weight, label)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, wr.ID, wr.MinWeight, wr.MaxWeight, wr.Label)
	if err != nil {
		return fmt.Errorf("insert weight range: %w", err)
	}
	return nil
}

// GetByID obtiene un rango por ID.
func (r *WeightRangeRepo) GetByID(id string) (*entity.WeightRange, error) {
	query := `SELECT id, min_weight, max_weight, label FROM weight_ranges WHERE id = $1`
	var wr entity.WeightRange
	err := r.q.QueryRow(context.Background(), query, id).Scan(&wr.ID, &wr.MinWeight, &wr.MaxWeight, &wr.Label)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get weight range: %w", err)
	}
	return &wr, nil
}

// List devuelve los rangos ordenados por peso mínimo ascendente.
func (r *WeightRangeRepo) List() ([]entity.WeightRange, error) {
	query := `SELECT id, min_weight, max_weight, label FROM weight_ranges ORDER BY min_weight ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list weight ranges: %w", err)
	}
	defer rows.Close()
	var list []entity.WeightRange
	for rows.Next() {
		var wr entity.WeightRange
		if err := rows.Scan(&wr.ID, &wr.MinWeight, &wr.MaxWeight, &wr.Label); err != nil {
			return nil, fmt.Errorf("scan weight range: %w", err)
		}
		list = append(list, wr)
	}
	return list, rows.Err()
}
