package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/secretosdecampo/carniceria-api/internal/domain"
	"github.com/secretosdecampo/carniceria-api/internal/domain/entity"
	"github.com/secretosdecampo/carniceria-api/internal/domain/repository"
)

var _ repository.CutRepository = (*CutRepo)(nil)

// CutRepo implementación sobre PostgreSQL (usable con pool o tx).
type CutRepo struct {
	q Querier
}

// NewCutRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCutRepository(q Querier) *CutRepo {
	return &CutRepo{q: q}
}

// Create persiste un corte nuevo.
func (r *CutRepo) Create(cut *entity.Cut) error {
	query := `
		INSERT INTO cuts (id, name, description, role, display_order, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		cut.ID, cut.Name, cut.Description, cut.Role, cut.DisplayOrder, cut.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cut: %w", err)
	}
	return nil
}

// GetByID obtiene un corte por ID.
func (r *CutRepo) GetByID(id string) (*entity.Cut, error) {
	return r.getOne(`SELECT id, name, description, role, display_order, created_at FROM cuts WHERE id = $1`, id)
}

// GetByName obtiene un corte por nombre (único).
func (r *CutRepo) GetByName(name string) (*entity.Cut, error) {
	return r.getOne(`SELECT id, name, description, role, display_order, created_at FROM cuts WHERE name = $1`, name)
}

func (r *CutRepo) getOne(query string, arg any) (*entity.Cut, error) {
	var c entity.Cut
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&c.ID, &c.Name, &c.Description, &c.Role, &c.DisplayOrder, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cut: %w", err)
	}
	return &c, nil
}

// List lista todos los cortes por orden de exhibición.
func (r *CutRepo) List() ([]*entity.Cut, error) {
	query := `SELECT id, name, description, role, display_order, created_at FROM cuts ORDER BY display_order ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list cuts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cut
	for rows.Next() {
		var c entity.Cut
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Role, &c.DisplayOrder, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan cut: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// ExistAll verifica que todos los IDs existan (integridad referencial de items).
func (r *CutRepo) ExistAll(ids []string) (bool, error) {
	if len(ids) == 0 {
		return true, nil
	}
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(DISTINCT id) FROM cuts WHERE id = ANY($1)`, ids,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("count cuts: %w", err)
	}
	distinct := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		distinct[id] = struct{}{}
	}
	return count == len(distinct), nil
}
