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

var _ repository.AnimalCategoryRepository = (*AnimalCategoryRepo)(nil)

// AnimalCategoryRepo implementación sobre PostgreSQL (usable con pool o tx).
type AnimalCategoryRepo struct {
	q Querier
}

// NewAnimalCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAnimalCategoryRepository(q Querier) *AnimalCategoryRepo {
	return &AnimalCategoryRepo{q: q}
}

// Create persiste una categoría nueva.
func (r *AnimalCategoryRepo) Create(category *entity.AnimalCategory) error {
	query := `
		INSERT INTO animal_categories (id, name, description, active, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.Name, category.Description, category.Active, category.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert animal category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID.
func (r *AnimalCategoryRepo) GetByID(id string) (*entity.AnimalCategory, error) {
	return r.getOne(`SELECT id, name, description, active, created_at FROM animal_categories WHERE id = $1`, id)
}

// GetByName obtiene una categoría por nombre (identidad de negocio).
func (r *AnimalCategoryRepo) GetByName(name string) (*entity.AnimalCategory, error) {
	return r.getOne(`SELECT id, name, description, active, created_at FROM animal_categories WHERE name = $1`, name)
}

func (r *AnimalCategoryRepo) getOne(query string, arg any) (*entity.AnimalCategory, error) {
	var c entity.AnimalCategory
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&c.ID, &c.Name, &c.Description, &c.Active, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get animal category: %w", err)
	}
	return &c, nil
}

// List lista categorías; activeOnly filtra las desactivadas.
func (r *AnimalCategoryRepo) List(activeOnly bool) ([]*entity.AnimalCategory, error) {
	query := `SELECT id, name, description, active, created_at FROM animal_categories`
	if activeOnly {
		query += ` WHERE active = true`
	}
	query += ` ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list animal categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.AnimalCategory
	for rows.Next() {
		var c entity.AnimalCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Active, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan animal category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Deactivate baja lógica de la categoría.
func (r *AnimalCategoryRepo) Deactivate(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE animal_categories SET active = false WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate animal category: %w", err)
	}
	return nil
}
