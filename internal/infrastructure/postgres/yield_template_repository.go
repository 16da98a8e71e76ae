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

var _ repository.YieldTemplateRepository = (*YieldTemplateRepo)(nil)

// YieldTemplateRepo implementación sobre PostgreSQL (usable con pool o tx).
type YieldTemplateRepo struct {
	q Querier
}

// NewYieldTemplateRepository construye el adaptador. Pasar pool o tx (Querier).
func NewYieldTemplateRepository(q Querier) *YieldTemplateRepo {
	return &YieldTemplateRepo{q: q}
}

const templateColumns = `id, category_id, range_id, name, reference_weight, status, notes, version, created_at, updated_at`

// Create persiste la plantilla y sus items.
func (r *YieldTemplateRepo) Create(template *entity.YieldTemplate) error {
	ctx := context.Background()
	query := `
		INSERT INTO yield_templates (id, category_id, range_id, name, reference_weight, status, notes, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		template.ID, template.CategoryID, template.RangeID, template.Name,
		template.ReferenceWeight, template.Status, template.Notes, template.Version,
		template.CreatedAt, template.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert yield template: %w", err)
	}
	for _, item := range template.Items {
		if err := r.insertItem(ctx, item); err != nil {
			return err
		}
	}
	return nil
}

func (r *YieldTemplateRepo) insertItem(ctx context.Context, item entity.YieldTemplateItem) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO yield_template_items (id, template_id, cut_id, percentage_yield) VALUES ($1, $2, $3, $4)`,
		item.ID, item.TemplateID, item.CutID, item.PercentageYield,
	)
	if err != nil {
		return fmt.Errorf("insert template item: %w", err)
	}
	return nil
}

// GetByID obtiene una plantilla con sus items (cualquier status).
func (r *YieldTemplateRepo) GetByID(id string) (*entity.YieldTemplate, error) {
	query := `SELECT ` + templateColumns + ` FROM yield_templates WHERE id = $1`
	return r.getOne(query, id)
}

// GetActiveByCategoryAndRange obtiene la plantilla activa de un (categoría, rango).
// Draft y archived quedan fuera: no son elegibles para proyección.
func (r *YieldTemplateRepo) GetActiveByCategoryAndRange(categoryID, rangeID string) (*entity.YieldTemplate, error) {
	query := `SELECT ` + templateColumns + ` FROM yield_templates
		WHERE category_id = $1 AND range_id = $2 AND status = 'active'`
	return r.getOne(query, categoryID, rangeID)
}

func (r *YieldTemplateRepo) getOne(query string, args ...any) (*entity.YieldTemplate, error) {
	var t entity.YieldTemplate
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&t.ID, &t.CategoryID, &t.RangeID, &t.Name, &t.ReferenceWeight,
		&t.Status, &t.Notes, &t.Version, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get yield template: %w", err)
	}
	items, err := r.loadItems(t.ID)
	if err != nil {
		return nil, err
	}
	t.Items = items
	return &t, nil
}

// loadItems carga los items ordenados por display_order del corte.
func (r *YieldTemplateRepo) loadItems(templateID string) ([]entity.YieldTemplateItem, error) {
	query := `
		SELECT yti.id, yti.template_id, yti.cut_id, yti.percentage_yield
		FROM yield_template_items yti
		JOIN cuts c ON c.id = yti.cut_id
		WHERE yti.template_id = $1
		ORDER BY c.display_order ASC`
	rows, err := r.q.Query(context.Background(), query, templateID)
	if err != nil {
		return nil, fmt.Errorf("list template items: %w", err)
	}
	defer rows.Close()
	var items []entity.YieldTemplateItem
	for rows.Next() {
		var it entity.YieldTemplateItem
		if err := rows.Scan(&it.ID, &it.TemplateID, &it.CutID, &it.PercentageYield); err != nil {
			return nil, fmt.Errorf("scan template item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// List todas las plantillas con items.
func (r *YieldTemplateRepo) List() ([]*entity.YieldTemplate, error) {
	query := `SELECT ` + templateColumns + ` FROM yield_templates ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list yield templates: %w", err)
	}
	defer rows.Close()
	var list []*entity.YieldTemplate
	for rows.Next() {
		var t entity.YieldTemplate
		if err := rows.Scan(&t.ID, &t.CategoryID, &t.RangeID, &t.Name, &t.ReferenceWeight,
			&t.Status, &t.Notes, &t.Version, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan yield template: %w", err)
		}
		list = append(list, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, t := range list {
		items, err := r.loadItems(t.ID)
		if err != nil {
			return nil, err
		}
		t.Items = items
	}
	return list, nil
}

// ReplaceItems reemplaza el set completo de items con chequeo optimista de
// versión. El bump de version pisa primero la fila: si la versión cambió desde
// la lectura, RowsAffected es 0 y se retorna ErrConflict sin tocar los items.
func (r *YieldTemplateRepo) ReplaceItems(templateID string, version int, items []entity.YieldTemplateItem) error {
	ctx := context.Background()

	cmd, err := r.q.Exec(ctx,
		`UPDATE yield_templates SET version = version + 1, updated_at = now()
		 WHERE id = $1 AND version = $2`,
		templateID, version,
	)
	if err != nil {
		return fmt.Errorf("bump template version: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrConflict
	}

	if _, err := r.q.Exec(ctx, `DELETE FROM yield_template_items WHERE template_id = $1`, templateID); err != nil {
		return fmt.Errorf("delete template items: %w", err)
	}
	for _, item := range items {
		item.TemplateID = templateID
		if err := r.insertItem(ctx, item); err != nil {
			return err
		}
	}
	return nil
}
