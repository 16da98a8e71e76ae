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

var _ repository.GeneralStockRepository = (*GeneralStockRepo)(nil)

// GeneralStockRepo implementación sobre PostgreSQL (usable con pool o tx).
type GeneralStockRepo struct {
	q Querier
}

// NewGeneralStockRepository construye el adaptador. Pasar pool o tx (Querier).
func NewGeneralStockRepository(q Querier) *GeneralStockRepo {
	return &GeneralStockRepo{q: q}
}

const generalStockColumns = `id, batch_description, animal_category, COALESCE(category_id, ''), COALESCE(supplier_id, ''), entry_date, unit_count, total_weight_kg, bone_percent, fat_percent, merma_percent, sellable_kg, sold_kg, status, notes, created_at`

// Create persiste una tropa nueva.
func (r *GeneralStockRepo) Create(stock *entity.GeneralStock) error {
	query := `
		INSERT INTO general_stock (id, batch_description, animal_category, category_id, supplier_id, entry_date, unit_count, total_weight_kg, bone_percent, fat_percent, merma_percent, sellable_kg, sold_kg, status, notes, created_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		stock.ID, stock.BatchDescription, stock.AnimalCategory, stock.CategoryID, stock.SupplierID,
		stock.EntryDate, stock.UnitCount, stock.TotalWeightKg, stock.BonePercent, stock.FatPercent,
		stock.MermaPercent, stock.SellableKg, stock.SoldKg, stock.Status, stock.Notes, stock.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert general stock: %w", err)
	}
	return nil
}

// GetByID obtiene una tropa por ID.
func (r *GeneralStockRepo) GetByID(id string) (*entity.GeneralStock, error) {
	query := `SELECT ` + generalStockColumns + ` FROM general_stock WHERE id = $1`
	var s entity.GeneralStock
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.BatchDescription, &s.AnimalCategory, &s.CategoryID, &s.SupplierID,
		&s.EntryDate, &s.UnitCount, &s.TotalWeightKg, &s.BonePercent, &s.FatPercent,
		&s.MermaPercent, &s.SellableKg, &s.SoldKg, &s.Status, &s.Notes, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get general stock: %w", err)
	}
	return &s, nil
}

// List todas las tropas, activas primero y dentro de cada estado la más nueva arriba.
func (r *GeneralStockRepo) List() ([]*entity.GeneralStock, error) {
	query := `SELECT ` + generalStockColumns + ` FROM general_stock ORDER BY status ASC, entry_date DESC`
	return r.queryMany(query)
}

// ListActiveFIFO tropas activas ordenadas por entry_date ascendente (la más
// vieja primero) con bloqueo de fila: el recorrido FIFO del cierre no puede
// competir con otro escritor sobre las mismas tropas.
func (r *GeneralStockRepo) ListActiveFIFO() ([]*entity.GeneralStock, error) {
	query := `SELECT ` + generalStockColumns + ` FROM general_stock
		WHERE status = 'active' ORDER BY entry_date ASC FOR UPDATE`
	return r.queryMany(query)
}

func (r *GeneralStockRepo) queryMany(query string, args ...any) ([]*entity.GeneralStock, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list general stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.GeneralStock
	for rows.Next() {
		var s entity.GeneralStock
		if err := rows.Scan(&s.ID, &s.BatchDescription, &s.AnimalCategory, &s.CategoryID, &s.SupplierID,
			&s.EntryDate, &s.UnitCount, &s.TotalWeightKg, &s.BonePercent, &s.FatPercent,
			&s.MermaPercent, &s.SellableKg, &s.SoldKg, &s.Status, &s.Notes, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan general stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// UpdateSold fija sold_kg y status de la tropa (deducción o reversión).
func (r *GeneralStockRepo) UpdateSold(id string, soldKg decimal.Decimal, status string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE general_stock SET sold_kg = $2, status = $3 WHERE id = $1`,
		id, soldKg, status,
	)
	if err != nil {
		return fmt.Errorf("update general stock sold: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update general stock sold: tropa %s inexistente", id)
	}
	return nil
}
