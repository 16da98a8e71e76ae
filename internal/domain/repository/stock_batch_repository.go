package repository

import "github.com/secretosdecampo/carniceria-api/internal/domain/entity"

// StockBatchRepository puerto de persistencia para lotes proyectados.
type StockBatchRepository interface {
	Create(batch *entity.StockBatch) error
	CreateProjections(projections []entity.StockBatchProjection) error
	ListRecent(limit int) ([]*entity.StockBatch, error)
}
