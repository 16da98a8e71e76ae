package yield

import (
	"context"

	"github.com/secretosdecampo/carniceria-api/internal/domain/repository"
)

// LearningTxRunner ejecuta la pasada de aprendizaje dentro de una transacción:
// alta del desposte real + reemplazo de items + marca de aplicado caen o
// persisten como una sola unidad.
type LearningTxRunner interface {
	RunLearning(ctx context.Context, fn func(
		templateRepo repository.YieldTemplateRepository,
		realYieldRepo repository.RealYieldRepository,
	) error) error
}

// ProjectionTxRunner ejecuta la proyección de un lote dentro de una transacción:
// lote + proyecciones por corte + incrementos de inventario, todo o nada.
type ProjectionTxRunner interface {
	RunProjection(ctx context.Context, fn func(
		batchRepo repository.StockBatchRepository,
		inventoryRepo repository.CutInventoryRepository,
	) error) error
}
