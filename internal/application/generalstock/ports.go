package generalstock

import (
	"context"

	"github.com/secretosdecampo/carniceria-api/internal/domain/repository"
)

// CloseTxRunner ejecuta la reversión + reaplicación FIFO de un cierre dentro de
// una transacción: una aplicación parcial dejaría deducciones y tropas
// inconsistentes entre sí.
type CloseTxRunner interface {
	RunDailyClose(ctx context.Context, fn func(
		stockRepo repository.GeneralStockRepository,
		deductionRepo repository.GeneralStockDeductionRepository,
	) error) error
}
