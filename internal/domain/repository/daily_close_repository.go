package repository

import (
	"time"

	"github.com/secretosdecampo/carniceria-api/internal/domain/entity"
)

// DailyCloseRepository puerto de persistencia para cierres de caja.
// La unicidad por close_date la garantiza la base: un solo cierre por día.
type DailyCloseRepository interface {
	// UpsertByDate crea o actualiza el cierre del día y devuelve la fila final.
	UpsertByDate(close *entity.DailyCashClose) (*entity.DailyCashClose, error)
	GetByDate(date time.Time) (*entity.DailyCashClose, error)
	ListRecent(limit int) ([]*entity.DailyCashClose, error)
}
