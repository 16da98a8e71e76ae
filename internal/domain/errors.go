package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrConflict     = errors.New("conflicto con el estado actual")

	// Errores de configuración: nunca se resuelven adivinando un valor por defecto.
	ErrRangeNotFound    = errors.New("no hay rango de peso para el peso promedio")
	ErrRangeOverlap     = errors.New("el rango de peso se superpone con uno existente")
	ErrTemplateNotFound = errors.New("no hay plantilla activa para la categoría y rango")
	ErrNoTemplateItems  = errors.New("la plantilla no tiene cortes definidos")

	// Violaciones de consistencia: indican un bug, se abortan ruidosamente.
	ErrPercentageSum = errors.New("la suma de porcentajes de la plantilla no es 100.00")
	ErrBatchNotFound = errors.New("la deducción referencia una tropa inexistente")
)
