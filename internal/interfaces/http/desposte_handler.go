package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/secretosdecampo/carniceria-api/internal/application/dto"
	appyield "github.com/secretosdecampo/carniceria-api/internal/application/yield"
	"github.com/secretosdecampo/carniceria-api/internal/domain"
)

// DesposteHandler maneja el registro de despostes reales y su historial.
type DesposteHandler struct {
	uc *appyield.RecordRealYieldUseCase
}

// NewDesposteHandler construye el handler de despostes.
func NewDesposteHandler(uc *appyield.RecordRealYieldUseCase) *DesposteHandler {
	return &DesposteHandler{uc: uc}
}

// Record godoc
// @Summary      Registrar un desposte real
// @Description  Persiste la evidencia del desposte y, si hay plantilla activa
//               para la categoría y rango, la actualiza vía media móvil
//               exponencial. Sin plantilla el registro queda con applied=false.
// @Tags         desposte
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordRealYieldRequest  true  "categoryId, totalWeight, items"
// @Success      201   {object}  dto.RecordRealYieldResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/desposte [post]
func (h *DesposteHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordRealYieldRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Record(c.Context(), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "categoryId, totalWeight positivo e items con kg positivos son requeridos"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "algún corte no existe"})
		}
		if err == domain.ErrRangeNotFound {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "RANGE_NOT_FOUND", Message: "no hay rango de peso configurado para este peso"})
		}
		if err == domain.ErrPercentageSum {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "PERCENTAGE_SUM", Message: "la actualización dejó la suma fuera de 100 ± 0.01"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// History godoc
// @Summary      Historial de despostes reales
// @Tags         desposte
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Máximo de registros (default 30)"
// @Success      200  {array}  dto.RealYieldHistoryDTO
// @Router       /api/desposte [get]
func (h *DesposteHandler) History(c *fiber.Ctx) error {
	out, err := h.uc.History(c.Context(), c.QueryInt("limit", 30))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
