package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/secretosdecampo/carniceria-api/internal/application/dto"
	"github.com/secretosdecampo/carniceria-api/internal/application/generalstock"
	"github.com/secretosdecampo/carniceria-api/internal/domain"
)

// DailyCloseHandler maneja el cierre de caja diario.
type DailyCloseHandler struct {
	uc *generalstock.DailyCloseUseCase
}

// NewDailyCloseHandler construye el handler de cierre.
func NewDailyCloseHandler(uc *generalstock.DailyCloseUseCase) *DailyCloseHandler {
	return &DailyCloseHandler{uc: uc}
}

// Close godoc
// @Summary      Cerrar la caja del día
// @Description  Upsert por fecha: re-cerrar el mismo día revierte las
//               deducciones previas y reaplica FIFO desde cero. El consumo de
//               balanzas que excede el stock conocido se reporta como
//               unaccountedKg, nunca se recorta.
// @Tags         daily-close
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DailyCloseRequest  true  "posnetTotal, expectedCash, actualCash, scaleReadings"
// @Success      200   {object}  dto.DailyCloseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/daily-close [post]
func (h *DailyCloseHandler) Close(c *fiber.Ctx) error {
	var in dto.DailyCloseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ClosedBy == "" {
		in.ClosedBy = GetUserID(c)
	}
	out, err := h.uc.Close(c.Context(), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date debe tener formato YYYY-MM-DD"})
		}
		if err == domain.ErrBatchNotFound {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "BATCH_NOT_FOUND", Message: "una deducción previa referencia una tropa inexistente"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListRecent godoc
// @Summary      Historial de cierres de caja
// @Tags         daily-close
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Máximo de cierres (default 30)"
// @Success      200  {array}  dto.DailyCloseSummaryDTO
// @Router       /api/daily-close [get]
func (h *DailyCloseHandler) ListRecent(c *fiber.Ctx) error {
	out, err := h.uc.ListRecent(c.Context(), c.QueryInt("limit", 30))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
