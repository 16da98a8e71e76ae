package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/secretosdecampo/carniceria-api/internal/application/dto"
	appyield "github.com/secretosdecampo/carniceria-api/internal/application/yield"
	"github.com/secretosdecampo/carniceria-api/internal/domain"
)

// BatchHandler maneja la proyección de lotes de compra.
type BatchHandler struct {
	uc *appyield.ProjectBatchUseCase
}

// NewBatchHandler construye el handler de lotes.
func NewBatchHandler(uc *appyield.ProjectBatchUseCase) *BatchHandler {
	return &BatchHandler{uc: uc}
}

// Project godoc
// @Summary      Proyectar una compra de medias reses
// @Description  Resuelve el rango por peso promedio, aplica la plantilla activa
//               y persiste lote + kg estimados por corte. La varianza de
//               redondeo viaja en la respuesta, no se redistribuye.
// @Tags         batches
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProjectBatchRequest  true  "categoryId, unitCount, totalWeight, totalCost"
// @Success      201   {object}  dto.ProjectionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/batches [post]
func (h *BatchHandler) Project(c *fiber.Ctx) error {
	var in dto.ProjectBatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Project(c.Context(), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "categoryId, unitCount y totalWeight positivos son requeridos"})
		}
		if err == domain.ErrRangeNotFound {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "RANGE_NOT_FOUND", Message: "no hay rango de peso configurado para el peso promedio"})
		}
		if err == domain.ErrTemplateNotFound {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "TEMPLATE_NOT_FOUND", Message: "no hay plantilla activa para esta categoría y rango"})
		}
		if err == domain.ErrNoTemplateItems {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "NO_TEMPLATE_ITEMS", Message: "la plantilla no tiene items"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar lotes proyectados
// @Tags         batches
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Máximo de lotes (default 30)"
// @Success      200  {array}  dto.StockBatchSummaryDTO
// @Router       /api/batches [get]
func (h *BatchHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListRecent(c.Context(), c.QueryInt("limit", 30))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
