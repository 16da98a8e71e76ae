package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/secretosdecampo/carniceria-api/internal/application/catalog"
	"github.com/secretosdecampo/carniceria-api/internal/application/dto"
	"github.com/secretosdecampo/carniceria-api/internal/domain"
)

// TemplateHandler maneja las plantillas de rendimiento.
type TemplateHandler struct {
	uc *catalog.TemplateUseCase
}

// NewTemplateHandler construye el handler de plantillas.
func NewTemplateHandler(uc *catalog.TemplateUseCase) *TemplateHandler {
	return &TemplateHandler{uc: uc}
}

// List godoc
// @Summary      Listar plantillas de rendimiento
// @Tags         templates
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TemplateResponse
// @Router       /api/catalog/templates [get]
func (h *TemplateHandler) List(c *fiber.Ctx) error {
	templates, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.TemplateResponse, 0, len(templates))
	for _, t := range templates {
		resp, err := h.uc.ToTemplateResponse(t)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		out = append(out, *resp)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener plantilla con items
// @Tags         templates
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la plantilla"
// @Success      200  {object}  dto.TemplateResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/catalog/templates/{id} [get]
func (h *TemplateHandler) GetByID(c *fiber.Ctx) error {
	template, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "plantilla no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	resp, err := h.uc.ToTemplateResponse(template)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}

// ReplaceItems godoc
// @Summary      Reemplazar items de una plantilla
// @Description  Reemplazo completo y atómico. La suma debe quedar en 100±0.01 y
//               version debe coincidir con la fila (chequeo optimista).
// @Tags         templates
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la plantilla"
// @Param        body  body  dto.ReplaceTemplateItemsRequest  true  "version, items"
// @Success      200   {object}  dto.TemplateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/catalog/templates/{id}/items [put]
func (h *TemplateHandler) ReplaceItems(c *fiber.Ctx) error {
	var in dto.ReplaceTemplateItemsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	template, err := h.uc.ReplaceItems(c.Context(), c.Params("id"), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "items es requerido y los porcentajes no pueden ser negativos"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "plantilla o corte no encontrado"})
		}
		if err == domain.ErrPercentageSum {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "PERCENTAGE_SUM", Message: "la suma de porcentajes debe ser 100 ± 0.01"})
		}
		if err == domain.ErrConflict {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "VERSION_CONFLICT", Message: "la plantilla fue modificada por otro proceso; recargue e intente de nuevo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	resp, err := h.uc.ToTemplateResponse(template)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}
