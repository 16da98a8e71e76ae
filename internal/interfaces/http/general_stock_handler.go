package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/secretosdecampo/carniceria-api/internal/application/dto"
	"github.com/secretosdecampo/carniceria-api/internal/application/generalstock"
	appyield "github.com/secretosdecampo/carniceria-api/internal/application/yield"
	"github.com/secretosdecampo/carniceria-api/internal/domain"
)

// GeneralStockHandler maneja las tropas del stock general.
type GeneralStockHandler struct {
	uc       *generalstock.CreateStockUseCase
	estimate *appyield.EstimateUseCase
}

// NewGeneralStockHandler construye el handler de stock general.
func NewGeneralStockHandler(uc *generalstock.CreateStockUseCase, estimate *appyield.EstimateUseCase) *GeneralStockHandler {
	return &GeneralStockHandler{uc: uc, estimate: estimate}
}

// Create godoc
// @Summary      Dar de alta una tropa
// @Description  Si no se indican % de hueso/grasa y hay categoryId, se estiman
//               desde la plantilla activa por rol de corte. sellableKg =
//               total * (1 - (hueso+grasa+merma)/100).
// @Tags         general-stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateGeneralStockRequest  true  "batchDescription, animalCategory, unitCount, totalWeightKg"
// @Success      201   {object}  dto.GeneralStockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/general-stock [post]
func (h *GeneralStockHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateGeneralStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	stock, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "batchDescription, animalCategory, unitCount y totalWeightKg positivos son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(generalstock.ToGeneralStockResponse(stock))
}

// List godoc
// @Summary      Listar tropas
// @Tags         general-stock
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.GeneralStockResponse
// @Router       /api/general-stock [get]
func (h *GeneralStockHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// YieldEstimate godoc
// @Summary      Preestimar % de hueso y grasa para una tropa
// @Description  Busca la plantilla activa por categoría y peso promedio y suma
//               los porcentajes por rol de corte. Sin plantilla devuelve
//               found=false para carga manual.
// @Tags         general-stock
// @Security     Bearer
// @Produce      json
// @Param        categoryId     query  string  true   "Categoría animal"
// @Param        totalWeightKg  query  number  true   "Peso total de la tropa"
// @Param        unitCount      query  int     true   "Cantidad de medias reses"
// @Param        mermaPercent   query  number  false  "Merma % (default 5)"
// @Success      200  {object}  dto.YieldEstimateResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/general-stock/yield-estimate [get]
func (h *GeneralStockHandler) YieldEstimate(c *fiber.Ctx) error {
	totalWeight, err := decimal.NewFromString(c.Query("totalWeightKg", "0"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "totalWeightKg inválido"})
	}
	merma, err := decimal.NewFromString(c.Query("mermaPercent", "5"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "mermaPercent inválido"})
	}

	out, err := h.estimate.EstimateResponse(c.Context(), c.Query("categoryId"), totalWeight, c.QueryInt("unitCount", 0), merma)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "categoryId, totalWeightKg y unitCount positivos son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
