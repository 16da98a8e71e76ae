package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/secretosdecampo/carniceria-api/internal/application/catalog"
	"github.com/secretosdecampo/carniceria-api/internal/application/dto"
	"github.com/secretosdecampo/carniceria-api/internal/domain"
	"github.com/secretosdecampo/carniceria-api/internal/domain/entity"
)

// CatalogHandler maneja categorías, rangos de peso y cortes.
type CatalogHandler struct {
	uc *catalog.UseCase
}

// NewCatalogHandler construye el handler de catálogo.
func NewCatalogHandler(uc *catalog.UseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// CreateCategory godoc
// @Summary      Crear categoría animal
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryRequest  true  "name, description"
// @Success      201   {object}  dto.CategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/catalog/categories [post]
func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	category, err := h.uc.CreateCategory(c.Context(), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe una categoría con ese nombre"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(toCategoryResponse(category))
}

// ListCategories godoc
// @Summary      Listar categorías animales
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        active  query  bool  false  "Solo activas"
// @Success      200  {array}  dto.CategoryResponse
// @Router       /api/catalog/categories [get]
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	activeOnly := c.QueryBool("active", false)
	categories, err := h.uc.ListCategories(c.Context(), activeOnly)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		out = append(out, toCategoryResponse(cat))
	}
	return c.JSON(out)
}

// DeactivateCategory godoc
// @Summary      Desactivar categoría (baja lógica)
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la categoría"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/catalog/categories/{id} [delete]
func (h *CatalogHandler) DeactivateCategory(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.DeactivateCategory(c.Context(), id); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "categoría no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": "categoría desactivada"})
}

// CreateWeightRange godoc
// @Summary      Crear rango de peso
// @Description  Valida que el rango no se superponga con los existentes.
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWeightRangeRequest  true  "minWeight, maxWeight, label"
// @Success      201   {object}  dto.WeightRangeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/catalog/weight-ranges [post]
func (h *CatalogHandler) CreateWeightRange(c *fiber.Ctx) error {
	var in dto.CreateWeightRangeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	rng, err := h.uc.CreateWeightRange(c.Context(), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "label es requerido y minWeight debe ser menor que maxWeight"})
		}
		if err == domain.ErrRangeOverlap {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "RANGE_OVERLAP", Message: "el rango se superpone con uno existente"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(toWeightRangeResponse(*rng))
}

// ListWeightRanges godoc
// @Summary      Listar rangos de peso
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.WeightRangeResponse
// @Router       /api/catalog/weight-ranges [get]
func (h *CatalogHandler) ListWeightRanges(c *fiber.Ctx) error {
	ranges, err := h.uc.ListWeightRanges(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.WeightRangeResponse, 0, len(ranges))
	for _, r := range ranges {
		out = append(out, toWeightRangeResponse(r))
	}
	return c.JSON(out)
}

// CreateCut godoc
// @Summary      Crear corte
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCutRequest  true  "name, role (sellable|bone|fat|trim), displayOrder"
// @Success      201   {object}  dto.CutResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/catalog/cuts [post]
func (h *CatalogHandler) CreateCut(c *fiber.Ctx) error {
	var in dto.CreateCutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	cut, err := h.uc.CreateCut(c.Context(), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido y role debe ser sellable, bone, fat o trim"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un corte con ese nombre"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(toCutResponse(cut))
}

// ListCuts godoc
// @Summary      Listar cortes
// @Description  search filtra por nombre ignorando acentos y mayúsculas.
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Filtro por nombre"
// @Success      200  {array}  dto.CutResponse
// @Router       /api/catalog/cuts [get]
func (h *CatalogHandler) ListCuts(c *fiber.Ctx) error {
	cuts, err := h.uc.ListCuts(c.Context(), c.Query("search"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.CutResponse, 0, len(cuts))
	for _, cut := range cuts {
		out = append(out, toCutResponse(cut))
	}
	return c.JSON(out)
}

func toCategoryResponse(cat *entity.AnimalCategory) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:          cat.ID,
		Name:        cat.Name,
		Description: cat.Description,
		Active:      cat.Active,
	}
}

func toWeightRangeResponse(r entity.WeightRange) dto.WeightRangeResponse {
	return dto.WeightRangeResponse{
		ID:        r.ID,
		MinWeight: r.MinWeight,
		MaxWeight: r.MaxWeight,
		Label:     r.Label,
	}
}

func toCutResponse(cut *entity.Cut) dto.CutResponse {
	return dto.CutResponse{
		ID:           cut.ID,
		Name:         cut.Name,
		Description:  cut.Description,
		Role:         cut.Role,
		DisplayOrder: cut.DisplayOrder,
	}
}
