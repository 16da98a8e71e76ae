package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/secretosdecampo/carniceria-api/internal/application/dto"
	"github.com/secretosdecampo/carniceria-api/internal/domain"
	"github.com/secretosdecampo/carniceria-api/internal/domain/entity"
	"github.com/secretosdecampo/carniceria-api/internal/domain/repository"
	domyield "github.com/secretosdecampo/carniceria-api/internal/domain/yield"
	"github.com/secretosdecampo/carniceria-api/pkg/normalize"
)

// UseCase administración del catálogo: categorías, rangos de peso y cortes.
type UseCase struct {
	categoryRepo repository.AnimalCategoryRepository
	rangeRepo    repository.WeightRangeRepository
	cutRepo      repository.CutRepository
}

// NewUseCase construye el caso de uso de catálogo.
func NewUseCase(
	categoryRepo repository.AnimalCategoryRepository,
	rangeRepo repository.WeightRangeRepository,
	cutRepo repository.CutRepository,
) *UseCase {
	return &UseCase{categoryRepo: categoryRepo, rangeRepo: rangeRepo, cutRepo: cutRepo}
}

// CreateCategory alta de categoría animal (identidad por nombre).
func (uc *UseCase) CreateCategory(_ context.Context, in dto.CreateCategoryRequest) (*entity.AnimalCategory, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.categoryRepo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	category := &entity.AnimalCategory{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Active:      true,
		CreatedAt:   time.Now(),
	}
	if err := uc.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// ListCategories lista categorías (activeOnly filtra desactivadas).
func (uc *UseCase) ListCategories(_ context.Context, activeOnly bool) ([]*entity.AnimalCategory, error) {
	return uc.categoryRepo.List(activeOnly)
}

// DeactivateCategory baja lógica: las plantillas que la referencian siguen intactas.
func (uc *UseCase) DeactivateCategory(_ context.Context, id string) error {
	category, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	return uc.categoryRepo.Deactivate(id)
}

// CreateWeightRange alta de rango validando superposición contra los existentes.
// La validación corre al configurar, no al consultar: un catálogo mal armado se
// rechaza acá en vez de producir resoluciones ambiguas después.
func (uc *UseCase) CreateWeightRange(_ context.Context, in dto.CreateWeightRangeRequest) (*entity.WeightRange, error) {
	if in.Label == "" {
		return nil, domain.ErrInvalidInput
	}
	candidate := entity.WeightRange{
		ID:        uuid.New().String(),
		MinWeight: in.MinWeight,
		MaxWeight: in.MaxWeight,
		Label:     in.Label,
	}
	existing, err := uc.rangeRepo.List()
	if err != nil {
		return nil, err
	}
	if err := domyield.ValidateNoOverlap(existing, candidate); err != nil {
		return nil, err
	}
	if err := uc.rangeRepo.Create(&candidate); err != nil {
		return nil, err
	}
	return &candidate, nil
}

// ListWeightRanges rangos ordenados por peso mínimo.
func (uc *UseCase) ListWeightRanges(_ context.Context) ([]entity.WeightRange, error) {
	return uc.rangeRepo.List()
}

// CreateCut alta de corte con rol explícito.
func (uc *UseCase) CreateCut(_ context.Context, in dto.CreateCutRequest) (*entity.Cut, error) {
	if in.Name == "" || !entity.ValidCutRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.cutRepo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	cut := &entity.Cut{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Description:  in.Description,
		Role:         in.Role,
		DisplayOrder: in.DisplayOrder,
		CreatedAt:    time.Now(),
	}
	if err := uc.cutRepo.Create(cut); err != nil {
		return nil, err
	}
	return cut, nil
}

// ListCuts lista cortes; search filtra por nombre ignorando acentos y mayúsculas
// ("vacio" encuentra "Vacío").
func (uc *UseCase) ListCuts(_ context.Context, search string) ([]*entity.Cut, error) {
	cuts, err := uc.cutRepo.List()
	if err != nil {
		return nil, err
	}
	if search == "" {
		return cuts, nil
	}
	filtered := make([]*entity.Cut, 0, len(cuts))
	for _, c := range cuts {
		if normalize.Contains(c.Name, search) {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}
