package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/secretosdecampo/carniceria-api/internal/application/dto"
	"github.com/secretosdecampo/carniceria-api/internal/domain"
	"github.com/secretosdecampo/carniceria-api/internal/domain/entity"
	"github.com/secretosdecampo/carniceria-api/internal/domain/repository"
)

var sumTolerance = decimal.NewFromFloat(0.01)

// TemplateUseCase administración de plantillas de rendimiento: el camino de
// sembrado/corrección manual hacia el mismo ReplaceItems atómico que usa el
// motor de aprendizaje.
type TemplateUseCase struct {
	templateRepo repository.YieldTemplateRepository
	cutRepo      repository.CutRepository
}

// NewTemplateUseCase construye el caso de uso.
func NewTemplateUseCase(templateRepo repository.YieldTemplateRepository, cutRepo repository.CutRepository) *TemplateUseCase {
	return &TemplateUseCase{templateRepo: templateRepo, cutRepo: cutRepo}
}

// List todas las plantillas con sus items.
func (uc *TemplateUseCase) List(_ context.Context) ([]*entity.YieldTemplate, error) {
	return uc.templateRepo.List()
}

// GetByID una plantilla con items.
func (uc *TemplateUseCase) GetByID(_ context.Context, id string) (*entity.YieldTemplate, error) {
	template, err := uc.templateRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, domain.ErrNotFound
	}
	return template, nil
}

// ReplaceItems reemplazo completo y atómico del set de items. Exige que todos
// los cutId existan, que la suma quede en 100±0.01 y que la versión enviada
// coincida con la fila (chequeo optimista contra pisadas concurrentes).
func (uc *TemplateUseCase) ReplaceItems(_ context.Context, templateID string, in dto.ReplaceTemplateItemsRequest) (*entity.YieldTemplate, error) {
	if templateID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	template, err := uc.templateRepo.GetByID(templateID)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, domain.ErrNotFound
	}

	cutIDs := make([]string, 0, len(in.Items))
	sum := decimal.Zero
	items := make([]entity.YieldTemplateItem, 0, len(in.Items))
	for _, it := range in.Items {
		if it.CutID == "" || it.PercentageYield.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		cutIDs = append(cutIDs, it.CutID)
		sum = sum.Add(it.PercentageYield)
		items = append(items, entity.YieldTemplateItem{
			ID:              uuid.New().String(),
			TemplateID:      templateID,
			CutID:           it.CutID,
			PercentageYield: it.PercentageYield,
		})
	}

	ok, err := uc.cutRepo.ExistAll(cutIDs)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound
	}
	if sum.Sub(decimal.NewFromInt(100)).Abs().GreaterThan(sumTolerance) {
		return nil, domain.ErrPercentageSum
	}

	if err := uc.templateRepo.ReplaceItems(templateID, in.Version, items); err != nil {
		return nil, err
	}
	return uc.templateRepo.GetByID(templateID)
}

// ToTemplateResponse mapea una plantilla al DTO con nombres de corte.
func (uc *TemplateUseCase) ToTemplateResponse(template *entity.YieldTemplate) (*dto.TemplateResponse, error) {
	cuts, err := uc.cutRepo.List()
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(cuts))
	for _, c := range cuts {
		names[c.ID] = c.Name
	}

	out := &dto.TemplateResponse{
		ID:            template.ID,
		CategoryID:    template.CategoryID,
		RangeID:       template.RangeID,
		Name:          template.Name,
		Status:        template.Status,
		Version:       template.Version,
		PercentageSum: template.PercentageSum(),
	}
	for _, it := range template.Items {
		out.Items = append(out.Items, dto.TemplateItemDTO{
			CutID:           it.CutID,
			CutName:         names[it.CutID],
			PercentageYield: it.PercentageYield,
		})
	}
	return out, nil
}
