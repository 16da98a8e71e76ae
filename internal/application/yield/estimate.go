package yield

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/secretosdecampo/carniceria-api/internal/application/dto"
	"github.com/secretosdecampo/carniceria-api/internal/domain"
	"github.com/secretosdecampo/carniceria-api/internal/domain/entity"
	"github.com/secretosdecampo/carniceria-api/internal/domain/repository"
	domyield "github.com/secretosdecampo/carniceria-api/internal/domain/yield"
)

// EstimateUseCase estima % de hueso y grasa para una tropa usando la plantilla
// activa. La clasificación sale del rol del corte (bone/fat), no del nombre.
type EstimateUseCase struct {
	rangeRepo    repository.WeightRangeRepository
	templateRepo repository.YieldTemplateRepository
	cutRepo      repository.CutRepository
}

// NewEstimateUseCase construye el caso de uso.
func NewEstimateUseCase(
	rangeRepo repository.WeightRangeRepository,
	templateRepo repository.YieldTemplateRepository,
	cutRepo repository.CutRepository,
) *EstimateUseCase {
	return &EstimateUseCase{rangeRepo: rangeRepo, templateRepo: templateRepo, cutRepo: cutRepo}
}

// BoneFatEstimate % estimado de hueso y grasa según plantilla.
type BoneFatEstimate struct {
	BonePercent decimal.Decimal
	FatPercent  decimal.Decimal
}

// EstimateBoneFat busca rango y plantilla para el peso promedio y suma los
// porcentajes por rol. Sin rango o sin plantilla devuelve nil (no es un error:
// el cajero puede ingresar los porcentajes a mano).
func (uc *EstimateUseCase) EstimateBoneFat(_ context.Context, categoryID string, totalWeightKg decimal.Decimal, unitCount int) (*BoneFatEstimate, error) {
	if categoryID == "" || unitCount <= 0 || !totalWeightKg.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	ranges, err := uc.rangeRepo.List()
	if err != nil {
		return nil, err
	}
	avgWeight := totalWeightKg.Div(decimal.NewFromInt(int64(unitCount)))
	rng, err := domyield.ResolveRange(ranges, avgWeight)
	if err == domain.ErrRangeNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	template, err := uc.templateRepo.GetActiveByCategoryAndRange(categoryID, rng.ID)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, nil
	}

	cuts, err := uc.cutRepo.List()
	if err != nil {
		return nil, err
	}
	roleByID := make(map[string]string, len(cuts))
	for _, c := range cuts {
		roleByID[c.ID] = c.Role
	}

	bone, fat := decimal.Zero, decimal.Zero
	for _, item := range template.Items {
		switch roleByID[item.CutID] {
		case entity.CutRoleBone:
			bone = bone.Add(item.PercentageYield)
		case entity.CutRoleFat:
			fat = fat.Add(item.PercentageYield)
		}
		// trim y sellable no entran en esta estimación
	}

	return &BoneFatEstimate{
		BonePercent: bone.Round(2),
		FatPercent:  fat.Round(2),
	}, nil
}

// EstimateResponse arma la respuesta del endpoint de preestimación, incluyendo
// los kg vendibles con la merma indicada.
func (uc *EstimateUseCase) EstimateResponse(ctx context.Context, categoryID string, totalWeightKg decimal.Decimal, unitCount int, mermaPercent decimal.Decimal) (*dto.YieldEstimateResponse, error) {
	est, err := uc.EstimateBoneFat(ctx, categoryID, totalWeightKg, unitCount)
	if err != nil {
		return nil, err
	}

	hundred := decimal.NewFromInt(100)
	if est == nil {
		return &dto.YieldEstimateResponse{
			Found:        false,
			MermaPercent: mermaPercent,
			SellableKg:   totalWeightKg.Mul(hundred.Sub(mermaPercent)).Div(hundred).Round(2),
			Message:      "No se encontró plantilla para esta categoría/peso. Ingrese los % manualmente.",
		}, nil
	}

	discount := est.BonePercent.Add(est.FatPercent).Add(mermaPercent)
	return &dto.YieldEstimateResponse{
		Found:        true,
		BonePercent:  est.BonePercent,
		FatPercent:   est.FatPercent,
		MermaPercent: mermaPercent,
		SellableKg:   totalWeightKg.Mul(hundred.Sub(discount)).Div(hundred).Round(2),
	}, nil
}
