package generalstock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/secretosdecampo/carniceria-api/internal/application/dto"
	appyield "github.com/secretosdecampo/carniceria-api/internal/application/yield"
	"github.com/secretosdecampo/carniceria-api/internal/domain"
	"github.com/secretosdecampo/carniceria-api/internal/domain/entity"
	"github.com/secretosdecampo/carniceria-api/internal/domain/repository"
)

// Merma por defecto cuando no se indica (encogimiento por oreo y manipulación).
var defaultMermaPercent = decimal.NewFromInt(5)

// CreateStockUseCase da de alta una tropa. Si no se indican % de hueso/grasa y
// hay categoría, se estiman desde la plantilla activa.
type CreateStockUseCase struct {
	stockRepo repository.GeneralStockRepository
	estimate  *appyield.EstimateUseCase
}

// NewCreateStockUseCase construye el caso de uso.
func NewCreateStockUseCase(stockRepo repository.GeneralStockRepository, estimate *appyield.EstimateUseCase) *CreateStockUseCase {
	return &CreateStockUseCase{stockRepo: stockRepo, estimate: estimate}
}

// Create valida, estima hueso/grasa si aplica, deriva sellableKg y persiste.
func (uc *CreateStockUseCase) Create(ctx context.Context, in dto.CreateGeneralStockRequest) (*entity.GeneralStock, error) {
	if in.BatchDescription == "" || in.AnimalCategory == "" || in.UnitCount <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if !in.TotalWeightKg.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	bone, fat := decimal.Zero, decimal.Zero
	if in.BonePercent != nil {
		bone = *in.BonePercent
	}
	if in.FatPercent != nil {
		fat = *in.FatPercent
	}
	merma := defaultMermaPercent
	if in.MermaPercent != nil {
		merma = *in.MermaPercent
	}

	// Autocompletar desde la plantilla solo los porcentajes no indicados.
	if in.CategoryID != "" && (in.BonePercent == nil || in.FatPercent == nil) {
		est, err := uc.estimate.EstimateBoneFat(ctx, in.CategoryID, in.TotalWeightKg, in.UnitCount)
		if err != nil && err != domain.ErrInvalidInput {
			return nil, err
		}
		if est != nil {
			if in.BonePercent == nil {
				bone = est.BonePercent
			}
			if in.FatPercent == nil {
				fat = est.FatPercent
			}
		}
	}

	hundred := decimal.NewFromInt(100)
	sellable := in.TotalWeightKg.Mul(hundred.Sub(bone.Add(fat).Add(merma))).Div(hundred).Round(2)
	if sellable.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	entryDate := time.Now()
	if in.EntryDate != "" {
		parsed, err := time.ParseInLocation("2006-01-02", in.EntryDate, time.Local)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		entryDate = parsed
	}
	entryDate = time.Date(entryDate.Year(), entryDate.Month(), entryDate.Day(), 0, 0, 0, 0, time.Local)

	stock := &entity.GeneralStock{
		ID:               uuid.New().String(),
		BatchDescription: in.BatchDescription,
		AnimalCategory:   in.AnimalCategory,
		CategoryID:       in.CategoryID,
		SupplierID:       in.SupplierID,
		EntryDate:        entryDate,
		UnitCount:        in.UnitCount,
		TotalWeightKg:    in.TotalWeightKg,
		BonePercent:      bone,
		FatPercent:       fat,
		MermaPercent:     merma,
		SellableKg:       sellable,
		SoldKg:           decimal.Zero,
		Status:           entity.GeneralStockActive,
		Notes:            in.Notes,
		CreatedAt:        time.Now(),
	}
	if err := uc.stockRepo.Create(stock); err != nil {
		return nil, err
	}
	return stock, nil
}

// List devuelve todas las tropas con su capacidad restante.
func (uc *CreateStockUseCase) List(_ context.Context) ([]dto.GeneralStockResponse, error) {
	stocks, err := uc.stockRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.GeneralStockResponse, 0, len(stocks))
	for _, s := range stocks {
		out = append(out, ToGeneralStockResponse(s))
	}
	return out, nil
}

// ToGeneralStockResponse mapea la entidad al DTO de salida.
func ToGeneralStockResponse(s *entity.GeneralStock) dto.GeneralStockResponse {
	return dto.GeneralStockResponse{
		ID:               s.ID,
		BatchDescription: s.BatchDescription,
		AnimalCategory:   s.AnimalCategory,
		EntryDate:        s.EntryDate.Format("2006-01-02"),
		UnitCount:        s.UnitCount,
		TotalWeightKg:    s.TotalWeightKg,
		BonePercent:      s.BonePercent,
		FatPercent:       s.FatPercent,
		MermaPercent:     s.MermaPercent,
		SellableKg:       s.SellableKg,
		SoldKg:           s.SoldKg,
		RemainingKg:      s.RemainingKg(),
		Status:           s.Status,
		Notes:            s.Notes,
	}
}
