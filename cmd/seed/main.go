// seed puebla el catálogo inicial de la carnicería: categorías animales,
// rangos de peso, cortes con rol y la plantilla base de Vaquillona 80-105,
// más un usuario admin.
//
// Uso: go run ./cmd/seed
// Idempotente: los registros existentes (por nombre) no se duplican.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/secretosdecampo/carniceria-api/internal/domain/entity"
	"github.com/secretosdecampo/carniceria-api/internal/infrastructure/postgres"
	"github.com/secretosdecampo/carniceria-api/pkg/config"
	"github.com/secretosdecampo/carniceria-api/pkg/logger"
)

type seedCut struct {
	name string
	role string
	pct  string // porcentaje en la plantilla base de Vaquillona 80-105
}

// Porcentajes de partida relevados con el carnicero; el motor de aprendizaje
// los va corrigiendo con cada desposte real.
var seedCuts = []seedCut{
	{"Lomo", entity.CutRoleSellable, "2.80"},
	{"Bife Ancho", entity.CutRoleSellable, "5.00"},
	{"Bife Angosto", entity.CutRoleSellable, "4.20"},
	{"Cuadril", entity.CutRoleSellable, "5.50"},
	{"Peceto", entity.CutRoleSellable, "2.50"},
	{"Asado", entity.CutRoleSellable, "14.50"},
	{"Vacío", entity.CutRoleSellable, "4.50"},
	{"Matambre", entity.CutRoleSellable, "3.50"},
	{"Tapa de Asado", entity.CutRoleSellable, "3.00"},
	{"Falda", entity.CutRoleSellable, "4.50"},
	{"Nalga", entity.CutRoleSellable, "7.00"},
	{"Bola de Lomo", entity.CutRoleSellable, "5.00"},
	{"Paleta", entity.CutRoleSellable, "8.00"},
	{"Hueso", entity.CutRoleBone, "18.00"},
	{"Grasa y Recortes", entity.CutRoleFat, "12.00"},
}

var seedCategories = []struct{ name, description string }{
	{"Vaquillona", "Hembra joven, carne tierna"},
	{"Novillo", "Macho castrado, res más pesada"},
	{"Overo", "Animal overo, rinde distinto del estándar"},
}

var seedRanges = []struct{ min, max, label string }{
	{"80", "105", "80-105 kg"},
	{"106", "115", "106-115 kg"},
	{"116", "140", "116-140 kg"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	categoryRepo := postgres.NewAnimalCategoryRepository(pool)
	rangeRepo := postgres.NewWeightRangeRepository(pool)
	cutRepo := postgres.NewCutRepository(pool)
	templateRepo := postgres.NewYieldTemplateRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	now := time.Now()

	// Categorías
	categoryIDs := make(map[string]string)
	for _, sc := range seedCategories {
		existing, err := categoryRepo.GetByName(sc.name)
		if err != nil {
			log.Fatal().Err(err).Str("category", sc.name).Msg("consultar categoría")
		}
		if existing != nil {
			categoryIDs[sc.name] = existing.ID
			continue
		}
		cat := &entity.AnimalCategory{
			ID:          uuid.New().String(),
			Name:        sc.name,
			Description: sc.description,
			Active:      true,
			CreatedAt:   now,
		}
		if err := categoryRepo.Create(cat); err != nil {
			log.Fatal().Err(err).Str("category", sc.name).Msg("crear categoría")
		}
		categoryIDs[sc.name] = cat.ID
		log.Info().Str("category", sc.name).Msg("categoría creada")
	}

	// Rangos de peso
	existingRanges, err := rangeRepo.List()
	if err != nil {
		log.Fatal().Err(err).Msg("listar rangos")
	}
	rangeIDs := make(map[string]string)
	for _, r := range existingRanges {
		rangeIDs[r.Label] = r.ID
	}
	for _, sr := range seedRanges {
		if _, ok := rangeIDs[sr.label]; ok {
			continue
		}
		rng := &entity.WeightRange{
			ID:        uuid.New().String(),
			MinWeight: decimal.RequireFromString(sr.min),
			MaxWeight: decimal.RequireFromString(sr.max),
			Label:     sr.label,
		}
		if err := rangeRepo.Create(rng); err != nil {
			log.Fatal().Err(err).Str("range", sr.label).Msg("crear rango")
		}
		rangeIDs[sr.label] = rng.ID
		log.Info().Str("range", sr.label).Msg("rango creado")
	}

	// Cortes
	cutIDs := make(map[string]string)
	for i, sc := range seedCuts {
		existing, err := cutRepo.GetByName(sc.name)
		if err != nil {
			log.Fatal().Err(err).Str("cut", sc.name).Msg("consultar corte")
		}
		if existing != nil {
			cutIDs[sc.name] = existing.ID
			continue
		}
		cut := &entity.Cut{
			ID:           uuid.New().String(),
			Name:         sc.name,
			Role:         sc.role,
			DisplayOrder: i + 1,
			CreatedAt:    now,
		}
		if err := cutRepo.Create(cut); err != nil {
			log.Fatal().Err(err).Str("cut", sc.name).Msg("crear corte")
		}
		cutIDs[sc.name] = cut.ID
		log.Info().Str("cut", sc.name).Msg("corte creado")
	}

	// Plantilla base: Vaquillona 80-105
	catID := categoryIDs["Vaquillona"]
	rngID := rangeIDs["80-105 kg"]
	existingTpl, err := templateRepo.GetActiveByCategoryAndRange(catID, rngID)
	if err != nil {
		log.Fatal().Err(err).Msg("consultar plantilla")
	}
	if existingTpl == nil {
		tpl := &entity.YieldTemplate{
			ID:              uuid.New().String(),
			CategoryID:      catID,
			RangeID:         rngID,
			Name:            "Vaquillona 80-105 kg",
			ReferenceWeight: decimal.RequireFromString("92.5"),
			Status:          entity.TemplateStatusActive,
			Version:         1,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		for _, sc := range seedCuts {
			tpl.Items = append(tpl.Items, entity.YieldTemplateItem{
				ID:              uuid.New().String(),
				TemplateID:      tpl.ID,
				CutID:           cutIDs[sc.name],
				PercentageYield: decimal.RequireFromString(sc.pct),
			})
		}
		if err := templateRepo.Create(tpl); err != nil {
			log.Fatal().Err(err).Msg("crear plantilla")
		}
		log.Info().Str("template", tpl.Name).Msg("plantilla creada")
	}

	// Usuario admin
	adminEmail := "admin@carniceria.local"
	if v := os.Getenv("SEED_ADMIN_EMAIL"); v != "" {
		adminEmail = v
	}
	adminPassword := os.Getenv("SEED_ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "cambiar-ya"
	}
	existingUser, err := userRepo.GetByEmail(adminEmail)
	if err != nil {
		log.Fatal().Err(err).Msg("consultar usuario admin")
	}
	if existingUser == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("hash de password")
		}
		admin := &entity.User{
			ID:           uuid.New().String(),
			Email:        adminEmail,
			Name:         "Administrador",
			PasswordHash: string(hash),
			Role:         entity.RoleAdmin,
			Active:       true,
			CreatedAt:    now,
		}
		if err := userRepo.Create(admin); err != nil {
			log.Fatal().Err(err).Msg("crear usuario admin")
		}
		log.Info().Str("email", adminEmail).Msg("usuario admin creado")
	}

	log.Info().Msg("seed completado")
}
