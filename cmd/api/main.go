package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/secretosdecampo/carniceria-api/internal/application/auth"
	"github.com/secretosdecampo/carniceria-api/internal/application/catalog"
	"github.com/secretosdecampo/carniceria-api/internal/application/generalstock"
	appyield "github.com/secretosdecampo/carniceria-api/internal/application/yield"
	"github.com/secretosdecampo/carniceria-api/internal/infrastructure/postgres"
	httpRouter "github.com/secretosdecampo/carniceria-api/internal/interfaces/http"
	"github.com/secretosdecampo/carniceria-api/pkg/config"
	"github.com/secretosdecampo/carniceria-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewAnimalCategoryRepository(pool)
	rangeRepo := postgres.NewWeightRangeRepository(pool)
	cutRepo := postgres.NewCutRepository(pool)
	templateRepo := postgres.NewYieldTemplateRepository(pool)
	realYieldRepo := postgres.NewRealYieldRepository(pool)
	batchRepo := postgres.NewStockBatchRepository(pool)
	stockRepo := postgres.NewGeneralStockRepository(pool)
	closeRepo := postgres.NewDailyCloseRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	catalogUC := catalog.NewUseCase(categoryRepo, rangeRepo, cutRepo)
	templateUC := catalog.NewTemplateUseCase(templateRepo, cutRepo)
	estimateUC := appyield.NewEstimateUseCase(rangeRepo, templateRepo, cutRepo)
	projectBatchUC := appyield.NewProjectBatchUseCase(txRunner, rangeRepo, templateRepo, cutRepo, batchRepo)
	recordYieldUC := appyield.NewRecordRealYieldUseCase(txRunner, rangeRepo, cutRepo, realYieldRepo)
	createStockUC := generalstock.NewCreateStockUseCase(stockRepo, estimateUC)
	dailyCloseUC := generalstock.NewDailyCloseUseCase(closeRepo, txRunner)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Carnicería API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		CatalogUC:    catalogUC,
		TemplateUC:   templateUC,
		ProjectBatch: projectBatchUC,
		RecordYield:  recordYieldUC,
		Estimate:     estimateUC,
		CreateStock:  createStockUC,
		DailyClose:   dailyCloseUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
