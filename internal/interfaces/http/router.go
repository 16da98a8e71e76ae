package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/secretosdecampo/carniceria-api/internal/application/auth"
	"github.com/secretosdecampo/carniceria-api/internal/application/catalog"
	"github.com/secretosdecampo/carniceria-api/internal/application/generalstock"
	appyield "github.com/secretosdecampo/carniceria-api/internal/application/yield"
	"github.com/secretosdecampo/carniceria-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	CatalogUC    *catalog.UseCase
	TemplateUC   *catalog.TemplateUseCase
	ProjectBatch *appyield.ProjectBatchUseCase
	RecordYield  *appyield.RecordRealYieldUseCase
	Estimate     *appyield.EstimateUseCase
	CreateStock  *generalstock.CreateStockUseCase
	DailyClose   *generalstock.DailyCloseUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	adminOnly := RequireRole(entity.RoleAdmin)
	carnicoOrAdmin := RequireRole(entity.RoleAdmin, entity.RoleCarnico)
	cajeroOrAdmin := RequireRole(entity.RoleAdmin, entity.RoleCajero)

	// Catálogo: lectura para todos los roles, escritura solo admin
	catalogGroup := protected.Group("/catalog")
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	catalogGroup.Get("/categories", catalogHandler.ListCategories)
	catalogGroup.Post("/categories", adminOnly, catalogHandler.CreateCategory)
	catalogGroup.Delete("/categories/:id", adminOnly, catalogHandler.DeactivateCategory)
	catalogGroup.Get("/weight-ranges", catalogHandler.ListWeightRanges)
	catalogGroup.Post("/weight-ranges", adminOnly, catalogHandler.CreateWeightRange)
	catalogGroup.Get("/cuts", catalogHandler.ListCuts)
	catalogGroup.Post("/cuts", adminOnly, catalogHandler.CreateCut)

	// Plantillas de rendimiento (sembrado y corrección manual)
	templateHandler := NewTemplateHandler(deps.TemplateUC)
	catalogGroup.Get("/templates", templateHandler.List)
	catalogGroup.Get("/templates/:id", templateHandler.GetByID)
	catalogGroup.Put("/templates/:id/items", adminOnly, templateHandler.ReplaceItems)

	// Lotes proyectados
	batches := protected.Group("/batches")
	batchHandler := NewBatchHandler(deps.ProjectBatch)
	batches.Get("/", batchHandler.List)
	batches.Post("/", carnicoOrAdmin, batchHandler.Project)

	// Despostes reales (motor de aprendizaje)
	desposte := protected.Group("/desposte")
	desposteHandler := NewDesposteHandler(deps.RecordYield)
	desposte.Get("/", desposteHandler.History)
	desposte.Post("/", carnicoOrAdmin, desposteHandler.Record)

	// Stock general (tropas)
	stockGroup := protected.Group("/general-stock")
	stockHandler := NewGeneralStockHandler(deps.CreateStock, deps.Estimate)
	stockGroup.Get("/yield-estimate", stockHandler.YieldEstimate)
	stockGroup.Get("/", stockHandler.List)
	stockGroup.Post("/", carnicoOrAdmin, stockHandler.Create)

	// Cierre de caja
	closeGroup := protected.Group("/daily-close")
	closeHandler := NewDailyCloseHandler(deps.DailyClose)
	closeGroup.Get("/", closeHandler.ListRecent)
	closeGroup.Post("/", cajeroOrAdmin, closeHandler.Close)
}
