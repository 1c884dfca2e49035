package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/kabs-design-api/internal/application/auth"
	"github.com/jhoicas/kabs-design-api/internal/application/catalog"
	"github.com/jhoicas/kabs-design-api/internal/application/project"
	"github.com/jhoicas/kabs-design-api/internal/application/usecase"
	"github.com/jhoicas/kabs-design-api/internal/domain/entity"
)

// HealthChecker verifica que el almacenamiento responde.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName   string
	AuthUC    *auth.AuthUseCase
	ProjectUC *project.ProjectUseCase
	CatalogUC *catalog.CatalogUseCase
	AIUC      *usecase.AIUseCase
	Tokens    TokenVerifier
	Store     HealthChecker
	// APIMiddleware se aplica a todo /api (rate limiter).
	APIMiddleware []fiber.Handler
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"service": deps.AppName, "docs": "/docs"})
	})
	app.Get("/health", healthHandler(deps))

	api := app.Group("/api", deps.APIMiddleware...)
	requireAuth := AuthMiddleware(deps.Tokens)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", requireAuth, authHandler.Me)

	// Projects (protegido)
	projects := api.Group("/projects", requireAuth)
	projectHandler := NewProjectHandler(deps.ProjectUC)
	projects.Get("/", projectHandler.List)
	projects.Post("/", projectHandler.Create)
	projects.Get("/export.xlsx", adminOnly, projectHandler.ExportSpreadsheet)
	projects.Get("/:id", projectHandler.Get)
	projects.Put("/:id", projectHandler.Update)
	projects.Delete("/:id", projectHandler.Delete)
	projects.Get("/:id/data", projectHandler.LatestData)
	projects.Post("/:id/data", projectHandler.SaveData)
	projects.Get("/:id/pdf-backgrounds", projectHandler.ListPdfBackgrounds)
	projects.Post("/:id/pdf-backgrounds", projectHandler.AddPdfBackground)
	projects.Get("/:id/summary.pdf", projectHandler.SummaryPDF)

	// Catalog (protegido; publicar solo admin)
	catalogGroup := api.Group("/catalog", requireAuth)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	catalogGroup.Get("/blocks", catalogHandler.List)
	catalogGroup.Post("/blocks", adminOnly, catalogHandler.Upsert)
	catalogGroup.Get("/blocks/:id/symbol.svg", catalogHandler.Symbol)
	catalogGroup.Get("/blocks/:id", catalogHandler.Get)

	// AI (público, limitado por el rate limiter de /api)
	aiGroup := api.Group("/ai")
	aiHandler := NewAIHandler(deps.AIUC)
	aiGroup.Get("/config", aiHandler.Config)
	aiGroup.Post("/interpret", aiHandler.Interpret)
}

func healthHandler(deps RouterDeps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if deps.Store != nil {
			ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
			defer cancel()
			if err := deps.Store.Ping(ctx); err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
					"status": "unavailable", "service": deps.AppName, "database": "down",
				})
			}
		}
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName, "database": "up"})
	}
}
