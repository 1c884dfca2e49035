// @title                       KABS Design Tool API
// @version                     1.0
// @description                 Backend multi-tenant del editor de diseño: empresas, proyectos versionados, catálogo de bloques y normalización de comandos.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
// @description                 Bearer <token>
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/jhoicas/kabs-design-api/docs"
	"github.com/jhoicas/kabs-design-api/internal/application/auth"
	"github.com/jhoicas/kabs-design-api/internal/application/catalog"
	"github.com/jhoicas/kabs-design-api/internal/application/dto"
	"github.com/jhoicas/kabs-design-api/internal/application/project"
	"github.com/jhoicas/kabs-design-api/internal/application/usecase"
	"github.com/jhoicas/kabs-design-api/internal/domain/repository"
	infraai "github.com/jhoicas/kabs-design-api/internal/infrastructure/ai"
	"github.com/jhoicas/kabs-design-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/kabs-design-api/internal/infrastructure/pdf"
	"github.com/jhoicas/kabs-design-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/kabs-design-api/internal/infrastructure/redis"
	"github.com/jhoicas/kabs-design-api/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/kabs-design-api/internal/interfaces/http"
	"github.com/jhoicas/kabs-design-api/pkg/config"
	"github.com/jhoicas/kabs-design-api/pkg/jwt"
	"github.com/jhoicas/kabs-design-api/pkg/logger"
)

// stores agrupa los repositorios del driver elegido (postgres o memory).
type stores struct {
	companies   repository.CompanyRepository
	users       repository.UserRepository
	projects    repository.ProjectRepository
	versions    repository.ProjectDataRepository
	backgrounds repository.PdfBackgroundRepository
	catalog     repository.CatalogRepository
	authTx      auth.TxRunner
	projectTx   project.TxRunner
	health      httpRouter.HealthChecker
	close       func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	st, err := openStores(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar almacenamiento")
	}
	defer st.close()

	tokens, err := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.TTL())
	if err != nil {
		log.Fatal().Err(err).Msg("configurar tokens de sesión")
	}

	authUC := auth.NewAuthUseCase(st.users, st.companies, st.authTx, tokens)
	projectUC := project.NewProjectUseCase(
		st.projects, st.versions, st.backgrounds, st.projectTx,
		xlsx.NewProjectExporter(), infrapdf.NewMarotoSummaryRenderer(),
	)

	catalogUC := catalog.NewCatalogUseCase(catalog.NewRegistry(nil), st.catalog)
	n, err := catalogUC.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar catálogo de bloques")
	}
	log.Info().Int("blocks", n).Msg("catálogo cargado")

	normalizer := infraai.NewPromptNormalizer(cfg.AI)
	aiUC := usecase.NewAIUseCase(normalizer, cfg.AI.OpenAIAPIKey != "", cfg.AI.AnthropicAPIKey != "")
	log.Info().Str("provider", normalizer.Provider()).Msg("normalizador de prompts")

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    cfg.HTTP.BodyLimitMB * 1024 * 1024,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler(cfg.App.IsDevelopment()),
	})
	app.Use(recover.New(recover.Config{EnableStackTrace: cfg.App.IsDevelopment()}))
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger())
	app.Use(compress.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.Origin,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowCredentials: cfg.CORS.Origin != "*",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat("./docs/swagger.json"); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    "KABS Design Tool API",
		}))
	} else {
		log.Warn().Msg("docs/swagger.json no encontrado; /docs deshabilitado")
	}
	app.Get("/swagger.json", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
		return c.SendString(docs.SwaggerInfo.ReadDoc())
	})

	limiterStorage := openLimiterStorage(cfg, log)
	if limiterStorage != nil {
		defer limiterStorage.Close()
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AppName:       cfg.App.Name,
		AuthUC:        authUC,
		ProjectUC:     projectUC,
		CatalogUC:     catalogUC,
		AIUC:          aiUC,
		Tokens:        tokens,
		Store:         st.health,
		APIMiddleware: []fiber.Handler{rateLimiter(cfg.RateLimit, limiterStorage)},
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

func openStores(ctx context.Context, cfg *config.Config, log *logger.Logger) (*stores, error) {
	if cfg.DB.Driver == "memory" {
		log.Warn().Msg("DB_DRIVER=memory: los datos se pierden al reiniciar")
		m := memory.New()
		return &stores{
			companies:   m.Companies(),
			users:       m.Users(),
			projects:    m.Projects(),
			versions:    m.ProjectData(),
			backgrounds: m.PdfBackgrounds(),
			catalog:     m.Catalog(),
			authTx:      m,
			projectTx:   m,
			health:      m,
			close:       func() {},
		}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	if cfg.DB.AutoMigrate {
		applied, err := postgres.ApplyMigrations(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		log.Info().Strs("applied", applied).Msg("migraciones aplicadas")
	}
	txRunner := postgres.NewTxRunner(pool)
	return &stores{
		companies:   postgres.NewCompanyRepository(pool),
		users:       postgres.NewUserRepository(pool),
		projects:    postgres.NewProjectRepository(pool),
		versions:    postgres.NewProjectDataRepository(pool),
		backgrounds: postgres.NewPdfBackgroundRepository(pool),
		catalog:     postgres.NewCatalogRepository(pool),
		authTx:      txRunner,
		projectTx:   txRunner,
		health:      pool,
		close:       pool.Close,
	}, nil
}

// openLimiterStorage devuelve nil si no hay REDIS_URL o Redis no responde (el limiter usa memoria local).
func openLimiterStorage(cfg *config.Config, log *logger.Logger) *infraredis.LimiterStorage {
	if cfg.Redis.URL == "" {
		return nil
	}
	storage, err := infraredis.NewLimiterStorage(cfg.Redis.URL)
	if err != nil {
		log.Warn().Err(err).Msg("redis no disponible; rate limiter en memoria")
		return nil
	}
	log.Info().Msg("rate limiter compartido en redis")
	return storage
}

func rateLimiter(cfg config.RateLimitConfig, storage *infraredis.LimiterStorage) fiber.Handler {
	lc := limiter.Config{
		Max:        cfg.MaxRequests,
		Expiration: cfg.Window(),
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Code: "RATE_LIMITED", Message: "demasiadas peticiones, intente más tarde",
			})
		},
	}
	if storage != nil {
		lc.Storage = storage
	}
	return limiter.New(lc)
}
