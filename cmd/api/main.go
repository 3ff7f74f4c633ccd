// @title           Inventory Dashboard API
// @version         1.0
// @description     API del dashboard de inventario: catálogo en memoria, KPIs, transferencias y reporte PDF.
// @host            localhost:4000
// @BasePath        /
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/swaggo/swag"
	"golang.org/x/text/language"

	"github.com/jhoicas/inventory-dashboard/docs"
	appanalytics "github.com/jhoicas/inventory-dashboard/internal/application/analytics"
	"github.com/jhoicas/inventory-dashboard/internal/application/inventory"
	"github.com/jhoicas/inventory-dashboard/internal/application/report"
	"github.com/jhoicas/inventory-dashboard/internal/application/usecase"
	"github.com/jhoicas/inventory-dashboard/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/inventory-dashboard/internal/infrastructure/pdf"
	gqlhandler "github.com/jhoicas/inventory-dashboard/internal/interfaces/graphql"
	httpRouter "github.com/jhoicas/inventory-dashboard/internal/interfaces/http"
	"github.com/jhoicas/inventory-dashboard/pkg/config"
	"github.com/jhoicas/inventory-dashboard/pkg/logger"
	"github.com/jhoicas/inventory-dashboard/pkg/metrics"
)

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
		Msg("iniciando aplicación")

	seed, err := memory.LoadSeed(cfg.Catalog.SeedPath)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar catálogo")
	}
	catalog, err := memory.NewCatalog(seed)
	if err != nil {
		log.Fatal().Err(err).Msg("catálogo inválido")
	}
	log.Info().Int("products", catalog.Len()).Str("seed", cfg.Catalog.SeedPath).Msg("catálogo en memoria listo")

	productRepo := memory.NewProductRepository(catalog)
	warehouseRepo := memory.NewWarehouseRepository(catalog)
	movementRepo := memory.NewStockMovementRepository()

	m := metrics.New("inventory")

	productUC := usecase.NewProductUseCase(productRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	kpiUC := appanalytics.NewKPIUseCase(productRepo, appanalytics.WithSeed(cfg.KPI.RandomSeed))
	mutationUC := inventory.NewMutationUseCase(productRepo, warehouseRepo, movementRepo, m, log)
	replenishmentUC := inventory.NewReplenishmentUseCase(productRepo)

	// PDF: reporte imprimible del inventario
	pdfGenerator := infrapdf.NewMarotoReportGenerator(language.Spanish)
	reportUC := report.NewReportUseCase(productRepo, warehouseRepo, pdfGenerator)

	schema, err := gqlhandler.NewSchema(gqlhandler.Deps{
		ProductUC:   productUC,
		WarehouseUC: warehouseUC,
		KPIUC:       kpiUC,
		MutationUC:  mutationUC,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("esquema GraphQL")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.HTTP.CORSAllowOrigins}))
	app.Use(httpRouter.RequestLogger(log, m))

	// Swagger UI en local: http://localhost:<port>/docs
	docs.SwaggerInfo.Title = cfg.App.Name
	if _, statErr := os.Stat(cfg.App.SwaggerFile); statErr == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.App.SwaggerFile,
			Path:     "docs",
			Title:    cfg.App.Name,
		}))
	} else {
		log.Warn().Str("file", cfg.App.SwaggerFile).Msg("swagger.json no encontrado, /docs deshabilitado")
	}
	app.Get("/swagger.json", func(c *fiber.Ctx) error {
		doc, err := swag.ReadDoc()
		if err != nil {
			return c.SendStatus(fiber.StatusNotFound)
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(doc)
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:     productUC,
		WarehouseUC:   warehouseUC,
		KPIUC:         kpiUC,
		MutationUC:    mutationUC,
		Replenishment: replenishmentUC,
		ReportUC:      reportUC,
		GraphQL:       gqlhandler.NewHandler(schema),
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
