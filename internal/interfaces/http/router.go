package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/inventory-dashboard/internal/application/analytics"
	"github.com/jhoicas/inventory-dashboard/internal/application/inventory"
	"github.com/jhoicas/inventory-dashboard/internal/application/report"
	"github.com/jhoicas/inventory-dashboard/internal/application/usecase"
	gqlhandler "github.com/jhoicas/inventory-dashboard/internal/interfaces/graphql"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC     *usecase.ProductUseCase
	WarehouseUC   *usecase.WarehouseUseCase
	KPIUC         *appanalytics.KPIUseCase
	MutationUC    *inventory.MutationUseCase
	Replenishment *inventory.ReplenishmentUseCase
	ReportUC      *report.ReportUseCase
	GraphQL       *gqlhandler.Handler // opcional
}

// Router registra las rutas de la API. No hay autenticación: el dashboard es de un solo operador.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.MutationUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id/demand", productHandler.UpdateDemand)

	// Warehouses (solo lectura)
	warehouses := api.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)

	// Inventory: transferencias y registro de movimientos
	invGroup := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.MutationUC, deps.Replenishment)
	invGroup.Post("/transfers", inventoryHandler.TransferStock)
	invGroup.Get("/movements", inventoryHandler.ListMovements)
	if deps.Replenishment != nil {
		invGroup.Get("/replenishment", inventoryHandler.Replenishment)
	}

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.KPIUC)
	api.Get("/kpis", dashboardHandler.GetKPIs)

	// Reports
	if deps.ReportUC != nil {
		reportHandler := NewReportHandler(deps.ReportUC)
		api.Get("/reports/inventory.pdf", reportHandler.InventoryPDF)
	}

	if deps.GraphQL != nil {
		app.Post("/graphql", deps.GraphQL.Serve)
		app.Get("/graphql", deps.GraphQL.Serve)
	}
}
