package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/aadish-inventory/internal/application/analytics"
	"github.com/jhoicas/aadish-inventory/internal/application/inventory"
	"github.com/jhoicas/aadish-inventory/internal/interfaces/ws"
	"github.com/jhoicas/aadish-inventory/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Store         *inventory.Store
	DashboardUC   *appanalytics.DashboardUseCase
	ReportUC      *appanalytics.ReportUseCase
	Hub           *ws.Hub // nil desactiva /ws
	StorageDriver string
	Log           *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Log != nil {
		app.Use(RequestLogger(deps.Log))
	}

	app.Get("/health", NewHealthHandler(deps.Store, deps.StorageDriver).Get)

	api := app.Group("/api")

	// Items
	items := api.Group("/items")
	itemHandler := NewItemHandler(deps.Store)
	items.Get("/", itemHandler.List)
	items.Post("/", itemHandler.Create)
	items.Get("/low-stock", itemHandler.LowStock)
	items.Get("/categories", itemHandler.Categories)
	items.Post("/import", itemHandler.Import)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)
	items.Post("/:id/stock", itemHandler.UpdateStock)

	// Libro, ventas y proveedores
	txHandler := NewTransactionHandler(deps.Store, deps.ReportUC)
	transactions := api.Group("/transactions")
	transactions.Get("/", txHandler.List)
	transactions.Post("/", txHandler.Create)

	sales := api.Group("/sales")
	sales.Post("/", txHandler.RecordSale)
	sales.Get("/summary", txHandler.SalesSummary)

	suppliers := api.Group("/suppliers")
	suppliers.Get("/", txHandler.ListSuppliers)
	suppliers.Post("/", txHandler.CreateSupplier)

	// Dashboard y reportes
	api.Get("/dashboard/summary", NewDashboardHandler(deps.DashboardUC).GetSummary)

	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/monthly", reportHandler.Monthly)
	reports.Get("/monthly/pdf", reportHandler.MonthlyPDF)

	api.Get("/export/items.csv", NewExportHandler(deps.Store).ItemsCSV)

	// Feed de cambios
	if deps.Hub != nil {
		app.Use("/ws", requireUpgrade)
		app.Get("/ws", wsHandler(deps.Hub))
	}
}
