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

	appanalytics "github.com/jhoicas/aadish-inventory/internal/application/analytics"
	"github.com/jhoicas/aadish-inventory/internal/application/inventory"
	infrapdf "github.com/jhoicas/aadish-inventory/internal/infrastructure/pdf"
	"github.com/jhoicas/aadish-inventory/internal/infrastructure/statestore"
	httpRouter "github.com/jhoicas/aadish-inventory/internal/interfaces/http"
	"github.com/jhoicas/aadish-inventory/internal/interfaces/ws"
	"github.com/jhoicas/aadish-inventory/pkg/config"
	"github.com/jhoicas/aadish-inventory/pkg/logger"
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
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	opened, err := statestore.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer opened.Close()

	storeOpts := []inventory.Option{inventory.WithLogger(log)}
	if cfg.App.SeedDemoData {
		storeOpts = append(storeOpts, inventory.WithSeed(inventory.DemoSeed()))
	}
	store := inventory.NewStore(opened.Repo, storeOpts...)
	store.Load(ctx)

	// Feed en vivo: cada cambio del store se difunde a los clientes /ws
	hub := ws.NewHub(log)
	go hub.Run(ctx)
	unsubscribe := store.Subscribe(hub.OnChange)
	defer unsubscribe()

	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name)
	dashboardUC := appanalytics.NewDashboardUseCase(store)
	reportUC := appanalytics.NewReportUseCase(store, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.App.SwaggerEnabled {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    "Aadish Inventory API",
		}))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		Store:         store,
		DashboardUC:   dashboardUC,
		ReportUC:      reportUC,
		Hub:           hub,
		StorageDriver: cfg.Storage.Driver,
		Log:           log,
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

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	cancel()

	if err := store.Flush(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("cambios sin persistir al apagar")
	}

	log.Info().Msg("aplicación detenida")
}
