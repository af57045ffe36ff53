// seed escribe el catálogo de ejemplo (5 artículos, 8 movimientos de septiembre 2023)
// en el almacenamiento configurado por STORAGE_DRIVER.
//
// Uso: go run ./cmd/seed [-force]
// Sin -force no toca un almacenamiento que ya tiene artículos.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/jhoicas/aadish-inventory/internal/application/inventory"
	"github.com/jhoicas/aadish-inventory/internal/infrastructure/statestore"
	"github.com/jhoicas/aadish-inventory/pkg/config"
	"github.com/jhoicas/aadish-inventory/pkg/logger"
)

func main() {
	force := flag.Bool("force", false, "sobrescribir datos existentes")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx := context.Background()
	opened, err := statestore.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer opened.Close()

	_, found, err := opened.Repo.LoadItems(ctx)
	if err != nil && !*force {
		log.Error().Err(err).Msg("no se pudo leer el almacenamiento; use -force para sobrescribir")
		os.Exit(1)
	}
	if found && !*force {
		log.Warn().Str("storage", cfg.Storage.Driver).Msg("ya hay artículos guardados; use -force para sobrescribir")
		return
	}

	seed := inventory.DemoSeed()
	if err := opened.Repo.SaveItems(ctx, seed.Items); err != nil {
		log.Fatal().Err(err).Msg("guardar artículos")
	}
	if err := opened.Repo.SaveTransactions(ctx, seed.Transactions); err != nil {
		log.Fatal().Err(err).Msg("guardar movimientos")
	}
	if err := opened.Repo.SaveSuppliers(ctx, seed.Suppliers); err != nil {
		log.Fatal().Err(err).Msg("guardar proveedores")
	}

	log.Info().
		Str("storage", cfg.Storage.Driver).
		Int("items", len(seed.Items)).
		Int("transactions", len(seed.Transactions)).
		Int("suppliers", len(seed.Suppliers)).
		Msg("datos de ejemplo cargados")
}
