// Package statestore elige e inicializa el backend durable según STORAGE_DRIVER.
package statestore

import (
	"context"
	"fmt"

	"github.com/jhoicas/aadish-inventory/internal/domain/repository"
	"github.com/jhoicas/aadish-inventory/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/aadish-inventory/internal/infrastructure/redis"
	"github.com/jhoicas/aadish-inventory/internal/infrastructure/storage"
	"github.com/jhoicas/aadish-inventory/pkg/config"
)

// Opened repositorio listo para usar y la función que libera sus conexiones.
type Opened struct {
	Repo  repository.StateRepository
	Close func()
}

// Open construye el repositorio para el driver configurado.
// El driver postgres además aplica el esquema si no existe.
func Open(ctx context.Context, cfg *config.Config) (*Opened, error) {
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		return &Opened{Repo: storage.NewKVStateRepository(storage.NewMemoryBackend()), Close: func() {}}, nil

	case config.StorageFile:
		backend, err := storage.NewFileBackend(cfg.Storage.Dir)
		if err != nil {
			return nil, err
		}
		return &Opened{Repo: storage.NewKVStateRepository(backend), Close: func() {}}, nil

	case config.StorageRedis:
		client, err := infraredis.NewClient(ctx, infraredis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, err
		}
		backend := infraredis.NewBackend(client, cfg.Redis.Prefix)
		return &Opened{
			Repo:  storage.NewKVStateRepository(backend),
			Close: func() { _ = client.Close() },
		}, nil

	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		return &Opened{Repo: postgres.NewStateRepository(pool), Close: pool.Close}, nil

	default:
		return nil, fmt.Errorf("driver de almacenamiento no soportado: %q", cfg.Storage.Driver)
	}
}
