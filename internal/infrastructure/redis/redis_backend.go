// Package redis implementa el backend clave-valor del estado sobre Redis.
package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/aadish-inventory/internal/infrastructure/storage"
)

var _ storage.Backend = (*Backend)(nil)

// DefaultPrefix prefijo de claves cuando la configuración no indica otro.
const DefaultPrefix = "inventario:"

// Backend guarda cada colección en la clave <prefix><key>, sin expiración.
type Backend struct {
	client *goredis.Client
	prefix string
}

// Options conexión a Redis. El prefijo de claves se pasa a NewBackend.
type Options struct {
	Addr     string
	Password string
	DB       int
}

// NewClient abre el cliente y verifica la conexión con PING.
func NewClient(ctx context.Context, opts Options) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// NewBackend construye el backend sobre un cliente ya conectado.
func NewBackend(client *goredis.Client, prefix string) *Backend {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Backend{client: client, prefix: prefix}
}

// Get lee la clave; goredis.Nil se traduce a found=false.
func (b *Backend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := b.client.Get(ctx, b.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

// Set escribe la clave sin TTL.
func (b *Backend) Set(ctx context.Context, key string, value []byte) error {
	return b.client.Set(ctx, b.prefix+key, value, 0).Err()
}
