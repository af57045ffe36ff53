package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_ValoresPorDefecto(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, StorageFile, cfg.Storage.Driver)
	assert.Equal(t, "./data", cfg.Storage.Dir)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.False(t, cfg.App.SeedDemoData)
}

func TestFromViper_DriverDesconocido(t *testing.T) {
	v := viper.New()
	v.Set("STORAGE_DRIVER", "localstorage")

	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestLoad_DesdeEntorno(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "Redis")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("SEED_DEMO_DATA", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StorageRedis, cfg.Storage.Driver)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.True(t, cfg.App.SeedDemoData)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss word", DBName: "inventario", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%20word@db:5432/inventario?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}
