package postgres

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/aadish-inventory/internal/application/inventory"
	"github.com/jhoicas/aadish-inventory/internal/domain"
	"github.com/jhoicas/aadish-inventory/internal/domain/entity"
	"github.com/jhoicas/aadish-inventory/pkg/config"
)

// getTestPool conecta a DATABASE_URL (base de datos desechable); sin ella el test se omite.
func getTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL no definido")
	}
	ctx := context.Background()
	pool, err := NewPool(ctx, config.DBConfig{DatabaseURL: url})
	if err != nil {
		t.Skipf("PostgreSQL no disponible: %v", err)
	}
	require.NoError(t, EnsureSchema(ctx, pool))
	_, err = pool.Exec(ctx, `TRUNCATE state_collections, inventory_items, stock_transactions, suppliers`)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("connection refused")))
}

func TestStateRepository_ColeccionesAusentes(t *testing.T) {
	repo := NewStateRepository(getTestPool(t))
	ctx := context.Background()

	items, found, err := repo.LoadItems(ctx)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, items)

	_, found, err = repo.LoadTransactions(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	_, found, err = repo.LoadSuppliers(ctx)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStateRepository_RoundTrip(t *testing.T) {
	repo := NewStateRepository(getTestPool(t))
	ctx := context.Background()
	ts := time.Date(2025, 5, 1, 10, 30, 0, 123456789, time.UTC)
	stored := ts.Truncate(time.Microsecond) // TIMESTAMPTZ guarda microsegundos

	items := []entity.InventoryItem{
		{ID: "b", Name: "Lavender Oil", SKU: "EO-LAV-001", Category: "Essential Oils", Supplier: "Pure Oils Ltd",
			CurrentStock: 4, LowStockThreshold: 5, PurchasePrice: decimal.RequireFromString("450.50"),
			SellingPrice: decimal.NewFromInt(800), LastUpdated: ts},
		{ID: "a", Name: "Hand Cream", SKU: "HC-001", Category: "Skin Care", Supplier: "Acme",
			CurrentStock: 0, LowStockThreshold: 2, PurchasePrice: decimal.Zero,
			SellingPrice: decimal.NewFromInt(150), LastUpdated: ts},
	}
	require.NoError(t, repo.SaveItems(ctx, items))

	gotItems, found, err := repo.LoadItems(ctx)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, gotItems, 2)
	assert.Equal(t, "b", gotItems[0].ID, "se conserva el orden de inserción")
	assert.True(t, gotItems[0].PurchasePrice.Equal(items[0].PurchasePrice))
	assert.Equal(t, stored, gotItems[0].LastUpdated)

	txs := []entity.StockTransaction{
		{ID: "t1", Date: ts, ItemID: "b", ItemName: "Lavender Oil", Quantity: 3,
			UnitPrice: decimal.NewFromInt(450), TotalPrice: decimal.NewFromInt(1350),
			Detail: entity.Addition{Supplier: "Pure Oils Ltd"}},
		{ID: "t2", Date: ts, ItemID: "b", ItemName: "Lavender Oil", Quantity: 1,
			UnitPrice: decimal.NewFromInt(800), TotalPrice: decimal.NewFromInt(800),
			Detail: entity.Sale{Customer: entity.WalkInCustomer}},
	}
	require.NoError(t, repo.SaveTransactions(ctx, txs))

	gotTxs, found, err := repo.LoadTransactions(ctx)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, gotTxs, 2)
	assert.Equal(t, entity.Addition{Supplier: "Pure Oils Ltd"}, gotTxs[0].Detail)
	assert.Equal(t, entity.Sale{Customer: entity.WalkInCustomer}, gotTxs[1].Detail)
	assert.True(t, gotTxs[0].TotalPrice.Equal(decimal.NewFromInt(1350)))
	assert.Equal(t, stored, gotTxs[0].Date)

	require.NoError(t, repo.SaveSuppliers(ctx, []string{}))
	names, found, err := repo.LoadSuppliers(ctx)
	require.NoError(t, err)
	assert.True(t, found, "una colección vacía guardada existe")
	assert.Empty(t, names)
}

func TestStateRepository_StoreRecargaInstantesExactos(t *testing.T) {
	repo := NewStateRepository(getTestPool(t))
	ctx := context.Background()

	store := inventory.NewStore(repo)
	store.Load(ctx)
	item, err := store.AddItem(ctx, inventory.NewItemInput{Name: "Premium Rice", CurrentStock: 10})
	require.NoError(t, err)
	_, err = store.UpdateStock(ctx, inventory.StockMovement{ItemID: item.ID, Quantity: 2, Type: entity.TransactionTypeSell})
	require.NoError(t, err)
	require.NoError(t, store.PersistenceError())

	reloaded := inventory.NewStore(repo)
	reloaded.Load(ctx)

	wantItems, gotItems := store.Items(), reloaded.Items()
	require.Len(t, gotItems, 1)
	assert.Equal(t, 8, gotItems[0].CurrentStock)
	assert.Equal(t, wantItems[0].LastUpdated, gotItems[0].LastUpdated)

	wantTxs, gotTxs := store.Transactions(), reloaded.Transactions()
	require.Len(t, gotTxs, 1)
	assert.Equal(t, wantTxs[0].ID, gotTxs[0].ID)
	assert.Equal(t, wantTxs[0].Date, gotTxs[0].Date)
}

func TestStateRepository_ProveedorDuplicado(t *testing.T) {
	repo := NewStateRepository(getTestPool(t))

	err := repo.SaveSuppliers(context.Background(), []string{"Acme", "Acme"})

	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestNewPoolConfig(t *testing.T) {
	cfg, err := newPoolConfig(config.DBConfig{
		Host: "db.local", Port: 5433, User: "inv", Password: "p@ss", DBName: "inventario", SSLMode: "disable",
	})
	require.NoError(t, err)
	assert.Equal(t, "db.local", cfg.ConnConfig.Host)
	assert.Equal(t, uint16(5433), cfg.ConnConfig.Port)
	assert.Equal(t, "p@ss", cfg.ConnConfig.Password)
	assert.Equal(t, int32(maxConns), cfg.MaxConns)
	assert.NotNil(t, cfg.AfterConnect)

	_, err = newPoolConfig(config.DBConfig{DatabaseURL: "://no-es-una-url"})
	assert.Error(t, err)
}
