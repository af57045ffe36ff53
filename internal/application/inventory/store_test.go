package inventory_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/aadish-inventory/internal/application/inventory"
	"github.com/jhoicas/aadish-inventory/internal/domain"
	"github.com/jhoicas/aadish-inventory/internal/domain/entity"
	domaininv "github.com/jhoicas/aadish-inventory/internal/domain/inventory"
	"github.com/jhoicas/aadish-inventory/internal/infrastructure/storage"
)

var fixedNow = time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func ptr[T any](v T) *T { return &v }

// newTestStore store sobre un backend en memoria, con reloj fijo e IDs secuenciales.
func newTestStore(t *testing.T, opts ...inventory.Option) (*inventory.Store, *storage.MemoryBackend) {
	t.Helper()
	backend := storage.NewMemoryBackend()
	n := 0
	base := []inventory.Option{
		inventory.WithClock(func() time.Time { return fixedNow }),
		inventory.WithIDGenerator(func() string { n++; return fmt.Sprintf("id-%d", n) }),
	}
	s := inventory.NewStore(storage.NewKVStateRepository(backend), append(base, opts...)...)
	s.Load(context.Background())
	return s, backend
}

// addScenarioItem artículo base: stock 10, umbral 5, compra 100, venta 150.
func addScenarioItem(t *testing.T, s *inventory.Store) entity.InventoryItem {
	t.Helper()
	item, err := s.AddItem(context.Background(), inventory.NewItemInput{
		Name: "Lavender Oil", SKU: "EO-LAV-001", Category: "Essential Oils", Supplier: "Pure Oils Ltd",
		CurrentStock: 10, LowStockThreshold: 5, PurchasePrice: dec("100"), SellingPrice: dec("150"),
	})
	require.NoError(t, err)
	return item
}

// ─── Movimientos de stock ─────────────────────────────────────────────────────

func TestUpdateStock_VentaConPrecioYCliente(t *testing.T) {
	s, _ := newTestStore(t)
	item := addScenarioItem(t, s)

	tx, err := s.UpdateStock(context.Background(), inventory.StockMovement{
		ItemID: item.ID, Quantity: 3, Type: entity.TransactionTypeSell, UnitPrice: decPtr("150"), Customer: "Alice",
	})

	require.NoError(t, err)
	got, err := s.Item(item.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, got.CurrentStock)
	assert.Equal(t, entity.TransactionTypeSell, tx.Type())
	assert.Equal(t, 3, tx.Quantity)
	assert.True(t, tx.UnitPrice.Equal(dec("150")))
	assert.True(t, tx.TotalPrice.Equal(dec("450")))
	customer, ok := tx.Customer()
	assert.True(t, ok)
	assert.Equal(t, "Alice", customer)
	assert.Empty(t, domaininv.LowStockItems(s.Items()), "7 > 5 no es stock bajo")
	assert.Len(t, s.Transactions(), 1)
}

func TestUpdateStock_SobreventaSeRecortaACero(t *testing.T) {
	s, _ := newTestStore(t)
	item := addScenarioItem(t, s)

	tx, err := s.UpdateStock(context.Background(), inventory.StockMovement{
		ItemID: item.ID, Quantity: 20, Type: entity.TransactionTypeSell,
	})

	require.NoError(t, err)
	got, _ := s.Item(item.ID)
	assert.Equal(t, 0, got.CurrentStock)
	assert.Equal(t, 20, tx.Quantity, "el asiento registra la cantidad pedida completa")
	assert.True(t, tx.TotalPrice.Equal(dec("3000")))
	customer, _ := tx.Customer()
	assert.Equal(t, entity.WalkInCustomer, customer)
	low := domaininv.LowStockItems(s.Items())
	require.Len(t, low, 1)
	assert.Equal(t, item.ID, low[0].ID)
}

func TestUpdateStock_VentasRepetidasNuncaBajanDeCero(t *testing.T) {
	s, _ := newTestStore(t)
	item := addScenarioItem(t, s)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := s.UpdateStock(ctx, inventory.StockMovement{ItemID: item.ID, Quantity: 7, Type: entity.TransactionTypeSell})
		require.NoError(t, err)
	}

	got, _ := s.Item(item.ID)
	assert.Equal(t, 0, got.CurrentStock)
	assert.Len(t, s.Transactions(), 3)
}

func TestUpdateStock_EntradaSumaYUsaPrecioDeCompra(t *testing.T) {
	s, _ := newTestStore(t)
	item := addScenarioItem(t, s)

	tx, err := s.UpdateStock(context.Background(), inventory.StockMovement{
		ItemID: item.ID, Quantity: 4, Type: entity.TransactionTypeAdd,
	})

	require.NoError(t, err)
	got, _ := s.Item(item.ID)
	assert.Equal(t, 14, got.CurrentStock)
	assert.Equal(t, entity.TransactionTypeAdd, tx.Type())
	assert.True(t, tx.TotalPrice.Equal(dec("400")))
	supplier, ok := tx.Supplier()
	assert.True(t, ok)
	assert.Equal(t, "Pure Oils Ltd", supplier)
	assert.Equal(t, "Lavender Oil", tx.ItemName)
	assert.Equal(t, fixedNow, tx.Date)
}

func TestUpdateStock_PrecioCeroExplicitoSeRespeta(t *testing.T) {
	s, _ := newTestStore(t)
	item := addScenarioItem(t, s)

	tx, err := s.UpdateStock(context.Background(), inventory.StockMovement{
		ItemID: item.ID, Quantity: 2, Type: entity.TransactionTypeAdd, UnitPrice: decPtr("0"),
	})

	require.NoError(t, err)
	assert.True(t, tx.TotalPrice.IsZero())
}

func TestUpdateStock_ArticuloInexistente(t *testing.T) {
	s, _ := newTestStore(t)
	item := addScenarioItem(t, s)
	events := 0
	s.Subscribe(func(inventory.ChangeEvent) { events++ })

	_, err := s.UpdateStock(context.Background(), inventory.StockMovement{
		ItemID: "no-existe", Quantity: 1, Type: entity.TransactionTypeSell,
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, s.Transactions())
	got, _ := s.Item(item.ID)
	assert.Equal(t, 10, got.CurrentStock)
	assert.Zero(t, events)
}

func TestUpdateStock_EntradaInvalida(t *testing.T) {
	s, _ := newTestStore(t)
	item := addScenarioItem(t, s)
	ctx := context.Background()

	cases := map[string]inventory.StockMovement{
		"cantidad cero":     {ItemID: item.ID, Quantity: 0, Type: entity.TransactionTypeAdd},
		"cantidad negativa": {ItemID: item.ID, Quantity: -2, Type: entity.TransactionTypeSell},
		"tipo desconocido":  {ItemID: item.ID, Quantity: 1, Type: "transfer"},
		"precio negativo":   {ItemID: item.ID, Quantity: 1, Type: entity.TransactionTypeAdd, UnitPrice: decPtr("-1")},
	}
	for name, mv := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := s.UpdateStock(ctx, mv)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	assert.Empty(t, s.Transactions())
}

func TestUpdateStock_EntradaQueDesbordaSeRechaza(t *testing.T) {
	s, _ := newTestStore(t)
	item, err := s.AddItem(context.Background(), inventory.NewItemInput{Name: "X", CurrentStock: math.MaxInt})
	require.NoError(t, err)
	events := 0
	s.Subscribe(func(inventory.ChangeEvent) { events++ })

	_, err = s.UpdateStock(context.Background(), inventory.StockMovement{
		ItemID: item.ID, Quantity: 1, Type: entity.TransactionTypeAdd,
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	got, _ := s.Item(item.ID)
	assert.Equal(t, math.MaxInt, got.CurrentStock)
	assert.Empty(t, s.Transactions())
	assert.Zero(t, events)

	_, err = s.UpdateStock(context.Background(), inventory.StockMovement{
		ItemID: item.ID, Quantity: 1, Type: entity.TransactionTypeSell,
	})
	require.NoError(t, err)
	_, err = s.UpdateStock(context.Background(), inventory.StockMovement{
		ItemID: item.ID, Quantity: 1, Type: entity.TransactionTypeAdd,
	})
	require.NoError(t, err, "hasta el máximo exacto se acepta")
	got, _ = s.Item(item.ID)
	assert.Equal(t, math.MaxInt, got.CurrentStock)
}

func TestRecordSale_EquivaleAVenta(t *testing.T) {
	s, _ := newTestStore(t)
	item := addScenarioItem(t, s)

	tx, err := s.RecordSale(context.Background(), item.ID, 2, nil, "")

	require.NoError(t, err)
	assert.Equal(t, entity.Sale{Customer: entity.WalkInCustomer}, tx.Detail)
	assert.True(t, tx.TotalPrice.Equal(dec("300")))
	got, _ := s.Item(item.ID)
	assert.Equal(t, 8, got.CurrentStock)
}

// ─── Artículos ────────────────────────────────────────────────────────────────

func TestAddItem_AsignaIDYFecha(t *testing.T) {
	s, _ := newTestStore(t)

	item := addScenarioItem(t, s)

	assert.Equal(t, "id-1", item.ID)
	assert.Equal(t, fixedNow, item.LastUpdated)
	assert.Equal(t, []entity.InventoryItem{item}, s.Items())
}

func TestAddItem_RechazaNegativos(t *testing.T) {
	s, _ := newTestStore(t)

	cases := map[string]inventory.NewItemInput{
		"stock negativo":          {Name: "X", CurrentStock: -1},
		"umbral negativo":         {Name: "X", LowStockThreshold: -1},
		"precio de compra":        {Name: "X", PurchasePrice: dec("-0.01")},
		"precio de venta":         {Name: "X", SellingPrice: dec("-0.01")},
		"precio fuera de float64": {Name: "X", PurchasePrice: dec("-1e-400")},
		"venta fuera de float64":  {Name: "X", SellingPrice: dec("-1e-400")},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := s.AddItem(context.Background(), in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	assert.Empty(t, s.Items())
}

func TestAddItem_AceptaPrecioCeroYMinimoPositivo(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.AddItem(context.Background(), inventory.NewItemInput{Name: "X", PurchasePrice: decimal.Zero, SellingPrice: dec("1e-400")})

	assert.NoError(t, err)
}

func TestStore_RelojPorDefectoEnMicrosegundosUTC(t *testing.T) {
	s := inventory.NewStore(storage.NewKVStateRepository(storage.NewMemoryBackend()))
	s.Load(context.Background())

	item, err := s.AddItem(context.Background(), inventory.NewItemInput{Name: "X"})
	require.NoError(t, err)
	assert.Equal(t, time.UTC, item.LastUpdated.Location())
	assert.Zero(t, item.LastUpdated.Nanosecond()%1000, "TIMESTAMPTZ solo guarda microsegundos")

	date := time.Date(2025, time.March, 10, 9, 0, 0, 123456789, time.UTC)
	tx, err := s.AddTransaction(context.Background(), inventory.NewTransactionInput{
		Date: date, ItemID: item.ID, ItemName: "X", Quantity: 1, UnitPrice: dec("1"), Detail: entity.Sale{},
	})
	require.NoError(t, err)
	assert.Equal(t, date.Truncate(time.Microsecond), tx.Date)
}

func TestUpdateItem_AplicaSoloCamposPresentes(t *testing.T) {
	later := fixedNow.Add(time.Hour)
	now := fixedNow
	s, _ := newTestStore(t, inventory.WithClock(func() time.Time { return now }))
	item := addScenarioItem(t, s)
	now = later

	got, err := s.UpdateItem(context.Background(), item.ID, inventory.ItemPatch{
		Name: ptr("Lavender Oil 50ml"), SellingPrice: decPtr("175"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Lavender Oil 50ml", got.Name)
	assert.True(t, got.SellingPrice.Equal(dec("175")))
	assert.True(t, got.PurchasePrice.Equal(dec("100")))
	assert.Equal(t, "EO-LAV-001", got.SKU)
	assert.Equal(t, 10, got.CurrentStock)
	assert.Equal(t, later, got.LastUpdated)
}

func TestUpdateItem_InexistenteNoCambiaEstado(t *testing.T) {
	s, _ := newTestStore(t)
	addScenarioItem(t, s)
	before := s.Items()

	_, err := s.UpdateItem(context.Background(), "no-existe", inventory.ItemPatch{Name: ptr("X")})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, before, s.Items())
}

func TestUpdateItem_RechazaStockNegativo(t *testing.T) {
	s, _ := newTestStore(t)
	item := addScenarioItem(t, s)

	_, err := s.UpdateItem(context.Background(), item.ID, inventory.ItemPatch{CurrentStock: ptr(-3)})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRemoveItem_NoBorraMovimientos(t *testing.T) {
	s, _ := newTestStore(t)
	item := addScenarioItem(t, s)
	ctx := context.Background()
	_, err := s.RecordSale(ctx, item.ID, 1, nil, "Bob")
	require.NoError(t, err)

	require.NoError(t, s.RemoveItem(ctx, item.ID))

	assert.Empty(t, s.Items())
	assert.Len(t, s.Transactions(), 1)
	_, err = s.Item(item.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, s.RemoveItem(ctx, item.ID), domain.ErrNotFound)
}

func TestItems_DevuelveCopia(t *testing.T) {
	s, _ := newTestStore(t)
	addScenarioItem(t, s)

	items := s.Items()
	items[0].CurrentStock = 999

	got := s.Items()
	assert.Equal(t, 10, got[0].CurrentStock)
}

// ─── Libro y proveedores ──────────────────────────────────────────────────────

func TestAddTransaction_CalculaTotalYDefaults(t *testing.T) {
	s, _ := newTestStore(t)

	tx, err := s.AddTransaction(context.Background(), inventory.NewTransactionInput{
		ItemID: "1", ItemName: "Premium Rice", Quantity: 3, UnitPrice: dec("3200"), Detail: entity.Sale{},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, tx.ID)
	assert.Equal(t, fixedNow, tx.Date)
	assert.True(t, tx.TotalPrice.Equal(dec("9600")))
	assert.Equal(t, entity.Sale{Customer: entity.WalkInCustomer}, tx.Detail)
	assert.Empty(t, s.Items(), "no toca artículos")
}

func TestAddTransaction_SinDetalleEsInvalido(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.AddTransaction(context.Background(), inventory.NewTransactionInput{
		ItemID: "1", Quantity: 1, UnitPrice: dec("1"),
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAddSupplier_DuplicadoEsNoOp(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	added, err := s.AddSupplier(ctx, "Acme")
	require.NoError(t, err)
	assert.True(t, added)

	added, err = s.AddSupplier(ctx, "Acme")
	require.NoError(t, err)
	assert.False(t, added)

	added, err = s.AddSupplier(ctx, "acme")
	require.NoError(t, err)
	assert.True(t, added, "la comparación distingue mayúsculas")

	assert.Equal(t, []string{"Acme", "acme"}, s.Suppliers())
}

func TestAddSupplier_NombreVacio(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.AddSupplier(context.Background(), "  ")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ─── Persistencia ─────────────────────────────────────────────────────────────

func TestStore_PersisteYRecarga(t *testing.T) {
	s, backend := newTestStore(t)
	ctx := context.Background()
	item := addScenarioItem(t, s)
	_, err := s.RecordSale(ctx, item.ID, 3, nil, "Alice")
	require.NoError(t, err)
	_, err = s.AddSupplier(ctx, "Acme")
	require.NoError(t, err)

	reloaded := inventory.NewStore(storage.NewKVStateRepository(backend))
	reloaded.Load(ctx)

	items := reloaded.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 7, items[0].CurrentStock)
	assert.True(t, items[0].LastUpdated.Equal(fixedNow))
	txs := reloaded.Transactions()
	require.Len(t, txs, 1)
	assert.Equal(t, entity.Sale{Customer: "Alice"}, txs[0].Detail)
	assert.True(t, txs[0].TotalPrice.Equal(dec("450")))
	assert.Equal(t, []string{"Acme"}, reloaded.Suppliers())
}

func TestStore_FalloDePersistenciaNoFallaLaMutacion(t *testing.T) {
	s, backend := newTestStore(t)
	ctx := context.Background()
	var last inventory.ChangeEvent
	s.Subscribe(func(ev inventory.ChangeEvent) { last = ev })
	backend.SetFailWrites(errors.New("disco lleno"))

	item := addScenarioItem(t, s)

	assert.Len(t, s.Items(), 1, "el cambio vive en memoria")
	assert.ErrorIs(t, s.PersistenceError(), domain.ErrPersistence)
	assert.ErrorIs(t, last.PersistErr, domain.ErrPersistence)
	assert.ErrorIs(t, s.Flush(ctx), domain.ErrPersistence)

	backend.SetFailWrites(nil)
	require.NoError(t, s.Flush(ctx))
	assert.NoError(t, s.PersistenceError())

	reloaded := inventory.NewStore(storage.NewKVStateRepository(backend))
	reloaded.Load(ctx)
	require.Len(t, reloaded.Items(), 1)
	assert.Equal(t, item.ID, reloaded.Items()[0].ID)
}

func TestStore_SiguienteMutacionReintentaPendientes(t *testing.T) {
	s, backend := newTestStore(t)
	ctx := context.Background()
	backend.SetFailWrites(errors.New("no disponible"))
	addScenarioItem(t, s)
	backend.SetFailWrites(nil)

	_, err := s.AddSupplier(ctx, "Acme")
	require.NoError(t, err)

	assert.NoError(t, s.PersistenceError())
	reloaded := inventory.NewStore(storage.NewKVStateRepository(backend))
	reloaded.Load(ctx)
	assert.Len(t, reloaded.Items(), 1)
	assert.Equal(t, []string{"Acme"}, reloaded.Suppliers())
}

func TestLoad_ColeccionIlegibleQuedaVacia(t *testing.T) {
	backend := storage.NewMemoryBackend()
	ctx := context.Background()
	require.NoError(t, backend.Set(ctx, storage.KeyItems, []byte("{no es json")))
	require.NoError(t, backend.Set(ctx, storage.KeySuppliers, []byte(`["Acme"]`)))

	s := inventory.NewStore(storage.NewKVStateRepository(backend), inventory.WithSeed(inventory.DemoSeed()))
	s.Load(ctx)

	assert.Empty(t, s.Items())
	assert.Empty(t, s.Transactions())
	assert.Equal(t, []string{"Acme"}, s.Suppliers(), "con datos existentes no se usa el seed")
}

func TestLoad_SeedSoloConAlmacenamientoVacio(t *testing.T) {
	s, backend := newTestStore(t, inventory.WithSeed(inventory.DemoSeed()))

	assert.Len(t, s.Items(), 5)
	assert.Len(t, s.Transactions(), 8)
	assert.Len(t, s.Suppliers(), 5)

	_, found, err := storage.NewKVStateRepository(backend).LoadItems(context.Background())
	require.NoError(t, err)
	assert.True(t, found, "el seed queda guardado")
}

// ─── Suscripciones ────────────────────────────────────────────────────────────

func TestSubscribe_UnEventoPorMutacion(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	var events []inventory.ChangeEvent
	unsubscribe := s.Subscribe(func(ev inventory.ChangeEvent) { events = append(events, ev) })

	item := addScenarioItem(t, s)
	_, err := s.RecordSale(ctx, item.ID, 1, nil, "")
	require.NoError(t, err)
	_, err = s.AddSupplier(ctx, "Acme")
	require.NoError(t, err)
	_, err = s.AddSupplier(ctx, "Acme")
	require.NoError(t, err)

	require.Len(t, events, 3, "el proveedor duplicado no notifica")
	assert.Equal(t, []inventory.Collection{inventory.CollectionItems}, events[0].Collections)
	assert.Equal(t, []inventory.Collection{inventory.CollectionItems, inventory.CollectionTransactions}, events[1].Collections)
	assert.Equal(t, []inventory.Collection{inventory.CollectionSuppliers}, events[2].Collections)
	assert.NoError(t, events[1].PersistErr)

	unsubscribe()
	require.NoError(t, s.RemoveItem(ctx, item.ID))
	assert.Len(t, events, 3)
}

func TestSubscribe_SuscriptorPuedeLeerElStore(t *testing.T) {
	s, _ := newTestStore(t)
	var seen int
	s.Subscribe(func(inventory.ChangeEvent) { seen = len(s.Items()) })

	addScenarioItem(t, s)

	assert.Equal(t, 1, seen)
}
