package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/aadish-inventory/internal/domain"
	"github.com/jhoicas/aadish-inventory/internal/domain/entity"
	"github.com/jhoicas/aadish-inventory/internal/domain/repository"
)

var _ repository.StateRepository = (*StateRepository)(nil)

const (
	collectionItems        = "items"
	collectionTransactions = "transactions"
	collectionSuppliers    = "suppliers"
)

// StateRepository guarda las tres colecciones del inventario en PostgreSQL.
// Cada Save* reemplaza la colección completa dentro de una transacción; position conserva el orden.
type StateRepository struct {
	pool *pgxpool.Pool
	tx   *TxRunner
}

// NewStateRepository construye el adaptador sobre el pool (el codec decimal ya registrado por NewPool).
func NewStateRepository(pool *pgxpool.Pool) *StateRepository {
	return &StateRepository{pool: pool, tx: NewTxRunner(pool)}
}

// LoadItems lee los artículos en orden de inserción.
func (r *StateRepository) LoadItems(ctx context.Context) ([]entity.InventoryItem, bool, error) {
	found, err := r.collectionSaved(ctx, collectionItems)
	if err != nil || !found {
		return nil, false, err
	}
	query := `
		SELECT id, name, sku, category, supplier, current_stock, low_stock_threshold,
		       purchase_price, selling_price, last_updated
		FROM inventory_items ORDER BY position`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, true, fmt.Errorf("list inventory items: %w", err)
	}
	defer rows.Close()

	items := []entity.InventoryItem{}
	for rows.Next() {
		var it entity.InventoryItem
		if err := rows.Scan(
			&it.ID, &it.Name, &it.SKU, &it.Category, &it.Supplier, &it.CurrentStock,
			&it.LowStockThreshold, &it.PurchasePrice, &it.SellingPrice, &it.LastUpdated,
		); err != nil {
			return nil, true, fmt.Errorf("scan inventory item: %w", err)
		}
		it.LastUpdated = it.LastUpdated.UTC()
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, true, fmt.Errorf("list inventory items: %w", err)
	}
	return items, true, nil
}

// SaveItems reemplaza la tabla de artículos.
func (r *StateRepository) SaveItems(ctx context.Context, items []entity.InventoryItem) error {
	return r.tx.Run(ctx, func(q Querier) error {
		if _, err := q.Exec(ctx, `DELETE FROM inventory_items`); err != nil {
			return fmt.Errorf("clear inventory items: %w", err)
		}
		_, err := q.CopyFrom(ctx, pgx.Identifier{"inventory_items"},
			[]string{"position", "id", "name", "sku", "category", "supplier", "current_stock",
				"low_stock_threshold", "purchase_price", "selling_price", "last_updated"},
			pgx.CopyFromSlice(len(items), func(i int) ([]any, error) {
				it := items[i]
				return []any{i, it.ID, it.Name, it.SKU, it.Category, it.Supplier, it.CurrentStock,
					it.LowStockThreshold, it.PurchasePrice, it.SellingPrice, it.LastUpdated}, nil
			}),
		)
		if err != nil {
			return fmt.Errorf("copy inventory items: %w", err)
		}
		return markSaved(ctx, q, collectionItems)
	})
}

// LoadTransactions lee el libro de movimientos en orden.
func (r *StateRepository) LoadTransactions(ctx context.Context) ([]entity.StockTransaction, bool, error) {
	found, err := r.collectionSaved(ctx, collectionTransactions)
	if err != nil || !found {
		return nil, false, err
	}
	query := `
		SELECT id, date, item_id, item_name, type, quantity, unit_price, total_price, supplier, customer
		FROM stock_transactions ORDER BY position`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, true, fmt.Errorf("list stock transactions: %w", err)
	}
	defer rows.Close()

	txs := []entity.StockTransaction{}
	for rows.Next() {
		var (
			t                  entity.StockTransaction
			typ                string
			supplier, customer *string
		)
		if err := rows.Scan(
			&t.ID, &t.Date, &t.ItemID, &t.ItemName, &typ, &t.Quantity,
			&t.UnitPrice, &t.TotalPrice, &supplier, &customer,
		); err != nil {
			return nil, true, fmt.Errorf("scan stock transaction: %w", err)
		}
		t.Date = t.Date.UTC()
		switch entity.TransactionType(typ) {
		case entity.TransactionTypeAdd:
			t.Detail = entity.Addition{Supplier: stringOrEmpty(supplier)}
		case entity.TransactionTypeSell:
			t.Detail = entity.Sale{Customer: stringOrEmpty(customer)}
		default:
			return nil, true, fmt.Errorf("movimiento %s con tipo desconocido %q", t.ID, typ)
		}
		txs = append(txs, t)
	}
	if err := rows.Err(); err != nil {
		return nil, true, fmt.Errorf("list stock transactions: %w", err)
	}
	return txs, true, nil
}

// SaveTransactions reemplaza el libro de movimientos.
func (r *StateRepository) SaveTransactions(ctx context.Context, txs []entity.StockTransaction) error {
	return r.tx.Run(ctx, func(q Querier) error {
		if _, err := q.Exec(ctx, `DELETE FROM stock_transactions`); err != nil {
			return fmt.Errorf("clear stock transactions: %w", err)
		}
		_, err := q.CopyFrom(ctx, pgx.Identifier{"stock_transactions"},
			[]string{"position", "id", "date", "item_id", "item_name", "type", "quantity",
				"unit_price", "total_price", "supplier", "customer"},
			pgx.CopyFromSlice(len(txs), func(i int) ([]any, error) {
				t := txs[i]
				var supplier, customer *string
				if s, ok := t.Supplier(); ok {
					supplier = &s
				}
				if c, ok := t.Customer(); ok {
					customer = &c
				}
				return []any{i, t.ID, t.Date, t.ItemID, t.ItemName, string(t.Type()), t.Quantity,
					t.UnitPrice, t.TotalPrice, supplier, customer}, nil
			}),
		)
		if err != nil {
			return fmt.Errorf("copy stock transactions: %w", err)
		}
		return markSaved(ctx, q, collectionTransactions)
	})
}

// LoadSuppliers lee el registro de proveedores.
func (r *StateRepository) LoadSuppliers(ctx context.Context) ([]string, bool, error) {
	found, err := r.collectionSaved(ctx, collectionSuppliers)
	if err != nil || !found {
		return nil, false, err
	}
	rows, err := r.pool.Query(ctx, `SELECT name FROM suppliers ORDER BY position`)
	if err != nil {
		return nil, true, fmt.Errorf("list suppliers: %w", err)
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, true, fmt.Errorf("list suppliers: %w", err)
	}
	if names == nil {
		names = []string{}
	}
	return names, true, nil
}

// SaveSuppliers reemplaza el registro de proveedores. Un nombre repetido devuelve domain.ErrDuplicate.
func (r *StateRepository) SaveSuppliers(ctx context.Context, suppliers []string) error {
	return r.tx.Run(ctx, func(q Querier) error {
		if _, err := q.Exec(ctx, `DELETE FROM suppliers`); err != nil {
			return fmt.Errorf("clear suppliers: %w", err)
		}
		_, err := q.CopyFrom(ctx, pgx.Identifier{"suppliers"}, []string{"position", "name"},
			pgx.CopyFromSlice(len(suppliers), func(i int) ([]any, error) {
				return []any{i, suppliers[i]}, nil
			}),
		)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("copy suppliers: %w", domain.ErrDuplicate)
			}
			return fmt.Errorf("copy suppliers: %w", err)
		}
		return markSaved(ctx, q, collectionSuppliers)
	})
}

func (r *StateRepository) collectionSaved(ctx context.Context, name string) (bool, error) {
	var saved bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM state_collections WHERE name = $1)`, name,
	).Scan(&saved)
	if err != nil {
		return false, fmt.Errorf("check collection %s: %w", name, err)
	}
	return saved, nil
}

func markSaved(ctx context.Context, q Querier, name string) error {
	query := `
		INSERT INTO state_collections (name, saved_at) VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET saved_at = EXCLUDED.saved_at`
	if _, err := q.Exec(ctx, query, name, time.Now().UTC()); err != nil {
		return fmt.Errorf("mark collection %s: %w", name, err)
	}
	return nil
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
