package repository

import (
	"context"

	"github.com/jhoicas/aadish-inventory/internal/domain/entity"
)

// StateRepository define el puerto de persistencia del estado del inventario (DIP).
// Cada colección se guarda completa y de forma independiente.
// Los Load* devuelven found=false (sin error) cuando la entrada no existe.
type StateRepository interface {
	LoadItems(ctx context.Context) (items []entity.InventoryItem, found bool, err error)
	SaveItems(ctx context.Context, items []entity.InventoryItem) error

	LoadTransactions(ctx context.Context) (txs []entity.StockTransaction, found bool, err error)
	SaveTransactions(ctx context.Context, txs []entity.StockTransaction) error

	LoadSuppliers(ctx context.Context) (suppliers []string, found bool, err error)
	SaveSuppliers(ctx context.Context, suppliers []string) error
}
