package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem representa un artículo (SKU) del inventario.
// CurrentStock nunca es negativo: toda salida se recorta en 0.
type InventoryItem struct {
	ID                string
	Name              string
	SKU               string // se espera único, pero el núcleo no lo exige
	Category          string
	Supplier          string
	CurrentStock      int
	LowStockThreshold int
	PurchasePrice     decimal.Decimal // precio de compra
	SellingPrice      decimal.Decimal // precio de venta
	LastUpdated       time.Time
}

// IsLowStock indica si el stock está en o por debajo del umbral (límite inclusivo).
func (i InventoryItem) IsLowStock() bool {
	return i.CurrentStock <= i.LowStockThreshold
}

// Value devuelve el valor del stock a precio de compra.
func (i InventoryItem) Value() decimal.Decimal {
	return i.PurchasePrice.Mul(decimal.NewFromInt(int64(i.CurrentStock)))
}
