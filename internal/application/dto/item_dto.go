package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/aadish-inventory/internal/domain/entity"
)

// CreateItemRequest body para POST /api/items.
type CreateItemRequest struct {
	Name              string          `json:"name"`
	SKU               string          `json:"sku"`
	Category          string          `json:"category"`
	Supplier          string          `json:"supplier"`
	CurrentStock      int             `json:"current_stock"`
	LowStockThreshold int             `json:"low_stock_threshold"`
	PurchasePrice     decimal.Decimal `json:"purchase_price"`
	SellingPrice      decimal.Decimal `json:"selling_price"`
}

// UpdateItemRequest body para PUT /api/items/:id; los campos ausentes no se modifican.
type UpdateItemRequest struct {
	Name              *string          `json:"name"`
	SKU               *string          `json:"sku"`
	Category          *string          `json:"category"`
	Supplier          *string          `json:"supplier"`
	CurrentStock      *int             `json:"current_stock"`
	LowStockThreshold *int             `json:"low_stock_threshold"`
	PurchasePrice     *decimal.Decimal `json:"purchase_price"`
	SellingPrice      *decimal.Decimal `json:"selling_price"`
}

// StockMovementRequest body para POST /api/items/:id/stock.
type StockMovementRequest struct {
	Type      string           `json:"type"` // add | sell
	Quantity  int              `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"` // por defecto precio de compra/venta del artículo
	Customer  string           `json:"customer,omitempty"`   // solo sell
}

// ItemResponse salida de un artículo.
type ItemResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	SKU               string          `json:"sku"`
	Category          string          `json:"category"`
	Supplier          string          `json:"supplier"`
	CurrentStock      int             `json:"current_stock"`
	LowStockThreshold int             `json:"low_stock_threshold"`
	PurchasePrice     decimal.Decimal `json:"purchase_price"`
	SellingPrice      decimal.Decimal `json:"selling_price"`
	LowStock          bool            `json:"low_stock"`
	LastUpdated       time.Time       `json:"last_updated"`
}

// NewItemResponse mapea la entidad a la respuesta.
func NewItemResponse(it entity.InventoryItem) ItemResponse {
	return ItemResponse{
		ID:                it.ID,
		Name:              it.Name,
		SKU:               it.SKU,
		Category:          it.Category,
		Supplier:          it.Supplier,
		CurrentStock:      it.CurrentStock,
		LowStockThreshold: it.LowStockThreshold,
		PurchasePrice:     it.PurchasePrice,
		SellingPrice:      it.SellingPrice,
		LowStock:          it.IsLowStock(),
		LastUpdated:       it.LastUpdated,
	}
}

// NewItemList mapea una lista de artículos; nunca devuelve nil.
func NewItemList(items []entity.InventoryItem) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, NewItemResponse(it))
	}
	return out
}
