package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/aadish-inventory/internal/domain/entity"
)

// CreateTransactionRequest body para POST /api/transactions (asiento directo, no toca stock).
type CreateTransactionRequest struct {
	Date      *time.Time      `json:"date,omitempty"` // por defecto ahora
	ItemID    string          `json:"item_id"`
	ItemName  string          `json:"item_name"`
	Type      string          `json:"type"` // add | sell
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Supplier  string          `json:"supplier,omitempty"`
	Customer  string          `json:"customer,omitempty"`
}

// RecordSaleRequest body para POST /api/sales.
type RecordSaleRequest struct {
	ItemID    string           `json:"item_id"`
	Quantity  int              `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"`
	Customer  string           `json:"customer,omitempty"`
}

// TransactionResponse salida de un movimiento del libro.
type TransactionResponse struct {
	ID         string          `json:"id"`
	Date       time.Time       `json:"date"`
	ItemID     string          `json:"item_id"`
	ItemName   string          `json:"item_name"`
	Type       string          `json:"type"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Supplier   *string         `json:"supplier,omitempty"`
	Customer   *string         `json:"customer,omitempty"`
}

// NewTransactionResponse mapea el asiento; supplier solo en add y customer solo en sell.
func NewTransactionResponse(t entity.StockTransaction) TransactionResponse {
	out := TransactionResponse{
		ID:         t.ID,
		Date:       t.Date,
		ItemID:     t.ItemID,
		ItemName:   t.ItemName,
		Type:       string(t.Type()),
		Quantity:   t.Quantity,
		UnitPrice:  t.UnitPrice,
		TotalPrice: t.TotalPrice,
	}
	if s, ok := t.Supplier(); ok {
		out.Supplier = &s
	}
	if c, ok := t.Customer(); ok {
		out.Customer = &c
	}
	return out
}

// NewTransactionList mapea una lista de asientos; nunca devuelve nil.
func NewTransactionList(txs []entity.StockTransaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txs))
	for _, t := range txs {
		out = append(out, NewTransactionResponse(t))
	}
	return out
}

// CreateSupplierRequest body para POST /api/suppliers.
type CreateSupplierRequest struct {
	Name string `json:"name"`
}

// SupplierListResponse registro de proveedores.
type SupplierListResponse struct {
	Suppliers []string `json:"suppliers"`
	Added     *bool    `json:"added,omitempty"` // solo en POST
}
