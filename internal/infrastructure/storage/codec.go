// Package storage persiste el estado del inventario como tres entradas clave-valor
// (items, transactions, suppliers) serializadas en JSON.
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/aadish-inventory/internal/domain/entity"
)

// Claves fijas de cada colección.
const (
	KeyItems        = "items"
	KeyTransactions = "transactions"
	KeySuppliers    = "suppliers"
)

// itemRecord formato persistido de un artículo (nombres camelCase del almacenamiento local).
type itemRecord struct {
	ID                string      `json:"id"`
	Name              string      `json:"name"`
	SKU               string      `json:"sku"`
	Category          string      `json:"category"`
	CurrentStock      int         `json:"currentStock"`
	LowStockThreshold int         `json:"lowStockThreshold"`
	PurchasePrice     json.Number `json:"purchasePrice"`
	SellingPrice      json.Number `json:"sellingPrice"`
	Supplier          string      `json:"supplier"`
	LastUpdated       time.Time   `json:"lastUpdated"`
}

// transactionRecord formato persistido de un movimiento. supplier solo en "add", customer solo en "sell".
type transactionRecord struct {
	ID         string      `json:"id"`
	Date       time.Time   `json:"date"`
	ItemID     string      `json:"itemId"`
	ItemName   string      `json:"itemName"`
	Type       string      `json:"type"`
	Quantity   int         `json:"quantity"`
	UnitPrice  json.Number `json:"unitPrice"`
	TotalPrice json.Number `json:"totalPrice"`
	Supplier   *string     `json:"supplier,omitempty"`
	Customer   *string     `json:"customer,omitempty"`
}

// EncodeItems serializa los artículos.
func EncodeItems(items []entity.InventoryItem) ([]byte, error) {
	recs := make([]itemRecord, 0, len(items))
	for _, it := range items {
		recs = append(recs, itemRecord{
			ID:                it.ID,
			Name:              it.Name,
			SKU:               it.SKU,
			Category:          it.Category,
			CurrentStock:      it.CurrentStock,
			LowStockThreshold: it.LowStockThreshold,
			PurchasePrice:     json.Number(it.PurchasePrice.String()),
			SellingPrice:      json.Number(it.SellingPrice.String()),
			Supplier:          it.Supplier,
			LastUpdated:       it.LastUpdated,
		})
	}
	return json.Marshal(recs)
}

// DecodeItems reconstruye los artículos; lastUpdated se vuelve a interpretar como instante.
func DecodeItems(data []byte) ([]entity.InventoryItem, error) {
	var recs []itemRecord
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}
	items := make([]entity.InventoryItem, 0, len(recs))
	for _, r := range recs {
		purchase, err := parseMoney(r.PurchasePrice)
		if err != nil {
			return nil, fmt.Errorf("decode item %s purchasePrice: %w", r.ID, err)
		}
		selling, err := parseMoney(r.SellingPrice)
		if err != nil {
			return nil, fmt.Errorf("decode item %s sellingPrice: %w", r.ID, err)
		}
		items = append(items, entity.InventoryItem{
			ID:                r.ID,
			Name:              r.Name,
			SKU:               r.SKU,
			Category:          r.Category,
			Supplier:          r.Supplier,
			CurrentStock:      r.CurrentStock,
			LowStockThreshold: r.LowStockThreshold,
			PurchasePrice:     purchase,
			SellingPrice:      selling,
			LastUpdated:       r.LastUpdated,
		})
	}
	return items, nil
}

// EncodeTransactions serializa el libro de movimientos.
func EncodeTransactions(txs []entity.StockTransaction) ([]byte, error) {
	recs := make([]transactionRecord, 0, len(txs))
	for _, t := range txs {
		rec := transactionRecord{
			ID:         t.ID,
			Date:       t.Date,
			ItemID:     t.ItemID,
			ItemName:   t.ItemName,
			Type:       string(t.Type()),
			Quantity:   t.Quantity,
			UnitPrice:  json.Number(t.UnitPrice.String()),
			TotalPrice: json.Number(t.TotalPrice.String()),
		}
		switch d := t.Detail.(type) {
		case entity.Addition:
			rec.Supplier = &d.Supplier
		case entity.Sale:
			rec.Customer = &d.Customer
		default:
			return nil, fmt.Errorf("encode transaction %s: tipo desconocido", t.ID)
		}
		recs = append(recs, rec)
	}
	return json.Marshal(recs)
}

// DecodeTransactions reconstruye el libro; un type desconocido invalida la colección completa.
func DecodeTransactions(data []byte) ([]entity.StockTransaction, error) {
	var recs []transactionRecord
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("decode transactions: %w", err)
	}
	txs := make([]entity.StockTransaction, 0, len(recs))
	for _, r := range recs {
		unit, err := parseMoney(r.UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("decode transaction %s unitPrice: %w", r.ID, err)
		}
		total, err := parseMoney(r.TotalPrice)
		if err != nil {
			return nil, fmt.Errorf("decode transaction %s totalPrice: %w", r.ID, err)
		}
		var detail entity.TransactionDetail
		switch entity.TransactionType(r.Type) {
		case entity.TransactionTypeAdd:
			detail = entity.Addition{Supplier: deref(r.Supplier)}
		case entity.TransactionTypeSell:
			detail = entity.Sale{Customer: deref(r.Customer)}
		default:
			return nil, fmt.Errorf("decode transaction %s: type %q desconocido", r.ID, r.Type)
		}
		txs = append(txs, entity.StockTransaction{
			ID:         r.ID,
			Date:       r.Date,
			ItemID:     r.ItemID,
			ItemName:   r.ItemName,
			Quantity:   r.Quantity,
			UnitPrice:  unit,
			TotalPrice: total,
			Detail:     detail,
		})
	}
	return txs, nil
}

// EncodeSuppliers serializa el registro de proveedores.
func EncodeSuppliers(suppliers []string) ([]byte, error) {
	if suppliers == nil {
		suppliers = []string{}
	}
	return json.Marshal(suppliers)
}

// DecodeSuppliers reconstruye el registro de proveedores.
func DecodeSuppliers(data []byte) ([]string, error) {
	var out []string
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode suppliers: %w", err)
	}
	if out == nil {
		out = []string{}
	}
	return out, nil
}

func parseMoney(n json.Number) (decimal.Decimal, error) {
	if n == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(n.String())
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
