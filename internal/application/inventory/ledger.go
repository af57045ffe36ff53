package inventory

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/jhoicas/aadish-inventory/internal/domain"
	"github.com/jhoicas/aadish-inventory/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// NewTransactionInput asiento directo en el libro. TotalPrice lo calcula el Store.
// Date cero significa ahora.
type NewTransactionInput struct {
	Date      time.Time
	ItemID    string `validate:"required"`
	ItemName  string
	Quantity  int                      `validate:"gt=0"`
	UnitPrice decimal.Decimal          `validate:"gte=0"`
	Detail    entity.TransactionDetail `validate:"required"`
}

// StockMovement entrada o venta sobre un artículo existente.
// UnitPrice nil usa el precio de compra (add) o de venta (sell) del artículo.
type StockMovement struct {
	ItemID    string                 `validate:"required"`
	Quantity  int                    `validate:"gt=0"`
	Type      entity.TransactionType `validate:"oneof=add sell"`
	UnitPrice *decimal.Decimal       `validate:"omitempty,gte=0"`
	Customer  string
}

// AddTransaction agrega un asiento al libro sin tocar el stock de los artículos.
func (s *Store) AddTransaction(ctx context.Context, in NewTransactionInput) (entity.StockTransaction, error) {
	if err := validateInput(in); err != nil {
		return entity.StockTransaction{}, err
	}

	s.mu.Lock()
	date := in.Date.Truncate(time.Microsecond)
	if date.IsZero() {
		date = s.now()
	}
	tx := s.newTransaction(date, in.ItemID, in.ItemName, in.Quantity, in.UnitPrice, in.Detail)
	s.txs = append(s.txs, tx)
	ev := s.commit(ctx, CollectionTransactions)
	s.mu.Unlock()

	s.notify(ev)
	return tx, nil
}

// UpdateStock aplica una entrada o venta: ajusta el stock (sin bajar de cero) y registra el
// movimiento por la cantidad pedida completa. Artículo y libro cambian juntos bajo el mismo lock.
// Una venta mayor al stock no se rechaza.
func (s *Store) UpdateStock(ctx context.Context, mv StockMovement) (entity.StockTransaction, error) {
	if err := validateInput(mv); err != nil {
		return entity.StockTransaction{}, err
	}

	s.mu.Lock()
	i := s.indexOf(mv.ItemID)
	if i < 0 {
		s.mu.Unlock()
		return entity.StockTransaction{}, domain.ErrNotFound
	}
	now := s.now()
	item := s.items[i]

	var (
		unitPrice decimal.Decimal
		detail    entity.TransactionDetail
	)
	switch mv.Type {
	case entity.TransactionTypeAdd:
		if mv.Quantity > math.MaxInt-item.CurrentStock {
			s.mu.Unlock()
			return entity.StockTransaction{}, fmt.Errorf("%w: la entrada desborda el stock de %s", domain.ErrInvalidInput, item.ID)
		}
		item.CurrentStock += mv.Quantity
		unitPrice = item.PurchasePrice
		detail = entity.Addition{Supplier: item.Supplier}
	case entity.TransactionTypeSell:
		item.CurrentStock = max(0, item.CurrentStock-mv.Quantity)
		unitPrice = item.SellingPrice
		detail = entity.Sale{Customer: mv.Customer}
	}
	if mv.UnitPrice != nil {
		unitPrice = *mv.UnitPrice
	}
	item.LastUpdated = now
	s.items[i] = item

	tx := s.newTransaction(now, item.ID, item.Name, mv.Quantity, unitPrice, detail)
	s.txs = append(s.txs, tx)
	ev := s.commit(ctx, CollectionItems, CollectionTransactions)
	s.mu.Unlock()

	s.notify(ev)
	return tx, nil
}

// RecordSale atajo de UpdateStock con tipo sell.
func (s *Store) RecordSale(ctx context.Context, itemID string, quantity int, unitPrice *decimal.Decimal, customer string) (entity.StockTransaction, error) {
	return s.UpdateStock(ctx, StockMovement{
		ItemID:    itemID,
		Quantity:  quantity,
		Type:      entity.TransactionTypeSell,
		UnitPrice: unitPrice,
		Customer:  customer,
	})
}

// AddSupplier agrega el proveedor si no existe (comparación exacta, sensible a mayúsculas).
// Devuelve false sin error cuando ya estaba registrado.
func (s *Store) AddSupplier(ctx context.Context, name string) (bool, error) {
	if strings.TrimSpace(name) == "" {
		return false, fmt.Errorf("%w: nombre de proveedor vacío", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	if slices.Contains(s.suppliers, name) {
		s.mu.Unlock()
		return false, nil
	}
	s.suppliers = append(s.suppliers, name)
	ev := s.commit(ctx, CollectionSuppliers)
	s.mu.Unlock()

	s.notify(ev)
	return true, nil
}

// newTransaction arma el asiento con ID nuevo y total fijado. Requiere s.mu tomado.
func (s *Store) newTransaction(date time.Time, itemID, itemName string, qty int, unitPrice decimal.Decimal, detail entity.TransactionDetail) entity.StockTransaction {
	if sale, ok := detail.(entity.Sale); ok && sale.Customer == "" {
		detail = entity.Sale{Customer: entity.WalkInCustomer}
	}
	return entity.StockTransaction{
		ID:         s.newID(),
		Date:       date,
		ItemID:     itemID,
		ItemName:   itemName,
		Quantity:   qty,
		UnitPrice:  unitPrice,
		TotalPrice: unitPrice.Mul(decimal.NewFromInt(int64(qty))),
		Detail:     detail,
	}
}
