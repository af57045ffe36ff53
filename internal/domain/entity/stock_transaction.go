package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType etiqueta cerrada de movimiento: entrada (add) o venta (sell).
type TransactionType string

const (
	TransactionTypeAdd  TransactionType = "add"
	TransactionTypeSell TransactionType = "sell"
)

// WalkInCustomer cliente por defecto cuando una venta no indica cliente.
const WalkInCustomer = "Walk-in Customer"

// Valid indica si el tipo es uno de los dos admitidos.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeAdd || t == TransactionTypeSell
}

// StockTransaction asiento inmutable del libro de movimientos.
// ItemName es una copia al momento del movimiento; no se sincroniza con renombres posteriores.
type StockTransaction struct {
	ID         string
	Date       time.Time
	ItemID     string
	ItemName   string
	Quantity   int
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal // Quantity * UnitPrice, fijado al crear
	Detail     TransactionDetail
}

// Type devuelve la etiqueta del movimiento según su detalle.
func (t StockTransaction) Type() TransactionType {
	if t.Detail == nil {
		return ""
	}
	return t.Detail.Type()
}

// Supplier devuelve el proveedor si el movimiento es una entrada.
func (t StockTransaction) Supplier() (string, bool) {
	a, ok := t.Detail.(Addition)
	return a.Supplier, ok
}

// Customer devuelve el cliente si el movimiento es una venta.
func (t StockTransaction) Customer() (string, bool) {
	s, ok := t.Detail.(Sale)
	return s.Customer, ok
}

// TransactionDetail variante cerrada: Addition o Sale.
type TransactionDetail interface {
	Type() TransactionType
	isTransactionDetail()
}

// Addition detalle de una entrada de stock.
type Addition struct {
	Supplier string
}

// Sale detalle de una venta.
type Sale struct {
	Customer string
}

func (Addition) Type() TransactionType { return TransactionTypeAdd }
func (Sale) Type() TransactionType     { return TransactionTypeSell }

func (Addition) isTransactionDetail() {}
func (Sale) isTransactionDetail()     {}
