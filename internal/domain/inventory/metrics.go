// Package inventory contiene las métricas derivadas del inventario: funciones puras
// sobre las colecciones del store que nunca modifican su entrada.
package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/aadish-inventory/internal/domain/entity"
)

// InventoryValue Σ CurrentStock × PurchasePrice sobre todos los artículos.
func InventoryValue(items []entity.InventoryItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Value())
	}
	return total
}

// TotalRevenue suma TotalPrice de las ventas.
func TotalRevenue(txs []entity.StockTransaction) decimal.Decimal {
	return sumTotals(txs, entity.TransactionTypeSell)
}

// TotalExpenditure suma TotalPrice de las entradas.
func TotalExpenditure(txs []entity.StockTransaction) decimal.Decimal {
	return sumTotals(txs, entity.TransactionTypeAdd)
}

// Profit revenue - expenditure.
func Profit(revenue, expenditure decimal.Decimal) decimal.Decimal {
	return revenue.Sub(expenditure)
}

// LowStockItems filtra (conservando el orden) los artículos con CurrentStock <= LowStockThreshold.
func LowStockItems(items []entity.InventoryItem) []entity.InventoryItem {
	out := make([]entity.InventoryItem, 0)
	for _, it := range items {
		if it.IsLowStock() {
			out = append(out, it)
		}
	}
	return out
}

// MonthlyReport resumen de movimientos de un mes.
type MonthlyReport struct {
	Month        int // 0 = enero .. 11 = diciembre
	Year         int
	StockAdded   int
	StockSold    int
	Expenditure  decimal.Decimal
	Revenue      decimal.Decimal
	Profit       decimal.Decimal
	Transactions []entity.StockTransaction
}

// BuildMonthlyReport filtra los movimientos cuyo Date cae en (month, year) y agrega sus métricas.
// month es base cero (0 = enero), como lo envía el cliente.
func BuildMonthlyReport(txs []entity.StockTransaction, month, year int) MonthlyReport {
	filtered := make([]entity.StockTransaction, 0)
	for _, t := range txs {
		if InMonth(t, month, year) {
			filtered = append(filtered, t)
		}
	}

	var added, sold int
	for _, t := range filtered {
		switch t.Type() {
		case entity.TransactionTypeAdd:
			added += t.Quantity
		case entity.TransactionTypeSell:
			sold += t.Quantity
		}
	}

	expenditure := TotalExpenditure(filtered)
	revenue := TotalRevenue(filtered)
	return MonthlyReport{
		Month:        month,
		Year:         year,
		StockAdded:   added,
		StockSold:    sold,
		Expenditure:  expenditure,
		Revenue:      revenue,
		Profit:       Profit(revenue, expenditure),
		Transactions: filtered,
	}
}

// InMonth indica si el movimiento ocurrió en el mes (base cero) y año dados.
func InMonth(t entity.StockTransaction, month, year int) bool {
	return int(t.Date.Month())-1 == month && t.Date.Year() == year
}

func sumTotals(txs []entity.StockTransaction, typ entity.TransactionType) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txs {
		if t.Type() == typ {
			total = total.Add(t.TotalPrice)
		}
	}
	return total
}
