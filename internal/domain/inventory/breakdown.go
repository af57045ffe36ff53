package inventory

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/aadish-inventory/internal/domain/entity"
)

// CategoryAmount monto agregado por categoría.
type CategoryAmount struct {
	Category string
	Amount   decimal.Decimal
}

// CategoryCount cantidad agregada por categoría.
type CategoryCount struct {
	Category string
	Units    int
}

// MonthAmount monto agregado por mes calendario.
type MonthAmount struct {
	Month  time.Month
	Amount decimal.Decimal
}

// DayAmount monto agregado por día calendario.
type DayAmount struct {
	Day    time.Time // medianoche UTC
	Amount decimal.Decimal
}

// SalesSummary métricas de ventas de un conjunto de movimientos.
type SalesSummary struct {
	Revenue      decimal.Decimal
	UnitsSold    int
	SalesCount   int
	AverageValue decimal.Decimal // Revenue / SalesCount (0 si no hay ventas)
}

// SalesByCategory agrupa el ingreso de las ventas por la categoría del artículo referenciado.
// Las ventas de artículos eliminados no se cuentan. Orden: primera aparición.
func SalesByCategory(items []entity.InventoryItem, txs []entity.StockTransaction) []CategoryAmount {
	byID := make(map[string]entity.InventoryItem, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}
	out := make([]CategoryAmount, 0)
	index := make(map[string]int)
	for _, t := range txs {
		if t.Type() != entity.TransactionTypeSell {
			continue
		}
		it, ok := byID[t.ItemID]
		if !ok {
			continue
		}
		i, seen := index[it.Category]
		if !seen {
			i = len(out)
			index[it.Category] = i
			out = append(out, CategoryAmount{Category: it.Category, Amount: decimal.Zero})
		}
		out[i].Amount = out[i].Amount.Add(t.TotalPrice)
	}
	return out
}

// StockByCategory suma el stock actual por categoría. Orden: primera aparición.
func StockByCategory(items []entity.InventoryItem) []CategoryCount {
	out := make([]CategoryCount, 0)
	index := make(map[string]int)
	for _, it := range items {
		i, seen := index[it.Category]
		if !seen {
			i = len(out)
			index[it.Category] = i
			out = append(out, CategoryCount{Category: it.Category})
		}
		out[i].Units += it.CurrentStock
	}
	return out
}

// MonthlySalesSeries ingreso por ventas agrupado por mes calendario (ene..dic).
// Los meses sin ventas se omiten; no distingue años.
func MonthlySalesSeries(txs []entity.StockTransaction) []MonthAmount {
	var totals [12]decimal.Decimal
	var present [12]bool
	for _, t := range txs {
		if t.Type() != entity.TransactionTypeSell {
			continue
		}
		m := t.Date.Month() - 1
		totals[m] = totals[m].Add(t.TotalPrice)
		present[m] = true
	}
	out := make([]MonthAmount, 0)
	for m := 0; m < 12; m++ {
		if present[m] {
			out = append(out, MonthAmount{Month: time.Month(m + 1), Amount: totals[m]})
		}
	}
	return out
}

// DailySalesSeries ingreso por ventas agrupado por día calendario (UTC), del más antiguo al más reciente.
func DailySalesSeries(txs []entity.StockTransaction) []DayAmount {
	index := make(map[time.Time]int)
	out := make([]DayAmount, 0)
	for _, t := range txs {
		if t.Type() != entity.TransactionTypeSell {
			continue
		}
		d := t.Date.UTC()
		key := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
		i, seen := index[key]
		if !seen {
			i = len(out)
			index[key] = i
			out = append(out, DayAmount{Day: key, Amount: decimal.Zero})
		}
		out[i].Amount = out[i].Amount.Add(t.TotalPrice)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day.Before(out[j].Day) })
	return out
}

// RecentTransactions devuelve una copia ordenada del más reciente al más antiguo, con máximo n elementos.
func RecentTransactions(txs []entity.StockTransaction, n int) []entity.StockTransaction {
	sorted := make([]entity.StockTransaction, len(txs))
	copy(sorted, txs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// PeriodRange rango de un filtro por período.
type PeriodRange string

const (
	PeriodAll   PeriodRange = "all"
	PeriodMonth PeriodRange = "month"
	PeriodYear  PeriodRange = "year"
)

// Period filtro temporal. Month es base cero y solo aplica con PeriodMonth.
type Period struct {
	Range PeriodRange
	Month int
	Year  int
}

// Contains indica si el instante cae dentro del período.
func (p Period) Contains(t time.Time) bool {
	switch p.Range {
	case PeriodMonth:
		return int(t.Month())-1 == p.Month && t.Year() == p.Year
	case PeriodYear:
		return t.Year() == p.Year
	default:
		return true
	}
}

// FilterTransactions movimientos cuyo Date cae en el período, en el orden original.
func FilterTransactions(txs []entity.StockTransaction, p Period) []entity.StockTransaction {
	out := make([]entity.StockTransaction, 0)
	for _, t := range txs {
		if p.Contains(t.Date) {
			out = append(out, t)
		}
	}
	return out
}

// SummarizeSales calcula ingreso, unidades, número de ventas y valor promedio por venta.
func SummarizeSales(txs []entity.StockTransaction) SalesSummary {
	s := SalesSummary{Revenue: decimal.Zero, AverageValue: decimal.Zero}
	for _, t := range txs {
		if t.Type() != entity.TransactionTypeSell {
			continue
		}
		s.Revenue = s.Revenue.Add(t.TotalPrice)
		s.UnitsSold += t.Quantity
		s.SalesCount++
	}
	if s.SalesCount > 0 {
		s.AverageValue = s.Revenue.Div(decimal.NewFromInt(int64(s.SalesCount)))
	}
	return s
}

// FilterItems búsqueda sin distinguir mayúsculas en nombre, SKU y proveedor,
// más filtro exacto opcional por categoría.
func FilterItems(items []entity.InventoryItem, query, category string) []entity.InventoryItem {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]entity.InventoryItem, 0, len(items))
	for _, it := range items {
		if category != "" && it.Category != category {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(it.Name), q) &&
			!strings.Contains(strings.ToLower(it.SKU), q) &&
			!strings.Contains(strings.ToLower(it.Supplier), q) {
			continue
		}
		out = append(out, it)
	}
	return out
}

// Categories categorías únicas en orden de primera aparición.
func Categories(items []entity.InventoryItem) []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, it := range items {
		if !seen[it.Category] {
			seen[it.Category] = true
			out = append(out, it.Category)
		}
	}
	return out
}
