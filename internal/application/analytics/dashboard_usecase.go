// Package analytics contiene los casos de uso de lectura: dashboard, reporte mensual
// y resumen de ventas. Todo se deriva del estado actual con las funciones puras de
// domain/inventory; nada aquí modifica el inventario.
package analytics

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/aadish-inventory/internal/application/dto"
	"github.com/jhoicas/aadish-inventory/internal/domain/inventory"
	"github.com/jhoicas/aadish-inventory/pkg/money"
)

const dashboardRecentTransactions = 5 // movimientos en el widget "recientes"

// DashboardUseCase genera los KPIs y series del dashboard.
type DashboardUseCase struct {
	reader InventoryReader
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(reader InventoryReader) *DashboardUseCase {
	return &DashboardUseCase{reader: reader}
}

// GetSummary construye el DashboardSummaryDTO sobre todo el libro.
func (uc *DashboardUseCase) GetSummary(_ context.Context) (*dto.DashboardSummaryDTO, error) {
	items := uc.reader.Items()
	txs := uc.reader.Transactions()

	revenue := inventory.TotalRevenue(txs)
	expenditure := inventory.TotalExpenditure(txs)
	low := inventory.LowStockItems(items)

	monthly := inventory.MonthlySalesSeries(txs)
	series := make([]dto.MonthAmountDTO, 0, len(monthly))
	for _, m := range monthly {
		series = append(series, dto.MonthAmountDTO{Month: m.Month.String()[:3], Amount: m.Amount})
	}

	stock := inventory.StockByCategory(items)
	byCategory := make([]dto.CategoryUnitsDTO, 0, len(stock))
	for _, c := range stock {
		byCategory = append(byCategory, dto.CategoryUnitsDTO{Category: c.Category, Units: c.Units})
	}

	return &dto.DashboardSummaryDTO{
		InventoryValue:     moneyDTO(inventory.InventoryValue(items)),
		TotalRevenue:       moneyDTO(revenue),
		Expenditure:        moneyDTO(expenditure),
		Profit:             moneyDTO(inventory.Profit(revenue, expenditure)),
		TotalItems:         len(items),
		LowStockCount:      len(low),
		LowStockItems:      dto.NewItemList(low),
		MonthlySales:       series,
		StockByCategory:    byCategory,
		RecentTransactions: dto.NewTransactionList(inventory.RecentTransactions(txs, dashboardRecentTransactions)),
	}, nil
}

func moneyDTO(d decimal.Decimal) dto.MoneyDTO {
	return dto.MoneyDTO{Amount: d, Label: money.Format(d)}
}
