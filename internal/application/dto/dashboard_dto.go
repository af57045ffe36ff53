package dto

import "github.com/shopspring/decimal"

// MoneyDTO monto exacto más su etiqueta para mostrar (₹, sin decimales).
type MoneyDTO struct {
	Amount decimal.Decimal `json:"amount"`
	Label  string          `json:"label"`
}

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
type DashboardSummaryDTO struct {
	// KPIs sobre todo el libro
	InventoryValue MoneyDTO `json:"inventory_value"` // Σ stock * precio de compra
	TotalRevenue   MoneyDTO `json:"total_revenue"`
	Expenditure    MoneyDTO `json:"expenditure"`
	Profit         MoneyDTO `json:"profit"` // revenue - expenditure

	TotalItems    int            `json:"total_items"`
	LowStockCount int            `json:"low_stock_count"`
	LowStockItems []ItemResponse `json:"low_stock_items"`

	MonthlySales       []MonthAmountDTO      `json:"monthly_sales"`     // ene..dic, solo meses con ventas
	StockByCategory    []CategoryUnitsDTO    `json:"stock_by_category"` // orden de primera aparición
	RecentTransactions []TransactionResponse `json:"recent_transactions"`
}

// MonthAmountDTO punto de la serie mensual de ventas.
type MonthAmountDTO struct {
	Month  string          `json:"month"` // "Jan".."Dec"
	Amount decimal.Decimal `json:"amount"`
}

// CategoryUnitsDTO unidades en stock por categoría.
type CategoryUnitsDTO struct {
	Category string `json:"category"`
	Units    int    `json:"units"`
}

// CategoryAmountDTO monto por categoría.
type CategoryAmountDTO struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}
