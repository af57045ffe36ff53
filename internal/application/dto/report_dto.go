package dto

import "github.com/shopspring/decimal"

// MonthlyReportDTO reporte mensual de movimientos.
type MonthlyReportDTO struct {
	Month           int                   `json:"month"`
	Year            int                   `json:"year"`
	Label           string                `json:"label"` // ej: "September 2023"
	StockAdded      int                   `json:"stock_added"`
	StockSold       int                   `json:"stock_sold"`
	Expenditure     MoneyDTO              `json:"expenditure"`
	Revenue         MoneyDTO              `json:"revenue"`
	Profit          MoneyDTO              `json:"profit"`
	SalesByCategory []CategoryAmountDTO   `json:"sales_by_category"`
	Transactions    []TransactionResponse `json:"transactions"`
}

// SalesSummaryDTO resumen de ventas del período.
type SalesSummaryDTO struct {
	Range           string                `json:"range"`
	Revenue         MoneyDTO              `json:"revenue"`
	UnitsSold       int                   `json:"units_sold"`
	SalesCount      int                   `json:"sales_count"`
	AverageValue    MoneyDTO              `json:"average_value"`
	SalesByCategory []CategoryAmountDTO   `json:"sales_by_category"`
	DailySales      []DayAmountDTO        `json:"daily_sales"` // ascendente por fecha
	Sales           []TransactionResponse `json:"sales"`
}

// DayAmountDTO punto de la serie diaria de ventas.
type DayAmountDTO struct {
	Date   string          `json:"date"` // YYYY-MM-DD
	Amount decimal.Decimal `json:"amount"`
}
