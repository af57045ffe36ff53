package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/aadish-inventory/internal/application/dto"
)

func TestGenerateMonthlyReportPDF(t *testing.T) {
	report := &dto.MonthlyReportDTO{
		Month: 8, Year: 2023, Label: "September 2023",
		StockAdded: 100, StockSold: 30,
		Revenue:     dto.MoneyDTO{Amount: decimal.NewFromInt(96000)},
		Expenditure: dto.MoneyDTO{Amount: decimal.NewFromInt(250000)},
		Profit:      dto.MoneyDTO{Amount: decimal.NewFromInt(-154000)},
		SalesByCategory: []dto.CategoryAmountDTO{
			{Category: "Grains", Amount: decimal.NewFromInt(96000)},
		},
		Transactions: []dto.TransactionResponse{
			{ID: "1", Date: time.Date(2023, 9, 5, 0, 0, 0, 0, time.UTC), ItemName: "Premium Rice", Type: "sell",
				Quantity: 30, UnitPrice: decimal.NewFromInt(3200), TotalPrice: decimal.NewFromInt(96000)},
		},
	}

	out, err := NewMarotoPDFGenerator("Aadish Store").GenerateMonthlyReportPDF(context.Background(), report)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateMonthlyReportPDF_MesVacio(t *testing.T) {
	report := &dto.MonthlyReportDTO{Month: 0, Year: 2024, Label: "January 2024"}

	out, err := NewMarotoPDFGenerator("Aadish Store").GenerateMonthlyReportPDF(context.Background(), report)

	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
