package analytics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/aadish-inventory/internal/application/dto"
	"github.com/jhoicas/aadish-inventory/internal/domain"
	"github.com/jhoicas/aadish-inventory/internal/domain/entity"
	"github.com/jhoicas/aadish-inventory/internal/domain/inventory"
)

// ReportUseCase reporte mensual (JSON y PDF) y resumen de ventas por período.
type ReportUseCase struct {
	reader InventoryReader
	pdf    ReportPDFGenerator
}

// NewReportUseCase construye el caso de uso. pdf puede ser nil si no se exporta PDF.
func NewReportUseCase(reader InventoryReader, pdf ReportPDFGenerator) *ReportUseCase {
	return &ReportUseCase{reader: reader, pdf: pdf}
}

// MonthlyReport agrega los movimientos del mes (0 = enero) y año indicados.
func (uc *ReportUseCase) MonthlyReport(_ context.Context, month, year int) (*dto.MonthlyReportDTO, error) {
	if month < 0 || month > 11 {
		return nil, fmt.Errorf("%w: mes %d fuera de rango 0-11", domain.ErrInvalidInput, month)
	}
	items := uc.reader.Items()
	report := inventory.BuildMonthlyReport(uc.reader.Transactions(), month, year)

	byCategory := categoryAmountDTOs(inventory.SalesByCategory(items, report.Transactions))

	return &dto.MonthlyReportDTO{
		Month:           report.Month,
		Year:            report.Year,
		Label:           fmt.Sprintf("%s %d", time.Month(month+1), year),
		StockAdded:      report.StockAdded,
		StockSold:       report.StockSold,
		Expenditure:     moneyDTO(report.Expenditure),
		Revenue:         moneyDTO(report.Revenue),
		Profit:          moneyDTO(report.Profit),
		SalesByCategory: byCategory,
		Transactions:    dto.NewTransactionList(report.Transactions),
	}, nil
}

// MonthlyReportPDF genera el reporte mensual y lo renderiza con el ReportPDFGenerator.
func (uc *ReportUseCase) MonthlyReportPDF(ctx context.Context, month, year int) ([]byte, error) {
	if uc.pdf == nil {
		return nil, errors.New("generador PDF no configurado")
	}
	report, err := uc.MonthlyReport(ctx, month, year)
	if err != nil {
		return nil, err
	}
	pdfBytes, err := uc.pdf.GenerateMonthlyReportPDF(ctx, report)
	if err != nil {
		return nil, fmt.Errorf("generar PDF: %w", err)
	}
	return pdfBytes, nil
}

// SalesSummary resume las ventas del período; la lista va de la más reciente a la más antigua.
func (uc *ReportUseCase) SalesSummary(_ context.Context, p inventory.Period) (*dto.SalesSummaryDTO, error) {
	switch p.Range {
	case "":
		p.Range = inventory.PeriodAll
	case inventory.PeriodAll, inventory.PeriodYear:
	case inventory.PeriodMonth:
		if p.Month < 0 || p.Month > 11 {
			return nil, fmt.Errorf("%w: mes %d fuera de rango 0-11", domain.ErrInvalidInput, p.Month)
		}
	default:
		return nil, fmt.Errorf("%w: rango %q desconocido", domain.ErrInvalidInput, p.Range)
	}

	inPeriod := inventory.FilterTransactions(uc.reader.Transactions(), p)
	sales := make([]entity.StockTransaction, 0, len(inPeriod))
	for _, t := range inPeriod {
		if t.Type() == entity.TransactionTypeSell {
			sales = append(sales, t)
		}
	}
	summary := inventory.SummarizeSales(sales)

	series := inventory.DailySalesSeries(sales)
	daily := make([]dto.DayAmountDTO, 0, len(series))
	for _, d := range series {
		daily = append(daily, dto.DayAmountDTO{Date: d.Day.Format(time.DateOnly), Amount: d.Amount})
	}

	return &dto.SalesSummaryDTO{
		Range:           string(p.Range),
		Revenue:         moneyDTO(summary.Revenue),
		UnitsSold:       summary.UnitsSold,
		SalesCount:      summary.SalesCount,
		AverageValue:    moneyDTO(summary.AverageValue),
		SalesByCategory: categoryAmountDTOs(inventory.SalesByCategory(uc.reader.Items(), sales)),
		DailySales:      daily,
		Sales:           dto.NewTransactionList(inventory.RecentTransactions(sales, len(sales))),
	}, nil
}

func categoryAmountDTOs(in []inventory.CategoryAmount) []dto.CategoryAmountDTO {
	out := make([]dto.CategoryAmountDTO, 0, len(in))
	for _, c := range in {
		out = append(out, dto.CategoryAmountDTO{Category: c.Category, Amount: c.Amount})
	}
	return out
}
