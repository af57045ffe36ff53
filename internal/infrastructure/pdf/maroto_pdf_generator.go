// Package pdf genera el reporte mensual de inventario en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la tienda │  Reporte mensual + período    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  KPIs: Ingresos | Gastos | Utilidad                          │
//	│  MOVIMIENTO: unidades entradas / vendidas                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  VENTAS POR CATEGORÍA                                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Artículo | Tipo | Cant | P.Unit | Total      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/aadish-inventory/internal/application/analytics"
	"github.com/jhoicas/aadish-inventory/internal/application/dto"
	"github.com/jhoicas/aadish-inventory/pkg/money"
)

var _ analytics.ReportPDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorGreen   = &props.Color{Red: 20, Green: 120, Blue: 60}
	colorRed     = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa analytics.ReportPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	storeName string
}

// NewMarotoPDFGenerator construye el generador; storeName va en el encabezado.
func NewMarotoPDFGenerator(storeName string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{storeName: storeName}
}

// GenerateMonthlyReportPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateMonthlyReportPDF(_ context.Context, report *dto.MonthlyReportDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Monthly Report "+report.Label, true).
		WithAuthor(g.storeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.storeName, report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(kpiRow(report))
	m.AddRows(stockMovementRow(report))

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(sectionTitle("SALES BY CATEGORY"))
	m.AddRows(categoryRows(report.SalesByCategory)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(sectionTitle("TRANSACTIONS"))
	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRows(report.Transactions)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la tienda (izq) y período del reporte (der).
func headerRow(storeName string, report *dto.MonthlyReportDTO) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(storeName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Inventory & Sales", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("MONTHLY REPORT", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(report.Label, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
		),
	)
}

// kpiRow: ingresos, gastos y utilidad del mes.
func kpiRow(report *dto.MonthlyReportDTO) core.Row {
	kpi := func(label string, m dto.MoneyDTO, color *props.Color) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Size: 8, Color: colorGray, Top: 2, Align: align.Center}),
			text.New(money.FormatCode(m.Amount), props.Text{
				Style: fontstyle.Bold, Size: 12, Color: color, Top: 7, Align: align.Center,
			}),
		)
	}
	profitColor := colorGreen
	if report.Profit.Amount.IsNegative() {
		profitColor = colorRed
	}
	return row.New(16).Add(
		kpi("Revenue", report.Revenue, colorPrimary),
		kpi("Expenditure", report.Expenditure, colorPrimary),
		kpi("Profit", report.Profit, profitColor),
	)
}

// stockMovementRow: unidades que entraron y salieron en el mes.
func stockMovementRow(report *dto.MonthlyReportDTO) core.Row {
	return row.New(8).Add(
		col.New(6).Add(text.New(
			fmt.Sprintf("Stock added: %d units", report.StockAdded),
			props.Text{Size: 9, Top: 2, Align: align.Center},
		)),
		col.New(6).Add(text.New(
			fmt.Sprintf("Stock sold: %d units", report.StockSold),
			props.Text{Size: 9, Top: 2, Align: align.Center},
		)),
	)
}

func sectionTitle(title string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2}),
	))
}

// categoryRows: una fila por categoría con ventas; un aviso si no hubo ventas.
func categoryRows(categories []dto.CategoryAmountDTO) []core.Row {
	if len(categories) == 0 {
		return []core.Row{row.New(6).Add(col.New(12).Add(
			text.New("No sales this month", props.Text{Size: 8, Color: colorGray, Top: 1}),
		))}
	}
	rows := make([]core.Row, 0, len(categories))
	for _, c := range categories {
		rows = append(rows, row.New(6).Add(
			col.New(8).Add(text.New(c.Category, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(money.FormatCode(c.Amount), props.Text{Size: 8, Top: 1, Align: align.Right, Right: 1})),
		))
	}
	return rows
}

// tableHeaderRow: cabecera de la tabla de movimientos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Date", 2, align.Left),
		h("Item", 3, align.Left),
		h("Type", 1, align.Center),
		h("Qty", 1, align.Center),
		h("Unit Price", 2, align.Right),
		h("Total", 3, align.Right),
	)
}

// tableDetailRows: una fila por movimiento del mes.
func tableDetailRows(txs []dto.TransactionResponse) []core.Row {
	result := make([]core.Row, 0, len(txs))
	for _, t := range txs {
		result = append(result, row.New(6).Add(
			col.New(2).Add(text.New(t.Date.Format("2006-01-02"), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(t.ItemName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(t.Type, props.Text{Size: 8, Top: 1, Align: align.Center})),
			col.New(1).Add(text.New(strconv.Itoa(t.Quantity), props.Text{Size: 8, Top: 1, Align: align.Center})),
			col.New(2).Add(text.New(money.FormatCode(t.UnitPrice), props.Text{Size: 8, Top: 1, Align: align.Right, Right: 1})),
			col.New(3).Add(text.New(money.FormatCode(t.TotalPrice), props.Text{Size: 8, Top: 1, Align: align.Right, Right: 1})),
		))
	}
	return result
}
