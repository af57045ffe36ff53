package analytics

import (
	"context"

	"github.com/jhoicas/aadish-inventory/internal/application/dto"
	"github.com/jhoicas/aadish-inventory/internal/domain/entity"
)

// InventoryReader lectura del estado actual (implementado por inventory.Store).
type InventoryReader interface {
	Items() []entity.InventoryItem
	Transactions() []entity.StockTransaction
}

// ReportPDFGenerator genera la representación PDF del reporte mensual.
type ReportPDFGenerator interface {
	GenerateMonthlyReportPDF(ctx context.Context, report *dto.MonthlyReportDTO) ([]byte, error)
}
