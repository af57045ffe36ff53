package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/aadish-inventory/internal/application/analytics"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve los KPIs del inventario.
// GET /api/dashboard/summary
//
// Respuesta: DashboardSummaryDTO (inventory_value, total_revenue, expenditure, profit,
// low_stock_items, monthly_sales, stock_by_category, recent_transactions[5]).
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
