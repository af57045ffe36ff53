package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/aadish-inventory/internal/application/analytics"
)

// ReportHandler reporte mensual en JSON y PDF.
type ReportHandler struct {
	uc *appanalytics.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *appanalytics.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Monthly godoc
// @Summary      Reporte mensual
// @Tags         reports
// @Produce      json
// @Param        month  query  int  false  "Mes 0-11 (por defecto el actual)"
// @Param        year   query  int  false  "Año (por defecto el actual)"
// @Success      200    {object}  dto.MonthlyReportDTO
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/reports/monthly [get]
func (h *ReportHandler) Monthly(c *fiber.Ctx) error {
	month, year := monthYearQuery(c)
	out, err := h.uc.MonthlyReport(c.Context(), month, year)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// MonthlyPDF godoc
// @Summary      Reporte mensual en PDF
// @Tags         reports
// @Produce      application/pdf
// @Param        month  query  int  false  "Mes 0-11 (por defecto el actual)"
// @Param        year   query  int  false  "Año (por defecto el actual)"
// @Success      200
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/reports/monthly/pdf [get]
func (h *ReportHandler) MonthlyPDF(c *fiber.Ctx) error {
	month, year := monthYearQuery(c)
	pdfBytes, err := h.uc.MonthlyReportPDF(c.Context(), month, year)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Attachment(fmt.Sprintf("report-%d-%02d.pdf", year, month+1))
	return c.Send(pdfBytes)
}

// monthYearQuery lee month (base cero) y year; por defecto el mes en curso.
func monthYearQuery(c *fiber.Ctx) (int, int) {
	now := time.Now()
	return c.QueryInt("month", int(now.Month())-1), c.QueryInt("year", now.Year())
}
