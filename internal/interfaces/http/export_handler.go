package http

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/aadish-inventory/internal/application/inventory"
	"github.com/jhoicas/aadish-inventory/internal/infrastructure/export"
)

// ExportHandler descargas del inventario.
type ExportHandler struct {
	store *inventory.Store
}

// NewExportHandler construye el handler.
func NewExportHandler(store *inventory.Store) *ExportHandler {
	return &ExportHandler{store: store}
}

// ItemsCSV godoc
// @Summary      Exportar artículos a CSV
// @Tags         export
// @Produce      text/csv
// @Success      200
// @Router       /api/export/items.csv [get]
func (h *ExportHandler) ItemsCSV(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := export.WriteItemsCSV(&buf, h.store.Items()); err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Attachment(export.ItemsCSVFilename)
	return c.Send(buf.Bytes())
}
