// Package export serializa el inventario a formatos de intercambio (CSV).
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/jhoicas/aadish-inventory/internal/domain/entity"
)

// ItemsCSVFilename nombre sugerido del archivo descargable.
const ItemsCSVFilename = "inventory.csv"

// ItemsCSVHeader columnas del CSV de artículos, en orden.
var ItemsCSVHeader = []string{
	"Name", "SKU", "Category", "Current Stock", "Low Stock Threshold",
	"Purchase Price", "Selling Price", "Supplier",
}

// WriteItemsCSV escribe la cabecera y una fila por artículo en el orden de la colección.
func WriteItemsCSV(w io.Writer, items []entity.InventoryItem) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ItemsCSVHeader); err != nil {
		return fmt.Errorf("csv: cabecera: %w", err)
	}
	for _, it := range items {
		record := []string{
			it.Name,
			it.SKU,
			it.Category,
			strconv.Itoa(it.CurrentStock),
			strconv.Itoa(it.LowStockThreshold),
			it.PurchasePrice.String(),
			it.SellingPrice.String(),
			it.Supplier,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("csv: artículo %s: %w", it.ID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("csv: flush: %w", err)
	}
	return nil
}
