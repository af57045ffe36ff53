package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/aadish-inventory/internal/application/analytics"
	"github.com/jhoicas/aadish-inventory/internal/application/dto"
	"github.com/jhoicas/aadish-inventory/internal/application/inventory"
	"github.com/jhoicas/aadish-inventory/internal/domain/entity"
	dominv "github.com/jhoicas/aadish-inventory/internal/domain/inventory"
)

// TransactionHandler maneja el libro de movimientos, las ventas y el registro de proveedores.
type TransactionHandler struct {
	store   *inventory.Store
	reports *analytics.ReportUseCase
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(store *inventory.Store, reports *analytics.ReportUseCase) *TransactionHandler {
	return &TransactionHandler{store: store, reports: reports}
}

// List godoc
// @Summary      Listar movimientos
// @Tags         transactions
// @Produce      json
// @Param        type  query  string  false  "add | sell"
// @Success      200   {array}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	txs := h.store.Transactions()
	if typ := c.Query("type"); typ != "" {
		want := entity.TransactionType(typ)
		if !want.Valid() {
			return validationError(c, "type debe ser add o sell")
		}
		filtered := txs[:0]
		for _, t := range txs {
			if t.Type() == want {
				filtered = append(filtered, t)
			}
		}
		txs = filtered
	}
	return c.JSON(dto.NewTransactionList(txs))
}

// Create godoc
// @Summary      Registrar asiento directo (no modifica stock)
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransactionRequest  true  "Asiento"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/transactions [post]
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	var detail entity.TransactionDetail
	switch entity.TransactionType(in.Type) {
	case entity.TransactionTypeAdd:
		detail = entity.Addition{Supplier: in.Supplier}
	case entity.TransactionTypeSell:
		detail = entity.Sale{Customer: in.Customer}
	default:
		return validationError(c, "type debe ser add o sell")
	}
	var date time.Time
	if in.Date != nil {
		date = *in.Date
	}
	tx, err := h.store.AddTransaction(c.Context(), inventory.NewTransactionInput{
		Date:      date,
		ItemID:    in.ItemID,
		ItemName:  in.ItemName,
		Quantity:  in.Quantity,
		UnitPrice: in.UnitPrice,
		Detail:    detail,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewTransactionResponse(tx))
}

// RecordSale godoc
// @Summary      Registrar venta
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordSaleRequest  true  "Venta"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *TransactionHandler) RecordSale(c *fiber.Ctx) error {
	var in dto.RecordSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	tx, err := h.store.RecordSale(c.Context(), in.ItemID, in.Quantity, in.UnitPrice, in.Customer)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewTransactionResponse(tx))
}

// SalesSummary godoc
// @Summary      Resumen de ventas por período
// @Tags         sales
// @Produce      json
// @Param        range  query  string  false  "all | month | year"  default(all)
// @Param        month  query  int     false  "Mes 0-11 (por defecto el actual)"
// @Param        year   query  int     false  "Año (por defecto el actual)"
// @Success      200    {object}  dto.SalesSummaryDTO
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/sales/summary [get]
func (h *TransactionHandler) SalesSummary(c *fiber.Ctx) error {
	now := time.Now()
	out, err := h.reports.SalesSummary(c.Context(), dominv.Period{
		Range: dominv.PeriodRange(c.Query("range")),
		Month: c.QueryInt("month", int(now.Month())-1),
		Year:  c.QueryInt("year", now.Year()),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListSuppliers godoc
// @Summary      Listar proveedores
// @Tags         suppliers
// @Produce      json
// @Success      200  {object}  dto.SupplierListResponse
// @Router       /api/suppliers [get]
func (h *TransactionHandler) ListSuppliers(c *fiber.Ctx) error {
	return c.JSON(dto.SupplierListResponse{Suppliers: h.store.Suppliers()})
}

// CreateSupplier godoc
// @Summary      Registrar proveedor (un nombre repetido no se duplica)
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSupplierRequest  true  "Proveedor"
// @Success      200   {object}  dto.SupplierListResponse
// @Success      201   {object}  dto.SupplierListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/suppliers [post]
func (h *TransactionHandler) CreateSupplier(c *fiber.Ctx) error {
	var in dto.CreateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	added, err := h.store.AddSupplier(c.Context(), in.Name)
	if err != nil {
		return respondError(c, err)
	}
	status := fiber.StatusOK
	if added {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(dto.SupplierListResponse{Suppliers: h.store.Suppliers(), Added: &added})
}
