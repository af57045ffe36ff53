package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/aadish-inventory/internal/application/dto"
	"github.com/jhoicas/aadish-inventory/internal/application/inventory"
	"github.com/jhoicas/aadish-inventory/internal/domain/entity"
	dominv "github.com/jhoicas/aadish-inventory/internal/domain/inventory"
)

// ItemHandler maneja el catálogo de artículos y los movimientos de stock.
type ItemHandler struct {
	store *inventory.Store
}

// NewItemHandler construye el handler.
func NewItemHandler(store *inventory.Store) *ItemHandler {
	return &ItemHandler{store: store}
}

// List godoc
// @Summary      Listar artículos
// @Tags         items
// @Produce      json
// @Param        q         query  string  false  "Texto en nombre, SKU o proveedor"
// @Param        category  query  string  false  "Categoría exacta"
// @Success      200  {array}  dto.ItemResponse
// @Router       /api/items [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	items := dominv.FilterItems(h.store.Items(), c.Query("q"), c.Query("category"))
	return c.JSON(dto.NewItemList(items))
}

// Create godoc
// @Summary      Crear artículo
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "Datos del artículo"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/items [post]
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.Name == "" {
		return validationError(c, "name es requerido")
	}
	item, err := h.store.AddItem(c.Context(), inventory.NewItemInput{
		Name:              in.Name,
		SKU:               in.SKU,
		Category:          in.Category,
		Supplier:          in.Supplier,
		CurrentStock:      in.CurrentStock,
		LowStockThreshold: in.LowStockThreshold,
		PurchasePrice:     in.PurchasePrice,
		SellingPrice:      in.SellingPrice,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewItemResponse(item))
}

// GetByID godoc
// @Summary      Obtener artículo por ID
// @Tags         items
// @Produce      json
// @Param        id   path  string  true  "ID del artículo"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [get]
func (h *ItemHandler) GetByID(c *fiber.Ctx) error {
	item, err := h.store.Item(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewItemResponse(item))
}

// Update godoc
// @Summary      Actualizar artículo
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del artículo"
// @Param        body  body  dto.UpdateItemRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/items/{id} [put]
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	item, err := h.store.UpdateItem(c.Context(), c.Params("id"), inventory.ItemPatch{
		Name:              in.Name,
		SKU:               in.SKU,
		Category:          in.Category,
		Supplier:          in.Supplier,
		CurrentStock:      in.CurrentStock,
		LowStockThreshold: in.LowStockThreshold,
		PurchasePrice:     in.PurchasePrice,
		SellingPrice:      in.SellingPrice,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewItemResponse(item))
}

// Delete godoc
// @Summary      Eliminar artículo (los movimientos se conservan)
// @Tags         items
// @Param        id   path  string  true  "ID del artículo"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [delete]
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	if err := h.store.RemoveItem(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// LowStock godoc
// @Summary      Artículos con stock bajo (stock <= umbral)
// @Tags         items
// @Produce      json
// @Success      200  {array}  dto.ItemResponse
// @Router       /api/items/low-stock [get]
func (h *ItemHandler) LowStock(c *fiber.Ctx) error {
	return c.JSON(dto.NewItemList(dominv.LowStockItems(h.store.Items())))
}

// Categories godoc
// @Summary      Categorías en uso
// @Tags         items
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/items/categories [get]
func (h *ItemHandler) Categories(c *fiber.Ctx) error {
	return c.JSON(dominv.Categories(h.store.Items()))
}

// UpdateStock godoc
// @Summary      Registrar entrada o venta de stock
// @Description  La venta mayor al stock no se rechaza: el stock queda en 0 y el movimiento registra la cantidad pedida.
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del artículo"
// @Param        body  body  dto.StockMovementRequest  true  "Movimiento"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/items/{id}/stock [post]
func (h *ItemHandler) UpdateStock(c *fiber.Ctx) error {
	var in dto.StockMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	tx, err := h.store.UpdateStock(c.Context(), inventory.StockMovement{
		ItemID:    c.Params("id"),
		Quantity:  in.Quantity,
		Type:      entity.TransactionType(in.Type),
		UnitPrice: in.UnitPrice,
		Customer:  in.Customer,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewTransactionResponse(tx))
}

// Import godoc
// @Summary      Importar artículos desde archivo (no implementado)
// @Tags         items
// @Produce      json
// @Failure      501  {object}  dto.ErrorResponse
// @Router       /api/items/import [post]
func (h *ItemHandler) Import(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotImplemented).JSON(dto.ErrorResponse{
		Code: "NOT_IMPLEMENTED", Message: "la importación de archivos no está disponible",
	})
}
