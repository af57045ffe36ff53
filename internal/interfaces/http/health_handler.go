package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/aadish-inventory/internal/application/dto"
	"github.com/jhoicas/aadish-inventory/internal/application/inventory"
)

// HealthHandler estado del servicio y del almacenamiento.
type HealthHandler struct {
	store   *inventory.Store
	storage string
}

// NewHealthHandler construye el handler; storage es el driver configurado.
func NewHealthHandler(store *inventory.Store, storage string) *HealthHandler {
	return &HealthHandler{store: store, storage: storage}
}

// Get responde siempre 200: un fallo de persistencia degrada, no tumba el servicio.
func (h *HealthHandler) Get(c *fiber.Ctx) error {
	out := dto.HealthResponse{Status: "ok", Storage: h.storage, Persistence: "ok"}
	if err := h.store.PersistenceError(); err != nil {
		out.Status = "degraded"
		out.Persistence = err.Error()
	}
	return c.JSON(out)
}
