package http

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/aadish-inventory/internal/interfaces/ws"
)

// requireUpgrade rechaza con 426 las peticiones a /ws que no son upgrade de websocket.
func requireUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return c.SendStatus(fiber.StatusUpgradeRequired)
}

// wsHandler registra la conexión en el hub y la mantiene hasta que el cliente cierra.
func wsHandler(hub *ws.Hub) fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		hub.Register(conn)
		defer hub.Unregister(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})
}
