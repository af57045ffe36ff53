// Package ws difunde los cambios del inventario a los clientes websocket conectados.
package ws

import (
	"context"
	"encoding/json"

	"github.com/gofiber/contrib/websocket"

	"github.com/jhoicas/aadish-inventory/internal/application/inventory"
	"github.com/jhoicas/aadish-inventory/pkg/logger"
)

// MessageTypeStateChanged tipo del mensaje enviado tras cada mutación del inventario.
const MessageTypeStateChanged = "state_changed"

const broadcastBuffer = 64

// Client conexión a la que el hub escribe (*websocket.Conn en producción).
type Client interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Message cuerpo JSON enviado a los clientes.
type Message struct {
	Type             string   `json:"type"`
	Collections      []string `json:"collections"`
	PersistenceError string   `json:"persistence_error,omitempty"`
}

// Hub registra clientes y difunde mensajes desde una única goroutine (Run).
type Hub struct {
	clients    map[Client]bool
	register   chan Client
	unregister chan Client
	broadcast  chan []byte
	done       chan struct{}
	log        *logger.Logger
}

// NewHub construye el hub; llamar Run en una goroutine.
func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		clients:    make(map[Client]bool),
		register:   make(chan Client),
		unregister: make(chan Client),
		broadcast:  make(chan []byte, broadcastBuffer),
		done:       make(chan struct{}),
		log:        log.Component("ws_hub"),
	}
}

// Run atiende registro, baja y difusión hasta que ctx se cancela; al salir cierra los clientes.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				_ = c.Close()
				delete(h.clients, c)
			}
			return

		case c := <-h.register:
			h.clients[c] = true
			h.log.Debug().Int("clients", len(h.clients)).Msg("cliente ws conectado")

		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				_ = c.Close()
			}

		case msg := <-h.broadcast:
			for c := range h.clients {
				if err := c.WriteMessage(websocket.TextMessage, msg); err != nil {
					h.log.Debug().Err(err).Msg("cliente ws descartado")
					_ = c.Close()
					delete(h.clients, c)
				}
			}
		}
	}
}

// Register agrega un cliente. Si el hub ya terminó, cierra el cliente.
func (h *Hub) Register(c Client) {
	select {
	case h.register <- c:
	case <-h.done:
		_ = c.Close()
	}
}

// Unregister quita y cierra un cliente.
func (h *Hub) Unregister(c Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Broadcast encola msg sin bloquear; si la cola está llena el mensaje se descarta.
func (h *Hub) Broadcast(msg []byte) {
	select {
	case h.broadcast <- msg:
	default:
		h.log.Warn().Msg("cola ws llena, mensaje descartado")
	}
}

// OnChange adapta inventory.ChangeEvent a un Message; se pasa a Store.Subscribe.
func (h *Hub) OnChange(ev inventory.ChangeEvent) {
	msg := Message{Type: MessageTypeStateChanged, Collections: make([]string, 0, len(ev.Collections))}
	for _, c := range ev.Collections {
		msg.Collections = append(msg.Collections, string(c))
	}
	if ev.PersistErr != nil {
		msg.PersistenceError = ev.PersistErr.Error()
	}
	data, err := json.Marshal(msg)
	if err != nil {
		h.log.Error().Err(err).Msg("serializar mensaje ws")
		return
	}
	h.Broadcast(data)
}
