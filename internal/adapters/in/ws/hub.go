// Package ws pushes order events to kitchen boards over WebSocket. The Hub is
// an order subscriber on one side and an echo handler on the other.
package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"coffeeshop/internal/adapters/out/notifiers"
	"coffeeshop/internal/core/domain/model/order"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const (
	sendBuffer = 32
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// Message is the frame sent to every board.
type Message struct {
	Type  string               `json:"type"`
	Order notifiers.OrderEvent `json:"order"`
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub tracks connected boards. Notify never blocks on a slow board: a client
// whose buffer is full is disconnected.
type Hub struct {
	mu       sync.Mutex
	clients  map[*client]struct{}
	upgrader websocket.Upgrader
	logger   *slog.Logger
	now      func() time.Time
}

func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		clients: make(map[*client]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		logger: logger.With("component", "KitchenHub"),
		now:    time.Now,
	}
}

// ClientCount reports the number of connected boards.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Notify broadcasts the event to every connected board.
func (h *Hub) Notify(ctx context.Context, o *order.Order, event order.Event) error {
	data, err := json.Marshal(Message{
		Type:  event.String(),
		Order: notifiers.NewOrderEvent(o, event, h.now()),
	})
	if err != nil {
		return fmt.Errorf("marshal kitchen message: %w", err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			h.logger.WarnContext(ctx, "dropping slow kitchen board", "remote", c.conn.RemoteAddr().String())
			h.removeLocked(c)
		}
	}
	return nil
}

// ServeWS upgrades the request and keeps the board registered until the
// connection fails or the board closes it.
func (h *Hub) ServeWS(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	cl := &client{conn: conn, send: make(chan []byte, sendBuffer)}
	h.mu.Lock()
	h.clients[cl] = struct{}{}
	h.mu.Unlock()
	h.logger.Info("kitchen board connected", "remote", conn.RemoteAddr().String())

	go h.writePump(cl)
	h.readPump(cl)
	return nil
}

// Close disconnects every board.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		h.removeLocked(c)
	}
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(c)
}

func (h *Hub) removeLocked(c *client) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
}

// readPump discards incoming frames; it exists to process pongs and to notice
// a closed connection.
func (h *Hub) readPump(c *client) {
	defer func() {
		h.remove(c)
		_ = c.conn.Close()
	}()

	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("kitchen board read failed", "error", err)
			}
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				h.logger.Warn("kitchen board write failed", "error", err)
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
