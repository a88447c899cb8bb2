package api

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"saison/internal/models"
	"saison/internal/monitoring"
)

// WebSocket upgrader configuration
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

// ShoppingListEvent is pushed to connected clients whenever a user's
// shopping list changes.
type ShoppingListEvent struct {
	Type  string               `json:"type"`
	User  string               `json:"user"`
	Items []models.GroceryItem `json:"items"`
}

// Hub tracks connected websocket clients and fans events out to them.
type Hub struct {
	mu      sync.Mutex
	clients map[*wsClient]bool
	metrics *monitoring.MetricsCollector
	logger  *zap.Logger
}

// NewHub creates an empty hub.
func NewHub(metrics *monitoring.MetricsCollector, logger *zap.Logger) *Hub {
	return &Hub{
		clients: make(map[*wsClient]bool),
		metrics: metrics,
		logger:  logger,
	}
}

// wsClient maintains one WebSocket connection.
type wsClient struct {
	conn *websocket.Conn
	send chan []byte
	user string
	hub  *Hub
}

// HandleWebSocket upgrades the connection and registers the client. Clients
// receive events for their own user scope only.
func (a *API) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		a.Logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	client := &wsClient{
		conn: conn,
		send: make(chan []byte, 256),
		user: a.userID(c),
		hub:  a.Hub,
	}
	a.Hub.register(client)

	go client.writePump()
	go client.readPump()
}

func (h *Hub) register(c *wsClient) {
	h.mu.Lock()
	h.clients[c] = true
	h.mu.Unlock()
	h.metrics.ClientConnected(1)
}

func (h *Hub) unregister(c *wsClient) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
		h.metrics.ClientConnected(-1)
	}
	h.mu.Unlock()
}

// BroadcastShoppingList sends the updated list to every client watching the
// given user scope. Slow clients are skipped rather than blocked on.
func (h *Hub) BroadcastShoppingList(user string, items []models.GroceryItem) {
	event := ShoppingListEvent{Type: "shoppingList", User: user, Items: items}
	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("marshaling shopping list event", zap.Error(err))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		if client.user != user {
			continue
		}
		select {
		case client.send <- data:
		default:
			h.logger.Warn("websocket buffer full, dropping event")
		}
	}
}

// readPump drains the connection so pings and close frames are processed.
func (c *wsClient) readPump() {
	defer func() {
		c.hub.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(4 * 1024)
	c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.Warn("websocket read", zap.Error(err))
			}
			return
		}
	}
}

// writePump pumps events from the hub to the connection.
func (c *wsClient) writePump() {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
