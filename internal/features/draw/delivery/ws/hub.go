// Package ws fans replication traffic out to audience displays over
// websockets. Displays are presentation clients, not replicas: a display
// that connects late gets a full snapshot, then sees every slice update the
// replicator publishes or applies.
package ws

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"luckydraw-backend/internal/common/logger"
	drawsync "luckydraw-backend/internal/features/draw/sync"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Hub tracks connected audience clients and broadcasts sync messages.
type Hub struct {
	replicator *drawsync.Replicator

	mu      sync.RWMutex
	clients map[string]*Client
}

func NewHub(replicator *drawsync.Replicator) *Hub {
	h := &Hub{
		replicator: replicator,
		clients:    make(map[string]*Client),
	}
	replicator.Tap(h.broadcast)
	return h
}

// RegisterRoutes mounts the audience websocket endpoint.
func (h *Hub) RegisterRoutes(router *gin.Engine) {
	router.GET("/ws/audience", h.handleWebSocket)
}

func (h *Hub) handleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	client := &Client{
		id:   uuid.NewString(),
		conn: conn,
		hub:  h,
		send: make(chan []byte, 32),
	}
	h.addClient(client)
	logger.Info().Str("client", client.id).Msg("audience client connected")

	go client.writePump()
	h.sendSnapshot(client)
	go client.readPump()
}

func (h *Hub) addClient(c *Client) {
	h.mu.Lock()
	h.clients[c.id] = c
	h.mu.Unlock()
}

func (h *Hub) removeClient(id string) {
	h.mu.Lock()
	if c, ok := h.clients[id]; ok {
		delete(h.clients, id)
		c.Close()
	}
	h.mu.Unlock()
}

// sendSnapshot pushes one message per slice so the display renders current
// state before the next broadcast arrives.
func (h *Hub) sendSnapshot(c *Client) {
	msgs, err := h.replicator.SnapshotMessages()
	if err != nil {
		logger.Error().Err(err).Msg("snapshot encode failed")
		return
	}
	for _, msg := range msgs {
		data, err := json.Marshal(msg)
		if err != nil {
			continue
		}
		select {
		case c.send <- data:
		default:
		}
	}
}

// broadcast forwards one sync message to every connected display. Slow
// clients drop messages rather than stall the replicator.
func (h *Hub) broadcast(msg drawsync.Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		logger.Error().Err(err).Msg("broadcast encode failed")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.clients {
		select {
		case c.send <- data:
		default:
			logger.Debug().Str("client", c.id).Msg("audience client send buffer full, dropping")
		}
	}
}
