package ws

import (
	"sync"

	"github.com/gorilla/websocket"

	"luckydraw-backend/internal/common/logger"
)

// Client is one connected audience display.
type Client struct {
	id   string
	conn *websocket.Conn
	hub  *Hub
	send chan []byte
	once sync.Once
}

func (c *Client) Close() {
	c.once.Do(func() {
		close(c.send)
		c.conn.Close()
	})
}

// readPump drains inbound frames. Audience displays never send application
// messages; the read loop exists to detect disconnects.
func (c *Client) readPump() {
	defer func() {
		c.hub.removeClient(c.id)
		c.conn.Close()
	}()

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Debug().Str("client", c.id).Msg("audience client disconnected")
			} else {
				logger.Debug().Str("client", c.id).Err(err).Msg("audience client read error")
			}
			return
		}
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			logger.Debug().Str("client", c.id).Err(err).Msg("audience client write error")
			return
		}
	}
}
