// interfaces/websocket/client.go
package websocket

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 64 * 1024
	sendBufferSize = 256
)

// RegisterWebSocketRoutes เปิดเส้นทาง /ws พร้อม JWT middleware
// connection เริ่มจากยังไม่ลงทะเบียน ต้องส่ง login event ก่อนถึงจะรับ fanout
func RegisterWebSocketRoutes(app *fiber.App, hub *Hub, authMiddleware fiber.Handler) {
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			c.Locals("allowed", true)
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	app.Get("/ws", authMiddleware, websocket.New(func(conn *websocket.Conn) {
		userID, ok := conn.Locals("user_id").(uuid.UUID)
		if !ok {
			log.Println("WebSocket: missing user identity, closing connection")
			conn.Close()
			return
		}

		client := &Client{
			UserID: userID,
			Conn:   conn,
			Send:   make(chan []byte, sendBufferSize),
			Hub:    hub,
		}
		client.markAlive()

		go client.writePump()
		client.readPump()
	}))
}

// readPump reads messages from the connection and dispatches them.
// Runs on the connection's goroutine; returning closes the connection.
func (c *Client) readPump() {
	defer func() {
		c.Hub.unregister <- c
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.markAlive()
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("WebSocket: read error for user %s: %v", c.UserID, err)
			}
			return
		}

		var msg WSMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			c.Hub.sendToClient(c, WSResponse{
				Type:      TypeError,
				Timestamp: time.Now(),
				Success:   false,
				Error:     "invalid message format",
			})
			continue
		}

		c.Hub.dispatch(context.Background(), c, &msg)
	}
}

// writePump pushes queued messages to the connection
// ออกจาก loop เมื่อ Send ถูกปิด (unregister หรือถูก evict)
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
