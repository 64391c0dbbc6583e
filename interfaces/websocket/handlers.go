// interfaces/websocket/handlers.go
package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// registerHandlers registers all message handlers
func (h *Hub) registerHandlers() {
	h.handlers[string(TypeLogin)] = &LoginHandler{hub: h}
	h.handlers[string(TypeLogout)] = &LogoutHandler{hub: h}
	h.handlers[string(TypeSendMessage)] = &SendMessageHandler{hub: h}
	h.handlers[string(TypePing)] = &PingHandler{hub: h}
}

// dispatch routes an inbound message to its handler
// connection ที่ยังไม่ login ใช้ได้แค่ login กับ ping
func (h *Hub) dispatch(ctx context.Context, client *Client, msg *WSMessage) {
	handler, ok := h.handlers[string(msg.Type)]
	if !ok {
		h.sendToClient(client, WSResponse{
			Type:      TypeError,
			Timestamp: time.Now(),
			RequestID: msg.RequestID,
			Success:   false,
			Error:     fmt.Sprintf("unknown message type: %s", msg.Type),
		})
		return
	}

	if !client.IsAuthenticated() && msg.Type != TypeLogin && msg.Type != TypePing {
		h.sendToClient(client, WSResponse{
			Type:      TypeError,
			Timestamp: time.Now(),
			RequestID: msg.RequestID,
			Success:   false,
			Error:     "not logged in",
		})
		return
	}

	if err := handler.ValidateData(msg.Data); err != nil {
		h.sendToClient(client, WSResponse{
			Type:      TypeError,
			Timestamp: time.Now(),
			RequestID: msg.RequestID,
			Success:   false,
			Error:     err.Error(),
		})
		return
	}

	if err := handler.Handle(ctx, client, msg.Data); err != nil {
		h.sendToClient(client, WSResponse{
			Type:      TypeError,
			Timestamp: time.Now(),
			RequestID: msg.RequestID,
			Success:   false,
			Error:     err.Error(),
		})
	}
}

// LoginHandler ลงทะเบียน connection เข้ากับ hub
// id ที่ส่งมาต้องตรงกับ identity ใน token ที่ใช้เปิด connection
type LoginHandler struct {
	hub *Hub
}

type LoginData struct {
	ID uuid.UUID `json:"id"`
}

func (h *LoginHandler) Handle(ctx context.Context, client *Client, data json.RawMessage) error {
	var loginData LoginData
	if err := json.Unmarshal(data, &loginData); err != nil {
		return fmt.Errorf("invalid login data: %w", err)
	}

	if loginData.ID != client.UserID {
		return fmt.Errorf("login id does not match token identity")
	}

	if client.IsAuthenticated() {
		// login ซ้ำบน connection เดิม ไม่ต้องลงทะเบียนใหม่ แต่ตอบ ack เดิมกลับไป
		h.hub.sendToClient(client, WSResponse{
			Type: TypeLogin,
			Data: map[string]interface{}{
				"user_id": client.UserID.String(),
			},
			Timestamp: time.Now(),
			Success:   true,
		})
		return nil
	}

	h.hub.register <- client
	return nil
}

func (h *LoginHandler) ValidateData(data json.RawMessage) error {
	if len(data) == 0 {
		return fmt.Errorf("login data is required")
	}
	return nil
}

// LogoutHandler ถอน connection ออกจาก hub โดยไม่ปิด socket
type LogoutHandler struct {
	hub *Hub
}

func (h *LogoutHandler) Handle(ctx context.Context, client *Client, data json.RawMessage) error {
	h.hub.unregister <- client
	return nil
}

func (h *LogoutHandler) ValidateData(data json.RawMessage) error {
	return nil
}

// SendMessageHandler รับข้อความแชทจาก client
// chat_id ว่าง (uuid ศูนย์) หมายถึง global chat
type SendMessageHandler struct {
	hub *Hub
}

type SendMessageData struct {
	ChatID uuid.UUID `json:"chat_id"`
	Text   string    `json:"text"`
}

func (h *SendMessageHandler) Handle(ctx context.Context, client *Client, data json.RawMessage) error {
	var msgData SendMessageData
	if err := json.Unmarshal(data, &msgData); err != nil {
		return fmt.Errorf("invalid message data: %w", err)
	}

	if h.hub.messageService == nil {
		return fmt.Errorf("message service unavailable")
	}

	// service จะ persist แล้ว fan out newMessage ให้เอง
	if _, err := h.hub.messageService.SendMessage(ctx, client.UserID, msgData.ChatID, msgData.Text); err != nil {
		return err
	}

	h.hub.IncrementMessageCount()
	return nil
}

func (h *SendMessageHandler) ValidateData(data json.RawMessage) error {
	var msgData SendMessageData
	if err := json.Unmarshal(data, &msgData); err != nil {
		return fmt.Errorf("invalid message data: %w", err)
	}
	if strings.TrimSpace(msgData.Text) == "" {
		return fmt.Errorf("message text is required")
	}
	return nil
}

// PingHandler handles ping messages
type PingHandler struct {
	hub *Hub
}

func (h *PingHandler) Handle(ctx context.Context, client *Client, data json.RawMessage) error {
	client.markAlive()

	h.hub.sendToClient(client, WSResponse{
		Type:      TypePong,
		Data:      map[string]interface{}{"message": "pong"},
		Timestamp: time.Now(),
		Success:   true,
	})
	return nil
}

func (h *PingHandler) ValidateData(data json.RawMessage) error {
	return nil
}
