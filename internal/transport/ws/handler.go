package ws

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/campusassist/campus-assist/internal/model"
	"github.com/campusassist/campus-assist/internal/service"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 8192
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Embedded widgets connect from college sites
	},
}

// MessageHandler answers one chat turn
type MessageHandler interface {
	HandleMessage(ctx context.Context, req *model.ChatRequest) (*model.ChatReply, error)
}

// Handler handles WebSocket connections
type Handler struct {
	hub    *Hub
	chat   MessageHandler
	logger *zap.Logger
}

// NewHandler creates a new WebSocket handler
func NewHandler(hub *Hub, chat MessageHandler, logger *zap.Logger) *Handler {
	return &Handler{
		hub:    hub,
		chat:   chat,
		logger: logger.Named("ws-handler"),
	}
}

// ChatWS handles GET /v1/ws/chat?conversationId=
func (h *Handler) ChatWS(w http.ResponseWriter, r *http.Request) {
	conversationID := r.URL.Query().Get("conversationId")
	if conversationID == "" {
		conversationID = uuid.New().String()
	}

	wsConn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("WebSocket upgrade error", zap.Error(err))
		return
	}

	conn := &Connection{
		ConversationID: conversationID,
		Send:           make(chan []byte, 256),
		Hub:            h.hub,
	}
	h.hub.Register(conn)
	conn.enqueue(encode(MsgConnected, map[string]string{"conversationId": conversationID}))

	go h.writePump(wsConn, conn)
	go h.readPump(wsConn, conn, h.handleChatFrame)
}

// AgentWS handles GET /v1/ws/agents
func (h *Handler) AgentWS(w http.ResponseWriter, r *http.Request) {
	wsConn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("WebSocket upgrade error", zap.Error(err))
		return
	}

	conn := &Connection{
		IsAgent: true,
		Send:    make(chan []byte, 256),
		Hub:     h.hub,
	}
	h.hub.Register(conn)
	conn.enqueue(encode(MsgConnected, map[string]int{"agents": h.hub.AgentCount()}))

	go h.writePump(wsConn, conn)
	go h.readPump(wsConn, conn, nil)
}

// handleChatFrame answers a user message on the connection it arrived on.
func (h *Handler) handleChatFrame(conn *Connection, data []byte) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil || msg.Type != MsgUserMessage {
		conn.enqueue(encode(MsgError, map[string]string{"error": "expected a message frame"}))
		return
	}

	var req model.ChatRequest
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		conn.enqueue(encode(MsgError, map[string]string{"error": "invalid message payload"}))
		return
	}
	req.ConversationID = conn.ConversationID

	reply, err := h.chat.HandleMessage(context.Background(), &req)
	if err != nil {
		status := "internal server error"
		if errors.Is(err, service.ErrInvalidInput) {
			status = err.Error()
		} else {
			h.logger.Error("Chat turn failed", zap.String("conversation_id", conn.ConversationID), zap.Error(err))
		}
		conn.enqueue(encode(MsgError, map[string]string{"error": status}))
		return
	}
	conn.enqueue(encode(MsgReply, reply))
}

func (h *Handler) readPump(wsConn *websocket.Conn, conn *Connection, onMessage func(*Connection, []byte)) {
	defer func() {
		h.hub.Unregister(conn)
		wsConn.Close()
	}()

	wsConn.SetReadLimit(maxMessageSize)
	wsConn.SetReadDeadline(time.Now().Add(pongWait))
	wsConn.SetPongHandler(func(string) error {
		wsConn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := wsConn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Debug("WebSocket error", zap.Error(err))
			}
			break
		}
		if onMessage != nil {
			onMessage(conn, data)
		}
	}
}

func (h *Handler) writePump(wsConn *websocket.Conn, conn *Connection) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		wsConn.Close()
	}()

	for {
		select {
		case message, ok := <-conn.Send:
			wsConn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				wsConn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := wsConn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			wsConn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := wsConn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
