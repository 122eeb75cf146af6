package ws

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/campusassist/campus-assist/internal/service"
)

// MessageType defines the type of WebSocket message
type MessageType string

// Server to client message types
const (
	MsgConnected             MessageType = "connected"
	MsgReply                 MessageType = "reply"
	MsgEscalation            MessageType = service.EventEscalation
	MsgConversationEscalated MessageType = service.EventStatusEscalated
	MsgError                 MessageType = "error"
)

// Client to server message types
const (
	MsgUserMessage MessageType = "message"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub manages WebSocket connections of chat users and support agents
type Hub struct {
	chatConns  map[string]*Connection // conversationID -> conn
	agentConns map[*Connection]bool

	mu sync.RWMutex

	// Channels for coordination
	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *BroadcastMessage

	logger *zap.Logger
}

// Connection represents a WebSocket connection
type Connection struct {
	ConversationID string // Empty for agent connections
	IsAgent        bool
	Send           chan []byte
	Hub            *Hub
}

// BroadcastMessage is a message to broadcast
type BroadcastMessage struct {
	ConversationID string
	ToAgents       bool
	Message        *Message
}

// NewHub creates a new WebSocket hub
func NewHub(logger *zap.Logger) *Hub {
	h := &Hub{
		chatConns:  make(map[string]*Connection),
		agentConns: make(map[*Connection]bool),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan *BroadcastMessage, 256),
		logger:     logger.Named("ws"),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if conn.IsAgent {
				h.agentConns[conn] = true
				h.logger.Info("Agent connected", zap.Int("agents", len(h.agentConns)))
			} else {
				h.chatConns[conn.ConversationID] = conn
				h.logger.Debug("Chat connected", zap.String("conversation_id", conn.ConversationID))
			}
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if conn.IsAgent {
				if h.agentConns[conn] {
					delete(h.agentConns, conn)
					close(conn.Send)
					h.logger.Info("Agent disconnected", zap.Int("agents", len(h.agentConns)))
				}
			} else {
				if existing, ok := h.chatConns[conn.ConversationID]; ok && existing == conn {
					delete(h.chatConns, conn.ConversationID)
				}
				close(conn.Send)
				h.logger.Debug("Chat disconnected", zap.String("conversation_id", conn.ConversationID))
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			data, _ := json.Marshal(msg.Message)

			if msg.ToAgents {
				for conn := range h.agentConns {
					conn.enqueue(data)
				}
			} else if conn, ok := h.chatConns[msg.ConversationID]; ok {
				conn.enqueue(data)
			}
			h.mu.RUnlock()
		}
	}
}

// enqueue drops the message when the client is not keeping up
func (c *Connection) enqueue(data []byte) {
	select {
	case c.Send <- data:
	default:
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// AgentCount returns the number of connected agents
func (h *Hub) AgentCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.agentConns)
}

// BroadcastToAgents sends a message to every agent (implements service.Broadcaster)
func (h *Hub) BroadcastToAgents(msgType string, payload interface{}) {
	h.broadcast <- &BroadcastMessage{
		ToAgents: true,
		Message:  newMessage(MessageType(msgType), payload),
	}
}

// BroadcastToConversation sends a message to the user of a conversation (implements service.Broadcaster)
func (h *Hub) BroadcastToConversation(conversationID string, msgType string, payload interface{}) {
	h.broadcast <- &BroadcastMessage{
		ConversationID: conversationID,
		Message:        newMessage(MessageType(msgType), payload),
	}
}

func newMessage(msgType MessageType, payload interface{}) *Message {
	data, _ := json.Marshal(payload)
	return &Message{
		Type:    msgType,
		Payload: data,
	}
}

func encode(msgType MessageType, payload interface{}) []byte {
	data, _ := json.Marshal(newMessage(msgType, payload))
	return data
}
