package service

// Event types pushed through the Broadcaster.
const (
	EventEscalation      = "escalation"
	EventStatusEscalated = "conversation_escalated"
)

// Broadcaster interface for WebSocket broadcasting (avoids import cycle)
type Broadcaster interface {
	BroadcastToAgents(msgType string, payload interface{})
	BroadcastToConversation(conversationID string, msgType string, payload interface{})
}
