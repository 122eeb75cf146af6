package model

// ConversationContext is the rolling per-conversation state kept in the
// expiring store.
type ConversationContext struct {
	ConversationID string            `json:"conversationId"`
	RecentIntents  []string          `json:"recentIntents"`
	Entities       map[string]string `json:"entities"`
	Language       string            `json:"language"`
	Escalated      bool              `json:"escalated"`
	TurnCount      int               `json:"turnCount"`
}

// NewConversationContext returns the default context for a conversation
// that has no stored state.
func NewConversationContext(conversationID string) *ConversationContext {
	return &ConversationContext{
		ConversationID: conversationID,
		RecentIntents:  []string{},
		Entities:       map[string]string{},
		Language:       WorkingLanguage,
	}
}
