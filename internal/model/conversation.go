package model

import "time"

type ConversationStatus string

const (
	ConversationActive    ConversationStatus = "active"
	ConversationEscalated ConversationStatus = "escalated"
	ConversationClosed    ConversationStatus = "closed"
)

type Sender string

const (
	SenderUser  Sender = "user"
	SenderBot   Sender = "bot"
	SenderAdmin Sender = "admin"
)

type Conversation struct {
	ID            string             `json:"id" bson:"_id"`
	UserID        string             `json:"userId" bson:"userId"`
	Platform      string             `json:"platform" bson:"platform"` // web, whatsapp, telegram
	Language      string             `json:"language" bson:"language"`
	Status        ConversationStatus `json:"status" bson:"status"`
	WebsiteDomain string             `json:"websiteDomain,omitempty" bson:"websiteDomain,omitempty"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Message is one side of a turn. Messages are append-only.
type Message struct {
	ID             string       `json:"id" bson:"_id,omitempty"`
	ConversationID string       `json:"conversationId" bson:"conversationId"`
	Sender         Sender       `json:"sender" bson:"sender"`
	Text           string       `json:"message" bson:"text"`
	Intent         string       `json:"intent" bson:"intent"`
	Confidence     float64      `json:"confidence" bson:"confidence"`
	Source         SearchSource `json:"source,omitempty" bson:"source,omitempty"`
	Language       string       `json:"language" bson:"language"`
	CreatedAt      time.Time    `json:"timestamp" bson:"createdAt"`
}

// ConversationHistory is the ordered transcript of a conversation.
type ConversationHistory struct {
	ConversationID string             `json:"conversationId"`
	Messages       []*Message         `json:"messages"`
	TotalMessages  int                `json:"totalMessages"`
	Language       string             `json:"language"`
	Status         ConversationStatus `json:"status"`
}

// Feedback is a user rating of a bot message.
type Feedback struct {
	ID             string    `json:"id" bson:"_id,omitempty"`
	ConversationID string    `json:"conversationId" bson:"conversationId"`
	MessageID      string    `json:"messageId" bson:"messageId"`
	Rating         int       `json:"rating" bson:"rating"`
	Comment        string    `json:"comment,omitempty" bson:"comment,omitempty"`
	CreatedAt      time.Time `json:"createdAt" bson:"createdAt"`
}

// ChatStats summarises stored conversations.
type ChatStats struct {
	TotalConversations   int64            `json:"totalConversations"`
	TotalMessages        int64            `json:"totalMessages"`
	LanguageDistribution map[string]int64 `json:"languageDistribution"`
	PopularIntents       map[string]int64 `json:"popularIntents"`
	// Unanswered ranks fallback queries per language.
	Unanswered map[string][]UnansweredQuery `json:"unanswered,omitempty"`
}

// UnansweredQuery is one ranked query that no knowledge entry could answer.
type UnansweredQuery struct {
	Query string `json:"query"`
	Count int    `json:"count"`
	Rank  int    `json:"rank"`
}
