package model

import "time"

// ChatRequest is an incoming user utterance.
type ChatRequest struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversationId,omitempty"`
	Platform       string `json:"platform,omitempty"`
	UserID         string `json:"userId,omitempty"`
	Language       string `json:"language,omitempty"`
	WebsiteDomain  string `json:"websiteDomain,omitempty"`
}

// Response is the generator's merge of a search result and suggestions.
type Response struct {
	Text        string       `json:"response"`
	Confidence  float64      `json:"confidence"`
	Source      SearchSource `json:"source"`
	Escalate    bool         `json:"escalate"`
	Suggestions []string     `json:"suggestions,omitempty"`
}

// ChatReply is the structured reply returned for every turn.
type ChatReply struct {
	Response         string       `json:"response"`
	ConversationID   string       `json:"conversationId"`
	Confidence       float64      `json:"confidence"`
	Source           SearchSource `json:"source"`
	Language         string       `json:"language"`
	DetectedLanguage string       `json:"detectedLanguage"`
	Escalate         bool         `json:"escalate"`
	Suggestions      []string     `json:"suggestions,omitempty"`
	Intent           string       `json:"intent"`
}

// EscalationNotice tells support agents that a conversation needs a human.
type EscalationNotice struct {
	ConversationID string    `json:"conversationId"`
	Reason         string    `json:"reason"`
	Automatic      bool      `json:"automatic"`
	Language       string    `json:"language"`
	Intent         string    `json:"intent,omitempty"`
	Message        string    `json:"message,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// TranslateRequest asks for an ad-hoc translation.
type TranslateRequest struct {
	Text           string `json:"text"`
	TargetLanguage string `json:"targetLanguage"`
}

// TranslateResult is the reply to a TranslateRequest.
type TranslateResult struct {
	OriginalText   string `json:"originalText"`
	TranslatedText string `json:"translatedText"`
	SourceLanguage string `json:"sourceLanguage"`
	TargetLanguage string `json:"targetLanguage"`
}
