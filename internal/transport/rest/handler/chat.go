package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/campusassist/campus-assist/internal/model"
	"github.com/campusassist/campus-assist/internal/service"
)

// ChatAPI is the chat surface served over HTTP
type ChatAPI interface {
	HandleMessage(ctx context.Context, req *model.ChatRequest) (*model.ChatReply, error)
	GetHistory(ctx context.Context, conversationID string) (*model.ConversationHistory, error)
	ClearContext(ctx context.Context, conversationID string) error
	SubmitFeedback(ctx context.Context, fb *model.Feedback) error
	Escalate(ctx context.Context, conversationID, reason string) error
	Languages() []model.Language
	Translate(ctx context.Context, req *model.TranslateRequest) (*model.TranslateResult, error)
	Stats(ctx context.Context) (*model.ChatStats, error)
}

// ChatHandler handles chat endpoints
type ChatHandler struct {
	chatSvc ChatAPI
	logger  *zap.Logger
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatSvc ChatAPI, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chatSvc: chatSvc,
		logger:  logger.Named("chat-handler"),
	}
}

// FeedbackRequest is the request body for rating a reply
type FeedbackRequest struct {
	ConversationID string `json:"conversationId"`
	MessageID      string `json:"messageId"`
	Rating         int    `json:"rating"`
	Comment        string `json:"comment,omitempty"`
}

// EscalateRequest is the request body for handing a conversation to an agent
type EscalateRequest struct {
	ConversationID string `json:"conversationId"`
	Reason         string `json:"reason,omitempty"`
}

// SendMessage handles POST /v1/chat/message
//
//	@Summary	Send a message and receive the assistant's reply
//	@Tags		chat
//	@Accept		json
//	@Produce	json
//	@Param		request	body		model.ChatRequest	true	"User message"
//	@Success	200		{object}	model.ChatReply
//	@Failure	400		{object}	map[string]string
//	@Router		/chat/message [post]
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req model.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	reply, err := h.chatSvc.HandleMessage(r.Context(), &req)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reply)
}

// GetConversation handles GET /v1/chat/conversations/{id}
//
//	@Summary	Conversation history
//	@Tags		chat
//	@Produce	json
//	@Param		id	path		string	true	"Conversation ID"
//	@Success	200	{object}	model.ConversationHistory
//	@Failure	404	{object}	map[string]string
//	@Router		/chat/conversations/{id} [get]
func (h *ChatHandler) GetConversation(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	history, err := h.chatSvc.GetHistory(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, history)
}

// ClearContext handles DELETE /v1/chat/conversations/{id}/context
func (h *ChatHandler) ClearContext(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.chatSvc.ClearContext(r.Context(), id); err != nil {
		h.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SubmitFeedback handles POST /v1/chat/feedback
//
//	@Summary	Rate a conversation
//	@Tags		chat
//	@Accept		json
//	@Produce	json
//	@Param		request	body		FeedbackRequest	true	"Rating between 1 and 5"
//	@Success	201		{object}	map[string]string
//	@Failure	400		{object}	map[string]string
//	@Failure	404		{object}	map[string]string
//	@Router		/chat/feedback [post]
func (h *ChatHandler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	var req FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	fb := &model.Feedback{
		ConversationID: req.ConversationID,
		MessageID:      req.MessageID,
		Rating:         req.Rating,
		Comment:        req.Comment,
	}
	if err := h.chatSvc.SubmitFeedback(r.Context(), fb); err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"message":    "feedback submitted",
		"feedbackId": fb.ID,
	})
}

// Escalate handles POST /v1/chat/escalate
//
//	@Summary	Hand a conversation to a human agent
//	@Tags		chat
//	@Accept		json
//	@Produce	json
//	@Param		request	body		EscalateRequest	true	"Conversation to escalate"
//	@Success	200		{object}	map[string]string
//	@Failure	404		{object}	map[string]string
//	@Router		/chat/escalate [post]
func (h *ChatHandler) Escalate(w http.ResponseWriter, r *http.Request) {
	var req EscalateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ConversationID == "" {
		writeError(w, http.StatusBadRequest, "conversationId is required")
		return
	}

	if err := h.chatSvc.Escalate(r.Context(), req.ConversationID, req.Reason); err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":         string(model.ConversationEscalated),
		"conversationId": req.ConversationID,
	})
}

// Languages handles GET /v1/chat/languages
func (h *ChatHandler) Languages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"languages": h.chatSvc.Languages(),
	})
}

// Translate handles POST /v1/chat/translate
//
//	@Summary	Translate text into a supported language
//	@Tags		chat
//	@Accept		json
//	@Produce	json
//	@Param		request	body		model.TranslateRequest	true	"Text and target language"
//	@Success	200		{object}	model.TranslateResult
//	@Failure	400		{object}	map[string]string
//	@Failure	502		{object}	map[string]string
//	@Router		/chat/translate [post]
func (h *ChatHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var req model.TranslateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.chatSvc.Translate(r.Context(), &req)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Stats handles GET /v1/chat/stats
//
//	@Summary	Conversation statistics
//	@Tags		chat
//	@Produce	json
//	@Success	200	{object}	model.ChatStats
//	@Router		/chat/stats [get]
func (h *ChatHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.chatSvc.Stats(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *ChatHandler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrTranslationFailed):
		writeError(w, http.StatusBadGateway, "translation service unavailable")
	default:
		h.logger.Error("Request failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
