package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/campusassist/campus-assist/internal/cache"
	"github.com/campusassist/campus-assist/internal/model"
	"github.com/campusassist/campus-assist/internal/repository"
)

const (
	defaultUserID   = "anonymous"
	defaultPlatform = "web"

	autoEscalationReason = "no confident answer"
	unansweredStatsLimit = 10
)

// ChatService turns user messages into replies and owns the conversation
// lifecycle around them.
type ChatService struct {
	conversations repository.ConversationRepo
	feedback      repository.FeedbackRepo
	classifier    *Classifier
	retrieval     *RetrievalService
	contexts      *ContextManager
	responder     *ResponseGenerator
	translator    *TranslationAdapter
	tasks         *TaskRunner
	statsCache    cache.StatsCache
	unanswered    cache.UnansweredCache
	broadcaster   Broadcaster
	storeTimeout  time.Duration
	logger        *zap.Logger
}

// NewChatService creates a new chat service
func NewChatService(
	conversations repository.ConversationRepo,
	feedback repository.FeedbackRepo,
	classifier *Classifier,
	retrieval *RetrievalService,
	contexts *ContextManager,
	responder *ResponseGenerator,
	translator *TranslationAdapter,
	tasks *TaskRunner,
	storeTimeout time.Duration,
	logger *zap.Logger,
) *ChatService {
	return &ChatService{
		conversations: conversations,
		feedback:      feedback,
		classifier:    classifier,
		retrieval:     retrieval,
		contexts:      contexts,
		responder:     responder,
		translator:    translator,
		tasks:         tasks,
		storeTimeout:  storeTimeout,
		logger:        logger.Named("chat"),
	}
}

// SetBroadcaster sets the WebSocket broadcaster
func (s *ChatService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// SetStatsCaches enables cached statistics and the unanswered-query ranking.
func (s *ChatService) SetStatsCaches(stats cache.StatsCache, unanswered cache.UnansweredCache) {
	s.statsCache = stats
	s.unanswered = unanswered
}

// HandleMessage processes one user turn. Only invalid input is an error;
// every downstream failure degrades into a lower-confidence reply.
func (s *ChatService) HandleMessage(ctx context.Context, req *model.ChatRequest) (*model.ChatReply, error) {
	text := strings.TrimSpace(req.Message)
	if text == "" {
		return nil, fmt.Errorf("%w: message is required", ErrInvalidInput)
	}
	if req.Language != "" && !model.IsSupportedLanguage(req.Language) {
		return nil, fmt.Errorf("%w: unsupported language %q", ErrInvalidInput, req.Language)
	}

	conversationID := s.ensureConversation(ctx, req)

	cls := s.classifier.Classify(ctx, text, req.Language)
	cc := s.contexts.Get(ctx, conversationID)
	result := s.retrieval.Search(ctx, cls.CanonicalText, cls.Intent, cls.Language)
	resp := s.responder.Generate(result, cc, cls)

	s.saveTurn(ctx, conversationID, text, cls, resp)

	s.tasks.Go(ctx, "context_update", func(ctx context.Context) {
		s.contexts.Update(ctx, conversationID, cls, result)
	})

	if resp.Escalate {
		s.notifyAgents(&model.EscalationNotice{
			ConversationID: conversationID,
			Reason:         autoEscalationReason,
			Automatic:      true,
			Language:       cls.Language,
			Intent:         cls.Intent,
			Message:        text,
			CreatedAt:      time.Now(),
		})
	}

	s.logger.Info("Handled message",
		zap.String("conversation_id", conversationID),
		zap.String("language", cls.Language),
		zap.String("intent", cls.Intent),
		zap.String("source", string(resp.Source)),
		zap.Bool("escalate", resp.Escalate))

	return &model.ChatReply{
		Response:         resp.Text,
		ConversationID:   conversationID,
		Confidence:       resp.Confidence,
		Source:           resp.Source,
		Language:         cls.Language,
		DetectedLanguage: cls.DetectedLanguage,
		Escalate:         resp.Escalate,
		Suggestions:      resp.Suggestions,
		Intent:           cls.Intent,
	}, nil
}

// ensureConversation returns the id to use for this turn, creating the
// conversation when the id is empty or unknown. Store failures are logged.
func (s *ChatService) ensureConversation(ctx context.Context, req *model.ChatRequest) string {
	id := req.ConversationID
	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	if id != "" {
		exists, err := s.conversations.Exists(ctx, id)
		if err != nil {
			s.logger.Warn("Conversation lookup failed", zap.String("conversation_id", id), zap.Error(err))
			return id
		}
		if exists {
			return id
		}
	} else {
		id = uuid.New().String()
	}

	conv := &model.Conversation{
		ID:       id,
		UserID:   req.UserID,
		Platform: req.Platform,
		Language: req.Language,
		Status:   model.ConversationActive,
	}
	if conv.UserID == "" {
		conv.UserID = defaultUserID
	}
	if conv.Platform == "" {
		conv.Platform = defaultPlatform
	}
	if conv.Language == "" {
		conv.Language = model.WorkingLanguage
	}
	if conv.Platform == defaultPlatform {
		conv.WebsiteDomain = req.WebsiteDomain
	}

	if err := s.conversations.Create(ctx, conv); err != nil {
		s.logger.Warn("Failed to create conversation", zap.String("conversation_id", id), zap.Error(err))
	}
	return id
}

func (s *ChatService) saveTurn(ctx context.Context, conversationID, text string, cls *model.Classification, resp *model.Response) {
	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	now := time.Now()
	userMsg := &model.Message{
		ConversationID: conversationID,
		Sender:         model.SenderUser,
		Text:           text,
		Intent:         cls.Intent,
		Confidence:     cls.Confidence,
		Language:       cls.Language,
		CreatedAt:      now,
	}
	botMsg := &model.Message{
		ConversationID: conversationID,
		Sender:         model.SenderBot,
		Text:           resp.Text,
		Intent:         cls.Intent,
		Confidence:     resp.Confidence,
		Source:         resp.Source,
		Language:       cls.Language,
		CreatedAt:      now.Add(time.Millisecond),
	}
	if err := s.conversations.AppendMessages(ctx, userMsg, botMsg); err != nil {
		s.logger.Error("Failed to save turn", zap.String("conversation_id", conversationID), zap.Error(err))
	}
}

// GetHistory returns the ordered messages of a conversation.
func (s *ChatService) GetHistory(ctx context.Context, conversationID string) (*model.ConversationHistory, error) {
	conv, err := s.conversations.GetByID(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}
	if conv == nil {
		return nil, fmt.Errorf("conversation %s: %w", conversationID, ErrNotFound)
	}

	messages, err := s.conversations.ListMessages(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	if messages == nil {
		messages = []*model.Message{}
	}

	return &model.ConversationHistory{
		ConversationID: conv.ID,
		Messages:       messages,
		TotalMessages:  len(messages),
		Language:       conv.Language,
		Status:         conv.Status,
	}, nil
}

// SubmitFeedback stores a 1 to 5 rating of a conversation.
func (s *ChatService) SubmitFeedback(ctx context.Context, fb *model.Feedback) error {
	if fb.Rating < 1 || fb.Rating > 5 {
		return fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidInput)
	}
	if fb.ConversationID == "" {
		return fmt.Errorf("%w: conversationId is required", ErrInvalidInput)
	}

	exists, err := s.conversations.Exists(ctx, fb.ConversationID)
	if err != nil {
		return fmt.Errorf("failed to get conversation: %w", err)
	}
	if !exists {
		return fmt.Errorf("conversation %s: %w", fb.ConversationID, ErrNotFound)
	}

	if err := s.feedback.Create(ctx, fb); err != nil {
		return fmt.Errorf("failed to save feedback: %w", err)
	}
	return nil
}

// Escalate hands a conversation to a human agent. The escalation flag in the
// context is sticky from here on.
func (s *ChatService) Escalate(ctx context.Context, conversationID, reason string) error {
	conv, err := s.conversations.GetByID(ctx, conversationID)
	if err != nil {
		return fmt.Errorf("failed to get conversation: %w", err)
	}
	if conv == nil {
		return fmt.Errorf("conversation %s: %w", conversationID, ErrNotFound)
	}

	if err := s.conversations.UpdateStatus(ctx, conversationID, model.ConversationEscalated); err != nil {
		return fmt.Errorf("failed to update conversation: %w", err)
	}
	s.contexts.MarkEscalated(ctx, conversationID)

	notice := &model.EscalationNotice{
		ConversationID: conversationID,
		Reason:         reason,
		Language:       conv.Language,
		CreatedAt:      time.Now(),
	}
	s.notifyAgents(notice)
	if s.broadcaster != nil {
		s.broadcaster.BroadcastToConversation(conversationID, EventStatusEscalated, notice)
	}
	return nil
}

func (s *ChatService) notifyAgents(notice *model.EscalationNotice) {
	if s.broadcaster == nil {
		return
	}
	s.broadcaster.BroadcastToAgents(EventEscalation, notice)
}

// ClearContext forgets the rolling context of a conversation.
func (s *ChatService) ClearContext(ctx context.Context, conversationID string) error {
	return s.contexts.Clear(ctx, conversationID)
}

// Languages lists the supported conversation languages.
func (s *ChatService) Languages() []model.Language {
	return append([]model.Language(nil), model.SupportedLanguages...)
}

// Translate translates arbitrary text into a supported language.
func (s *ChatService) Translate(ctx context.Context, req *model.TranslateRequest) (*model.TranslateResult, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, fmt.Errorf("%w: text is required", ErrInvalidInput)
	}
	if !model.IsSupportedLanguage(req.TargetLanguage) {
		return nil, fmt.Errorf("%w: unsupported language %q", ErrInvalidInput, req.TargetLanguage)
	}

	source := s.classifier.DetectLanguage(req.Text)
	out := s.translator.Translate(ctx, req.Text, req.TargetLanguage)
	if !out.Translated() {
		return nil, fmt.Errorf("%w: %v", ErrTranslationFailed, out.Err)
	}

	return &model.TranslateResult{
		OriginalText:   req.Text,
		TranslatedText: out.Text,
		SourceLanguage: source,
		TargetLanguage: req.TargetLanguage,
	}, nil
}

// Stats summarises stored conversations. Results are cached briefly when a
// stats cache is configured.
func (s *ChatService) Stats(ctx context.Context) (*model.ChatStats, error) {
	if s.statsCache != nil {
		if stats, err := s.statsCache.Get(ctx); err == nil && stats != nil {
			return stats, nil
		} else if err != nil {
			s.logger.Warn("Stats cache read failed", zap.Error(err))
		}
	}

	stats, err := s.conversations.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}

	if s.unanswered != nil {
		stats.Unanswered = make(map[string][]model.UnansweredQuery)
		for _, code := range model.LanguageCodes() {
			top, err := s.unanswered.Top(ctx, code, unansweredStatsLimit)
			if err != nil {
				s.logger.Warn("Failed to read unanswered queries", zap.String("language", code), zap.Error(err))
				continue
			}
			if len(top) > 0 {
				stats.Unanswered[code] = top
			}
		}
	}

	if s.statsCache != nil {
		if err := s.statsCache.Set(ctx, stats); err != nil {
			s.logger.Warn("Stats cache write failed", zap.Error(err))
		}
	}
	return stats, nil
}

// Wait blocks until deferred turn work has finished.
func (s *ChatService) Wait() {
	s.tasks.Wait()
}
