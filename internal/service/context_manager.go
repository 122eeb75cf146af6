package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/campusassist/campus-assist/internal/cache"
	"github.com/campusassist/campus-assist/internal/model"
)

// ContextOptions configures the rolling conversation context.
type ContextOptions struct {
	TTL        time.Duration
	WindowSize int
	Timeout    time.Duration
}

// DefaultContextOptions keeps five intents for an hour after the last turn.
func DefaultContextOptions() ContextOptions {
	return ContextOptions{
		TTL:        time.Hour,
		WindowSize: 5,
		Timeout:    250 * time.Millisecond,
	}
}

// ContextManager reads and writes per-conversation context. Reads never fail:
// missing or unreadable state yields the default context.
type ContextManager struct {
	cache  cache.ContextCache
	opts   ContextOptions
	logger *zap.Logger
}

// NewContextManager creates a context manager
func NewContextManager(contextCache cache.ContextCache, opts ContextOptions, logger *zap.Logger) *ContextManager {
	return &ContextManager{
		cache:  contextCache,
		opts:   opts,
		logger: logger.Named("context"),
	}
}

func (m *ContextManager) Get(ctx context.Context, conversationID string) *model.ConversationContext {
	cc, err := m.load(ctx, conversationID)
	if err != nil {
		m.logger.Warn("Context read failed, using defaults",
			zap.String("conversation_id", conversationID),
			zap.Error(err))
		return model.NewConversationContext(conversationID)
	}
	return cc
}

// Update folds one turn into the stored context and refreshes its expiry.
// Failures are logged; the turn's reply never depends on them. A failed read
// skips the write so stored state is never replaced by defaults.
func (m *ContextManager) Update(ctx context.Context, conversationID string, cls *model.Classification, result *model.SearchResult) {
	cc, err := m.load(ctx, conversationID)
	if err != nil {
		m.logger.Warn("Context read failed, skipping update",
			zap.String("conversation_id", conversationID),
			zap.Error(err))
		return
	}
	applyTurn(cc, cls, result, m.opts.WindowSize)
	m.save(ctx, cc)
}

// MarkEscalated sets the sticky escalation flag without counting a turn.
func (m *ContextManager) MarkEscalated(ctx context.Context, conversationID string) {
	cc, err := m.load(ctx, conversationID)
	if err != nil {
		m.logger.Warn("Context read failed, escalation flag not stored",
			zap.String("conversation_id", conversationID),
			zap.Error(err))
		return
	}
	cc.Escalated = true
	m.save(ctx, cc)
}

// load returns the stored context, defaults on a miss, or the read error.
func (m *ContextManager) load(ctx context.Context, conversationID string) (*model.ConversationContext, error) {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	cc, err := m.cache.Get(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if cc == nil {
		return model.NewConversationContext(conversationID), nil
	}
	normalizeContext(cc, conversationID)
	return cc, nil
}

// Clear drops the stored context; the next read yields defaults.
func (m *ContextManager) Clear(ctx context.Context, conversationID string) error {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	if err := m.cache.Delete(ctx, conversationID); err != nil {
		return fmt.Errorf("failed to clear context: %w", err)
	}
	return nil
}

func (m *ContextManager) save(ctx context.Context, cc *model.ConversationContext) {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	if err := m.cache.Set(ctx, cc, m.opts.TTL); err != nil {
		m.logger.Warn("Context write failed",
			zap.String("conversation_id", cc.ConversationID),
			zap.Error(err))
	}
}

func (m *ContextManager) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if m.opts.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, m.opts.Timeout)
}

// applyTurn appends the intent to a bounded window, overwrites entities
// key-wise, adopts the turn's language, keeps escalation sticky and counts
// exactly one turn.
func applyTurn(cc *model.ConversationContext, cls *model.Classification, result *model.SearchResult, window int) {
	cc.RecentIntents = append(cc.RecentIntents, cls.Intent)
	if window > 0 && len(cc.RecentIntents) > window {
		cc.RecentIntents = append([]string(nil), cc.RecentIntents[len(cc.RecentIntents)-window:]...)
	}
	for k, v := range cls.Entities {
		cc.Entities[k] = v
	}
	cc.Language = cls.Language
	cc.Escalated = cc.Escalated || (result != nil && result.Escalate)
	cc.TurnCount++
}

func normalizeContext(cc *model.ConversationContext, conversationID string) {
	if cc.ConversationID == "" {
		cc.ConversationID = conversationID
	}
	if cc.RecentIntents == nil {
		cc.RecentIntents = []string{}
	}
	if cc.Entities == nil {
		cc.Entities = map[string]string{}
	}
	if cc.Language == "" {
		cc.Language = model.WorkingLanguage
	}
}
