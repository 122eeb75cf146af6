package service

import (
	"context"
	"errors"
	"slices"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/campusassist/campus-assist/internal/cache"
	"github.com/campusassist/campus-assist/internal/model"
)

var errStoreDown = errors.New("store unavailable")

// mockFAQRepo mirrors the Mongo filter: active entries whose question in the
// target language or in English contains the query, or whose keywords hold it.
type mockFAQRepo struct {
	mu    sync.Mutex
	faqs  []*model.FAQ
	err   error
	calls int
}

func (m *mockFAQRepo) Search(ctx context.Context, query, lang string, limit int) ([]*model.FAQ, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	var out []*model.FAQ
	for _, f := range m.faqs {
		if !f.IsActive {
			continue
		}
		if containsFold(f.Questions[lang], q) || containsFold(f.Questions[model.WorkingLanguage], q) || slices.Contains(f.Keywords, q) {
			out = append(out, f)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Priority > out[j].Priority })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *mockFAQRepo) Create(ctx context.Context, faq *model.FAQ) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.faqs = append(m.faqs, faq)
	return faq.ID, nil
}

func (m *mockFAQRepo) GetByID(ctx context.Context, id string) (*model.FAQ, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, f := range m.faqs {
		if f.ID == id {
			return f, nil
		}
	}
	return nil, nil
}

func (m *mockFAQRepo) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

type mockDocumentRepo struct {
	mu    sync.Mutex
	docs  []*model.Document
	err   error
	calls int
}

func (m *mockDocumentRepo) Search(ctx context.Context, query, lang string, limit int) ([]*model.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}

	q := strings.ToLower(query)
	var out []*model.Document
	for _, d := range m.docs {
		if !d.IsProcessed {
			continue
		}
		if containsFold(d.Content, q) || d.Language == lang {
			out = append(out, d)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *mockDocumentRepo) Create(ctx context.Context, doc *model.Document) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs = append(m.docs, doc)
	return doc.ID, nil
}

func (m *mockDocumentRepo) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func containsFold(s, sub string) bool {
	return s != "" && strings.Contains(strings.ToLower(s), sub)
}

type mockConversationRepo struct {
	mu            sync.Mutex
	conversations map[string]*model.Conversation
	messages      []*model.Message
	stats         *model.ChatStats
	err           error
	appendErr     error
	statsCalls    int
}

func newMockConversationRepo() *mockConversationRepo {
	return &mockConversationRepo{conversations: make(map[string]*model.Conversation)}
}

func (m *mockConversationRepo) Create(ctx context.Context, conv *model.Conversation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	conv.CreatedAt = time.Now()
	conv.UpdatedAt = conv.CreatedAt
	m.conversations[conv.ID] = conv
	return nil
}

func (m *mockConversationRepo) GetByID(ctx context.Context, id string) (*model.Conversation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return m.conversations[id], nil
}

func (m *mockConversationRepo) Exists(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.conversations[id]
	return ok, nil
}

func (m *mockConversationRepo) UpdateStatus(ctx context.Context, id string, status model.ConversationStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if conv, ok := m.conversations[id]; ok {
		conv.Status = status
	}
	return m.err
}

func (m *mockConversationRepo) AppendMessages(ctx context.Context, messages ...*model.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.appendErr != nil {
		return m.appendErr
	}
	m.messages = append(m.messages, messages...)
	return nil
}

func (m *mockConversationRepo) ListMessages(ctx context.Context, conversationID string) ([]*model.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*model.Message
	for _, msg := range m.messages {
		if msg.ConversationID == conversationID {
			out = append(out, msg)
		}
	}
	return out, nil
}

func (m *mockConversationRepo) GetMessage(ctx context.Context, id string) (*model.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, msg := range m.messages {
		if msg.ID == id {
			return msg, nil
		}
	}
	return nil, nil
}

func (m *mockConversationRepo) Stats(ctx context.Context) (*model.ChatStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statsCalls++
	if m.err != nil {
		return nil, m.err
	}
	if m.stats != nil {
		copied := *m.stats
		return &copied, nil
	}
	return &model.ChatStats{
		TotalConversations:   int64(len(m.conversations)),
		TotalMessages:        int64(len(m.messages)),
		LanguageDistribution: map[string]int64{},
		PopularIntents:       map[string]int64{},
	}, nil
}

func (m *mockConversationRepo) EnsureIndexes(ctx context.Context) error {
	return nil
}

func (m *mockConversationRepo) messageCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.messages)
}

type mockFeedbackRepo struct {
	mu       sync.Mutex
	feedback []*model.Feedback
}

func (m *mockFeedbackRepo) Create(ctx context.Context, fb *model.Feedback) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.feedback = append(m.feedback, fb)
	return nil
}

// mockTranslator tags text with the target language unless err is set.
type mockTranslator struct {
	mu      sync.Mutex
	err     error
	calls   int
	targets []string
	delay   time.Duration
}

func (m *mockTranslator) Translate(ctx context.Context, text, targetLang string) (string, error) {
	m.mu.Lock()
	m.calls++
	m.targets = append(m.targets, targetLang)
	err, delay := m.err, m.delay
	m.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if err != nil {
		return "", err
	}
	return "[" + targetLang + "] " + text, nil
}

func (m *mockTranslator) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

type fixedDetector struct {
	code string
	err  error
}

func (d fixedDetector) Detect(text string) (string, error) {
	return d.code, d.err
}

type broadcastCall struct {
	target  string
	msgType string
	payload interface{}
}

type mockBroadcaster struct {
	mu    sync.Mutex
	calls []broadcastCall
}

func (m *mockBroadcaster) BroadcastToAgents(msgType string, payload interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, broadcastCall{target: "agents", msgType: msgType, payload: payload})
}

func (m *mockBroadcaster) BroadcastToConversation(conversationID string, msgType string, payload interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, broadcastCall{target: conversationID, msgType: msgType, payload: payload})
}

func (m *mockBroadcaster) sent() []broadcastCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]broadcastCall(nil), m.calls...)
}

type failingSearchCache struct{}

func (failingSearchCache) Get(ctx context.Context, key string) (*model.SearchResult, error) {
	return nil, errStoreDown
}

func (failingSearchCache) Set(ctx context.Context, key string, result *model.SearchResult, ttl time.Duration) error {
	return errStoreDown
}

type failingContextCache struct{}

func (failingContextCache) Get(ctx context.Context, id string) (*model.ConversationContext, error) {
	return nil, errStoreDown
}

func (failingContextCache) Set(ctx context.Context, cc *model.ConversationContext, ttl time.Duration) error {
	return errStoreDown
}

func (failingContextCache) Delete(ctx context.Context, id string) error {
	return errStoreDown
}

// flakyContextCache fails the next failGets reads, then delegates.
type flakyContextCache struct {
	cache.ContextCache
	mu       sync.Mutex
	failGets int
}

func (c *flakyContextCache) Get(ctx context.Context, id string) (*model.ConversationContext, error) {
	c.mu.Lock()
	fail := c.failGets > 0
	if fail {
		c.failGets--
	}
	c.mu.Unlock()
	if fail {
		return nil, errStoreDown
	}
	return c.ContextCache.Get(ctx, id)
}

// testStack wires the pipeline against miniredis and in-memory repositories.
type testStack struct {
	mr            *miniredis.Miniredis
	client        *redis.Client
	faqs          *mockFAQRepo
	docs          *mockDocumentRepo
	conversations *mockConversationRepo
	feedback      *mockFeedbackRepo
	translator    *mockTranslator
	broadcaster   *mockBroadcaster
	classifier    *Classifier
	retrieval     *RetrievalService
	contexts      *ContextManager
	chat          *ChatService
}

type stackOption func(*stackConfig)

type stackConfig struct {
	detector  LanguageDetector
	retrieval RetrievalOptions
	inline    bool
}

func withDetector(d LanguageDetector) stackOption {
	return func(c *stackConfig) { c.detector = d }
}

func withRetrievalOptions(opts RetrievalOptions) stackOption {
	return func(c *stackConfig) { c.retrieval = opts }
}

func withBackgroundUpdates() stackOption {
	return func(c *stackConfig) { c.inline = false }
}

func newTestStack(t *testing.T, opts ...stackOption) *testStack {
	t.Helper()

	cfg := &stackConfig{
		detector:  fixedDetector{code: "en"},
		retrieval: DefaultRetrievalOptions(),
		inline:    true,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	logger := zap.NewNop()
	s := &testStack{
		mr:            mr,
		client:        client,
		faqs:          &mockFAQRepo{},
		docs:          &mockDocumentRepo{},
		conversations: newMockConversationRepo(),
		feedback:      &mockFeedbackRepo{},
		translator:    &mockTranslator{},
		broadcaster:   &mockBroadcaster{},
	}

	adapter := NewTranslationAdapter(s.translator, time.Second, logger)
	s.classifier = NewClassifier(cfg.detector, adapter, logger)
	s.retrieval = NewRetrievalService(s.faqs, s.docs, cache.NewSearchCache(client), cache.NewUnansweredCache(client), adapter, cfg.retrieval, logger)
	s.contexts = NewContextManager(cache.NewContextCache(client), DefaultContextOptions(), logger)
	s.chat = NewChatService(
		s.conversations,
		s.feedback,
		s.classifier,
		s.retrieval,
		s.contexts,
		NewResponseGenerator(),
		adapter,
		NewTaskRunner(cfg.inline, 5*time.Second, logger),
		time.Second,
		logger,
	)
	s.chat.SetBroadcaster(s.broadcaster)
	s.chat.SetStatsCaches(cache.NewStatsCache(client), cache.NewUnansweredCache(client))
	return s
}

func hostelFeeFAQ() *model.FAQ {
	return &model.FAQ{
		ID:        "faq-hostel-fee",
		Questions: map[string]string{"en": "What is the hostel fee?"},
		Answers: map[string]string{
			"en": "The hostel fee is Rs. 45,000 per year including meals.",
			"hi": "छात्रावास शुल्क भोजन सहित प्रति वर्ष 45,000 रुपये है।",
		},
		Category: "fees",
		Keywords: []string{"hostel fee", "hostel charges"},
		Priority: 10,
		IsActive: true,
	}
}
