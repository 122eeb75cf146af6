package service

import (
	"context"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/campusassist/campus-assist/internal/cache"
	"github.com/campusassist/campus-assist/internal/model"
	"github.com/campusassist/campus-assist/internal/repository"
)

const (
	curatedConfidence  = 0.9
	semanticConfidence = 0.7
	fallbackConfidence = 0.3

	curatedCandidateLimit  = 5
	semanticCandidateLimit = 3
	excerptRuneLimit       = 500
	excerptEllipsis        = "..."

	tierCurated  = "faq"
	tierSemantic = "semantic"
)

// RetrievalOptions configures the cascade. The zero value is not usable; start
// from DefaultRetrievalOptions.
type RetrievalOptions struct {
	ConfidenceThreshold float64
	FallbackThreshold   float64
	CacheTTL            time.Duration
	CacheTimeout        time.Duration
	StoreTimeout        time.Duration
}

// DefaultRetrievalOptions returns the stock thresholds and timeouts.
func DefaultRetrievalOptions() RetrievalOptions {
	return RetrievalOptions{
		ConfidenceThreshold: 0.7,
		FallbackThreshold:   0.5,
		CacheTTL:            time.Hour,
		CacheTimeout:        250 * time.Millisecond,
		StoreTimeout:        2 * time.Second,
	}
}

// cacheOutcome separates a miss from a cache that could not be consulted.
type cacheOutcome int

const (
	cacheMiss cacheOutcome = iota
	cacheHit
	cacheUnavailable
)

func (o cacheOutcome) String() string {
	switch o {
	case cacheHit:
		return "hit"
	case cacheUnavailable:
		return "unavailable"
	default:
		return "miss"
	}
}

// RetrievalService answers a canonical query through the curated, semantic
// and fallback tiers, in that order.
type RetrievalService struct {
	faqs       repository.FAQRepo
	documents  repository.DocumentRepo
	cache      cache.SearchCache
	unanswered cache.UnansweredCache
	translator *TranslationAdapter
	opts       RetrievalOptions
	group      singleflight.Group
	logger     *zap.Logger
}

// NewRetrievalService creates the retrieval cascade. unanswered may be nil.
func NewRetrievalService(
	faqs repository.FAQRepo,
	documents repository.DocumentRepo,
	searchCache cache.SearchCache,
	unanswered cache.UnansweredCache,
	translator *TranslationAdapter,
	opts RetrievalOptions,
	logger *zap.Logger,
) *RetrievalService {
	return &RetrievalService{
		faqs:       faqs,
		documents:  documents,
		cache:      searchCache,
		unanswered: unanswered,
		translator: translator,
		opts:       opts,
		logger:     logger.Named("retrieval"),
	}
}

// Options returns a copy of the active options.
func (s *RetrievalService) Options() RetrievalOptions {
	return s.opts
}

// Search always returns a result, produced by exactly one tier.
func (s *RetrievalService) Search(ctx context.Context, query, intent, lang string) *model.SearchResult {
	if result := s.SearchCurated(ctx, query, lang); result != nil && result.Confidence >= s.opts.ConfidenceThreshold {
		return result
	}
	if result := s.SearchSemantic(ctx, query, lang); result != nil && result.Confidence >= s.opts.FallbackThreshold {
		return result
	}
	return s.Fallback(ctx, query, intent, lang)
}

// SearchCurated looks up the highest-priority active FAQ matching query.
func (s *RetrievalService) SearchCurated(ctx context.Context, query, lang string) *model.SearchResult {
	key := cache.SearchKey(tierCurated, query, lang)
	return s.cachedTier(ctx, key, func(ctx context.Context) (*model.SearchResult, error) {
		faqs, err := s.faqs.Search(ctx, query, lang, curatedCandidateLimit)
		if err != nil || len(faqs) == 0 {
			return nil, err
		}
		top := faqs[0]
		return &model.SearchResult{
			Source:     model.SourceCurated,
			Confidence: curatedConfidence,
			Answer:     top.AnswerIn(lang),
			Question:   top.QuestionIn(lang),
			Category:   top.Category,
			FAQID:      top.ID,
			Language:   lang,
		}, nil
	})
}

// SearchSemantic returns an excerpt of the first processed document matching
// query, translated into lang when the document is in another language.
func (s *RetrievalService) SearchSemantic(ctx context.Context, query, lang string) *model.SearchResult {
	key := cache.SearchKey(tierSemantic, query, lang)
	return s.cachedTier(ctx, key, func(ctx context.Context) (*model.SearchResult, error) {
		docs, err := s.documents.Search(ctx, query, lang, semanticCandidateLimit)
		if err != nil || len(docs) == 0 {
			return nil, err
		}
		top := docs[0]
		answer := excerpt(top.Content)
		if top.Language != lang && s.translator != nil {
			answer = s.translator.Translate(ctx, answer, lang).Text
		}
		return &model.SearchResult{
			Source:     model.SourceSemantic,
			Confidence: semanticConfidence,
			Answer:     answer,
			DocumentID: top.ID,
			Filename:   top.Filename,
			Language:   lang,
		}, nil
	})
}

// Fallback always succeeds and always escalates. Its results are not cached.
func (s *RetrievalService) Fallback(ctx context.Context, query, intent, lang string) *model.SearchResult {
	s.recordUnanswered(ctx, query, lang)
	return &model.SearchResult{
		Source:     model.SourceFallback,
		Confidence: fallbackConfidence,
		Answer:     fallbackMessage(intent, lang),
		Language:   lang,
		Escalate:   true,
	}
}

// cachedTier consults the cache, then runs lookup once per key across
// concurrent callers and stores a non-nil result. Store and cache failures
// degrade to a miss.
func (s *RetrievalService) cachedTier(ctx context.Context, key string, lookup func(context.Context) (*model.SearchResult, error)) *model.SearchResult {
	if result, outcome := s.cached(ctx, key); outcome == cacheHit {
		return result
	}

	v, err, shared := s.group.Do(key, func() (interface{}, error) {
		storeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.opts.StoreTimeout)
		defer cancel()

		result, err := lookup(storeCtx)
		if err != nil {
			return nil, err
		}
		if result != nil {
			s.store(ctx, key, result)
		}
		return result, nil
	})
	if err != nil {
		s.logger.Warn("Tier lookup failed, treating as no match",
			zap.String("key", key),
			zap.Error(err))
		return nil
	}

	result, _ := v.(*model.SearchResult)
	if result == nil {
		return nil
	}
	if shared {
		copied := *result
		return &copied
	}
	return result
}

func (s *RetrievalService) cached(ctx context.Context, key string) (*model.SearchResult, cacheOutcome) {
	ctx, cancel := context.WithTimeout(ctx, s.opts.CacheTimeout)
	defer cancel()

	result, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("Search cache read failed",
			zap.String("key", key),
			zap.String("outcome", cacheUnavailable.String()),
			zap.Error(err))
		return nil, cacheUnavailable
	}
	if result == nil {
		return nil, cacheMiss
	}
	return result, cacheHit
}

func (s *RetrievalService) store(ctx context.Context, key string, result *model.SearchResult) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.opts.CacheTimeout)
	defer cancel()

	if err := s.cache.Set(ctx, key, result, s.opts.CacheTTL); err != nil {
		s.logger.Warn("Search cache write failed",
			zap.String("key", key),
			zap.Error(err))
	}
}

func (s *RetrievalService) recordUnanswered(ctx context.Context, query, lang string) {
	if s.unanswered == nil || query == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.opts.CacheTimeout)
	defer cancel()

	if err := s.unanswered.Increment(ctx, lang, query); err != nil {
		s.logger.Debug("Failed to record unanswered query", zap.Error(err))
	}
}

// excerpt truncates content to excerptRuneLimit characters.
func excerpt(content string) string {
	if utf8.RuneCountInString(content) <= excerptRuneLimit {
		return content
	}
	runes := []rune(content)
	return string(runes[:excerptRuneLimit]) + excerptEllipsis
}
