package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campusassist/campus-assist/internal/cache"
	"github.com/campusassist/campus-assist/internal/model"
)

func TestSearch_CuratedHitSkipsSemanticTier(t *testing.T) {
	s := newTestStack(t)
	s.faqs.faqs = []*model.FAQ{hostelFeeFAQ()}

	result := s.retrieval.Search(context.Background(), "What is the hostel fee?", "fees", "en")

	assert.Equal(t, model.SourceCurated, result.Source)
	assert.Equal(t, 0.9, result.Confidence)
	assert.Equal(t, "The hostel fee is Rs. 45,000 per year including meals.", result.Answer)
	assert.Equal(t, "faq-hostel-fee", result.FAQID)
	assert.False(t, result.Escalate)
	assert.Equal(t, 0, s.docs.callCount())
}

func TestSearchCurated_AnswerLanguage(t *testing.T) {
	s := newTestStack(t)
	s.faqs.faqs = []*model.FAQ{hostelFeeFAQ()}
	ctx := context.Background()

	hi := s.retrieval.SearchCurated(ctx, "hostel fee", "hi")
	require.NotNil(t, hi)
	assert.Equal(t, "छात्रावास शुल्क भोजन सहित प्रति वर्ष 45,000 रुपये है।", hi.Answer)
	assert.Equal(t, "hi", hi.Language)

	ta := s.retrieval.SearchCurated(ctx, "hostel fee", "ta")
	require.NotNil(t, ta)
	assert.Equal(t, "The hostel fee is Rs. 45,000 per year including meals.", ta.Answer)
}

func TestSearchCurated_HighestPriorityWins(t *testing.T) {
	s := newTestStack(t)
	low := hostelFeeFAQ()
	low.ID, low.Priority = "low", 1
	low.Answers = map[string]string{"en": "old answer"}
	high := hostelFeeFAQ()
	high.ID, high.Priority = "high", 50
	inactive := hostelFeeFAQ()
	inactive.ID, inactive.Priority, inactive.IsActive = "inactive", 100, false
	s.faqs.faqs = []*model.FAQ{low, inactive, high}

	result := s.retrieval.SearchCurated(context.Background(), "hostel fee", "en")

	require.NotNil(t, result)
	assert.Equal(t, "high", result.FAQID)
}

func TestSearch_CacheHitAvoidsStore(t *testing.T) {
	s := newTestStack(t)
	s.faqs.faqs = []*model.FAQ{hostelFeeFAQ()}
	ctx := context.Background()

	first := s.retrieval.Search(ctx, "hostel fee", "fees", "en")
	second := s.retrieval.Search(ctx, "hostel fee", "fees", "en")

	assert.Equal(t, first, second)
	assert.Equal(t, 1, s.faqs.callCount())
	assert.True(t, s.mr.Exists(cache.SearchKey(tierCurated, "hostel fee", "en")))
	assert.Equal(t, time.Hour, s.mr.TTL(cache.SearchKey(tierCurated, "hostel fee", "en")))
}

func TestSearch_CacheUnavailableFallsThroughToStore(t *testing.T) {
	s := newTestStack(t)
	s.faqs.faqs = []*model.FAQ{hostelFeeFAQ()}
	svc := NewRetrievalService(s.faqs, s.docs, failingSearchCache{}, nil, nil, DefaultRetrievalOptions(), zap.NewNop())

	result := svc.Search(context.Background(), "hostel fee", "fees", "en")

	assert.Equal(t, model.SourceCurated, result.Source)
	assert.Equal(t, 1, s.faqs.callCount())
}

func TestSearch_StoreFailureDegradesToFallback(t *testing.T) {
	s := newTestStack(t)
	s.faqs.err = errStoreDown
	s.docs.err = errStoreDown

	result := s.retrieval.Search(context.Background(), "hostel fee", "fees", "en")

	assert.Equal(t, model.SourceFallback, result.Source)
	assert.True(t, result.Escalate)
	assert.Equal(t, 1, s.docs.callCount())
}

func TestSearch_ThresholdAboveCuratedConfidenceUsesSemantic(t *testing.T) {
	opts := DefaultRetrievalOptions()
	opts.ConfidenceThreshold = 0.95
	s := newTestStack(t, withRetrievalOptions(opts))
	s.faqs.faqs = []*model.FAQ{hostelFeeFAQ()}
	s.docs.docs = []*model.Document{{ID: "doc-1", Filename: "fees.pdf", Content: "Hostel fee details for 2024.", Language: "en", IsProcessed: true}}

	result := s.retrieval.Search(context.Background(), "hostel fee", "fees", "en")

	assert.Equal(t, model.SourceSemantic, result.Source)
	assert.Equal(t, 0.7, result.Confidence)
	assert.Equal(t, "doc-1", result.DocumentID)
	assert.Equal(t, "fees.pdf", result.Filename)
}

func TestSearchSemantic_TruncatesByCharacter(t *testing.T) {
	s := newTestStack(t)
	content := strings.Repeat("छात्रावास ", 80)
	s.docs.docs = []*model.Document{{ID: "doc-hi", Content: content, Language: "hi", IsProcessed: true}}

	result := s.retrieval.SearchSemantic(context.Background(), "छात्रावास", "hi")

	require.NotNil(t, result)
	assert.True(t, strings.HasSuffix(result.Answer, "..."))
	assert.Equal(t, 503, utf8.RuneCountInString(result.Answer))
	assert.True(t, utf8.ValidString(result.Answer))
	assert.Equal(t, 0, s.translator.callCount())
}

func TestSearchSemantic_TranslatesForeignExcerpt(t *testing.T) {
	s := newTestStack(t)
	s.docs.docs = []*model.Document{{ID: "doc-en", Content: "Library opens at 8 AM.", Language: "en", IsProcessed: true}}

	result := s.retrieval.SearchSemantic(context.Background(), "library", "te")

	require.NotNil(t, result)
	assert.Equal(t, "[te] Library opens at 8 AM.", result.Answer)
	assert.Equal(t, "te", result.Language)
}

func TestSearchSemantic_TranslationFailureKeepsExcerpt(t *testing.T) {
	s := newTestStack(t)
	s.translator.err = errors.New("backend down")
	s.docs.docs = []*model.Document{{ID: "doc-en", Content: "Library opens at 8 AM.", Language: "en", IsProcessed: true}}

	result := s.retrieval.SearchSemantic(context.Background(), "library", "mr")

	require.NotNil(t, result)
	assert.Equal(t, "Library opens at 8 AM.", result.Answer)
}

func TestSearchSemantic_UnprocessedIgnored(t *testing.T) {
	s := newTestStack(t)
	s.docs.docs = []*model.Document{{ID: "doc-en", Content: "Library opens at 8 AM.", Language: "en"}}

	assert.Nil(t, s.retrieval.SearchSemantic(context.Background(), "library", "en"))
}

func TestFallback(t *testing.T) {
	s := newTestStack(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		intent string
		lang   string
		answer string
	}{
		{"intent template", "hostel", "hi", fallbackMessages["hi"]["hostel"]},
		{"general uses default", model.IntentGeneral, "ta", fallbackMessages["ta"][fallbackDefaultKey]},
		{"unknown language uses english", "library", "fr", fallbackMessages["en"]["library"]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := s.retrieval.Fallback(ctx, "anything", tt.intent, tt.lang)
			assert.Equal(t, model.SourceFallback, result.Source)
			assert.Equal(t, 0.3, result.Confidence)
			assert.True(t, result.Escalate)
			assert.Equal(t, tt.answer, result.Answer)
			assert.NotEmpty(t, result.Answer)
		})
	}
}

func TestSearch_FallbackIsNotCachedAndIsRanked(t *testing.T) {
	s := newTestStack(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		result := s.retrieval.Search(ctx, "canteen menu", model.IntentGeneral, "en")
		assert.Equal(t, model.SourceFallback, result.Source)
	}

	assert.Equal(t, 2, s.faqs.callCount())
	assert.Equal(t, 2, s.docs.callCount())

	top, err := cache.NewUnansweredCache(s.client).Top(ctx, "en", 5)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, model.UnansweredQuery{Query: "canteen menu", Count: 2, Rank: 1}, top[0])
}

func TestSearch_CancelledCallerStillReachesStore(t *testing.T) {
	s := newTestStack(t)
	s.faqs.faqs = []*model.FAQ{hostelFeeFAQ()}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := s.retrieval.Search(ctx, "hostel fee", "fees", "en")

	assert.Equal(t, model.SourceCurated, result.Source)
	assert.Equal(t, 1, s.faqs.callCount())
}

func TestSearch_ConcurrentCallersGetIndependentResults(t *testing.T) {
	s := newTestStack(t)
	s.faqs.faqs = []*model.FAQ{hostelFeeFAQ()}

	var wg sync.WaitGroup
	results := make([]*model.SearchResult, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = s.retrieval.Search(context.Background(), "hostel fee", "fees", "en")
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		require.NotNil(t, r)
		assert.Equal(t, model.SourceCurated, r.Source)
	}
	results[0].Answer = "mutated"
	for _, r := range results[1:] {
		assert.NotEqual(t, "mutated", r.Answer)
	}
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "short", excerpt("short"))

	exact := strings.Repeat("a", excerptRuneLimit)
	assert.Equal(t, exact, excerpt(exact))

	long := strings.Repeat("a", excerptRuneLimit+1)
	assert.Equal(t, exact+"...", excerpt(long))
}

func TestFallbackMessagesCoverEveryLanguageAndIntent(t *testing.T) {
	for _, lang := range model.LanguageCodes() {
		messages, ok := fallbackMessages[lang]
		require.True(t, ok, lang)
		assert.NotEmpty(t, messages[fallbackDefaultKey], lang)
		for _, def := range intentDefinitions {
			assert.NotEmpty(t, messages[def.name], "%s/%s", lang, def.name)
		}
	}
}
