package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campusassist/campus-assist/internal/model"
)

func newTestClassifier(detector LanguageDetector, translator Translator) *Classifier {
	var adapter *TranslationAdapter
	if translator != nil {
		adapter = NewTranslationAdapter(translator, time.Second, zap.NewNop())
	}
	return NewClassifier(detector, adapter, zap.NewNop())
}

// samplePhrase returns the first alternative of a pattern.
func samplePhrase(pattern string) string {
	p := strings.ReplaceAll(pattern, `\b`, "")
	p = strings.TrimSuffix(strings.TrimPrefix(p, "("), ")")
	return strings.Split(p, "|")[0]
}

func TestExtractIntent_EveryLanguageAndIntent(t *testing.T) {
	c := newTestClassifier(fixedDetector{code: "en"}, nil)

	for _, def := range intentDefinitions {
		for _, lang := range model.LanguageCodes() {
			patterns, ok := def.patterns[lang]
			require.True(t, ok, "intent %s has no %s patterns", def.name, lang)

			phrase := samplePhrase(patterns[0])
			t.Run(def.name+"/"+lang, func(t *testing.T) {
				intent, confidence := c.ExtractIntent(phrase, lang)
				assert.Equal(t, def.name, intent, "phrase %q", phrase)
				assert.GreaterOrEqual(t, confidence, 0.4)
				assert.LessOrEqual(t, confidence, 0.95)
			})
		}
	}
}

func TestExtractIntent_Scoring(t *testing.T) {
	c := newTestClassifier(fixedDetector{code: "en"}, nil)

	tests := []struct {
		name       string
		text       string
		lang       string
		intent     string
		confidence float64
	}{
		{"tie goes to first declared intent", "What is the hostel fee?", "en", "fees", 0.7},
		{"matches are summed per intent", "final exam result", "en", "exam", 0.95},
		{"confidence is capped", "fee fees payment tuition", "en", "fees", 0.95},
		{"no match is general", "this is nothing", "en", model.IntentGeneral, 0.0},
		{"short greeting does not fire inside words", "scholarship details", "en", "scholarship", 0.7},
		{"case insensitive", "HOSTEL ROOM", "en", "hostel", 0.95},
		{"hindi", "छात्रावास की फीस कितनी है?", "hi", "fees", 0.7},
		{"language without table uses english", "library timings", "fr", "library", 0.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent, confidence := c.ExtractIntent(tt.text, tt.lang)
			assert.Equal(t, tt.intent, intent)
			assert.InDelta(t, tt.confidence, confidence, 1e-9)
		})
	}
}

func TestExtractEntities(t *testing.T) {
	c := newTestClassifier(fixedDetector{code: "en"}, nil)

	tests := []struct {
		name     string
		text     string
		intent   string
		lang     string
		expected map[string]string
	}{
		{"year wins over ordinal", "fee for second year 2024", "fees", "en", map[string]string{model.EntityAcademicYear: "2024"}},
		{"ordinal word", "fees for the Third year", "fees", "en", map[string]string{model.EntityAcademicYear: "Third"}},
		{"hindi ordinal", "दूसरा वर्ष की फीस", "fees", "hi", map[string]string{model.EntityAcademicYear: "दूसरा"}},
		{"marathi ordinal", "तिसरा वर्ष फी", "fees", "mr", map[string]string{model.EntityAcademicYear: "तिसरा"}},
		{"exam type", "final exam result", "exam", "en", map[string]string{model.EntityExamType: "final"}},
		{"tamil falls back to english patterns", "practical தேர்வு", "exam", "ta", map[string]string{model.EntityExamType: "practical"}},
		{"other intents extract nothing", "hostel for 2024", "hostel", "en", map[string]string{}},
		{"no match", "how much is it", "fees", "en", map[string]string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, c.ExtractEntities(tt.text, tt.intent, tt.lang))
		})
	}
}

func TestClassify_EnglishKeepsText(t *testing.T) {
	translator := &mockTranslator{}
	c := newTestClassifier(fixedDetector{code: "en"}, translator)

	cls := c.Classify(context.Background(), "What is the hostel fee?", "")

	assert.Equal(t, "en", cls.DetectedLanguage)
	assert.Equal(t, "en", cls.Language)
	assert.Equal(t, "fees", cls.Intent)
	assert.Equal(t, "What is the hostel fee?", cls.CanonicalText)
	assert.Equal(t, 0, translator.callCount())
}

func TestClassify_DeclaredLanguageOverridesDetection(t *testing.T) {
	translator := &mockTranslator{}
	c := newTestClassifier(fixedDetector{code: "en"}, translator)

	cls := c.Classify(context.Background(), "फीस कितना है", "hi")

	assert.Equal(t, "en", cls.DetectedLanguage)
	assert.Equal(t, "hi", cls.Language)
	assert.Equal(t, "fees", cls.Intent)
	assert.Equal(t, "[en] फीस कितना है", cls.CanonicalText)
	assert.Equal(t, []string{"en"}, translator.targets)
}

func TestClassify_UnsupportedDeclaredLanguageIgnored(t *testing.T) {
	c := newTestClassifier(fixedDetector{code: "ta"}, nil)

	cls := c.Classify(context.Background(), "விடுதி", "fr")

	assert.Equal(t, "ta", cls.Language)
	assert.Equal(t, "hostel", cls.Intent)
	assert.Equal(t, "விடுதி", cls.CanonicalText)
}

func TestClassify_TranslationFailureKeepsOriginal(t *testing.T) {
	c := newTestClassifier(fixedDetector{code: "hi"}, &mockTranslator{err: errors.New("quota exceeded")})

	cls := c.Classify(context.Background(), "पुस्तकालय कब खुलता है", "")

	assert.Equal(t, "hi", cls.Language)
	assert.Equal(t, "पुस्तकालय कब खुलता है", cls.CanonicalText)
}

func TestResolveLanguage(t *testing.T) {
	tests := []struct {
		name     string
		detector LanguageDetector
		text     string
		lang     string
		method   detectionMethod
	}{
		{"supported code", fixedDetector{code: "mr"}, "काय", "mr", detectedByModel},
		{"regional code folds to hindi", fixedDetector{code: "bn"}, "কত", "hi", detectedByModel},
		{"urdu folds to hindi", fixedDetector{code: "ur"}, "fees", "hi", detectedByModel},
		{"unmapped code uses script", fixedDetector{code: "ne"}, "नमस्ते", "hi", detectedByScript},
		{"detector error uses script tamil", fixedDetector{err: errors.New("boom")}, "வணக்கம்", "ta", detectedByScript},
		{"detector error uses script telugu", fixedDetector{err: errors.New("boom")}, "హలో", "te", detectedByScript},
		{"unmapped latin defaults", fixedDetector{code: "fr"}, "bonjour", "en", detectedDefault},
		{"empty text defaults", fixedDetector{err: errLanguageUndetected}, "", "en", detectedDefault},
		{"nil detector", nil, "హలో", "te", detectedByScript},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lang, method := resolveLanguage(tt.detector, tt.text)
			assert.Equal(t, tt.lang, lang)
			assert.Equal(t, tt.method, method)
			assert.True(t, model.IsSupportedLanguage(lang))
		})
	}
}

func TestWhatlangDetector(t *testing.T) {
	d := NewLanguageDetector()

	code, err := d.Detect("The central library is open from nine in the morning until eight in the evening on all working days.")
	require.NoError(t, err)
	assert.Equal(t, "en", code)

	_, err = d.Detect("   ")
	assert.ErrorIs(t, err, errLanguageUndetected)

	lang, _ := resolveLanguage(d, "छात्रावास की फीस कितनी है और भुगतान कैसे करना है?")
	assert.Contains(t, []string{"hi", "mr"}, lang)
}
