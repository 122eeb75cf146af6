package service

import (
	"context"
	"math"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/campusassist/campus-assist/internal/model"
)

const (
	intentBaseConfidence     = 0.4
	intentMatchConfidence    = 0.3
	intentConfidenceCeiling  = 0.95
	intentFallbackConfidence = 0.0
)

type compiledIntent struct {
	name     string
	patterns map[string][]*regexp.Regexp
}

type compiledEntity struct {
	intent   string
	kind     string
	patterns map[string][]*regexp.Regexp
}

var (
	compiledIntents  = compileIntents(intentDefinitions)
	compiledEntities = compileEntities(entityDefinitions)
)

func compileIntents(defs []intentDefinition) []compiledIntent {
	out := make([]compiledIntent, len(defs))
	for i, def := range defs {
		out[i] = compiledIntent{name: def.name, patterns: compilePatterns(def.patterns)}
	}
	return out
}

func compileEntities(defs []entityDefinition) []compiledEntity {
	out := make([]compiledEntity, len(defs))
	for i, def := range defs {
		out[i] = compiledEntity{intent: def.intent, kind: def.kind, patterns: compilePatterns(def.patterns)}
	}
	return out
}

func compilePatterns(raw map[string][]string) map[string][]*regexp.Regexp {
	out := make(map[string][]*regexp.Regexp, len(raw))
	for lang, patterns := range raw {
		for _, p := range patterns {
			out[lang] = append(out[lang], regexp.MustCompile("(?i)"+p))
		}
	}
	return out
}

// patternsFor returns the patterns of lang, or the English ones when lang has
// no table.
func patternsFor(patterns map[string][]*regexp.Regexp, lang string) []*regexp.Regexp {
	if ps, ok := patterns[lang]; ok {
		return ps
	}
	return patterns[model.WorkingLanguage]
}

// Classifier detects the language of an utterance, assigns an intent with a
// confidence and extracts intent-specific entities. It never fails.
type Classifier struct {
	detector   LanguageDetector
	translator *TranslationAdapter
	intents    []compiledIntent
	entities   []compiledEntity
	logger     *zap.Logger
}

// NewClassifier creates a classifier. translator may be nil, in which case
// the canonical text is always the original text.
func NewClassifier(detector LanguageDetector, translator *TranslationAdapter, logger *zap.Logger) *Classifier {
	return &Classifier{
		detector:   detector,
		translator: translator,
		intents:    compiledIntents,
		entities:   compiledEntities,
		logger:     logger.Named("classifier"),
	}
}

// DetectLanguage always returns a supported language code.
func (c *Classifier) DetectLanguage(text string) string {
	lang, _ := resolveLanguage(c.detector, text)
	return lang
}

// ExtractIntent scores every intent by its total pattern matches in lang.
// The highest score wins; ties go to the intent declared first.
func (c *Classifier) ExtractIntent(text, lang string) (string, float64) {
	lower := strings.ToLower(text)

	best, bestConfidence := model.IntentGeneral, intentFallbackConfidence
	for _, intent := range c.intents {
		matches := 0
		for _, re := range patternsFor(intent.patterns, lang) {
			matches += len(re.FindAllStringIndex(lower, -1))
		}
		if matches == 0 {
			continue
		}
		confidence := math.Min(intentConfidenceCeiling, float64(matches)*intentMatchConfidence+intentBaseConfidence)
		if confidence > bestConfidence {
			best, bestConfidence = intent.name, confidence
		}
	}
	return best, bestConfidence
}

// ExtractEntities records at most one value per entity kind; the first
// matching pattern wins.
func (c *Classifier) ExtractEntities(text, intent, lang string) map[string]string {
	entities := make(map[string]string)
	for _, def := range c.entities {
		if def.intent != intent {
			continue
		}
		if _, done := entities[def.kind]; done {
			continue
		}
		for _, re := range patternsFor(def.patterns, lang) {
			if m := re.FindStringSubmatch(text); m != nil {
				entities[def.kind] = m[1]
				break
			}
		}
	}
	return entities
}

// Classify runs the full pipeline. A supported declared language overrides
// detection; retrieval runs on the working-language rendering of the text.
func (c *Classifier) Classify(ctx context.Context, text, declared string) *model.Classification {
	detected, method := resolveLanguage(c.detector, text)
	lang := detected
	if declared != "" && model.IsSupportedLanguage(declared) {
		lang = declared
	}

	intent, confidence := c.ExtractIntent(text, lang)
	entities := c.ExtractEntities(text, intent, lang)

	canonical := text
	if lang != model.WorkingLanguage && c.translator != nil {
		canonical = c.translator.Translate(ctx, text, model.WorkingLanguage).Text
	}

	c.logger.Debug("Classified utterance",
		zap.String("detected_language", detected),
		zap.String("detection_method", string(method)),
		zap.String("language", lang),
		zap.String("intent", intent),
		zap.Float64("confidence", confidence),
		zap.Int("entities", len(entities)))

	return &model.Classification{
		OriginalText:     text,
		CanonicalText:    canonical,
		DetectedLanguage: detected,
		Language:         lang,
		Intent:           intent,
		Confidence:       confidence,
		Entities:         entities,
	}
}
