package service

import (
	"errors"
	"strings"

	"github.com/abadojack/whatlanggo"

	"github.com/campusassist/campus-assist/internal/model"
)

var errLanguageUndetected = errors.New("language not detected")

// LanguageDetector guesses the ISO 639-1 code of a text. It may return any
// code, including ones the assistant does not support.
type LanguageDetector interface {
	Detect(text string) (string, error)
}

type whatlangDetector struct{}

// NewLanguageDetector returns the statistical trigram detector.
func NewLanguageDetector() LanguageDetector {
	return whatlangDetector{}
}

func (whatlangDetector) Detect(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", errLanguageUndetected
	}
	info := whatlanggo.Detect(text)
	if info.Lang < 0 {
		return "", errLanguageUndetected
	}
	code := info.Lang.Iso6391()
	if code == "" {
		return "", errLanguageUndetected
	}
	return code, nil
}

// regionalLanguageFold maps detector output onto the supported set. Related
// Indic languages fold onto Hindi.
var regionalLanguageFold = map[string]string{
	"en": "en",
	"hi": "hi",
	"mr": "mr",
	"ta": "ta",
	"te": "te",
	"bn": "hi",
	"gu": "hi",
	"kn": "hi",
	"ml": "hi",
	"pa": "hi",
	"or": "hi",
	"as": "hi",
	"ur": "hi",
}

// scriptRange is an inclusive Unicode block used when the detector gives up.
type scriptRange struct {
	lo, hi rune
	lang   string
}

var scriptRanges = []scriptRange{
	{lo: 0x0900, hi: 0x097F, lang: "hi"}, // Devanagari
	{lo: 0x0B80, hi: 0x0BFF, lang: "ta"},
	{lo: 0x0C00, hi: 0x0C7F, lang: "te"},
}

// detectionMethod records which stage produced a language decision.
type detectionMethod string

const (
	detectedByModel  detectionMethod = "detector"
	detectedByScript detectionMethod = "script"
	detectedDefault  detectionMethod = "default"
)

// resolveLanguage never fails: detector output is folded onto the supported
// set, unmapped or failed detections fall back to script ranges and then to
// the working language.
func resolveLanguage(detector LanguageDetector, text string) (string, detectionMethod) {
	if detector != nil {
		if code, err := detector.Detect(text); err == nil {
			if lang, ok := regionalLanguageFold[code]; ok {
				return lang, detectedByModel
			}
		}
	}
	if lang, ok := languageFromScript(text); ok {
		return lang, detectedByScript
	}
	return model.WorkingLanguage, detectedDefault
}

// languageFromScript checks the blocks in order; the first block with any
// code point in text wins.
func languageFromScript(text string) (string, bool) {
	for _, sr := range scriptRanges {
		for _, r := range text {
			if r >= sr.lo && r <= sr.hi {
				return sr.lang, true
			}
		}
	}
	return "", false
}
