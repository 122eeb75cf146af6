package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/campusassist/campus-assist/internal/config"
	"github.com/campusassist/campus-assist/internal/model"
)

var errTranslationDisabled = errors.New("translation backend not configured")

// Translator converts text into a target language.
type Translator interface {
	Translate(ctx context.Context, text, targetLang string) (string, error)
}

// NewTranslator returns the OpenAI-compatible translator when an API key is
// configured and a disabled translator otherwise.
func NewTranslator(cfg *config.TranslationConfig, logger *zap.Logger) Translator {
	if !cfg.IsEnabled() {
		logger.Info("Translation backend disabled, answers stay in their stored language")
		return disabledTranslator{}
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	clientConfig.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	return &openAITranslator{
		client: openai.NewClientWithConfig(clientConfig),
		model:  cfg.Model,
		logger: logger.Named("translator"),
	}
}

type disabledTranslator struct{}

func (disabledTranslator) Translate(context.Context, string, string) (string, error) {
	return "", errTranslationDisabled
}

type openAITranslator struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

const translationSystemPrompt = "You are a translation engine for a college help desk. " +
	"Translate the user's message into %s. Reply with the translation only, " +
	"keeping names, numbers, e-mail addresses and URLs unchanged."

func (t *openAITranslator) Translate(ctx context.Context, text, targetLang string) (string, error) {
	lang, ok := model.LookupLanguage(targetLang)
	if !ok {
		lang, _ = model.LookupLanguage(model.WorkingLanguage)
	}

	start := time.Now()
	resp, err := t.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: fmt.Sprintf(translationSystemPrompt, lang.Name)},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		Temperature: 0,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no choices in response")
	}

	t.logger.Debug("Translation completed",
		zap.String("target", lang.Code),
		zap.Int("prompt_tokens", resp.Usage.PromptTokens),
		zap.Duration("elapsed", time.Since(start)))

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// Translation is the outcome of one adapter call. Text always holds something
// usable: the translation, or the input when Err is set.
type Translation struct {
	Text string
	Err  error
}

// Translated reports whether Text came from the backend.
func (t Translation) Translated() bool {
	return t.Err == nil
}

// TranslationAdapter bounds translator calls with a timeout and turns every
// failure into an untranslated result.
type TranslationAdapter struct {
	translator Translator
	timeout    time.Duration
	logger     *zap.Logger
}

// NewTranslationAdapter wraps translator.
func NewTranslationAdapter(translator Translator, timeout time.Duration, logger *zap.Logger) *TranslationAdapter {
	return &TranslationAdapter{
		translator: translator,
		timeout:    timeout,
		logger:     logger.Named("translation"),
	}
}

// Translate returns text in targetLang, or text unchanged with Err set.
func (a *TranslationAdapter) Translate(ctx context.Context, text, targetLang string) Translation {
	if strings.TrimSpace(text) == "" {
		return Translation{Text: text}
	}

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	out, err := a.translator.Translate(ctx, text, targetLang)
	if err == nil && strings.TrimSpace(out) == "" {
		err = errors.New("empty translation")
	}
	if err != nil {
		if errors.Is(err, errTranslationDisabled) {
			a.logger.Debug("Translation skipped", zap.String("target", targetLang))
		} else {
			a.logger.Warn("Translation failed, keeping original text",
				zap.String("target", targetLang),
				zap.Error(err))
		}
		return Translation{Text: text, Err: err}
	}
	return Translation{Text: out}
}
