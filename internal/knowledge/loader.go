// Package knowledge loads curated FAQs and documents from YAML and writes
// them to the knowledge store.
package knowledge

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/campusassist/campus-assist/internal/model"
	"github.com/campusassist/campus-assist/internal/repository"
)

// Base is the on-disk layout of a knowledge base file.
type Base struct {
	FAQs      []FAQEntry      `yaml:"faqs"`
	Documents []DocumentEntry `yaml:"documents"`
}

type FAQEntry struct {
	Category  string            `yaml:"category"`
	Priority  int               `yaml:"priority"`
	Keywords  []string          `yaml:"keywords"`
	Questions map[string]string `yaml:"questions"`
	Answers   map[string]string `yaml:"answers"`
	// Inactive entries are stored but never served.
	Inactive bool `yaml:"inactive"`
}

type DocumentEntry struct {
	Filename string            `yaml:"filename"`
	FileType string            `yaml:"file_type"`
	Language string            `yaml:"language"`
	Content  string            `yaml:"content"`
	Metadata map[string]string `yaml:"metadata"`
}

// Parse decodes and validates a knowledge base.
func Parse(r io.Reader) (*Base, error) {
	var kb Base
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&kb); err != nil {
		return nil, fmt.Errorf("decode knowledge base: %w", err)
	}
	if err := kb.Validate(); err != nil {
		return nil, err
	}
	return &kb, nil
}

// Validate requires an English question and answer on every FAQ and a
// supported language on every table key and document.
func (kb *Base) Validate() error {
	for i, f := range kb.FAQs {
		if strings.TrimSpace(f.Questions[model.WorkingLanguage]) == "" {
			return fmt.Errorf("faq %d: english question is required", i)
		}
		if strings.TrimSpace(f.Answers[model.WorkingLanguage]) == "" {
			return fmt.Errorf("faq %d: english answer is required", i)
		}
		for lang := range f.Questions {
			if !model.IsSupportedLanguage(lang) {
				return fmt.Errorf("faq %d: unsupported question language %q", i, lang)
			}
		}
		for lang := range f.Answers {
			if !model.IsSupportedLanguage(lang) {
				return fmt.Errorf("faq %d: unsupported answer language %q", i, lang)
			}
		}
	}
	for i, d := range kb.Documents {
		if d.Filename == "" {
			return fmt.Errorf("document %d: filename is required", i)
		}
		if strings.TrimSpace(d.Content) == "" {
			return fmt.Errorf("document %s: content is empty", d.Filename)
		}
		if d.Language != "" && !model.IsSupportedLanguage(d.Language) {
			return fmt.Errorf("document %s: unsupported language %q", d.Filename, d.Language)
		}
	}
	return nil
}

// Result counts what Seed wrote.
type Result struct {
	FAQs      int
	Documents int
}

// Seeder writes a knowledge base through the repositories.
type Seeder struct {
	faqs      repository.FAQRepo
	documents repository.DocumentRepo
	logger    *zap.Logger
}

func NewSeeder(faqs repository.FAQRepo, documents repository.DocumentRepo, logger *zap.Logger) *Seeder {
	return &Seeder{
		faqs:      faqs,
		documents: documents,
		logger:    logger.Named("seed"),
	}
}

// Seed inserts every entry of kb. It stops at the first store error and
// reports how much was written before it.
func (s *Seeder) Seed(ctx context.Context, kb *Base) (Result, error) {
	var res Result

	for _, f := range kb.FAQs {
		faq := &model.FAQ{
			Questions: f.Questions,
			Answers:   f.Answers,
			Category:  f.Category,
			Keywords:  f.Keywords,
			Priority:  f.Priority,
			IsActive:  !f.Inactive,
		}
		id, err := s.faqs.Create(ctx, faq)
		if err != nil {
			return res, fmt.Errorf("insert faq %q: %w", f.Questions[model.WorkingLanguage], err)
		}
		s.logger.Debug("FAQ inserted", zap.String("id", id), zap.String("category", f.Category))
		res.FAQs++
	}

	for _, d := range kb.Documents {
		lang := d.Language
		if lang == "" {
			lang = model.WorkingLanguage
		}
		doc := &model.Document{
			Filename:    d.Filename,
			FileType:    d.FileType,
			Content:     d.Content,
			Language:    lang,
			IsProcessed: true,
			Metadata:    d.Metadata,
		}
		id, err := s.documents.Create(ctx, doc)
		if err != nil {
			return res, fmt.Errorf("insert document %s: %w", d.Filename, err)
		}
		s.logger.Debug("Document inserted", zap.String("id", id), zap.String("filename", d.Filename))
		res.Documents++
	}

	s.logger.Info("Knowledge base seeded",
		zap.Int("faqs", res.FAQs),
		zap.Int("documents", res.Documents))
	return res, nil
}
