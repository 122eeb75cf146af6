package service

import "github.com/campusassist/campus-assist/internal/model"

// ResponseGenerator turns a search result into the outward reply. It is
// deterministic and does no I/O.
type ResponseGenerator struct{}

func NewResponseGenerator() *ResponseGenerator {
	return &ResponseGenerator{}
}

// Generate copies the answer fields of result and attaches follow-up
// suggestions for the classified intent and language.
func (g *ResponseGenerator) Generate(result *model.SearchResult, _ *model.ConversationContext, cls *model.Classification) *model.Response {
	return &model.Response{
		Text:        result.Answer,
		Confidence:  result.Confidence,
		Source:      result.Source,
		Escalate:    result.Escalate,
		Suggestions: suggestionsFor(cls.Intent, cls.Language),
	}
}
