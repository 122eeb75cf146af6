package model

// SearchSource tags which retrieval tier produced a result.
type SearchSource string

const (
	SourceCurated  SearchSource = "curated"
	SourceSemantic SearchSource = "semantic"
	SourceFallback SearchSource = "fallback"
)

// SearchResult is passed between retrieval tiers and into the response generator.
type SearchResult struct {
	Source     SearchSource `json:"source"`
	Confidence float64      `json:"confidence"`
	Answer     string       `json:"answer"`
	Question   string       `json:"question,omitempty"`
	Category   string       `json:"category,omitempty"`
	FAQID      string       `json:"faqId,omitempty"`
	DocumentID string       `json:"documentId,omitempty"`
	Filename   string       `json:"filename,omitempty"`
	Language   string       `json:"language"`
	Escalate   bool         `json:"escalate,omitempty"`
}
