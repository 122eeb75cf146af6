package model

// IntentGeneral is the catch-all intent reported when no pattern matches.
const IntentGeneral = "general"

// Entity kinds extracted by the classifier.
const (
	EntityAcademicYear = "academic_year"
	EntityExamType     = "exam_type"
)

// Classification is the classifier's view of one utterance.
type Classification struct {
	OriginalText     string            `json:"originalText"`
	CanonicalText    string            `json:"canonicalText"`
	DetectedLanguage string            `json:"detectedLanguage"`
	Language         string            `json:"language"`
	Intent           string            `json:"intent"`
	Confidence       float64           `json:"confidence"`
	Entities         map[string]string `json:"entities"`
}
