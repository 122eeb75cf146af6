package model

import "time"

// FAQ is a curated question/answer pair. Questions and Answers are keyed by
// language code; the WorkingLanguage entry is always present.
type FAQ struct {
	ID        string            `json:"id" bson:"_id,omitempty"`
	Questions map[string]string `json:"questions" bson:"questions"`
	Answers   map[string]string `json:"answers" bson:"answers"`
	Category  string            `json:"category" bson:"category"`
	Keywords  []string          `json:"keywords" bson:"keywords"`
	Priority  int               `json:"priority" bson:"priority"`
	IsActive  bool              `json:"isActive" bson:"isActive"`
	CreatedAt time.Time         `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt" bson:"updatedAt"`
}

// QuestionIn returns the question in lang, falling back to English.
func (f *FAQ) QuestionIn(lang string) string {
	if q := f.Questions[lang]; q != "" {
		return q
	}
	return f.Questions[WorkingLanguage]
}

// AnswerIn returns the answer in lang, falling back to English.
func (f *FAQ) AnswerIn(lang string) string {
	if a := f.Answers[lang]; a != "" {
		return a
	}
	return f.Answers[WorkingLanguage]
}
