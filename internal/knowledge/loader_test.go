package knowledge

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campusassist/campus-assist/internal/model"
)

const sampleBase = `
faqs:
  - category: fees
    priority: 10
    keywords: [Hostel, Fee]
    questions:
      en: What is the hostel fee?
      hi: छात्रावास शुल्क कितना है?
    answers:
      en: The hostel fee is Rs. 45,000 per year.
  - category: library
    inactive: true
    questions:
      en: When does the library close?
    answers:
      en: The library closes at 8 PM.
documents:
  - filename: exam-rules.txt
    file_type: txt
    content: Internal exams are held twice a semester.
    metadata:
      department: examinations
`

type fakeFAQRepo struct {
	created []*model.FAQ
	err     error
}

func (r *fakeFAQRepo) Search(ctx context.Context, query, lang string, limit int) ([]*model.FAQ, error) {
	return nil, nil
}

func (r *fakeFAQRepo) Create(ctx context.Context, faq *model.FAQ) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	r.created = append(r.created, faq)
	return "faq", nil
}

func (r *fakeFAQRepo) GetByID(ctx context.Context, id string) (*model.FAQ, error) {
	return nil, nil
}

type fakeDocumentRepo struct {
	created []*model.Document
}

func (r *fakeDocumentRepo) Search(ctx context.Context, query, lang string, limit int) ([]*model.Document, error) {
	return nil, nil
}

func (r *fakeDocumentRepo) Create(ctx context.Context, doc *model.Document) (string, error) {
	r.created = append(r.created, doc)
	return "doc", nil
}

func TestParse(t *testing.T) {
	kb, err := Parse(strings.NewReader(sampleBase))
	require.NoError(t, err)

	require.Len(t, kb.FAQs, 2)
	assert.Equal(t, "छात्रावास शुल्क कितना है?", kb.FAQs[0].Questions["hi"])
	assert.True(t, kb.FAQs[1].Inactive)
	require.Len(t, kb.Documents, 1)
	assert.Equal(t, "examinations", kb.Documents[0].Metadata["department"])
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "missing english answer",
			body: "faqs:\n  - questions: {en: \"Hi?\"}\n    answers: {hi: नमस्ते}\n",
			want: "english answer",
		},
		{
			name: "unsupported language",
			body: "faqs:\n  - questions: {en: \"Hi?\", fr: \"Salut?\"}\n    answers: {en: Hello}\n",
			want: `unsupported question language "fr"`,
		},
		{
			name: "empty document",
			body: "documents:\n  - filename: a.txt\n    content: \"  \"\n",
			want: "content is empty",
		},
		{
			name: "unknown field",
			body: "faqs:\n  - question: Hi?\n",
			want: "decode knowledge base",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSeed(t *testing.T) {
	kb, err := Parse(strings.NewReader(sampleBase))
	require.NoError(t, err)

	faqs := &fakeFAQRepo{}
	docs := &fakeDocumentRepo{}
	res, err := NewSeeder(faqs, docs, zap.NewNop()).Seed(context.Background(), kb)
	require.NoError(t, err)

	assert.Equal(t, Result{FAQs: 2, Documents: 1}, res)
	assert.True(t, faqs.created[0].IsActive)
	assert.False(t, faqs.created[1].IsActive)
	assert.Equal(t, 10, faqs.created[0].Priority)

	require.Len(t, docs.created, 1)
	assert.Equal(t, model.WorkingLanguage, docs.created[0].Language)
	assert.True(t, docs.created[0].IsProcessed)
}

func TestSeed_StopsOnStoreError(t *testing.T) {
	kb, err := Parse(strings.NewReader(sampleBase))
	require.NoError(t, err)

	docs := &fakeDocumentRepo{}
	res, err := NewSeeder(&fakeFAQRepo{err: errors.New("write failed")}, docs, zap.NewNop()).Seed(context.Background(), kb)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "What is the hostel fee?")
	assert.Zero(t, res.FAQs)
	assert.Empty(t, docs.created)
}
