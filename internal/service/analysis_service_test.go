package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCheckUpload(t *testing.T) {
	assert.NoError(t, CheckUpload("lease.PDF"))
	assert.NoError(t, CheckUpload("notes.txt"))
	assert.Equal(t, KindValidation, KindOf(CheckUpload("")))
	assert.Equal(t, KindValidation, KindOf(CheckUpload("photo.png")))
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "a b c", cleanText("  a\n\n b\t\f c \x00"))
	assert.Equal(t, "ok", cleanText("o\xffk"))
}

func TestDocumentType(t *testing.T) {
	tests := []struct {
		text     string
		filename string
		want     string
	}{
		{"This agreement is made with the tenant", "a.txt", "Rental Agreement"},
		{"Contract of employment and salary", "a.txt", "Employment Contract"},
		{"The parties keep this confidential", "a.txt", "Non-Disclosure Agreement"},
		{"This agreement covers goods", "a.txt", "Legal Agreement"},
		{"You are hereby notified", "a.txt", "Legal Notice"},
		{"I solemnly declare", "a.txt", "Affidavit"},
		{"My last wishes", "will.txt", "Will or Testament"},
		{"The plaintiff prays", "a.txt", "Court Petition"},
		{"Random text", "a.txt", "Legal Document"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, documentType(strings.ToLower(tt.text), tt.filename))
		})
	}
}

func TestParseAnalysis(t *testing.T) {
	summary, points := parseAnalysis(`{
		"summary": "A lease.",
		"key_points": ["Rent is due monthly"],
		"obligations_and_rights": "Tenant must pay on time",
		"terminology_explained": {"lessee": "the tenant"}
	}`)
	assert.Equal(t, "A lease.", summary)
	assert.Equal(t, []string{"Rent is due monthly", "Tenant must pay on time", "lessee: the tenant"}, points)

	answer := `{"summary": "s", "terminology_explained": {"vakalatnama": "authority to a lawyer", "affidavit": "sworn statement", "bail": "temporary release"}}`
	for i := 0; i < 20; i++ {
		_, points = parseAnalysis(answer)
		assert.Equal(t, []string{
			"vakalatnama: authority to a lawyer",
			"affidavit: sworn statement",
			"bail: temporary release",
		}, points)
	}

	_, points = parseAnalysis(`{"terminology_explained": ["lessee means tenant"]}`)
	assert.Equal(t, []string{"lessee means tenant"}, points)

	summary, points = parseAnalysis("not json")
	assert.Equal(t, fallbackSummary, summary)
	assert.Equal(t, fallbackKeyPoints, points)

	summary, points = parseAnalysis(`{}`)
	assert.Equal(t, "Summary not available", summary)
	assert.Empty(t, points)
}

func TestAnalysisService_AnalyzeText(t *testing.T) {
	model := &stubModel{answer: `{"summary":"Notice to vacate.","key_points":["Leave in 30 days"]}`}
	svc := NewAnalysisService(model, t.TempDir(), zap.NewNop())

	res, err := svc.Analyze(context.Background(), "notice.txt", strings.NewReader("You are hereby   informed\nto vacate."))
	require.NoError(t, err)
	assert.Equal(t, "Notice to vacate.", res.Summary)
	assert.Equal(t, []string{"Leave in 30 days"}, res.KeyPoints)
	assert.Equal(t, 6, res.WordCount)
	assert.Equal(t, "Legal Notice", res.DocumentType)

	require.Equal(t, 1, model.calls())
	req := model.requests[0]
	assert.True(t, req.JSON)
	assert.InDelta(t, 0.5, req.Temperature, 0.0001)
	assert.Contains(t, req.Messages[0].Content, "analyzing a Legal Notice")
	assert.Contains(t, req.Messages[0].Content, "You are hereby informed to vacate.")
}

func TestAnalysisService_ModelFailureStillAnswers(t *testing.T) {
	model := &stubModel{err: errors.New("timeout")}
	svc := NewAnalysisService(model, t.TempDir(), zap.NewNop())

	res, err := svc.Analyze(context.Background(), "doc.txt", strings.NewReader("some text"))
	require.NoError(t, err)
	assert.Equal(t, "Unable to analyze document content", res.Summary)
	assert.Equal(t, []string{"Error processing document"}, res.KeyPoints)
}

func TestAnalysisService_RejectsBadInput(t *testing.T) {
	svc := NewAnalysisService(&stubModel{}, t.TempDir(), zap.NewNop())

	_, err := svc.Analyze(context.Background(), "image.png", strings.NewReader("x"))
	assert.Equal(t, KindValidation, KindOf(err))

	_, err = svc.Analyze(context.Background(), "bad.txt", strings.NewReader("\xff\xfe"))
	assert.Equal(t, KindValidation, KindOf(err))
	assert.Zero(t, svc.model.(*stubModel).calls())
}
