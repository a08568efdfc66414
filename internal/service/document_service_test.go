package service

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"nyaay-saathi/internal/legaldata"
	"nyaay-saathi/internal/models"
)

func newTestDocumentService() *DocumentService {
	svc := NewDocumentService(legaldata.DocumentTemplates, legaldata.Timelines, zap.NewNop())
	svc.now = func() time.Time { return time.Date(2025, 3, 7, 10, 0, 0, 0, time.UTC) }
	return svc
}

func TestDocumentService_TemplateIDs(t *testing.T) {
	svc := newTestDocumentService()

	assert.Equal(t,
		[]string{"police_complaint", "rti_application", "consumer_complaint", "rent_agreement"},
		svc.TemplateIDs())

	tmpl, err := svc.Template("rti_application")
	require.NoError(t, err)
	assert.NotEmpty(t, tmpl.Title)

	_, err = svc.Template("missing")
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestDocumentService_Generate(t *testing.T) {
	svc := NewDocumentService([]models.DocumentTemplate{
		{ID: "t", Title: "Test", Template: "Dear {name}, dated {current_date}. Ref {ref}. {name}"},
	}, nil, zap.NewNop())
	svc.now = func() time.Time { return time.Date(2025, 3, 7, 10, 0, 0, 0, time.UTC) }

	doc, err := svc.Generate("t", map[string]string{"name": "Asha {ref}"})
	require.NoError(t, err)
	assert.Equal(t, "Test", doc.Title)
	assert.Equal(t, "Dear Asha {ref}, dated 07/03/2025. Ref {ref}. Asha {ref}", doc.Document)

	doc, err = svc.Generate("t", map[string]string{"current_date": "01/01/2024"})
	require.NoError(t, err)
	assert.Contains(t, doc.Document, "dated 01/01/2024")

	_, err = svc.Generate("missing", nil)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestDocumentService_RenderPDF(t *testing.T) {
	svc := newTestDocumentService()

	doc, err := svc.Generate("police_complaint", map[string]string{
		"complainant_name": "Asha Rao",
		"police_station":   "Kengeri",
	})
	require.NoError(t, err)

	data, err := svc.RenderPDF(doc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
	assert.Equal(t, "Police_Complaint_Template.pdf", PDFFilename(doc.Title))
}

func TestDocumentService_Timeline(t *testing.T) {
	svc := newTestDocumentService()

	steps, err := svc.Timeline("fir_to_chargesheet")
	require.NoError(t, err)
	assert.NotEmpty(t, steps)

	_, err = svc.Timeline("unknown")
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestReferenceService(t *testing.T) {
	svc := NewReferenceService(legaldata.SupportedLanguages, legaldata.LegalCodes, legaldata.IPCSections, legaldata.NearbyResources)

	assert.Equal(t, "English", svc.Languages()[0])
	assert.NotEmpty(t, svc.LegalCodes())
	assert.NotEmpty(t, svc.IPCSections())

	stations, err := svc.NearbyResources("police_station")
	require.NoError(t, err)
	assert.Len(t, stations, 6)

	_, err = svc.NearbyResources("hospital")
	assert.Equal(t, KindNotFound, KindOf(err))
}
