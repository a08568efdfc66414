package service

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"time"

	"nyaay-saathi/internal/models"

	"github.com/go-pdf/fpdf"
	"go.uber.org/zap"
)

const (
	pdfMargin      = 72
	pdfTitleSize   = 18
	pdfBodySize    = 11
	pdfBodyLeading = 14
	pdfTitleGap    = 18
	pdfBlankLine   = 12

	dateLayout = "02/01/2006"
)

// GeneratedDocument is a template filled with the caller's fields.
type GeneratedDocument struct {
	Title    string
	Document string
}

// DocumentService fills legal document templates and renders them to PDF.
type DocumentService struct {
	templateIDs []string
	templates   map[string]models.DocumentTemplate
	timelines   map[string][]models.TimelineStep
	logger      *zap.Logger
	now         func() time.Time
}

func NewDocumentService(templates []models.DocumentTemplate, timelines []models.Timeline, logger *zap.Logger) *DocumentService {
	s := &DocumentService{
		templateIDs: make([]string, 0, len(templates)),
		templates:   make(map[string]models.DocumentTemplate, len(templates)),
		timelines:   make(map[string][]models.TimelineStep, len(timelines)),
		logger:      logger,
		now:         time.Now,
	}
	for _, t := range templates {
		s.templateIDs = append(s.templateIDs, t.ID)
		s.templates[t.ID] = t
	}
	for _, t := range timelines {
		s.timelines[t.ID] = t.Steps
	}
	return s
}

// TemplateIDs lists the available templates in table order.
func (s *DocumentService) TemplateIDs() []string {
	out := make([]string, len(s.templateIDs))
	copy(out, s.templateIDs)
	return out
}

func (s *DocumentService) Template(id string) (models.DocumentTemplate, error) {
	t, ok := s.templates[id]
	if !ok {
		return models.DocumentTemplate{}, notFoundError("Template not found")
	}
	return t, nil
}

// Generate replaces each {field} placeholder with its value in a single pass,
// so values are never themselves expanded. Placeholders without a value are
// left as written. current_date defaults to today as dd/mm/yyyy.
func (s *DocumentService) Generate(id string, fields map[string]string) (*GeneratedDocument, error) {
	t, err := s.Template(id)
	if err != nil {
		return nil, err
	}

	values := make(map[string]string, len(fields)+1)
	for k, v := range fields {
		values[k] = v
	}
	if _, ok := values["current_date"]; !ok {
		values["current_date"] = s.now().Format(dateLayout)
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		pairs = append(pairs, "{"+k+"}", values[k])
	}

	return &GeneratedDocument{
		Title:    t.Title,
		Document: strings.NewReplacer(pairs...).Replace(t.Template),
	}, nil
}

// RenderPDF lays the document out on Letter pages with one-inch margins: the
// title centered in bold, then one paragraph per line with blank lines kept as
// vertical space. Text is encoded as cp1252; characters outside it are lost.
func (s *DocumentService) RenderPDF(doc *GeneratedDocument) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.SetTitle(doc.Title, true)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", pdfTitleSize)
	pdf.MultiCell(0, pdfTitleSize*1.2, tr(doc.Title), "", "C", false)
	pdf.Ln(pdfTitleGap)

	pdf.SetFont("Helvetica", "", pdfBodySize)
	for _, line := range strings.Split(doc.Document, "\n") {
		if strings.TrimSpace(line) == "" {
			pdf.Ln(pdfBlankLine)
			continue
		}
		pdf.MultiCell(0, pdfBodyLeading, tr(line), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		s.logger.Error("PDF generation failed", zap.String("title", doc.Title), zap.Error(err))
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// PDFFilename is the attachment name for a generated document.
func PDFFilename(title string) string {
	return strings.ReplaceAll(title, " ", "_") + ".pdf"
}

func (s *DocumentService) Timeline(id string) ([]models.TimelineStep, error) {
	steps, ok := s.timelines[id]
	if !ok {
		return nil, notFoundError("Timeline not found")
	}
	return steps, nil
}
