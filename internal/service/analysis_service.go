package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"nyaay-saathi/internal/models"

	"github.com/gen2brain/go-fitz"
	"go.uber.org/zap"
)

const (
	analysisTemperature = 0.5
	analysisMaxTokens   = 1000
	analysisMaxChars    = 15000

	analysisSystemPrompt = "You are a legal assistant that specializes in explaining legal documents in simple terms."
)

var (
	fallbackSummary   = "The document appears to be a legal text. Due to its complexity, I can only provide a basic analysis."
	fallbackKeyPoints = []string{"Please review the document carefully", "Consider consulting a lawyer for detailed understanding"}

	failedSummary   = "Unable to analyze document content"
	failedKeyPoints = []string{"Error processing document"}
)

var supportedUploadExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
	".doc":  true,
	".txt":  true,
}

type DocumentAnalysis struct {
	Summary      string
	KeyPoints    []string
	WordCount    int
	DocumentType string
}

// AnalysisService extracts text from uploaded legal documents and asks the
// model to explain them.
type AnalysisService struct {
	model     ChatModel
	uploadDir string
	logger    *zap.Logger
}

func NewAnalysisService(model ChatModel, uploadDir string, logger *zap.Logger) *AnalysisService {
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		logger.Warn("Failed to create upload directory", zap.Error(err))
	}

	return &AnalysisService{
		model:     model,
		uploadDir: uploadDir,
		logger:    logger,
	}
}

// CheckUpload validates the uploaded file name before any bytes are read.
func CheckUpload(filename string) error {
	if filename == "" {
		return validationError("No file selected")
	}
	if !supportedUploadExtensions[strings.ToLower(filepath.Ext(filename))] {
		return validationError("File type not supported. Please upload a PDF, Word document, or text file")
	}
	return nil
}

// Analyze never fails because of the model: an unusable answer yields a
// generic summary instead. Only unreadable files are reported as errors.
func (s *AnalysisService) Analyze(ctx context.Context, filename string, r io.Reader) (*DocumentAnalysis, error) {
	if err := CheckUpload(filename); err != nil {
		return nil, err
	}

	raw, err := s.extractText(filename, r)
	if err != nil {
		s.logger.Warn("Failed to extract text", zap.String("file", filename), zap.Error(err))
		return nil, &Error{Kind: KindValidation, Message: "Failed to extract text from document", Err: err}
	}

	text := cleanText(raw)
	docType := documentType(text, filename)

	summary, keyPoints := s.analyzeContent(ctx, text, docType)

	return &DocumentAnalysis{
		Summary:      summary,
		KeyPoints:    keyPoints,
		WordCount:    len(strings.Fields(text)),
		DocumentType: docType,
	}, nil
}

func (s *AnalysisService) extractText(filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	if ext == ".txt" {
		data, err := io.ReadAll(r)
		if err != nil {
			return "", fmt.Errorf("failed to read text file: %w", err)
		}
		if !utf8.Valid(data) {
			return "", fmt.Errorf("text file is not valid UTF-8")
		}
		return string(data), nil
	}

	// MuPDF picks the document handler from the extension.
	tmpFile, err := os.CreateTemp(s.uploadDir, "upload-*"+ext)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := io.Copy(tmpFile, r); err != nil {
		tmpFile.Close()
		return "", fmt.Errorf("failed to copy file data: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}

	return s.extractWithFitz(tmpFile.Name())
}

func (s *AnalysisService) extractWithFitz(path string) (string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return "", fmt.Errorf("failed to open document: %w", err)
	}
	defer doc.Close()

	var textBuilder strings.Builder
	for i := 0; i < doc.NumPage(); i++ {
		pageText, err := doc.Text(i)
		if err != nil {
			s.logger.Warn("Failed to extract text from page",
				zap.Int("page", i+1),
				zap.String("file", path),
				zap.Error(err),
			)
			continue
		}
		textBuilder.WriteString(pageText)
		textBuilder.WriteString("\n")
	}

	s.logger.Info("Document text extracted",
		zap.Int("pages", doc.NumPage()),
		zap.Int("text_length", textBuilder.Len()),
	)

	return textBuilder.String(), nil
}

// cleanText collapses whitespace runs to single spaces and drops
// non-printable characters and invalid UTF-8.
func cleanText(text string) string {
	text = sanitizeUTF8(text)
	text = strings.Join(strings.Fields(text), " ")

	return strings.TrimSpace(strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, text))
}

func sanitizeUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}

	var result strings.Builder
	result.Grow(len(s))

	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError && size == 1 {
			s = s[1:]
			continue
		}
		result.WriteRune(r)
		s = s[size:]
	}

	return result.String()
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// documentType guesses the kind of legal document from keywords. The first
// matching rule wins.
func documentType(text, filename string) string {
	lowerText := strings.ToLower(text)
	lowerFilename := strings.ToLower(filename)

	switch {
	case containsAny(lowerText, "agreement", "contract", "between", "parties", "agreed", "terms"):
		switch {
		case containsAny(lowerText, "rent", "lease", "tenant"):
			return "Rental Agreement"
		case containsAny(lowerText, "employment", "job", "salary"):
			return "Employment Contract"
		case containsAny(lowerText, "non-disclosure", "confidential", "nda"):
			return "Non-Disclosure Agreement"
		default:
			return "Legal Agreement"
		}
	case containsAny(lowerText, "notice", "hereby", "inform", "notification"):
		return "Legal Notice"
	case containsAny(lowerText, "affidavit", "solemnly", "affirm", "sworn"):
		return "Affidavit"
	case strings.Contains(lowerFilename, "will") || containsAny(lowerText, "testament", "bequeath", "executor", "probate"):
		return "Will or Testament"
	case containsAny(lowerText, "petition", "court", "honorable", "plaintiff", "defendant"):
		return "Court Petition"
	default:
		return "Legal Document"
	}
}

func analysisPrompt(docType, content string) string {
	return fmt.Sprintf(`You're a legal assistant analyzing a %s.
Please provide:
1. A concise summary (3-4 sentences) explaining what this document is about
2. Key points that a layperson should understand (bullet points)
3. Any obligations, rights, or deadlines mentioned
4. Explain any complex legal terminology in simple terms

Format your response as JSON with these keys: "summary", "key_points", "obligations_and_rights", "terminology_explained"

Here's the document text:
%s
`, docType, content)
}

func (s *AnalysisService) analyzeContent(ctx context.Context, text, docType string) (string, []string) {
	content := text
	if utf8.RuneCountInString(content) > analysisMaxChars {
		content = string([]rune(content)[:analysisMaxChars])
	}

	answer, err := s.model.Complete(ctx, CompletionRequest{
		System:      analysisSystemPrompt,
		Messages:    []models.ConversationMessage{{Role: models.RoleUser, Content: analysisPrompt(docType, content)}},
		Temperature: analysisTemperature,
		MaxTokens:   analysisMaxTokens,
		JSON:        true,
	})
	if err != nil {
		s.logger.Error("Document analysis failed", zap.Error(err))
		return failedSummary, append([]string(nil), failedKeyPoints...)
	}

	return parseAnalysis(answer)
}

// parseAnalysis folds obligations and explained terminology into the key
// points.
func parseAnalysis(answer string) (string, []string) {
	var parsed map[string]any
	if err := json.Unmarshal([]byte(answer), &parsed); err != nil {
		return fallbackSummary, append([]string(nil), fallbackKeyPoints...)
	}

	summary := "Summary not available"
	if v, ok := parsed["summary"]; ok {
		summary = stringify(v)
	}

	keyPoints := []string{}
	if v, ok := parsed["key_points"]; ok {
		keyPoints = appendPoints(keyPoints, v)
	}
	if v, ok := parsed["obligations_and_rights"]; ok {
		keyPoints = appendPoints(keyPoints, v)
	}
	if v, ok := parsed["terminology_explained"]; ok {
		if terms, isMap := orderedTerms(answer); isMap {
			keyPoints = append(keyPoints, terms...)
		} else {
			keyPoints = appendPoints(keyPoints, v)
		}
	}

	return summary, keyPoints
}

// orderedTerms renders the terminology_explained object as "term: explanation"
// lines in the order the model wrote them.
func orderedTerms(answer string) ([]string, bool) {
	var raw struct {
		Terms json.RawMessage `json:"terminology_explained"`
	}
	if err := json.Unmarshal([]byte(answer), &raw); err != nil {
		return nil, false
	}

	dec := json.NewDecoder(bytes.NewReader(raw.Terms))
	if tok, err := dec.Token(); err != nil || tok != json.Delim('{') {
		return nil, false
	}

	terms := []string{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, false
		}
		term, _ := tok.(string)

		var explanation any
		if err := dec.Decode(&explanation); err != nil {
			return nil, false
		}
		terms = append(terms, term+": "+stringify(explanation))
	}
	return terms, true
}

func appendPoints(points []string, v any) []string {
	if list, ok := v.([]any); ok {
		for _, item := range list {
			points = append(points, stringify(item))
		}
		return points
	}
	return append(points, stringify(v))
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(data)
}
