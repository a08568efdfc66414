package dto

import "nyaay-saathi/internal/models"

type TemplatesResponse struct {
	Templates []string `json:"templates"`
}

type TemplateResponse struct {
	Title    string `json:"title"`
	Template string `json:"template"`
}

type GenerateDocumentRequest struct {
	TemplateID string            `json:"template_id"`
	Fields     map[string]string `json:"fields"`
}

type GenerateDocumentResponse struct {
	Title    string `json:"title"`
	Document string `json:"document"`
}

type TimelineResponse struct {
	Timeline []models.TimelineStep `json:"timeline"`
}

type DocumentAnalysisResponse struct {
	Success      bool     `json:"success"`
	Summary      string   `json:"summary"`
	KeyPoints    []string `json:"key_points"`
	WordCount    int      `json:"word_count"`
	DocumentType string   `json:"document_type"`
}

// UploadErrorResponse is the {success, error} envelope of the upload endpoint.
type UploadErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
