package handlers

import (
	"fmt"

	"nyaay-saathi/internal/dto"
	"nyaay-saathi/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type DocumentHandler struct {
	docService      *service.DocumentService
	analysisService *service.AnalysisService
	logger          *zap.Logger
}

func NewDocumentHandler(docService *service.DocumentService, analysisService *service.AnalysisService, logger *zap.Logger) *DocumentHandler {
	return &DocumentHandler{
		docService:      docService,
		analysisService: analysisService,
		logger:          logger,
	}
}

// ListTemplates godoc
// @Summary List document template IDs
// @Tags documents
// @Produce json
// @Success 200 {object} dto.TemplatesResponse
// @Router /api/document_templates [get]
func (h *DocumentHandler) ListTemplates(c *fiber.Ctx) error {
	return c.JSON(dto.TemplatesResponse{Templates: h.docService.TemplateIDs()})
}

// GetTemplate godoc
// @Summary Get a document template
// @Tags documents
// @Produce json
// @Param id path string true "Template ID"
// @Success 200 {object} dto.TemplateResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/document_template/{id} [get]
func (h *DocumentHandler) GetTemplate(c *fiber.Ctx) error {
	tmpl, err := h.docService.Template(c.Params("id"))
	if err != nil {
		return respondError(c, h.logger, err, "Failed to load template")
	}

	return c.JSON(dto.TemplateResponse{Title: tmpl.Title, Template: tmpl.Template})
}

// GenerateDocument godoc
// @Summary Fill a document template
// @Tags documents
// @Accept json
// @Produce json
// @Param request body dto.GenerateDocumentRequest true "Template and field values"
// @Success 200 {object} dto.GenerateDocumentResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/generate_document [post]
func (h *DocumentHandler) GenerateDocument(c *fiber.Ctx) error {
	var req dto.GenerateDocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}

	doc, err := h.docService.Generate(req.TemplateID, req.Fields)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to generate document")
	}

	return c.JSON(dto.GenerateDocumentResponse{Title: doc.Title, Document: doc.Document})
}

// GenerateDocumentPDF godoc
// @Summary Fill a document template and download it as PDF
// @Tags documents
// @Accept json
// @Produce application/pdf
// @Param request body dto.GenerateDocumentRequest true "Template and field values"
// @Success 200 {file} file
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/generate_document_pdf [post]
func (h *DocumentHandler) GenerateDocumentPDF(c *fiber.Ctx) error {
	var req dto.GenerateDocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}

	doc, err := h.docService.Generate(req.TemplateID, req.Fields)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to generate document")
	}

	data, err := h.docService.RenderPDF(doc)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to generate PDF")
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, service.PDFFilename(doc.Title)))
	return c.Send(data)
}

// GetTimeline godoc
// @Summary Get a legal process timeline
// @Tags documents
// @Produce json
// @Param id path string true "Timeline ID"
// @Success 200 {object} dto.TimelineResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/legal_timeline/{id} [get]
func (h *DocumentHandler) GetTimeline(c *fiber.Ctx) error {
	steps, err := h.docService.Timeline(c.Params("id"))
	if err != nil {
		return respondError(c, h.logger, err, "Failed to load timeline")
	}

	return c.JSON(dto.TimelineResponse{Timeline: steps})
}

// UploadDocument godoc
// @Summary Analyze a legal document
// @Description Extracts the text of a PDF, Word or text file and explains it in plain language
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param document formData file true "Document (.pdf, .docx, .doc, .txt)"
// @Success 200 {object} dto.DocumentAnalysisResponse
// @Failure 400 {object} dto.UploadErrorResponse
// @Failure 500 {object} dto.UploadErrorResponse
// @Router /api/upload-document [post]
func (h *DocumentHandler) UploadDocument(c *fiber.Ctx) error {
	file, err := c.FormFile("document")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.UploadErrorResponse{
			Error: "No document part in the request",
		})
	}

	if err := service.CheckUpload(file.Filename); err != nil {
		return h.uploadError(c, err)
	}

	src, err := file.Open()
	if err != nil {
		return h.uploadError(c, fmt.Errorf("failed to open upload: %w", err))
	}
	defer src.Close()

	res, err := h.analysisService.Analyze(c.Context(), file.Filename, src)
	if err != nil {
		return h.uploadError(c, err)
	}

	return c.JSON(dto.DocumentAnalysisResponse{
		Success:      true,
		Summary:      res.Summary,
		KeyPoints:    res.KeyPoints,
		WordCount:    res.WordCount,
		DocumentType: res.DocumentType,
	})
}

func (h *DocumentHandler) uploadError(c *fiber.Ctx, err error) error {
	status, msg := statusAndMessage(err, "Failed to process document")
	logFailure(h.logger, status, "Document processing failed", err)
	return c.Status(status).JSON(dto.UploadErrorResponse{Error: msg})
}
