package handlers

import (
	"nyaay-saathi/internal/dto"
	"nyaay-saathi/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const defaultResourceType = "police_station"

type LegalHandler struct {
	referenceService *service.ReferenceService
	logger           *zap.Logger
}

func NewLegalHandler(referenceService *service.ReferenceService, logger *zap.Logger) *LegalHandler {
	return &LegalHandler{
		referenceService: referenceService,
		logger:           logger,
	}
}

// Languages godoc
// @Summary Supported languages
// @Tags legal
// @Produce json
// @Success 200 {object} dto.LanguagesResponse
// @Router /api/languages [get]
func (h *LegalHandler) Languages(c *fiber.Ctx) error {
	return c.JSON(dto.LanguagesResponse{Languages: h.referenceService.Languages()})
}

// NearbyResources godoc
// @Summary Legal resources near a location
// @Tags legal
// @Accept json
// @Produce json
// @Param request body dto.NearbyResourcesRequest true "Location and resource type"
// @Success 200 {object} dto.ResourcesResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/nearby_resources [post]
func (h *LegalHandler) NearbyResources(c *fiber.Ctx) error {
	var req dto.NearbyResourcesRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}
	if req.Type == "" {
		req.Type = defaultResourceType
	}

	resources, err := h.referenceService.NearbyResources(req.Type)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to find resources")
	}

	return c.JSON(dto.ResourcesResponse{Resources: resources})
}

// LegalCodes godoc
// @Summary Major Indian legal codes
// @Tags legal
// @Produce json
// @Success 200 {object} dto.LegalCodesResponse
// @Router /api/legal_codes [get]
func (h *LegalHandler) LegalCodes(c *fiber.Ctx) error {
	return c.JSON(dto.LegalCodesResponse{Codes: h.referenceService.LegalCodes()})
}

// IPCSections godoc
// @Summary Commonly cited IPC sections
// @Tags legal
// @Produce json
// @Success 200 {object} dto.IPCSectionsResponse
// @Router /api/ipc_sections [get]
func (h *LegalHandler) IPCSections(c *fiber.Ctx) error {
	return c.JSON(dto.IPCSectionsResponse{Sections: h.referenceService.IPCSections()})
}
