package service

import "nyaay-saathi/internal/models"

// ReferenceService serves the fixed lookup tables: supported languages, legal
// codes, IPC sections and nearby legal resources.
type ReferenceService struct {
	languages []string
	codes     []models.LegalCode
	sections  []models.IPCSection
	resources map[string][]models.LegalResource
}

func NewReferenceService(
	languages []string,
	codes []models.LegalCode,
	sections []models.IPCSection,
	resources []models.ResourceGroup,
) *ReferenceService {
	s := &ReferenceService{
		languages: languages,
		codes:     codes,
		sections:  sections,
		resources: make(map[string][]models.LegalResource, len(resources)),
	}
	for _, g := range resources {
		s.resources[g.Type] = g.Resources
	}
	return s
}

func (s *ReferenceService) Languages() []string { return s.languages }

func (s *ReferenceService) LegalCodes() []models.LegalCode { return s.codes }

func (s *ReferenceService) IPCSections() []models.IPCSection { return s.sections }

// NearbyResources ignores location; every caller gets the same list per type.
func (s *ReferenceService) NearbyResources(resourceType string) ([]models.LegalResource, error) {
	resources, ok := s.resources[resourceType]
	if !ok {
		return nil, notFoundError("Resource type not found")
	}
	return resources, nil
}
