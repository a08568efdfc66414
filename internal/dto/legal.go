package dto

import "nyaay-saathi/internal/models"

type LanguagesResponse struct {
	Languages []string `json:"languages"`
}

// NearbyResourcesRequest carries the caller's location. Results do not depend
// on it yet.
type NearbyResourcesRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Type      string   `json:"type"`
}

type ResourcesResponse struct {
	Resources []models.LegalResource `json:"resources"`
}

type LegalTermsResponse struct {
	Terms []models.Phrase `json:"terms"`
}

type LegalCodesResponse struct {
	Codes []models.LegalCode `json:"codes"`
}

type IPCSectionsResponse struct {
	Sections []models.IPCSection `json:"sections"`
}
