package dto

type ChatRequest struct {
	Message  string `json:"message"`
	Simplify bool   `json:"simplify"`
	Language string `json:"language"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

type SimplifyRequest struct {
	Text string `json:"text"`
}

type SimplifyResponse struct {
	Simplified string `json:"simplified"`
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type FAQsResponse struct {
	FAQs []FAQ `json:"faqs"`
}

type DetectLanguageRequest struct {
	Text string `json:"text"`
}

type DetectLanguageResponse struct {
	Language string `json:"language"`
}

type IdentifyJargonRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

type IdentifyJargonResponse struct {
	Terms []string `json:"terms"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
