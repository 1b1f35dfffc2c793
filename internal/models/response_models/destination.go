package response_models

// SuggestedDestination is an AI-proposed place from wizard step 2. The ID is
// positional (0-based), assigned after the response is received; the service
// never supplies one.
type SuggestedDestination struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Country     string `json:"country"`
	Description string `json:"description"`
	MatchReason string `json:"matchReason"`
	Theme       string `json:"theme"`
	Image       string `json:"image,omitempty"`
}
