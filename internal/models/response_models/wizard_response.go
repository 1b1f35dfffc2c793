package response_models

import "wanderlust/internal/models/request_models"

type WizardStateResponse struct {
	SessionID   string                         `json:"session_id"`
	Step        int                            `json:"step"`
	Preferences request_models.TripPreferences `json:"preferences"`
	Suggestions []SuggestedDestination         `json:"suggestions"`
	SelectedIDs []int                          `json:"selected_ids"`
}
