package response_models

import "wanderlust/internal/models/db_models"

type CurationStateResponse struct {
	SessionID       string                   `json:"session_id"`
	TripID          string                   `json:"trip_id"`
	Mode            string                   `json:"mode"` // add | replace
	Day             int                      `json:"day"`
	Query           string                   `json:"query"`
	Recommendations []PlaceRecommendation    `json:"recommendations"`
	SelectedIndices []int                    `json:"selected_indices"`
	Target          *db_models.ItineraryItem `json:"target,omitempty"`
}

// DayViewResponse is the day-scoped itinerary view: items of one day in
// display order, each with its maps link.
type DayViewResponse struct {
	TripID   string        `json:"trip_id"`
	Day      int           `json:"day"`
	DayCount int           `json:"day_count"`
	Items    []DayViewItem `json:"items"`
}

type DayViewItem struct {
	db_models.ItineraryItem
	MapURL string `json:"map_url"`
}
