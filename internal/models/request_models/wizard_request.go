package request_models

// TripPreferences is the step-1 input of the trip wizard. Free-text fields
// keep whatever the user typed ("3박 4일", "가족 4인"); the budget and hotel
// tier use the fixed option labels from the planner UI.
type TripPreferences struct {
	DestinationQuery string   `json:"destination_query"`
	Duration         string   `json:"duration"`
	Travelers        string   `json:"travelers"`
	Budget           string   `json:"budget"` // Budget | Standard | Luxury
	HotelTier        string   `json:"hotel_tier"`
	Interests        []string `json:"interests"`
	IsGolf           bool     `json:"is_golf"`
	IsRentalCar      bool     `json:"is_rental_car"`
}

type SubmitPreferencesRequest struct {
	SessionID   string          `json:"session_id" binding:"required"`
	Preferences TripPreferences `json:"preferences"`
}

type ToggleDestinationRequest struct {
	SessionID     string `json:"session_id" binding:"required"`
	DestinationID int    `json:"destination_id"`
}

type WizardSessionRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}
