package request_models

type OpenCurationRequest struct {
	TripID string `json:"trip_id" binding:"required"`
	Day    int    `json:"day"`
	// TargetItemID switches the dialog into replace mode when set.
	TargetItemID string `json:"target_item_id"`
}

type CurationSearchRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Query     string `json:"query"`
}

type ToggleSelectionRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Index     int    `json:"index"`
}

type SelectDayRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Day       int    `json:"day"`
}

type CurationSessionRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}
