package request_models

type SelectTripRequest struct {
	TripID string `json:"trip_id" binding:"required"`
}
