package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"strconv"

	"wanderlust/internal/models/db_models"
	"wanderlust/internal/models/request_models"
	"wanderlust/internal/services"
	"wanderlust/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{tripService: tripService}
}

// ListTrips godoc
// @Summary List all trips
// @Description Fetch the full trip collection together with the last-selected trip id
// @Tags Trip
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /trips [get]
func (t *TripController) ListTrips(c *gin.Context) {
	payload := gin.H{
		"trips":            t.tripService.ListTrips(),
		"selected_trip_id": t.tripService.SelectedTripID(),
	}
	utils.RespondSuccess(c, payload, "Trips fetched successfully")
}

// GetTrip godoc
// @Summary Get a trip by ID
// @Tags Trip
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trips/{tripId} [get]
func (t *TripController) GetTrip(c *gin.Context) {
	tripID := c.Param("tripId")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	trip, err := t.tripService.GetTrip(tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, trip, "Trip fetched successfully")
}

// SelectTrip marks a trip as the last-viewed one.
func (t *TripController) SelectTrip(c *gin.Context) {
	var req request_models.SelectTripRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.TripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "trip_id is required")
		return
	}

	if err := t.tripService.SelectTrip(req.TripID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Trip selected")
}

// UpdateTrip godoc
// @Summary Replace a stored trip wholesale
// @Tags Trip
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param request body db_models.Trip true "Full trip"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trips/{tripId} [put]
func (t *TripController) UpdateTrip(c *gin.Context) {
	tripID := c.Param("tripId")
	var trip db_models.Trip
	if err := c.ShouldBindJSON(&trip); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid trip payload")
		return
	}
	if trip.ID == "" {
		trip.ID = tripID
	}
	if trip.ID != tripID {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID mismatch")
		return
	}

	if err := t.tripService.UpdateTrip(trip); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, trip, "Trip updated successfully")
}

// GetDayView godoc
// @Summary Get the itinerary of a single day
// @Description Items of the requested day in display order, each with its maps link
// @Tags Trip
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param day query int false "Day number" default(1)
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trips/{tripId}/days [get]
func (t *TripController) GetDayView(c *gin.Context) {
	tripID := c.Param("tripId")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	day, err := strconv.Atoi(c.DefaultQuery("day", "1"))
	if err != nil || day < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid day number")
		return
	}

	view, err := t.tripService.DayView(tripID, day)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, view, "Day itinerary fetched successfully")
}
