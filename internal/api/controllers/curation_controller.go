package controllers

import (
	"errors"
	"github.com/gin-gonic/gin"
	"net/http"

	"wanderlust/internal/models/request_models"
	"wanderlust/internal/services"
	"wanderlust/pkg/utils"
)

type CurationController struct {
	curationService services.CurationServiceInterface
}

func NewCurationController(curationService services.CurationServiceInterface) *CurationController {
	return &CurationController{curationService: curationService}
}

// Open godoc
// @Summary Open a curation dialog on a trip day
// @Description Without target_item_id the dialog opens in add mode with an empty query; with it, replace mode is entered and the first search runs immediately
// @Tags Curation
// @Accept json
// @Produce json
// @Param request body request_models.OpenCurationRequest true "Trip ID, day and optional replace target"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /curation/open [post]
func (cc *CurationController) Open(c *gin.Context) {
	var req request_models.OpenCurationRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.TripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "trip_id is required")
		return
	}

	state, err := cc.curationService.Open(c.Request.Context(), req)
	if errors.Is(err, utils.ErrRecommendationFailed) {
		// The session stays open with its auto-derived query; return it so
		// the client can retry the search.
		utils.RespondErrorData(c, http.StatusBadGateway, "추천 정보를 가져오는 중 오류가 발생했습니다.", state)
		return
	}
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "Curation session opened")
}

func (cc *CurationController) GetState(c *gin.Context) {
	sessionID := c.Param("sessionId")
	state, err := cc.curationService.GetState(sessionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "Curation state fetched")
}

// Search godoc
// @Summary Search place recommendations
// @Description Runs the recommendation request for the query; a newer search supersedes a pending one
// @Tags Curation
// @Accept json
// @Produce json
// @Param request body request_models.CurationSearchRequest true "Session ID and query"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /curation/search [post]
func (cc *CurationController) Search(c *gin.Context) {
	var req request_models.CurationSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "session_id is required")
		return
	}

	state, err := cc.curationService.Search(c.Request.Context(), req.SessionID, req.Query)
	if errors.Is(err, utils.ErrRecommendationFailed) {
		utils.RespondErrorData(c, http.StatusBadGateway, "추천 정보를 가져오는 중 오류가 발생했습니다.", state)
		return
	}
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "Recommendations fetched")
}

func (cc *CurationController) ToggleSelection(c *gin.Context) {
	var req request_models.ToggleSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "session_id is required")
		return
	}

	state, err := cc.curationService.ToggleSelection(req.SessionID, req.Index)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "Selection updated")
}

func (cc *CurationController) SelectDay(c *gin.Context) {
	var req request_models.SelectDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "session_id is required")
		return
	}

	state, err := cc.curationService.SelectDay(req.SessionID, req.Day)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "Day selected")
}

func (cc *CurationController) NextDay(c *gin.Context) {
	var req request_models.CurationSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "session_id is required")
		return
	}

	state, err := cc.curationService.NextDay(req.SessionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "Day advanced")
}

// Confirm godoc
// @Summary Merge the selected candidates into the trip
// @Description Add mode appends every selected candidate to the current day; replace mode substitutes the single selected candidate at the target item's id
// @Tags Curation
// @Accept json
// @Produce json
// @Param request body request_models.CurationSessionRequest true "Session ID"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /curation/confirm [post]
func (cc *CurationController) Confirm(c *gin.Context) {
	var req request_models.CurationSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "session_id is required")
		return
	}

	trip, err := cc.curationService.Confirm(req.SessionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, trip, "Itinerary updated")
}

func (cc *CurationController) Close(c *gin.Context) {
	sessionID := c.Param("sessionId")
	cc.curationService.Close(sessionID)
	utils.RespondSuccess(c, nil, "Curation session closed")
}
