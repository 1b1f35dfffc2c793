package controllers

import (
	"errors"
	"github.com/gin-gonic/gin"
	"net/http"

	"wanderlust/internal/models/request_models"
	"wanderlust/internal/services"
	"wanderlust/pkg/utils"
)

type WizardController struct {
	wizardService services.WizardServiceInterface
}

func NewWizardController(wizardService services.WizardServiceInterface) *WizardController {
	return &WizardController{wizardService: wizardService}
}

// StartWizard godoc
// @Summary Start a trip-planning wizard session
// @Tags Wizard
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /wizard/start [post]
func (w *WizardController) StartWizard(c *gin.Context) {
	state := w.wizardService.StartSession()
	utils.RespondSuccess(c, state, "Wizard session started")
}

func (w *WizardController) GetState(c *gin.Context) {
	sessionID := c.Param("sessionId")
	state, err := w.wizardService.GetState(sessionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "Wizard state fetched")
}

// SubmitPreferences godoc
// @Summary Submit step-1 preferences and fetch destination candidates
// @Description Advances the session to step 2 on success; on failure the session stays at step 1 with the preferences preserved
// @Tags Wizard
// @Accept json
// @Produce json
// @Param request body request_models.SubmitPreferencesRequest true "Session ID and preferences"
// @Success 200 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /wizard/preferences [post]
func (w *WizardController) SubmitPreferences(c *gin.Context) {
	var req request_models.SubmitPreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "session_id is required")
		return
	}

	state, err := w.wizardService.SubmitPreferences(c.Request.Context(), req.SessionID, req.Preferences)
	switch {
	case errors.Is(err, utils.ErrRecommendationFailed):
		// The session keeps the submitted preferences; hand them back with
		// the error so the client can retry.
		utils.RespondErrorData(c, http.StatusBadGateway, "여행지를 추천받는 중 문제가 발생했습니다.", state)
	case errors.Is(err, utils.ErrEmptyRecommendation):
		utils.RespondSuccess(c, state, "추천 결과가 없습니다. 조건을 바꿔 다시 시도해주세요.")
	case err != nil:
		utils.HandleServiceError(c, err)
	default:
		utils.RespondSuccess(c, state, "Destination candidates fetched")
	}
}

func (w *WizardController) ToggleDestination(c *gin.Context) {
	var req request_models.ToggleDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "session_id is required")
		return
	}

	state, err := w.wizardService.ToggleDestination(req.SessionID, req.DestinationID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "Selection updated")
}

func (w *WizardController) Back(c *gin.Context) {
	var req request_models.WizardSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "session_id is required")
		return
	}

	state, err := w.wizardService.Back(req.SessionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "Returned to preferences")
}

// Generate godoc
// @Summary Generate the itinerary for the selected destinations
// @Description Builds a new trip from the selected destinations, stores it and closes the wizard session
// @Tags Wizard
// @Accept json
// @Produce json
// @Param request body request_models.WizardSessionRequest true "Session ID"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /wizard/generate [post]
func (w *WizardController) Generate(c *gin.Context) {
	var req request_models.WizardSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "session_id is required")
		return
	}

	trip, err := w.wizardService.Generate(c.Request.Context(), req.SessionID)
	switch {
	case errors.Is(err, utils.ErrEmptyRecommendation):
		utils.RespondSuccess(c, nil, "생성된 일정이 없습니다. 다시 시도해주세요.")
	case err != nil:
		utils.HandleServiceError(c, err)
	case trip == nil:
		// A newer request took over this session; its response carries the trip.
		utils.RespondSuccess(c, nil, "Superseded by a newer request")
	default:
		utils.RespondSuccess(c, trip, "Trip generated successfully")
	}
}

func (w *WizardController) Cancel(c *gin.Context) {
	sessionID := c.Param("sessionId")
	w.wizardService.Cancel(sessionID)
	utils.RespondSuccess(c, nil, "Wizard cancelled")
}
