package utils

import (
	"errors"
	"github.com/gin-gonic/gin"
	"log"
	"net/http"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	traceID, _ := c.Get("trace_id")
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID.(string),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	traceID, _ := c.Get("trace_id")
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID.(string),
	})
}

// RespondErrorData is RespondError with a payload attached, used when a
// failed step must still hand the caller its preserved session state.
func RespondErrorData(c *gin.Context, code int, message string, data interface{}) {
	traceID, _ := c.Get("trace_id")
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID.(string),
		Data:    data,
	})
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, ErrCurationSearchRequired):
		RespondError(c, http.StatusBadRequest, "Search query is required")
	case errors.Is(err, ErrNoDestinationSelected):
		RespondError(c, http.StatusBadRequest, "Select at least one destination")
	case errors.Is(err, ErrTripNotFound):
		RespondError(c, http.StatusNotFound, "Trip not found")
	case errors.Is(err, ErrSessionNotFound):
		RespondError(c, http.StatusNotFound, "Session not found or already closed")
	case errors.Is(err, ErrReplaceTargetNotFound):
		RespondError(c, http.StatusConflict, "The item to replace no longer exists")
	case errors.Is(err, ErrWizardStepNotAllowed):
		RespondError(c, http.StatusConflict, "Action not allowed in the current wizard step")
	case errors.Is(err, ErrRecommendationFailed):
		log.Printf("Recommendation service error: %v", err)
		RespondError(c, http.StatusBadGateway, "추천 정보를 가져오는 중 오류가 발생했습니다.")
	case errors.Is(err, ErrEmptyRecommendation):
		RespondError(c, http.StatusBadGateway, "추천 결과가 없습니다. 조건을 바꿔 다시 시도해주세요.")
	case errors.Is(err, ErrPersistenceUnavailable):
		log.Printf("Persistence error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
