package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError maps service errors to HTTP responses. Internal detail
// is logged here and masked in the reply.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "Invalid request")
	case errors.Is(err, ErrPlanNotFound):
		RespondError(c, http.StatusNotFound, "Plan not found")
	case errors.Is(err, ErrNoRouteFound):
		RespondError(c, http.StatusNotFound, "No route found")
	case errors.Is(err, ErrQueueFull):
		RespondError(c, http.StatusServiceUnavailable, "Server is busy, try again later")
	case errors.Is(err, ErrGenerationExhausted):
		log.Printf("generation exhausted: %v", err)
		RespondError(c, http.StatusBadGateway, "The model could not produce a valid itinerary")
	case errors.Is(err, ErrDirectionsUpstream):
		log.Printf("directions upstream error: %v", err)
		RespondError(c, http.StatusBadGateway, "Kakao API error")
	case errors.Is(err, ErrGeocodeUpstream):
		log.Printf("geocode upstream error: %v", err)
		RespondError(c, http.StatusBadGateway, "Geocoding provider error")
	case errors.Is(err, ErrDirectionsNotConfigured):
		RespondError(c, http.StatusInternalServerError, "Kakao API key is not configured")
	case errors.Is(err, ErrGeneratorNotInitialized):
		RespondError(c, http.StatusInternalServerError, "AI model is not initialized")
	case errors.Is(err, ErrStoreNotInitialized):
		RespondError(c, http.StatusInternalServerError, "Database is not initialized")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
