package handlers

import (
	"net/http"

	"slotgrid/services/schedule"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler exposes the schedule service over HTTP. Every endpoint
// expects the provider ID in the request context, set by the auth
// middleware.
type ScheduleHandler struct {
	Service schedule.ScheduleService
}

// NewScheduleHandler constructs a ScheduleHandler.
func NewScheduleHandler(svc schedule.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{Service: svc}
}

// providerIDFromContext pulls the authenticated provider ID out of the Gin
// context.
func providerIDFromContext(c *gin.Context) (string, bool) {
	v, exists := c.Get("providerID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Provider not authenticated"})
		return "", false
	}
	providerID, ok := v.(string)
	if !ok || providerID == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid provider ID in context"})
		return "", false
	}
	return providerID, true
}

// statusForError maps schedule error codes onto HTTP statuses. Validation
// codes are the caller's fault; persistence failures are ours.
func statusForError(err error) int {
	switch schedule.ErrorCode(err) {
	case schedule.CodeInvalidInterval, schedule.CodeInvalidDate, schedule.CodeMissingScope, schedule.CodeUnknownAction:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
