package handlers

import (
	"net/http"

	"slotgrid/models"
	"slotgrid/services/schedule"
	"slotgrid/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CreateExceptionHandler writes one time-off interval across the requested
// weekdays and date ranges, with the same per-unit commit/defer semantics
// as availability writes.
func (h *ScheduleHandler) CreateExceptionHandler(c *gin.Context) {
	logger := utils.GetLogger()

	providerID, ok := providerIDFromContext(c)
	if !ok {
		return
	}

	var req models.CreateExceptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid exception request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	result, err := h.Service.CreateException(c.Request.Context(), providerID, req)
	if err != nil {
		logger.Error("Failed to create exception", zap.String("providerID", providerID), zap.Error(err))
		status := statusForError(err)
		if result != nil {
			c.JSON(status, gin.H{"error": err.Error(), "units": result.Units})
			return
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// ResolveExceptionConflictHandler executes the caller's replace/merge/cancel
// decision for one deferred time-off unit.
func (h *ScheduleHandler) ResolveExceptionConflictHandler(c *gin.Context) {
	logger := utils.GetLogger()

	providerID, ok := providerIDFromContext(c)
	if !ok {
		return
	}

	var req schedule.ResolveExceptionConflictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid exception resolution request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	outcome, err := h.Service.ResolveExceptionConflict(c.Request.Context(), providerID, req)
	if err != nil {
		logger.Error("Failed to resolve exception conflict", zap.String("providerID", providerID), zap.Error(err))
		status := statusForError(err)
		if outcome != nil {
			c.JSON(status, gin.H{"error": err.Error(), "outcome": outcome})
			return
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, outcome)
}

// DeleteExceptionHandler removes one time-off record outright.
func (h *ScheduleHandler) DeleteExceptionHandler(c *gin.Context) {
	providerID, ok := providerIDFromContext(c)
	if !ok {
		return
	}

	exceptionID := c.Param("exceptionID")
	if exceptionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing exception ID in path"})
		return
	}

	if err := h.Service.DeleteException(c.Request.Context(), providerID, exceptionID); err != nil {
		c.JSON(statusForError(err), gin.H{"error": "Failed to delete exception", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Exception deleted"})
}
