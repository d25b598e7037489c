package handlers

import (
	"net/http"

	"slotgrid/models"
	"slotgrid/services/schedule"
	"slotgrid/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CreateAvailabilityHandler writes one availability interval across the
// requested weekdays and dates. Conflicting units come back deferred with
// replace/merge candidates; nothing is written for those.
func (h *ScheduleHandler) CreateAvailabilityHandler(c *gin.Context) {
	logger := utils.GetLogger()

	providerID, ok := providerIDFromContext(c)
	if !ok {
		return
	}

	var req models.CreateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid availability request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	result, err := h.Service.CreateAvailability(c.Request.Context(), providerID, req)
	if err != nil {
		logger.Error("Failed to create availability", zap.String("providerID", providerID), zap.Error(err))
		status := statusForError(err)
		if result != nil {
			// Some units may have committed before the failure.
			c.JSON(status, gin.H{"error": err.Error(), "units": result.Units})
			return
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// ResolveSlotConflictHandler executes the caller's replace/merge/cancel
// decision for one deferred availability unit.
func (h *ScheduleHandler) ResolveSlotConflictHandler(c *gin.Context) {
	logger := utils.GetLogger()

	providerID, ok := providerIDFromContext(c)
	if !ok {
		return
	}

	var req schedule.ResolveSlotConflictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid slot resolution request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	outcome, err := h.Service.ResolveSlotConflict(c.Request.Context(), providerID, req)
	if err != nil {
		logger.Error("Failed to resolve slot conflict", zap.String("providerID", providerID), zap.Error(err))
		status := statusForError(err)
		if outcome != nil {
			// Partial state: report what was deleted before the failure.
			c.JSON(status, gin.H{"error": err.Error(), "outcome": outcome})
			return
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, outcome)
}

// DeleteAvailabilityHandler removes one availability slot outright.
func (h *ScheduleHandler) DeleteAvailabilityHandler(c *gin.Context) {
	providerID, ok := providerIDFromContext(c)
	if !ok {
		return
	}

	slotID := c.Param("slotID")
	if slotID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing slot ID in path"})
		return
	}

	if err := h.Service.DeleteAvailability(c.Request.Context(), providerID, slotID); err != nil {
		c.JSON(statusForError(err), gin.H{"error": "Failed to delete availability slot", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Availability slot deleted"})
}
