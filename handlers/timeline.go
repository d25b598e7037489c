package handlers

import (
	"net/http"

	"slotgrid/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetTimelineHandler resolves the provider's timeline for one date.
func (h *ScheduleHandler) GetTimelineHandler(c *gin.Context) {
	logger := utils.GetLogger()

	providerID, ok := providerIDFromContext(c)
	if !ok {
		return
	}

	var body struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid date in request body"})
		return
	}

	blocks, err := h.Service.GetTimeline(c.Request.Context(), providerID, body.Date)
	if err != nil {
		logger.Error("Failed to resolve timeline", zap.String("providerID", providerID), zap.String("date", body.Date), zap.Error(err))
		c.JSON(statusForError(err), gin.H{"error": "Failed to resolve timeline", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":   body.Date,
		"blocks": blocks,
	})
}
