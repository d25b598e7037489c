package routes

import (
	"net/http"
	"time"

	"slotgrid/handlers"
	"slotgrid/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterScheduleRoutes registers the timeline read endpoint.
func RegisterScheduleRoutes(r *gin.Engine, h *handlers.ScheduleHandler) {
	api := r.Group("/api/schedule")
	{
		api.Use(middleware.JWTAuthProviderMiddleware())
		api.POST("/timeline", h.GetTimelineHandler)
	}
}

// RegisterAvailabilityRoutes registers availability write endpoints.
func RegisterAvailabilityRoutes(r *gin.Engine, h *handlers.ScheduleHandler) {
	api := r.Group("/api/availability")
	{
		api.Use(middleware.JWTAuthProviderMiddleware())
		api.POST("", h.CreateAvailabilityHandler)
		api.POST("/resolve", h.ResolveSlotConflictHandler)
		api.DELETE("/:slotID", h.DeleteAvailabilityHandler)
	}
}

// RegisterExceptionRoutes registers time-off write endpoints.
func RegisterExceptionRoutes(r *gin.Engine, h *handlers.ScheduleHandler) {
	api := r.Group("/api/exceptions")
	{
		api.Use(middleware.JWTAuthProviderMiddleware())
		api.POST("", h.CreateExceptionHandler)
		api.POST("/resolve", h.ResolveExceptionConflictHandler)
		api.DELETE("/:exceptionID", h.DeleteExceptionHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/api/health", handlers.HealthHandler)
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Slotgrid"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, h *handlers.ScheduleHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterScheduleRoutes(r, h)
	RegisterAvailabilityRoutes(r, h)
	RegisterExceptionRoutes(r, h)
	RegisterHealthRoute(r)
}
