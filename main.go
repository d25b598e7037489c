// File: slotgrid/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"slotgrid/config"
	"slotgrid/cron"
	"slotgrid/database"
	appointmentRepo "slotgrid/database/repository/appointment"
	availabilityRepo "slotgrid/database/repository/availability"
	exceptionRepo "slotgrid/database/repository/exception"
	"slotgrid/handlers"
	"slotgrid/middleware"
	"slotgrid/routes"
	"slotgrid/services/schedule"
	"slotgrid/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	availRepo := availabilityRepo.NewMongoAvailabilityRepo()
	excRepo := exceptionRepo.NewMongoExceptionRepo()
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()

	// Background invalidation worker for cached timelines.
	cron.InitInvalidationWorker()
	invalidator := cron.NewAsynqInvalidator()

	scheduleService := &schedule.DefaultScheduleService{
		Availability: availRepo,
		Exceptions:   excRepo,
		Appointments: apptRepo,
		Cache:        utils.GetCacheClient(),
		Invalidator:  invalidator,
	}
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)

	routes.RegisterRoutes(router, scheduleHandler)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
