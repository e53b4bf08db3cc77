// File: hrmanager/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hrmanager/config"
	"hrmanager/cron"
	"hrmanager/database"
	interviewRepoPkg "hrmanager/database/repository/interview"
	specialistRepoPkg "hrmanager/database/repository/specialist"
	"hrmanager/handlers"
	"hrmanager/middleware"
	"hrmanager/routes"
	"hrmanager/services/scheduling"
	specialistSvc "hrmanager/services/specialist"
	"hrmanager/services/tasks"
	"hrmanager/utils"

	"github.com/gin-gonic/gin"
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
	specRepo := specialistRepoPkg.NewMongoSpecialistRepo()
	ivRepo := interviewRepoPkg.NewMongoInterviewRepo()

	// services.
	specialistService := &specialistSvc.DefaultSpecialistService{
		Repo:  specRepo,
		Cache: specialistSvc.NewRedisSpecialistCache(utils.GetCacheClient()),
	}

	bookingService := &scheduling.DefaultBookingService{
		Specialists: specRepo,
		Interviews:  ivRepo,
	}

	if config.AppConfig.RemindersEnabled {
		bookingService.Reminders = tasks.NewAsynqReminderScheduler()
		cron.InitReminderWorker()
	}

	specialistHandler := handlers.NewSpecialistHandler(specialistService)
	interviewHandler := handlers.NewInterviewHandler(bookingService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Specialist endpoints.
		GetSpecialistsHandler:   specialistHandler.GetSpecialistsHandler,
		CreateSpecialistHandler: specialistHandler.CreateSpecialistHandler,
		UpdateSpecialistHandler: specialistHandler.UpdateSpecialistHandler,
		DeleteSpecialistHandler: specialistHandler.DeleteSpecialistHandler,

		// Interview endpoints.
		GetInterviewsHandler:   interviewHandler.GetInterviewsHandler,
		CreateInterviewHandler: interviewHandler.CreateInterviewHandler,

		// Skill catalog endpoint.
		GetSkillsHandler: handlers.GetSkillsHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background health checks for /health.
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

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
