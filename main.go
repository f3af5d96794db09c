package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medicore/config"
	"medicore/cron"
	"medicore/database"
	appointmentRepo "medicore/database/repository/appointment"
	doctorRepo "medicore/database/repository/doctor"
	hospitalRepo "medicore/database/repository/hospital"
	notificationRepo "medicore/database/repository/notification"
	patientRepo "medicore/database/repository/patient"
	"medicore/handlers"
	"medicore/middleware"
	"medicore/routes"
	"medicore/services/booking"
	"medicore/services/notification"
	"medicore/utils"

	"github.com/gin-contrib/cors"
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
	router.Use(cors.Default())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	appointments := appointmentRepo.NewMongoAppointmentRepo()
	doctors := doctorRepo.NewMongoDoctorRepo()
	hospitals := hospitalRepo.NewMongoHospitalRepo()
	patients := patientRepo.NewMongoPatientRepo()
	notificationStore := notificationRepo.NewMongoNotificationStore()

	if err := appointments.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure appointment indexes: %v", err)
	}

	// services.
	eventPublisher := notification.NewRedisEventPublisher(utils.GetEventClient())
	notificationService := notification.NewDefaultNotificationService(notificationStore, eventPublisher)

	bookingService := &booking.DefaultBookingService{
		Doctors:      doctors,
		Hospitals:    hospitals,
		Patients:     patients,
		Appointments: appointments,
		Notifier:     notificationService,
		Reminders:    cron.NewReminderClient(),
		SlotMinutes:  config.AppConfig.SlotDurationMinutes,
		HourlyLimit:  config.AppConfig.HourlyLimit,
	}

	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	routes.SetupRoutes(router, bookingHandler)

	// Background workers.
	reaperCtx, stopReaper := context.WithCancel(context.Background())
	reaper := &cron.ExpiryReaper{
		Appointments: appointments,
		Notifier:     notificationService,
		Interval:     time.Duration(config.AppConfig.ReaperIntervalSeconds) * time.Second,
		Timeout:      time.Duration(config.AppConfig.PendingTimeoutMinutes) * time.Minute,
	}
	go reaper.Start(reaperCtx)

	cron.InitReminderWorker(notificationService)
	utils.StartHealthMonitor(utils.GetEventClient(), database.MongoClient)

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
	stopReaper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
