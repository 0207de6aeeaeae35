// File: solmar/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"solmar/config"
	"solmar/cron"
	"solmar/database"
	"solmar/database/repository/reservation"
	"solmar/handlers"
	"solmar/middleware"
	"solmar/routes"
	"solmar/services/booking"
	"solmar/services/catalog"
	"solmar/services/notification"
	"solmar/services/payment"
	"solmar/services/tasks"
	"solmar/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()
	utils.InitChargeGuard()
	utils.FirebaseInit()

	catalogService, err := catalog.LoadCatalog(config.AppConfig.CatalogPath)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to load service catalog: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	resvRepo := reservationRepo.NewMongoReservationRepo()

	// services.
	sessionTTL := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
	sessionService := &booking.DefaultBookingSessionService{
		Catalog:    catalogService,
		Cache:      utils.GetSessionCacheClient(),
		SessionTTL: sessionTTL,
	}

	notificationService := &notification.DefaultNotificationService{}

	reminderClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	})
	defer reminderClient.Close()
	reminderScheduler := &tasks.Scheduler{Client: reminderClient}

	gateways := map[string]payment.PaymentGateway{
		payment.GatewayStripe: payment.NewStripeGateway(config.AppConfig.StripeKey, logger),
		payment.GatewaySquare: payment.NewSquareGateway(
			config.AppConfig.SquareBaseURL,
			config.AppConfig.SquareAccessToken,
			config.AppConfig.SquareLocationID,
			logger,
		),
	}

	chargeGuard := &payment.ChargeGuard{
		Cache: utils.GetChargeGuardClient(),
		TTL:   2 * time.Minute,
	}

	orchestrator := &booking.DefaultBookingOrchestrator{
		Sessions:     sessionService,
		Catalog:      catalogService,
		Gateways:     gateways,
		Guard:        chargeGuard,
		Repo:         resvRepo,
		Notification: notificationService,
		Reminders:    reminderScheduler,
		Logger:       logger,
	}

	bookingHandler := handlers.NewBookingHandler(sessionService, orchestrator, logger)
	catalogHandler := handlers.NewCatalogHandler(catalogService, logger)
	reservationHandler := handlers.NewReservationHandler(resvRepo, logger)

	routes.RegisterRoutes(router, catalogHandler, bookingHandler, reservationHandler)

	// Background workers.
	cron.InitReminderWorker(notificationService)
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	go cron.StartAuditSweep(sweepCtx, resvRepo, chargeGuard)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetSessionCacheClient(), utils.GetChargeGuardClient()},
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
	stopSweep()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
