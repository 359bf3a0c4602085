// File: swimly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"swimly/config"
	"swimly/cron"
	"swimly/database"
	bookingRepoPkg "swimly/database/repository/booking"
	paymentRepoPkg "swimly/database/repository/payment"
	timeslotRepoPkg "swimly/database/repository/timeslot"
	"swimly/handlers"
	"swimly/middleware"
	"swimly/routes"
	"swimly/services/booking"
	"swimly/services/gateway"
	"swimly/services/notification"
	"swimly/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	startCtx, startCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer startCancel()

	mongoClient, err := database.Connect(startCtx, config.AppConfig.DatabaseURL)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}
	db := mongoClient.Database(config.AppConfig.DatabaseName)

	utils.InitCache()

	// repositories.
	slotRepo := timeslotRepoPkg.NewMongoTimeslotRepo(db)
	payRepo := paymentRepoPkg.NewMongoPaymentRepo(db)
	bookRepo := bookingRepoPkg.NewMongoBookingRepo(db)

	for _, ensure := range []func(context.Context) error{
		slotRepo.EnsureIndexes, payRepo.EnsureIndexes, bookRepo.EnsureIndexes,
	} {
		if err := ensure(startCtx); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure indexes: %v", err)
		}
	}

	// Async mail worker + enqueue client.
	mailer := notification.NewSMTPMailer(
		config.AppConfig.SMTPHost,
		config.AppConfig.SMTPPort,
		config.AppConfig.SMTPUser,
		config.AppConfig.SMTPPass,
		config.AppConfig.SMTPFrom,
	)
	cron.InitMailWorker(mailer)

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisMailQueueDB,
	})

	notifier, err := notification.NewDefaultNotificationService(asynqClient, config.AppConfig.OpsEmail, logger)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	// services.
	paystack := gateway.NewPaystackClient(config.AppConfig.PaystackBaseURL, config.AppConfig.PaystackSecretKey)
	bookingService := &booking.DefaultBookingService{
		Slots:       slotRepo,
		Payments:    payRepo,
		Bookings:    bookRepo,
		Gateway:     paystack,
		Notifier:    notifier,
		CallbackURL: config.AppConfig.PublicBaseURL + "/payment/success",
		Window:      time.Duration(config.AppConfig.BookingWindowDays) * 24 * time.Hour,
		Logger:      logger,
	}

	// handlers.
	cacheClient := utils.GetCacheClient()
	bookingHandler := handlers.NewBookingHandler(bookingService, cacheClient, logger)
	webhookSecret := config.AppConfig.PaystackWebhookSecret
	if webhookSecret == "" {
		webhookSecret = config.AppConfig.PaystackSecretKey
	}
	webhookHandler := handlers.NewWebhookHandler(bookingService, webhookSecret, logger)
	adminHandler := handlers.NewAdminHandler(slotRepo, cacheClient, logger)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	routes.RegisterRoutes(router, bookingHandler, webhookHandler, adminHandler)

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
	if err := asynqClient.Close(); err != nil {
		logger.Sugar().Warnf("main: failed to close task queue client: %v", err)
	}
	if err := database.Disconnect(ctx, mongoClient); err != nil {
		logger.Sugar().Warnf("main: failed to close MongoDB connection: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
