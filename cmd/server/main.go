// Package main runs the eventdeck HTTP server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventdeck/config"
	"eventdeck/internal/adapters/auth"
	"eventdeck/internal/adapters/email"
	delivery "eventdeck/internal/delivery/http"
	"eventdeck/internal/delivery/http/controllers"
	"eventdeck/internal/delivery/http/middleware"
	"eventdeck/internal/repository/postgres"
	"eventdeck/internal/services"
)

const serviceTimeout = 10 * time.Second

// @title eventdeck API
// @version 1.0
// @description Event discovery and booking backend: events, similar-events matching, and bookings.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger := config.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("load config", "err", err)
		os.Exit(1)
	}

	ctx := context.Background()
	db, err := postgres.Open(ctx, cfg.DBUrl)
	if err != nil {
		logger.Error("open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := postgres.Migrate(ctx, db); err != nil {
		logger.Error("migrate", "err", err)
		os.Exit(1)
	}

	eventRepo := postgres.NewEventRepository(db)
	bookingRepo := postgres.NewBookingRepository(db)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKeyID,
			SecretAccessKey: cfg.SESSecretAccessKey,
		},
	}, logger)
	if err != nil {
		logger.Error("create mailer", "err", err)
		os.Exit(1)
	}
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())

	eventService := services.NewEventService(eventRepo, serviceTimeout)
	bookingService := services.NewBookingService(bookingRepo, eventRepo, emailService, logger, serviceTimeout)

	jwtCodec := auth.NewJWTCodec(cfg.JWTSecret, cfg.TokenExpiry)
	authService := services.NewAuthService(services.AdminCredentials{
		Email:        cfg.AdminEmail,
		Salt:         cfg.AdminPasswordSalt,
		PasswordHash: cfg.AdminPasswordHash,
	}, auth.NewBcryptHasher(10), jwtCodec)

	eventController := controllers.NewEventController(logger, eventService)
	bookingController := controllers.NewBookingController(logger, bookingService)
	authController := controllers.NewAuthController(logger, authService)

	mux := delivery.NewRouter(eventController, bookingController, authController, jwtCodec)
	handler := middleware.CORS(cfg.AllowedOrigins,
		middleware.LoggingMiddleware(logger, mux))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "err", err)
	}
	logger.Info("server stopped")
}
