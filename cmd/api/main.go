package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/wawasandigital/contact-api/internal/config"
	"github.com/wawasandigital/contact-api/internal/database"
	"github.com/wawasandigital/contact-api/internal/handler"
	"github.com/wawasandigital/contact-api/internal/mailer"
	"github.com/wawasandigital/contact-api/internal/middleware"
	"github.com/wawasandigital/contact-api/internal/models"
	"github.com/wawasandigital/contact-api/internal/repository"
	"github.com/wawasandigital/contact-api/internal/router"
	"github.com/wawasandigital/contact-api/internal/service"
	"github.com/wawasandigital/contact-api/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	var contactRepo repository.ContactRepository
	if cfg.DatabaseURL != "" {
		db, err := database.ConnectPostgres(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		if err := db.AutoMigrate(&models.ContactMessage{}); err != nil {
			log.Fatalf("failed to migrate database: %v", err)
		}
		contactRepo = repository.NewContactRepository(db)
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = database.ConnectRedis(cfg.RedisURL)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
	}

	var natsConn *nats.Conn
	if cfg.NATSServer != "" {
		natsConn, err = nats.Connect(cfg.NATSServer)
		if err != nil {
			log.Fatalf("failed to connect to nats: %v", err)
		}
		defer natsConn.Close()
	}

	mail, err := mailer.New(mailer.Config{
		Provider:      cfg.MailProvider,
		SMTPHost:      cfg.SMTPHost,
		SMTPPort:      cfg.SMTPPort,
		SMTPUsername:  cfg.SMTPUsername,
		SMTPPassword:  cfg.SMTPPassword,
		MailgunDomain: cfg.MailgunDomain,
		MailgunAPIKey: cfg.MailgunAPIKey,
	}, logger)
	if err != nil {
		log.Fatalf("failed to create mailer: %v", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	contactService := service.NewContactService(mail, validate, service.Options{
		Repo:          contactRepo,
		Cache:         redisClient,
		Events:        natsConn,
		EventSubject:  cfg.NATSSubject,
		OperatorEmail: cfg.OperatorEmail,
		FromName:      cfg.FromName,
		FromAddress:   cfg.FromAddress,
		DashboardURL:  cfg.DashboardURL,
		ExcerptLimit:  cfg.ExcerptLimit,
		DedupeTTL:     cfg.DedupeTTL,
	}, logger)

	contactHandler := handler.NewContactHandler(contactService, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
		ErrorHandler: utils.ErrorHandler,
	})

	middleware.Register(app, middleware.Config{
		Logger:       &logger,
		AllowOrigins: cfg.CORSAllowOrigins,
	})
	router.Register(app, cfg, router.Dependencies{
		ContactHandler: contactHandler,
		RateLimiter:    middleware.RateLimit("contact", cfg.RateLimitMax, cfg.RateLimitWindow),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
