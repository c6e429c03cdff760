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
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/noah-isme/jadwal-go-api/internal/config"
	"github.com/noah-isme/jadwal-go-api/internal/database"
	"github.com/noah-isme/jadwal-go-api/internal/handler"
	"github.com/noah-isme/jadwal-go-api/internal/middleware"
	"github.com/noah-isme/jadwal-go-api/internal/models"
	"github.com/noah-isme/jadwal-go-api/internal/repository"
	"github.com/noah-isme/jadwal-go-api/internal/router"
	"github.com/noah-isme/jadwal-go-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Schedule{}, &models.Category{}, &models.Couple{}, &models.Participant{}); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = database.ConnectRedis(cfg.RedisURL)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
	} else {
		logger.Warn().Msg("redis url not configured, duplicate submission guard disabled")
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	scheduleRepo := repository.NewScheduleRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	participantRepo := repository.NewParticipantRepository(db)

	scheduleService := service.NewScheduleService(scheduleRepo, validate, logger)
	categoryService := service.NewCategoryService(categoryRepo, scheduleRepo, validate, logger)
	registrationService := service.NewRegistrationService(categoryRepo, participantRepo, redisClient, validate, cfg.RegisterDedupTTL, logger)
	participantService := service.NewParticipantService(participantRepo, logger)
	summaryService := service.NewSummaryService(scheduleRepo, logger)

	authHandler := handler.NewAuthHandler(cfg.AdminPasscode, cfg.JWTSecret, cfg.AdminTokenTTL, logger)
	scheduleHandler := handler.NewScheduleHandler(scheduleService, logger)
	categoryHandler := handler.NewCategoryHandler(categoryService, logger)
	registrationHandler := handler.NewRegistrationHandler(registrationService, logger)
	participantHandler := handler.NewParticipantHandler(participantService, logger)
	summaryHandler := handler.NewSummaryHandler(summaryService, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		AuthHandler:         authHandler,
		ScheduleHandler:     scheduleHandler,
		CategoryHandler:     categoryHandler,
		RegistrationHandler: registrationHandler,
		ParticipantHandler:  participantHandler,
		SummaryHandler:      summaryHandler,
		AdminMiddleware:     middleware.AdminProtected(cfg.JWTSecret),
		RegisterLimiter:     middleware.RateLimit("register", cfg.RegisterRateMax, cfg.RegisterRateWindow),
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
