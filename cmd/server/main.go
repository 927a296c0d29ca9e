package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/tunecraft/auth-service/internal/application/services"
	"github.com/tunecraft/auth-service/internal/config"
	"github.com/tunecraft/auth-service/internal/delivery/rest"
	"github.com/tunecraft/auth-service/internal/infrastructure"
	"github.com/tunecraft/auth-service/internal/infrastructure/db/postgres"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db, err := postgres.Open(cfg.PostgreSQL)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}

	userRepo := postgres.NewUserRepository(db)
	jwtService := infrastructure.NewJWTService(cfg.JWTSecret, cfg.SessionTokenTTL)
	notifier := infrastructure.NewNotifier(cfg.MailProvider, cfg.MailAPIKey, cfg.MailSender)
	resetTokens := infrastructure.NewResetTokenGenerator()
	redisService := infrastructure.NewRedisService(cfg.RedisURL)
	defer redisService.Close()

	authService := services.NewAuthService(
		userRepo,
		jwtService,
		notifier,
		resetTokens,
		redisService,
		services.Options{
			SessionTokenTTL: cfg.SessionTokenTTL,
			ResetTokenTTL:   cfg.ResetTokenTTL,
			AppBaseURL:      cfg.AppBaseURL,
		},
	)

	resetLimiter := infrastructure.NewRateLimiter(cfg.ResetRequestWindow, cfg.ResetRequestLimit)
	handler := rest.NewHandler(authService, resetLimiter)
	router := rest.NewRouter(handler)

	log.Printf("Server running on :%s", cfg.Port)
	log.Fatal(router.Start(":" + cfg.Port))
}
