package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rntpans0531/healthcheckapp/internal/api"
	"github.com/rntpans0531/healthcheckapp/internal/db"
	"github.com/rntpans0531/healthcheckapp/internal/security"
	"github.com/rntpans0531/healthcheckapp/internal/services"
)

func main() {
	location := mustLoadLocation(getEnv("TZ", "UTC"))
	time.Local = location

	secretKey := os.Getenv("SECRET_KEY")
	if secretKey == "" {
		secretKey = mustGenerateSecretKey()
		log.Printf("SECRET_KEY not set, using an ephemeral key; sessions will not survive a restart")
	}
	dbPath := getEnv("DB_PATH", filepath.Join("data", "healthcheck.db"))
	port := getEnv("PORT", "8080")

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	notifier := services.NewTelegramNotifierFromEnv()
	cookieSecure := getEnv("COOKIE_SECURE", "false") == "true"
	handler := api.NewHandler(database, secretKey, location, notifier, cookieSecure)

	app := fiber.New(fiber.Config{
		AppName:               "HealthCheck",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("HealthCheck listening on http://0.0.0.0:%s (db: %s, tz: %s)", port, dbPath, location.String())
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func mustGenerateSecretKey() string {
	const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	key, err := security.RandomString(48, alphabet)
	if err != nil {
		log.Fatalf("generate secret key: %v", err)
	}
	return key
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
