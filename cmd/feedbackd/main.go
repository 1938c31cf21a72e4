package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhachhotu/feedback/internal/api"
	"github.com/jhachhotu/feedback/internal/cli"
	"github.com/jhachhotu/feedback/internal/db"
)

func main() {
	location := mustLoadLocation(getEnv("TZ", "UTC"))
	time.Local = location

	dbPath := getEnv("DB_PATH", filepath.Join("data", "feedback.db"))
	port := getEnv("PORT", "8000")
	corsOrigins := getEnv("CORS_ORIGINS", "http://localhost:5173")

	createUser := flag.Bool("create-user", false, "create a user and exit")
	checkTeam := flag.Bool("check-team", false, "print a manager's team and exit")
	seedDemo := flag.Bool("seed-demo", false, "seed demo users and exit")
	username := flag.String("username", "", "username for -create-user / -check-team")
	email := flag.String("email", "", "email for -create-user")
	role := flag.String("role", "employee", "role for -create-user (manager or employee)")
	manager := flag.String("manager", "", "manager username for -create-user")
	flag.Parse()

	switch {
	case *createUser:
		if err := cli.RunCreateUserCommand(dbPath, *username, *email, *role, *manager); err != nil {
			log.Fatalf("create user failed: %v", err)
		}
		return
	case *checkTeam:
		if err := cli.RunCheckTeamCommand(dbPath, *username); err != nil {
			log.Fatalf("check team failed: %v", err)
		}
		return
	case *seedDemo:
		if err := cli.RunSeedDemoCommand(dbPath); err != nil {
			log.Fatalf("seed demo failed: %v", err)
		}
		return
	}

	secretKey, err := resolveSecretKey()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	handler := api.NewHandler(database, secretKey)

	app := fiber.New(fiber.Config{
		AppName:               "feedbackd",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: corsOrigins,
		AllowHeaders: "Authorization, Content-Type",
		AllowMethods: "GET, POST, PATCH, OPTIONS",
	}))

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

	log.Printf("feedbackd listening on http://0.0.0.0:%s (db: %s, tz: %s)", port, dbPath, location.String())
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func resolveSecretKey() (string, error) {
	secret := strings.TrimSpace(os.Getenv("SECRET_KEY"))
	if secret == "" {
		return "", errors.New("SECRET_KEY must be set")
	}
	if secret == "change_me_in_production" {
		return "", errors.New("SECRET_KEY still uses the insecure placeholder")
	}
	if len(secret) < 32 {
		return "", errors.New("SECRET_KEY must be at least 32 characters")
	}
	return secret, nil
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
