package main

import (
	"context"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/parsa-a/HealthTrackBack/internal/config"
	"github.com/parsa-a/HealthTrackBack/internal/database"
	"github.com/parsa-a/HealthTrackBack/internal/kvstore"
	"github.com/parsa-a/HealthTrackBack/internal/routes"
	"github.com/parsa-a/HealthTrackBack/internal/services"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.DBUrl == "" {
		log.Fatal("DB_URL is required")
	}
	if err := database.ConnectDB(cfg.DBUrl); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB()

	kv, err := kvstore.NewRedisStore(context.Background(), cfg.RedisURL)
	if err != nil {
		log.Fatalf("Failed to connect to redis: %v", err)
	}
	defer kv.Close()

	// A missing API key disables the chat surface for the whole process;
	// the route then answers 503 instead of retrying per request.
	chatService, err := services.NewChatService(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		if !errors.Is(err, services.ErrChatNotConfigured) {
			log.Fatalf("Failed to init chat service: %v", err)
		}
		log.Println("GEMINI_API_KEY not set, chat disabled")
		chatService = nil
	}

	app := fiber.New()

	app.Use(cors.New())
	app.Use(logger.New())
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})
	if err := routes.RegisterRoutes(app, cfg, database.DB, kv, chatService); err != nil {
		log.Fatalf("Failed to register routes: %v", err)
	}

	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
