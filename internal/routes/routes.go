package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/parsa-a/HealthTrackBack/internal/config"
	"github.com/parsa-a/HealthTrackBack/internal/handlers"
	"github.com/parsa-a/HealthTrackBack/internal/kvstore"
	"github.com/parsa-a/HealthTrackBack/internal/middleware"
	"github.com/parsa-a/HealthTrackBack/internal/repository"
	"github.com/parsa-a/HealthTrackBack/internal/services"
)

func RegisterRoutes(
	app *fiber.App,
	cfg *config.Config,
	db *pgxpool.Pool,
	kv kvstore.Store,
	chatService *services.ChatService,
) error {
	profileRepo := repository.NewProfileRepository(db)
	recordRepo := repository.NewHealthRecordRepository(db)

	sessionService := services.NewSessionService(profileRepo, kv)
	recordService := services.NewRecordService(recordRepo, sessionService)
	dashboardService := services.NewDashboardService(profileRepo, recordRepo)

	sessionHandler := handlers.NewSessionHandler(sessionService)
	recordHandler := handlers.NewRecordHandler(recordService)
	calculatorHandler := handlers.NewCalculatorHandler()

	chatHandler := handlers.NewChatHandler(nil)
	if chatService != nil {
		chatHandler = handlers.NewChatHandler(chatService)
	}

	api := app.Group("/api")

	session := api.Group("/session", middleware.ClientRequired())
	session.Post("", sessionHandler.Create)
	session.Post("/load", sessionHandler.Load)
	session.Get("", sessionHandler.Current)
	session.Put("/profile", sessionHandler.UpdateProfile)
	session.Delete("", sessionHandler.SignOut)
	session.Get("/names", sessionHandler.RememberedNames)

	records := api.Group("/v1/records", middleware.ClientRequired())
	records.Post("", recordHandler.Save)
	records.Get("", recordHandler.List)
	records.Get("/summary", recordHandler.Summary)

	calculators := api.Group("/calc")
	calculators.Post("/bmi", calculatorHandler.BMI)
	calculators.Post("/body-fat", calculatorHandler.BodyFat)
	calculators.Post("/calories", calculatorHandler.Calories)
	calculators.Post("/ideal-weight", calculatorHandler.IdealWeight)
	calculators.Post("/blood-pressure", calculatorHandler.BloodPressure)
	calculators.Post("/water", calculatorHandler.Water)
	calculators.Post("/bone-mass", calculatorHandler.BoneMass)
	calculators.Post("/heart-rate", calculatorHandler.HeartRate)
	calculators.Post("/blood-volume", calculatorHandler.BloodVolume)
	calculators.Post("/macros", calculatorHandler.Macros)

	api.Post("/v1/chat", chatHandler.Complete)

	if cfg.AdminEnabled() {
		adminHandler, err := handlers.NewAdminHandler(
			dashboardService,
			profileRepo,
			recordRepo,
			cfg.AdminUsername,
			cfg.AdminPassword,
			cfg.JWTSecret,
		)
		if err != nil {
			return err
		}

		api.Post("/admin/login", adminHandler.Login)

		admin := api.Group("/admin", middleware.AdminRequired(cfg.JWTSecret))
		admin.Get("/stats", adminHandler.Stats)
		admin.Get("/profiles", adminHandler.ListProfiles)
		admin.Get("/records", adminHandler.ListRecords)
	}

	return nil
}
