// Package server assembles the Fiber application: middleware stack, error
// handling and routes.
package server

import (
	"doc-quiz/internal/config"
	"doc-quiz/internal/domain"
	"doc-quiz/internal/handler"
	"doc-quiz/internal/middleware"
	"doc-quiz/internal/service"
	"doc-quiz/internal/util"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// Dependencies are the collaborators the routes need. Cache may be nil.
type Dependencies struct {
	QuizService service.QuizService
	Cache       domain.Cache
}

// NewApp builds the HTTP application.
func NewApp(cfg config.ServerConfig, deps Dependencies) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.ReadTimeout,
		BodyLimit:    cfg.BodyLimitBytes(),
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestid.New(requestid.Config{
		Header:    fiber.HeaderXRequestID,
		Generator: util.NewULID,
	}))
	app.Use(middleware.RequestLogger())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowMethods:  "GET,POST,OPTIONS",
		AllowHeaders:  "Origin,Content-Type,Accept",
		ExposeHeaders: fiber.HeaderXRequestID + "," + handler.HeaderQuizID,
		MaxAge:        300,
	}))

	quizHandler := handler.NewQuizHandler(deps.QuizService)
	healthHandler := handler.NewHealthHandler(deps.Cache)
	validator := middleware.NewValidationMiddleware(int64(cfg.BodyLimitBytes()))

	api := app.Group("/api")
	api.Get("/health", healthHandler.Health)
	api.Post("/upload", validator.ValidateUpload(), quizHandler.UploadDocument)

	return app
}
