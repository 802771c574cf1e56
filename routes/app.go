package routes

import (
	"time"

	config "github.com/anjiri1684/trivia_api/configs"
	"github.com/anjiri1684/trivia_api/handlers"
	"github.com/anjiri1684/trivia_api/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewApp builds the Fiber app with middleware and every route registered.
func NewApp(h *handlers.Handler, settings config.Settings) *fiber.App {
	app := fiber.New(fiber.Config{
		Prefork:       false,
		AppName:       "Trivia API",
		CaseSensitive: true,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  15 * time.Second,
		IdleTimeout:   60 * time.Second,
		ErrorHandler:  handlers.ErrorHandler,
	})

	app.Use(middleware.AccessControlHeaders())
	app.Use(middleware.CORS(settings.AllowOrigins))
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   settings.TimeZone,
		Format:     "[${time}] ${locals:" + middleware.RequestIDKey + "} ${status} - ${latency} ${method} ${path}\n",
	}))

	PublicRoutes(app)
	CategoryRoutes(app, h)
	QuestionRoutes(app, h)
	QuizRoutes(app, h)

	return app
}
