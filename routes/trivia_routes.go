package routes

import (
	"github.com/anjiri1684/trivia_api/handlers"
	"github.com/gofiber/fiber/v2"
)

func CategoryRoutes(app *fiber.App, h *handlers.Handler) {
	categories := app.Group("/categories")
	categories.Get("", h.GetCategories)
	categories.Get("/:id<int>/questions", h.GetCategoryQuestions)
}

func QuestionRoutes(app *fiber.App, h *handlers.Handler) {
	questions := app.Group("/questions")
	questions.Get("", h.GetQuestions)
	questions.Post("", h.PostQuestions)
	questions.Get("/:id<int>", h.GetQuestion)
	questions.Patch("/:id<int>", h.UpdateQuestion)
	questions.Delete("/:id<int>", h.DeleteQuestion)
}

func QuizRoutes(app *fiber.App, h *handlers.Handler) {
	app.Post("/quizzes", h.PostQuizzes)
}
