package handlers

import (
	"errors"

	"github.com/anjiri1684/trivia_api/models"
	"github.com/anjiri1684/trivia_api/services"
	"github.com/gofiber/fiber/v2"
)

// PostQuizzes serves one quiz round. The client sends back every id it has
// already seen; nothing about the quiz is kept on the server.
func (h *Handler) PostQuizzes(c *fiber.Ctx) error {
	var req QuizRequest
	if err := c.BodyParser(&req); err != nil {
		return abort(fiber.StatusBadRequest, err)
	}
	if req.QuizCategory == nil || !req.QuizCategory.ID.Set {
		return abort(fiber.StatusNotFound, errors.New("quiz_category missing"))
	}
	ctx := c.UserContext()

	var (
		pool []models.Question
		err  error
	)
	if categoryID := req.QuizCategory.ID.Value; categoryID == services.AllCategories {
		pool, err = h.repo.ListQuestions(ctx)
	} else {
		pool, err = h.repo.ListQuestionsByCategory(ctx, categoryID)
	}
	if err != nil {
		return abort(fiber.StatusInternalServerError, err)
	}

	var question *models.Question
	if next, ok := services.SelectNextQuestion(pool, req.PreviousQuestions, nil); ok {
		question = &next
	}

	return c.JSON(fiber.Map{
		"success":            true,
		"question":           question,
		"previous_questions": req.PreviousQuestions,
	})
}
