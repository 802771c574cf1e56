package handlers

import (
	"errors"

	"github.com/anjiri1684/trivia_api/models"
	"github.com/anjiri1684/trivia_api/repository"
	"github.com/anjiri1684/trivia_api/services"
	"github.com/gofiber/fiber/v2"
)

func pageParam(c *fiber.Ctx) int {
	return c.QueryInt("page", 1)
}

func (h *Handler) GetQuestions(c *fiber.Ctx) error {
	ctx := c.UserContext()

	selection, err := h.repo.ListQuestions(ctx)
	if err != nil {
		return abort(fiber.StatusInternalServerError, err)
	}
	current := services.Paginate(pageParam(c), selection)
	if len(current) == 0 {
		return abort(fiber.StatusNotFound, nil)
	}

	categories, err := h.repo.ListCategories(ctx)
	if err != nil {
		return abort(fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{
		"success":          true,
		"questions":        current,
		"total_questions":  len(selection),
		"categories":       models.CategoryMap(categories),
		"current_category": nil,
	})
}

func (h *Handler) GetQuestion(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return abort(fiber.StatusNotFound, err)
	}

	question, err := h.repo.GetQuestion(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return abort(fiber.StatusNotFound, err)
		}
		return abort(fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"question": question,
	})
}

// DeleteQuestion answers 422 for every failure, a missing id included; the
// classified cause only reaches the log.
func (h *Handler) DeleteQuestion(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return abort(fiber.StatusNotFound, err)
	}
	ctx := c.UserContext()

	if err := h.repo.DeleteQuestion(ctx, id); err != nil {
		return abort(fiber.StatusUnprocessableEntity, err)
	}

	remaining, total, err := h.questionsPage(c)
	if err != nil {
		return abort(fiber.StatusUnprocessableEntity, err)
	}

	return c.JSON(fiber.Map{
		"success":         true,
		"deleted":         id,
		"questions":       remaining,
		"total_questions": total,
	})
}

// PostQuestions dispatches on the body shape: a new question or a search.
func (h *Handler) PostQuestions(c *fiber.Ctx) error {
	var req QuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return abort(fiber.StatusBadRequest, err)
	}

	switch req.kind() {
	case createRequest:
		return h.createQuestion(c, req)
	case searchRequest:
		return h.searchQuestions(c, req.SearchTerm)
	default:
		return abort(fiber.StatusBadRequest, errors.New("body is neither a new question nor a search"))
	}
}

func (h *Handler) createQuestion(c *fiber.Ctx, req QuestionRequest) error {
	input := NewQuestion{
		Question:   req.Question,
		Answer:     req.Answer,
		Difficulty: req.Difficulty.Value,
		Category:   req.Category.Value,
	}
	if err := validate.Struct(input); err != nil {
		return abort(fiber.StatusUnprocessableEntity, err)
	}

	question := models.Question{
		Question:   input.Question,
		Answer:     input.Answer,
		Difficulty: input.Difficulty,
		Category:   input.Category,
	}
	if err := h.repo.CreateQuestion(c.UserContext(), &question); err != nil {
		return abort(fiber.StatusUnprocessableEntity, err)
	}

	current, total, err := h.questionsPage(c)
	if err != nil {
		return abort(fiber.StatusUnprocessableEntity, err)
	}

	return c.JSON(fiber.Map{
		"success":         true,
		"created":         question.ID,
		"questions":       current,
		"total_questions": total,
	})
}

func (h *Handler) searchQuestions(c *fiber.Ctx, term string) error {
	selection, err := h.repo.SearchQuestions(c.UserContext(), term)
	if err != nil {
		return abort(fiber.StatusUnprocessableEntity, err)
	}

	return c.JSON(fiber.Map{
		"success":         true,
		"questions":       services.Paginate(pageParam(c), selection),
		"total_questions": len(selection),
	})
}

func (h *Handler) UpdateQuestion(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return abort(fiber.StatusNotFound, err)
	}
	ctx := c.UserContext()

	var req UpdateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return abort(fiber.StatusBadRequest, err)
	}

	question, err := h.repo.GetQuestion(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return abort(fiber.StatusNotFound, err)
		}
		return abort(fiber.StatusInternalServerError, err)
	}

	if req.Question != nil {
		question.Question = *req.Question
	}
	if req.Answer != nil {
		question.Answer = *req.Answer
	}
	if req.Difficulty.Set {
		question.Difficulty = req.Difficulty.Value
	}
	if req.Category.Set {
		question.Category = req.Category.Value
	}

	input := NewQuestion{
		Question:   question.Question,
		Answer:     question.Answer,
		Difficulty: question.Difficulty,
		Category:   question.Category,
	}
	if err := validate.Struct(input); err != nil {
		return abort(fiber.StatusUnprocessableEntity, err)
	}

	if err := h.repo.UpdateQuestion(ctx, &question); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return abort(fiber.StatusNotFound, err)
		}
		return abort(fiber.StatusUnprocessableEntity, err)
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"updated":  question.ID,
		"question": question,
	})
}

// questionsPage re-reads the full listing after a write and returns the
// requested page along with the stored total.
func (h *Handler) questionsPage(c *fiber.Ctx) ([]models.Question, int64, error) {
	ctx := c.UserContext()

	selection, err := h.repo.ListQuestions(ctx)
	if err != nil {
		return nil, 0, err
	}
	total, err := h.repo.CountQuestions(ctx)
	if err != nil {
		return nil, 0, err
	}
	return services.Paginate(pageParam(c), selection), total, nil
}
