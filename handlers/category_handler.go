package handlers

import (
	"errors"

	"github.com/anjiri1684/trivia_api/models"
	"github.com/anjiri1684/trivia_api/repository"
	"github.com/anjiri1684/trivia_api/services"
	"github.com/gofiber/fiber/v2"
)

func (h *Handler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.repo.ListCategories(c.UserContext())
	if err != nil {
		return abort(fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"categories": models.CategoryMap(categories),
	})
}

// GetCategoryQuestions is 404 when the category holds no questions at all,
// but an out-of-range page of a non-empty category is an empty success.
func (h *Handler) GetCategoryQuestions(c *fiber.Ctx) error {
	categoryID, err := c.ParamsInt("id")
	if err != nil {
		return abort(fiber.StatusNotFound, err)
	}
	ctx := c.UserContext()

	selection, err := h.repo.ListQuestionsByCategory(ctx, categoryID)
	if err != nil {
		return abort(fiber.StatusInternalServerError, err)
	}
	if len(selection) == 0 {
		return abort(fiber.StatusNotFound, nil)
	}

	var current any
	category, err := h.repo.GetCategory(ctx, categoryID)
	switch {
	case err == nil:
		current = category.Type
	case !errors.Is(err, repository.ErrNotFound):
		return abort(fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{
		"success":          true,
		"questions":        services.Paginate(pageParam(c), selection),
		"total_questions":  len(selection),
		"current_category": current,
	})
}
