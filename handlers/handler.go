package handlers

import (
	"github.com/anjiri1684/trivia_api/repository"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type Handler struct {
	repo repository.QuestionRepository
}

func New(repo repository.QuestionRepository) *Handler {
	return &Handler{repo: repo}
}
