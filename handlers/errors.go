package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var messages = map[int]string{
	fiber.StatusBadRequest:          "bad request",
	fiber.StatusNotFound:            "resource not found",
	fiber.StatusMethodNotAllowed:    "method not allowed",
	fiber.StatusUnprocessableEntity: "unprocessable",
	fiber.StatusInternalServerError: "server errors",
}

// apiError carries the HTTP code a handler chose together with the
// underlying cause, which is logged but never sent to the client.
type apiError struct {
	code  int
	cause error
}

func (e *apiError) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("%d %s", e.code, message(e.code))
	}
	return fmt.Sprintf("%d %s: %v", e.code, message(e.code), e.cause)
}

func (e *apiError) Unwrap() error { return e.cause }

func abort(code int, cause error) error {
	return &apiError{code: code, cause: cause}
}

func message(code int) string {
	if m, ok := messages[code]; ok {
		return m
	}
	return strings.ToLower(http.StatusText(code))
}

// ErrorHandler renders every failure as {"success": false, "error", "message"}
// with the HTTP status equal to the error code.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var apiErr *apiError
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &apiErr):
		code = apiErr.code
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
	}

	log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   code,
		"message": message(code),
	})
}
