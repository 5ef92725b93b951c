package handler

import (
	"encoding/json"
	"errors"
	"strconv"

	"fairchance-board/internal/delivery/http/middleware"
	"fairchance-board/internal/pkg/response"
	"fairchance-board/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const (
	msgJobNotFound          = "Job not found"
	msgEmployerNotFound     = "Employer not found"
	msgEmployerNameConflict = "Employer with this name already exists"
	msgInvalidJSON          = "Invalid JSON body"
)

func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		msg := usecase.ValidationMessage(err)
		if msg == "" {
			msg = response.MessageBadRequest
		}
		return middleware.NewAppError(fiber.StatusBadRequest, msg, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, msgJobNotFound, err)
	case errors.Is(err, usecase.ErrEmployerNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, msgEmployerNotFound, err)
	case errors.Is(err, usecase.ErrEmployerNameTaken):
		return middleware.NewAppError(fiber.StatusConflict, msgEmployerNameConflict, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
}

// parseID reads the :id route parameter. A non-numeric id matches no record,
// so it is reported with the caller's not-found message.
func parseID(c fiber.Ctx, notFound string) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, middleware.NewAppError(fiber.StatusNotFound, notFound, err)
	}
	return id, nil
}

func bindFields(c fiber.Ctx) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := c.Bind().Body(&fields); err != nil {
		return nil, middleware.NewAppError(fiber.StatusBadRequest, msgInvalidJSON, err)
	}
	return fields, nil
}
