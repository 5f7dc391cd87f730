package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"a11y-advocate-be/internal/service"
	"a11y-advocate-be/pkg/advisor"
	"a11y-advocate-be/pkg/llm"
)

// ErrorHandlerMiddleware translates typed errors from the service layer
// into HTTP statuses. Anything unclassified becomes a 500 with a generic
// message; raw provider text never leaves the serverutils boundary except
// for classified service errors, which are short by construction.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var validationErr *ValidationError
		var serviceErr *llm.ServiceError

		switch {
		case errors.As(err, &validationErr):
			return ctx.Status(fiber.StatusBadRequest).JSON(ErrorBody{Message: validationErr.Message})
		case errors.Is(err, advisor.ErrEmptyPrompt), errors.Is(err, advisor.ErrEmptyImage):
			return ctx.Status(fiber.StatusBadRequest).JSON(ErrorBody{Message: err.Error()})
		case errors.Is(err, service.ErrSessionNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(ErrorBody{Message: err.Error()})
		case errors.Is(err, llm.ErrUnconfigured):
			return ctx.Status(fiber.StatusServiceUnavailable).JSON(ErrorBody{Message: err.Error()})
		case errors.As(err, &serviceErr):
			return ctx.Status(fiber.StatusBadGateway).JSON(ErrorBody{Message: serviceErr.Error()})
		default:
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				return ctx.Status(fiberErr.Code).JSON(ErrorBody{Message: fiberErr.Message})
			}
			return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorBody{Message: "internal server error"})
		}
	}
}
