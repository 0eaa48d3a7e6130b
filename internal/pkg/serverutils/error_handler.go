package serverutils

import (
	"errors"

	"ai-realestate-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware turns errors returned by handlers into the common
// JSON envelope with a matching status code.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}
		return WriteError(ctx, err)
	}
}

func WriteError(ctx *fiber.Ctx, err error) error {
	var validationErr *apperror.ValidationError
	if errors.As(err, &validationErr) {
		return ctx.Status(fiber.StatusBadRequest).
			JSON(ErrorResponseWithData(fiber.StatusBadRequest, "Validation failed", validationErr.Fields))
	}

	var redirectErr *apperror.RedirectError
	if errors.As(err, &redirectErr) {
		message := "Redirect"
		if redirectErr.Reason != nil {
			message = redirectErr.Reason.Error()
		}
		ctx.Set(fiber.HeaderLocation, redirectErr.To)
		return ctx.Status(fiber.StatusSeeOther).
			JSON(ErrorResponseWithData(fiber.StatusSeeOther, message, fiber.Map{"redirect": redirectErr.To}))
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
	}

	code := statusFor(err)
	return ctx.Status(code).JSON(ErrorResponse(code, err.Error()))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrUnknownProduct),
		errors.Is(err, apperror.ErrUnsupportedFile):
		return fiber.StatusBadRequest
	case errors.Is(err, apperror.ErrTopicNotFound),
		errors.Is(err, apperror.ErrChatNotFound),
		errors.Is(err, apperror.ErrAssetNotFound),
		errors.Is(err, apperror.ErrViewNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, apperror.ErrViewClosed):
		return fiber.StatusGone
	}
	return fiber.StatusInternalServerError
}
