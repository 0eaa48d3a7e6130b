package controller

import (
	"fmt"

	"ai-realestate-be/internal/entity"
	"ai-realestate-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func productParam(ctx *fiber.Ctx) (entity.Product, error) {
	raw := ctx.Params("product")
	p, ok := entity.ParseProduct(raw)
	if !ok {
		return "", fmt.Errorf("%q: %w", raw, apperror.ErrUnknownProduct)
	}
	return p, nil
}

func idParam(ctx *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params(name))
	if err != nil {
		return uuid.Nil, apperror.NewValidationError(name, "must be a UUID")
	}
	return id, nil
}

// parseBody wraps body decoding failures as 400s.
func parseBody(ctx *fiber.Ctx, out any) error {
	if err := ctx.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	return nil
}
