package controller

import (
	"ai-realestate-be/internal/dto"
	"ai-realestate-be/internal/pkg/serverutils"
	"ai-realestate-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IContentController interface {
	RegisterRoutes(r fiber.Router)
	GetTypes(ctx *fiber.Ctx) error
	Render(ctx *fiber.Ctx) error
	Enhance(ctx *fiber.Ctx) error
}

type contentController struct {
	service service.IContentService
}

func NewContentController(service service.IContentService) IContentController {
	return &contentController{service: service}
}

func (c *contentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/content")
	h.Get("/types", c.GetTypes)
	h.Post("/render", c.Render)

	r.Post("/prompts/enhance", c.Enhance)
}

func (c *contentController) GetTypes(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get content types", c.service.ListTypes(ctx.UserContext())))
}

func (c *contentController) Render(ctx *fiber.Ctx) error {
	var req dto.RenderContentRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Render(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success render content", res))
}

func (c *contentController) Enhance(ctx *fiber.Ctx) error {
	var req dto.EnhancePromptRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.EnhancePrompt(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success enhance prompt", res))
}
