package controller

import (
	"ai-realestate-be/internal/dto"
	"ai-realestate-be/internal/pkg/serverutils"
	"ai-realestate-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IViewController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
	Send(ctx *fiber.Ctx) error
	Close(ctx *fiber.Ctx) error
}

type viewController struct {
	service service.IConversationService
}

func NewViewController(service service.IConversationService) IViewController {
	return &viewController{service: service}
}

func (c *viewController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/views")
	h.Get("/:viewId", c.Show)
	h.Post("/:viewId/messages", c.Send)
	h.Delete("/:viewId", c.Close)
}

func (c *viewController) Show(ctx *fiber.Ctx) error {
	res, err := c.service.GetView(ctx.UserContext(), ctx.Params("viewId"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show chat view", res))
}

// Send waits for the simulated reply. If the client goes away first the
// reply is dropped with the request.
func (c *viewController) Send(ctx *fiber.Ctx) error {
	var req dto.SendMessageRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Send(ctx.UserContext(), ctx.Params("viewId"), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success send message", res))
}

func (c *viewController) Close(ctx *fiber.Ctx) error {
	if err := c.service.CloseView(ctx.UserContext(), ctx.Params("viewId")); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success close chat view", nil))
}
