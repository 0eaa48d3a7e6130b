package controller

import (
	"ai-realestate-be/internal/dto"
	"ai-realestate-be/internal/pkg/serverutils"
	"ai-realestate-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Open(ctx *fiber.Ctx) error
	New(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	TogglePin(ctx *fiber.Ctx) error
	Hide(ctx *fiber.Ctx) error
	Rename(ctx *fiber.Ctx) error
	OpenView(ctx *fiber.Ctx) error
}

type chatController struct {
	service             service.IChatSessionService
	conversationService service.IConversationService
}

func NewChatController(service service.IChatSessionService, conversationService service.IConversationService) IChatController {
	return &chatController{service: service, conversationService: conversationService}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	list := r.Group("/:product/chats")
	list.Get("", c.GetAll)
	list.Post("", c.Open)
	list.Post("/new", c.New)

	h := r.Group("/:product/chat/:id")
	h.Get("", c.Show)
	h.Patch("/pin", c.TogglePin)
	h.Patch("/hide", c.Hide)
	h.Patch("/rename", c.Rename)
	h.Post("/views", c.OpenView)
}

func (c *chatController) GetAll(ctx *fiber.Ctx) error {
	p, err := productParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.List(ctx.UserContext(), p)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all chats", res))
}

// Open reuses, revives or creates the session for a title.
func (c *chatController) Open(ctx *fiber.Ctx) error {
	p, err := productParam(ctx)
	if err != nil {
		return err
	}

	var req dto.OpenChatRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.OpenOrCreate(ctx.UserContext(), p, req.Title)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success open chat", res))
}

func (c *chatController) New(ctx *fiber.Ctx) error {
	p, err := productParam(ctx)
	if err != nil {
		return err
	}

	var req dto.NewChatRequest
	if len(ctx.Body()) > 0 {
		if err := parseBody(ctx, &req); err != nil {
			return err
		}
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.NewChat(ctx.UserContext(), p, req.Title)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create chat", res))
}

// Show resolves a deep link. Missing or unreadable sessions answer 303
// with the dashboard path.
func (c *chatController) Show(ctx *fiber.Ctx) error {
	p, err := productParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Resolve(ctx.UserContext(), p, service.ChatPath(p, ctx.Params("id")))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show chat", res))
}

func (c *chatController) TogglePin(ctx *fiber.Ctx) error {
	p, err := productParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.TogglePin(ctx.UserContext(), p, service.ChatPath(p, ctx.Params("id")))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success toggle chat pin", res))
}

func (c *chatController) Hide(ctx *fiber.Ctx) error {
	p, err := productParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Hide(ctx.UserContext(), p, service.ChatPath(p, ctx.Params("id")))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success hide chat", res))
}

func (c *chatController) Rename(ctx *fiber.Ctx) error {
	p, err := productParam(ctx)
	if err != nil {
		return err
	}

	var req dto.RenameChatRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Rename(ctx.UserContext(), p, service.ChatPath(p, ctx.Params("id")), req.Title)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success rename chat", res))
}

// OpenView mounts a chat view with a fresh welcome message.
func (c *chatController) OpenView(ctx *fiber.Ctx) error {
	p, err := productParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.conversationService.OpenView(ctx.UserContext(), p, ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success open chat view", res))
}
