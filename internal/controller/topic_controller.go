package controller

import (
	"ai-realestate-be/internal/dto"
	"ai-realestate-be/internal/pkg/serverutils"
	"ai-realestate-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITopicController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	CreateFromURL(ctx *fiber.Ctx) error
	Hide(ctx *fiber.Ctx) error
	Unhide(ctx *fiber.Ctx) error
	TogglePin(ctx *fiber.Ctx) error
	Open(ctx *fiber.Ctx) error
}

type topicController struct {
	service     service.ITopicService
	chatService service.IChatSessionService
}

func NewTopicController(service service.ITopicService, chatService service.IChatSessionService) ITopicController {
	return &topicController{service: service, chatService: chatService}
}

func (c *topicController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/:product/topics")
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Post("/url", c.CreateFromURL)
	h.Patch("/:id/hide", c.Hide)
	h.Patch("/:id/unhide", c.Unhide)
	h.Patch("/:id/pin", c.TogglePin)
	h.Post("/:id/open", c.Open)
}

func (c *topicController) GetAll(ctx *fiber.Ctx) error {
	p, err := productParam(ctx)
	if err != nil {
		return err
	}

	var res []*dto.TopicResponse
	if ctx.QueryBool("all", false) {
		res, err = c.service.ListAll(ctx.UserContext(), p)
	} else {
		res, err = c.service.List(ctx.UserContext(), p)
	}
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all topics", res))
}

func (c *topicController) Create(ctx *fiber.Ctx) error {
	p, err := productParam(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateTopicRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Add(ctx.UserContext(), p, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create topic", res))
}

func (c *topicController) CreateFromURL(ctx *fiber.Ctx) error {
	p, err := productParam(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateTopicFromURLRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.AddFromURL(ctx.UserContext(), p, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create topic from url", res))
}

func (c *topicController) Hide(ctx *fiber.Ctx) error {
	p, err := productParam(ctx)
	if err != nil {
		return err
	}
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.service.Hide(ctx.UserContext(), p, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success hide topic", res))
}

func (c *topicController) Unhide(ctx *fiber.Ctx) error {
	p, err := productParam(ctx)
	if err != nil {
		return err
	}
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.service.Unhide(ctx.UserContext(), p, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success unhide topic", res))
}

func (c *topicController) TogglePin(ctx *fiber.Ctx) error {
	p, err := productParam(ctx)
	if err != nil {
		return err
	}
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.service.TogglePin(ctx.UserContext(), p, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success toggle topic pin", res))
}

// Open starts or reuses the chat session for a topic.
func (c *topicController) Open(ctx *fiber.Ctx) error {
	p, err := productParam(ctx)
	if err != nil {
		return err
	}
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.chatService.OpenTopic(ctx.UserContext(), p, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success open topic", res))
}
