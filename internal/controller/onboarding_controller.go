package controller

import (
	"ai-realestate-be/internal/pkg/serverutils"
	"ai-realestate-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IOnboardingController interface {
	RegisterRoutes(r fiber.Router)
	GetProducts(ctx *fiber.Ctx) error
	GetCoachOnboarding(ctx *fiber.Ctx) error
	MarkCoachVisited(ctx *fiber.Ctx) error
}

type onboardingController struct {
	service service.IOnboardingService
}

func NewOnboardingController(service service.IOnboardingService) IOnboardingController {
	return &onboardingController{service: service}
}

func (c *onboardingController) RegisterRoutes(r fiber.Router) {
	r.Get("/products", c.GetProducts)

	h := r.Group("/coach/onboarding")
	h.Get("", c.GetCoachOnboarding)
	h.Post("/visited", c.MarkCoachVisited)
}

func (c *onboardingController) GetProducts(ctx *fiber.Ctx) error {
	res, err := c.service.Products(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get products", res))
}

func (c *onboardingController) GetCoachOnboarding(ctx *fiber.Ctx) error {
	res, err := c.service.Status(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get onboarding status", res))
}

func (c *onboardingController) MarkCoachVisited(ctx *fiber.Ctx) error {
	if err := c.service.MarkVisited(ctx.UserContext()); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success mark onboarding visited", nil))
}
