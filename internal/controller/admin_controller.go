package controller

import (
	"io"

	"ai-realestate-be/internal/dto"
	"ai-realestate-be/internal/pkg/apperror"
	"ai-realestate-be/internal/pkg/serverutils"
	"ai-realestate-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router, middleware ...fiber.Handler)
	GetAssets(ctx *fiber.Ctx) error
	CreateAsset(ctx *fiber.Ctx) error
	CreatePrompt(ctx *fiber.Ctx) error
	UploadAsset(ctx *fiber.Ctx) error
	UpdateAsset(ctx *fiber.Ctx) error
	DeleteAsset(ctx *fiber.Ctx) error
	GetAssetCounts(ctx *fiber.Ctx) error
}

type adminController struct {
	assetService service.IAssetService
}

func NewAdminController(assetService service.IAssetService) IAdminController {
	return &adminController{assetService: assetService}
}

// RegisterRoutes mounts the asset admin under /admin, guarded by
// middleware (the JWT check when a secret is configured).
func (c *adminController) RegisterRoutes(r fiber.Router, middleware ...fiber.Handler) {
	admin := r.Group("/admin")
	for _, m := range middleware {
		admin.Use(m)
	}

	admin.Get("/asset-counts", c.GetAssetCounts)

	h := admin.Group("/:product/assets")
	h.Get("", c.GetAssets)
	h.Post("", c.CreateAsset)
	h.Post("/prompts", c.CreatePrompt)
	h.Post("/upload", c.UploadAsset)
	h.Put("/:id", c.UpdateAsset)
	h.Delete("/:id", c.DeleteAsset)
}

func (c *adminController) GetAssets(ctx *fiber.Ctx) error {
	p, err := productParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.assetService.List(ctx.UserContext(), p, ctx.QueryInt("limit", 0), ctx.QueryInt("offset", 0))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all assets", res))
}

func (c *adminController) CreateAsset(ctx *fiber.Ctx) error {
	p, err := productParam(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateAssetRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.assetService.Add(ctx.UserContext(), p, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create asset", res))
}

func (c *adminController) CreatePrompt(ctx *fiber.Ctx) error {
	p, err := productParam(ctx)
	if err != nil {
		return err
	}

	var req dto.CreatePromptRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.assetService.AddPrompt(ctx.UserContext(), p, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create prompt", res))
}

// UploadAsset takes a multipart "file" field and an optional "title".
func (c *adminController) UploadAsset(ctx *fiber.Ctx) error {
	p, err := productParam(ctx)
	if err != nil {
		return err
	}

	fh, err := ctx.FormFile("file")
	if err != nil {
		return apperror.NewValidationError("file", "is required")
	}

	f, err := fh.Open()
	if err != nil {
		return err
	}
	defer f.Close()

	body, err := io.ReadAll(f)
	if err != nil {
		return err
	}

	req := dto.UploadAssetRequest{
		FileName: fh.Filename,
		Size:     fh.Size,
		Body:     body,
		Title:    ctx.FormValue("title"),
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.assetService.Upload(ctx.UserContext(), p, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success upload asset", res))
}

func (c *adminController) UpdateAsset(ctx *fiber.Ctx) error {
	p, err := productParam(ctx)
	if err != nil {
		return err
	}
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateAssetRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.assetService.Update(ctx.UserContext(), p, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update asset", res))
}

func (c *adminController) DeleteAsset(ctx *fiber.Ctx) error {
	p, err := productParam(ctx)
	if err != nil {
		return err
	}
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.assetService.Delete(ctx.UserContext(), p, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete asset", nil))
}

func (c *adminController) GetAssetCounts(ctx *fiber.Ctx) error {
	res, err := c.assetService.Counts(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get asset counts", res))
}
