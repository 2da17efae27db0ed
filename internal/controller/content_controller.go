package controller

import (
	"ai-notecapture-be/internal/dto"
	"ai-notecapture-be/internal/pkg/serverutils"
	"ai-notecapture-be/internal/service"
	"ai-notecapture-be/pkg/clipboard"

	"github.com/gofiber/fiber/v2"
)

type IContentController interface {
	RegisterRoutes(r fiber.Router)
	ListByNotebook(ctx *fiber.Ctx) error
	Stats(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Capture(ctx *fiber.Ctx) error
	Draft(ctx *fiber.Ctx) error
	Classify(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type contentController struct {
	service service.IContentService
}

func NewContentController(service service.IContentService) IContentController {
	return &contentController{service: service}
}

func (c *contentController) RegisterRoutes(r fiber.Router) {
	nb := r.Group("/notebook/v1")
	nb.Get(":id/content", c.ListByNotebook)
	nb.Get(":id/content/stats", c.Stats)

	h := r.Group("/content/v1")
	h.Post("", c.Create)
	h.Post("capture", c.Capture)
	h.Post("draft", c.Draft)
	h.Post("classify", c.Classify)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *contentController) ListByNotebook(ctx *fiber.Ctx) error {
	res, err := c.service.ListByNotebook(ctx.UserContext(), ctx.Params("id"), ctx.Query("q"), ctx.Query("type"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get notebook content", res))
}

func (c *contentController) Stats(ctx *fiber.Ctx) error {
	res, err := c.service.TypeCounts(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get content stats", res))
}

func (c *contentController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateContentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewBadRequestError("Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Content added to notebook", res))
}

func (c *contentController) Capture(ctx *fiber.Ctx) error {
	var req dto.CaptureClipboardRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewBadRequestError("Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CaptureFromClipboard(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Content captured from clipboard", res))
}

func (c *contentController) Draft(ctx *fiber.Ctx) error {
	var req dto.DraftRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewBadRequestError("Invalid request body")
	}

	data := &clipboard.Data{Text: req.Text, HTML: req.Html, Image: req.Image, Type: clipboard.TypeText}
	if req.Image != "" {
		data.Type = clipboard.TypeImage
		if req.Text != "" {
			data.Type = clipboard.TypeMixed
		}
	}

	res, err := c.service.Draft(data)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success build draft", res))
}

func (c *contentController) Classify(ctx *fiber.Ctx) error {
	var req dto.ClassifyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewBadRequestError("Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success classify content", c.service.Classify(req.Text)))
}

func (c *contentController) Show(ctx *fiber.Ctx) error {
	res, err := c.service.Show(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show content", res))
}

func (c *contentController) Update(ctx *fiber.Ctx) error {
	var req dto.UpdateContentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewBadRequestError("Invalid request body")
	}
	req.Id = ctx.Params("id")

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update content", res))
}

func (c *contentController) Delete(ctx *fiber.Ctx) error {
	if err := c.service.Delete(ctx.UserContext(), ctx.Params("id")); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete content", nil))
}
