package controller

import (
	"ai-notecapture-be/internal/pkg/serverutils"
	"ai-notecapture-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IClipboardController interface {
	RegisterRoutes(r fiber.Router)
	Read(ctx *fiber.Ctx) error
	Interaction(ctx *fiber.Ctx) error
	Latest(ctx *fiber.Ctx) error
	Clear(ctx *fiber.Ctx) error
}

type clipboardController struct {
	service service.IClipboardService
}

func NewClipboardController(service service.IClipboardService) IClipboardController {
	return &clipboardController{service: service}
}

func (c *clipboardController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/clipboard/v1")
	h.Post("read", c.Read)
	h.Post("interaction", c.Interaction)
	h.Get("latest", c.Latest)
	h.Delete("latest", c.Clear)
}

func (c *clipboardController) Read(ctx *fiber.Ctx) error {
	res, err := c.service.Read(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Content pasted from clipboard", res))
}

func (c *clipboardController) Interaction(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Interaction recorded", c.service.Interaction()))
}

func (c *clipboardController) Latest(ctx *fiber.Ctx) error {
	res := c.service.Latest()
	if res == nil {
		return ctx.JSON(serverutils.SuccessResponse[any]("No clipboard content", nil))
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get clipboard content", res))
}

func (c *clipboardController) Clear(ctx *fiber.Ctx) error {
	c.service.Clear()
	return ctx.JSON(serverutils.SuccessResponse[any]("Clipboard content cleared", nil))
}
