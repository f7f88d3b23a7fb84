package controller

import (
	"ai-chatapp-be/internal/pkg/serverutils"
	"ai-chatapp-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IModelController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Default(ctx *fiber.Ctx) error
}

type modelController struct {
	modelService service.IModelService
}

func NewModelController(modelService service.IModelService) IModelController {
	return &modelController{
		modelService: modelService,
	}
}

func (c *modelController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/models")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Post("", c.Default)
}

// List returns the catalog, or a single descriptor with ?id=.
func (c *modelController) List(ctx *fiber.Ctx) error {
	if id := ctx.Query("id"); id != "" {
		model, err := c.modelService.Get(id)
		if err != nil {
			return err
		}
		return ctx.JSON(model)
	}

	return ctx.JSON(c.modelService.List())
}

// Default returns the default model descriptor.
func (c *modelController) Default(ctx *fiber.Ctx) error {
	return ctx.JSON(c.modelService.Default())
}
