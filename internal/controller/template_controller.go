package controller

import (
	"ai-chatapp-be/internal/dto"
	"ai-chatapp-be/internal/pkg/serverutils"
	"ai-chatapp-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ITemplateController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type templateController struct {
	templateService service.ITemplateService
}

func NewTemplateController(templateService service.ITemplateService) ITemplateController {
	return &templateController{
		templateService: templateService,
	}
}

func (c *templateController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/prompt-templates")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Patch(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func templateParam(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, serverutils.ErrNotFound("Template not found")
	}
	return id, nil
}

func (c *templateController) List(ctx *fiber.Ctx) error {
	userId, err := callerID(ctx)
	if err != nil {
		return err
	}

	includePublic := ctx.Query("includePublic") == "true"

	res, err := c.templateService.List(ctx.Context(), userId, includePublic)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *templateController) Create(ctx *fiber.Ctx) error {
	userId, err := callerID(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateTemplateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ErrInvalidInput("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.templateService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *templateController) Show(ctx *fiber.Ctx) error {
	userId, err := callerID(ctx)
	if err != nil {
		return err
	}
	id, err := templateParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.templateService.Get(ctx.Context(), userId, id)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *templateController) Update(ctx *fiber.Ctx) error {
	userId, err := callerID(ctx)
	if err != nil {
		return err
	}
	id, err := templateParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateTemplateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ErrInvalidInput("invalid request body")
	}

	res, err := c.templateService.Update(ctx.Context(), userId, id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *templateController) Delete(ctx *fiber.Ctx) error {
	userId, err := callerID(ctx)
	if err != nil {
		return err
	}
	id, err := templateParam(ctx)
	if err != nil {
		return err
	}

	if err := c.templateService.Delete(ctx.Context(), userId, id); err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"success": true})
}
