package controller

import (
	"ai-chatapp-be/internal/dto"
	"ai-chatapp-be/internal/pkg/serverutils"
	"ai-chatapp-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	ApplyTemplate(ctx *fiber.Ctx) error
	SendMessage(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{
		chatService: chatService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Patch(":id", c.Update)
	h.Delete(":id", c.Delete)
	h.Post(":id/messages", c.SendMessage)
	h.Post(":id/apply-template", c.ApplyTemplate)
}

func callerID(ctx *fiber.Ctx) (uuid.UUID, error) {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return uuid.Nil, serverutils.ErrUnauthenticated()
	}
	return userId, nil
}

func sessionParam(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		// Malformed ids get the same answer as unknown ones.
		return uuid.Nil, serverutils.ErrNotFound("Session not found")
	}
	return id, nil
}

func (c *chatController) List(ctx *fiber.Ctx) error {
	userId, err := callerID(ctx)
	if err != nil {
		return err
	}

	res, err := c.chatService.ListSessions(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *chatController) Create(ctx *fiber.Ctx) error {
	userId, err := callerID(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateSessionRequest
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			return serverutils.ErrInvalidInput("invalid request body")
		}
	}

	res, err := c.chatService.CreateSession(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *chatController) Show(ctx *fiber.Ctx) error {
	userId, err := callerID(ctx)
	if err != nil {
		return err
	}
	id, err := sessionParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.chatService.GetSession(ctx.Context(), userId, id)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *chatController) Update(ctx *fiber.Ctx) error {
	userId, err := callerID(ctx)
	if err != nil {
		return err
	}
	id, err := sessionParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ErrInvalidInput("invalid request body")
	}

	res, err := c.chatService.UpdateSession(ctx.Context(), userId, id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *chatController) Delete(ctx *fiber.Ctx) error {
	userId, err := callerID(ctx)
	if err != nil {
		return err
	}
	id, err := sessionParam(ctx)
	if err != nil {
		return err
	}

	if err := c.chatService.DeleteSession(ctx.Context(), userId, id); err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"success": true})
}

func (c *chatController) ApplyTemplate(ctx *fiber.Ctx) error {
	userId, err := callerID(ctx)
	if err != nil {
		return err
	}
	id, err := sessionParam(ctx)
	if err != nil {
		return err
	}

	var req dto.ApplyTemplateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ErrInvalidInput("invalid request body")
	}

	res, err := c.chatService.ApplyTemplate(ctx.Context(), userId, id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *chatController) SendMessage(ctx *fiber.Ctx) error {
	userId, err := callerID(ctx)
	if err != nil {
		return err
	}
	id, err := sessionParam(ctx)
	if err != nil {
		return err
	}

	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ErrInvalidInput("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.SendMessage(ctx.Context(), userId, id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
