package controller

import (
	"fmt"

	"ai-chatapp-be/internal/config"
	"ai-chatapp-be/internal/pkg/serverutils"
	"ai-chatapp-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IOAuthController interface {
	RegisterRoutes(r fiber.Router)
	Login(ctx *fiber.Ctx) error
	Callback(ctx *fiber.Ctx) error
}

type oauthController struct {
	service   service.IOAuthService
	clientURL string
}

func NewOAuthController(service service.IOAuthService, appConfig config.AppConfig) IOAuthController {
	return &oauthController{
		service:   service,
		clientURL: appConfig.ClientURL,
	}
}

func (c *oauthController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth/oauth")
	h.Get("/:provider", c.Login)
	h.Get("/:provider/callback", c.Callback)
}

func (c *oauthController) Login(ctx *fiber.Ctx) error {
	url, err := c.service.GetLoginURL(ctx.Params("provider"))
	if err != nil {
		return serverutils.ErrInvalidInput(err.Error())
	}

	return ctx.Redirect(url)
}

func (c *oauthController) Callback(ctx *fiber.Ctx) error {
	code := ctx.Query("code")
	if code == "" {
		return serverutils.ErrInvalidInput("Missing code")
	}

	res, err := c.service.HandleCallback(ctx.Context(), ctx.Params("provider"), code)
	if err != nil {
		return err
	}

	// Hand the token back to the SPA via redirect.
	return ctx.Redirect(fmt.Sprintf("%s/app?token=%s", c.clientURL, res.AccessToken), fiber.StatusTemporaryRedirect)
}
