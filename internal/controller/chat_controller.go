package controller

import (
	"a11y-advocate-be/internal/dto"
	"a11y-advocate-be/internal/pkg/serverutils"
	"a11y-advocate-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	CreateSession(ctx *fiber.Ctx) error
	GetHistory(ctx *fiber.Ctx) error
	SendChat(ctx *fiber.Ctx) error
	DeleteSession(ctx *fiber.Ctx) error
	SessionStatus(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IAdvisorService
}

func NewChatController(service service.IAdvisorService) IChatController {
	return &chatController{service: service}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Post("/session", c.CreateSession)
	h.Get("/session/:id/history", c.GetHistory)
	h.Post("/session/:id/message", c.SendChat)
	h.Delete("/session/:id", c.DeleteSession)
	h.Get("/session/:id/status", c.SessionStatus)
}

func (c *chatController) CreateSession(ctx *fiber.Ctx) error {
	res, err := c.service.CreateSession(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create session", res))
}

func (c *chatController) GetHistory(ctx *fiber.Ctx) error {
	sessionId, err := sessionIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetChatHistory(ctx.Context(), sessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get chat history", res))
}

func (c *chatController) SendChat(ctx *fiber.Ctx) error {
	sessionId, err := sessionIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.SendChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SendChat(ctx.Context(), sessionId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success send chat", res))
}

func (c *chatController) DeleteSession(ctx *fiber.Ctx) error {
	sessionId, err := sessionIdParam(ctx)
	if err != nil {
		return err
	}

	if err := c.service.DeleteSession(ctx.Context(), sessionId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete session", nil))
}

func (c *chatController) SessionStatus(ctx *fiber.Ctx) error {
	sessionId, err := sessionIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.SessionStatus(ctx.Context(), sessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get session status", res))
}

func sessionIdParam(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, &serverutils.ValidationError{Message: "invalid session id"}
	}
	return id, nil
}
