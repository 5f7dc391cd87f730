package controller

import (
	"a11y-advocate-be/internal/pkg/serverutils"
	"a11y-advocate-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IStatusController interface {
	RegisterRoutes(r fiber.Router)
	GetStatus(ctx *fiber.Ctx) error
}

type statusController struct {
	service service.IAdvisorService
}

func NewStatusController(service service.IAdvisorService) IStatusController {
	return &statusController{service: service}
}

func (c *statusController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/status/v1")
	h.Get("", c.GetStatus)
}

func (c *statusController) GetStatus(ctx *fiber.Ctx) error {
	res, err := c.service.SystemStatus(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get system status", res))
}
