package controller

import (
	"a11y-advocate-be/internal/pkg/serverutils"
	"a11y-advocate-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IResourceController interface {
	RegisterRoutes(r fiber.Router)
	GetTopics(ctx *fiber.Ctx) error
}

type resourceController struct {
	service service.IResourceService
}

func NewResourceController(service service.IResourceService) IResourceController {
	return &resourceController{service: service}
}

func (c *resourceController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/resource/v1")
	h.Get("/topics", c.GetTopics)
}

func (c *resourceController) GetTopics(ctx *fiber.Ctx) error {
	res := c.service.GetTopics(ctx.Context())
	return ctx.JSON(serverutils.SuccessResponse("Success get topics", res))
}
