package controller

import (
	"io"
	"strings"

	"a11y-advocate-be/internal/pkg/serverutils"
	"a11y-advocate-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IImageController interface {
	RegisterRoutes(r fiber.Router)
	Analyze(ctx *fiber.Ctx) error
}

type imageController struct {
	service service.IAdvisorService
}

func NewImageController(service service.IAdvisorService) IImageController {
	return &imageController{service: service}
}

func (c *imageController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/image/v1")
	h.Post("/analyze", c.Analyze)
}

// Analyze accepts a multipart upload: a session_id field and an image
// file. The response always carries the offline alt-text guidance; the
// live analysis is included when the provider was available.
func (c *imageController) Analyze(ctx *fiber.Ctx) error {
	sessionId, err := uuid.Parse(ctx.FormValue("session_id"))
	if err != nil {
		return &serverutils.ValidationError{Message: "invalid session_id"}
	}

	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		return &serverutils.ValidationError{Message: "image file is required"}
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(mimeType, "image/") {
		return &serverutils.ValidationError{Message: "uploaded file is not an image"}
	}

	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		return err
	}

	res, err := c.service.AnalyzeImage(ctx.Context(), sessionId, image, mimeType)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success analyze image", res))
}
