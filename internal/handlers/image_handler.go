package handlers

import (
	"Stowed/internal/services"
	"net/http"
	"os"

	"github.com/gofiber/fiber/v2"
)

type ImageHandler struct {
	service services.ImageService
}

func NewImageHandler(service services.ImageService) *ImageHandler {
	return &ImageHandler{service: service}
}

// ServeImage delivers a stored upload byte-for-byte; SendFile infers the
// content type from the extension.
func (h *ImageHandler) ServeImage(c *fiber.Ctx) error {
	path, err := h.service.Resolve(c.Params("name"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid image name"})
	}

	if _, err := os.Stat(path); err != nil {
		return c.Status(http.StatusNotFound).JSON(map[string]interface{}{"error": "image not found"})
	}

	return c.SendFile(path)
}
