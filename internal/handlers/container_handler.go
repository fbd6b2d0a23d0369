package handlers

import (
	"Stowed/internal/services"
	"errors"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type ContainerHandler struct {
	service services.ContainerService
}

func NewContainerHandler(service services.ContainerService) *ContainerHandler {
	return &ContainerHandler{service: service}
}

func (h *ContainerHandler) ListContainers(c *fiber.Ctx) error {
	containers, err := h.service.GetContainers()
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": err.Error()})
	}
	return c.JSON(containers)
}

func (h *ContainerHandler) CreateContainer(c *fiber.Ctx) error {
	name := c.FormValue("name")
	image, err := c.FormFile("image")
	if err != nil {
		image = nil
	}

	container, err := h.service.CreateContainer(name, image)
	if err != nil {
		var validationErr *services.ValidationError
		if errors.As(err, &validationErr) {
			return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": validationErr.Message})
		}
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": err.Error()})
	}

	return c.Status(http.StatusCreated).JSON(container)
}

func (h *ContainerHandler) DeleteContainer(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid container ID"})
	}

	if err := h.service.DeleteContainer(uint(id)); err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": err.Error()})
	}

	return c.JSON(map[string]interface{}{"message": "Container deleted successfully"})
}
