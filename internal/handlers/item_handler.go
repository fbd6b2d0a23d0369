package handlers

import (
	"Stowed/internal/services"
	"errors"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type ItemHandler struct {
	service services.ItemService
}

func NewItemHandler(service services.ItemService) *ItemHandler {
	return &ItemHandler{service: service}
}

func (h *ItemHandler) ListItemsByContainer(c *fiber.Ctx) error {
	containerID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid container ID"})
	}

	items, err := h.service.GetItemsByContainer(uint(containerID))
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": err.Error()})
	}
	return c.JSON(items)
}

func (h *ItemHandler) CreateItem(c *fiber.Ctx) error {
	containerIDValue := c.FormValue("container_id")
	name := c.FormValue("name")
	if containerIDValue == "" || name == "" {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "container ID and name are required"})
	}
	containerID, err := strconv.ParseUint(containerIDValue, 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid container ID"})
	}

	purchasePrice, err := optionalFloat(c.FormValue("purchase_price"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid purchase price"})
	}
	sellPrice, err := optionalFloat(c.FormValue("sell_price"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid sell price"})
	}
	storageDate := optionalString(c.FormValue("storage_date"))
	notes := optionalString(c.FormValue("notes"))

	image, err := c.FormFile("image")
	if err != nil {
		image = nil
	}

	item, err := h.service.CreateItem(uint(containerID), name, image, purchasePrice, sellPrice, storageDate, notes)
	if err != nil {
		var validationErr *services.ValidationError
		if errors.As(err, &validationErr) {
			return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": validationErr.Message})
		}
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": err.Error()})
	}

	return c.Status(http.StatusCreated).JSON(item)
}

// UpdateItem replaces the whole record: fields left out of the body are
// nulled, not preserved. An unknown id responds 200 with a null body.
func (h *ItemHandler) UpdateItem(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid item ID"})
	}

	var req struct {
		Name          string   `json:"name"`
		Sold          bool     `json:"sold"`
		PurchasePrice *float64 `json:"purchase_price"`
		SellPrice     *float64 `json:"sell_price"`
		StorageDate   *string  `json:"storage_date"`
		Notes         *string  `json:"notes"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}

	item, err := h.service.UpdateItem(uint(id), req.Name, req.Sold, req.PurchasePrice, req.SellPrice, req.StorageDate, req.Notes)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": err.Error()})
	}

	return c.JSON(item)
}

func (h *ItemHandler) DeleteItem(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid item ID"})
	}

	if err := h.service.DeleteItem(uint(id)); err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": err.Error()})
	}

	return c.JSON(map[string]interface{}{"message": "Item deleted successfully"})
}
