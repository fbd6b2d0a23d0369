package routers

import (
	"Stowed/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupItemRouter(app *fiber.App, server *cmd.Server) {
	itemHandler := server.ItemHandler
	app.Get("/api/containers/:id/items", itemHandler.ListItemsByContainer)
	app.Post("/api/items", itemHandler.CreateItem)
	app.Put("/api/items/:id", itemHandler.UpdateItem)
	app.Delete("/api/items/:id", itemHandler.DeleteItem)
}
