package routers

import (
	"Stowed/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupContainerRouter(app *fiber.App, server *cmd.Server) {
	containerHandler := server.ContainerHandler
	app.Get("/api/containers", containerHandler.ListContainers)
	app.Post("/api/containers", containerHandler.CreateContainer)
	app.Delete("/api/containers/:id", containerHandler.DeleteContainer)
}
