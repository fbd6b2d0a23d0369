package routers

import (
	"Stowed/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupImageRouter(app *fiber.App, server *cmd.Server) {
	imageHandler := server.ImageHandler
	app.Get("/uploads/:name", imageHandler.ServeImage)
}
