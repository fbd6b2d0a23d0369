package routers

import (
	"Stowed/internal/config"

	"github.com/gofiber/fiber/v2"
)

func SetupStaticRouter(app *fiber.App, cfg *config.Configuration) {
	app.Static("/", cfg.Storage.PublicPath)
}
