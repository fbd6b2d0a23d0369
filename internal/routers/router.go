package routers

import (
	"Stowed/cmd"
	"Stowed/internal/config"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, server *cmd.Server, cfg *config.Configuration) {
	SetupContainerRouter(app, server)
	SetupItemRouter(app, server)
	SetupImageRouter(app, server)
	SetupJanitorRouter(app, server)
	SetupStaticRouter(app, cfg)
}
