package routers

import (
	"Stowed/cmd"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

func SetupJanitorRouter(app *fiber.App, server *cmd.Server) {
	janitor := server.JanitorService
	app.Post("/api/maintenance/clean", func(c *fiber.Ctx) error {
		if err := janitor.ForceStartCleanCycle(); err != nil {
			return c.Status(http.StatusConflict).JSON(map[string]interface{}{"error": err.Error()})
		}
		return c.JSON(map[string]interface{}{"message": "Clean cycle completed"})
	})
}
