package main

import (
	"Stowed/database"
	"Stowed/internal/config"
	"Stowed/internal/routers"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func Provider() (*config.Configuration, error) {
	return config.LoadConfiguration("stowed.yaml")
}

func main() {
	server, err := InitializeServer()
	if err != nil {
		log.Fatal(err)
	}
	defer database.CloseDatabase(server.DB)

	cfg := server.Config
	app := fiber.New(fiber.Config{
		BodyLimit:   cfg.Server.RequestConfig.SizeLimit * 1024 * 1024,
		Concurrency: cfg.Server.Concurrency * 1024,
		AppName:     "Stowed",
	})

	app.Use(logger.New())
	routers.SetupRoutes(app, server, cfg)

	server.JanitorService.StartCleanCycle()

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		server.JanitorService.StopCleanCycle()
		if err := app.Shutdown(); err != nil {
			server.LogService.Log.Errorf("shutdown: %v", err)
		}
	}()

	err = app.Listen(fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port))
	if err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
