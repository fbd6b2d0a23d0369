//go:build wireinject
// +build wireinject

package main

import (
	"Stowed/cmd"
	"Stowed/database"
	"Stowed/internal/handlers"
	"Stowed/internal/repository"
	"Stowed/internal/services"

	"github.com/google/wire"
)

func InitializeServer() (*cmd.Server, error) {
	wire.Build(
		cmd.NewServer,
		services.NewContainerService,
		handlers.NewContainerHandler,
		repository.NewContainerRepository,
		services.NewItemService,
		handlers.NewItemHandler,
		repository.NewItemRepository,
		database.SetupDatabase,
		services.NewImageService,
		handlers.NewImageHandler,
		services.NewLogService,
		services.NewJanitorService,
		Provider,
	)
	return nil, nil
}
