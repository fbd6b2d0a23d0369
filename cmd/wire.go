package cmd

import (
	"Stowed/internal/config"
	"Stowed/internal/handlers"
	"Stowed/internal/services"

	"gorm.io/gorm"
)

type Server struct {
	Config           *config.Configuration
	DB               *gorm.DB
	ContainerService services.ContainerService
	ContainerHandler *handlers.ContainerHandler
	ItemService      services.ItemService
	ItemHandler      *handlers.ItemHandler
	ImageService     services.ImageService
	ImageHandler     *handlers.ImageHandler
	LogService       services.LogService
	JanitorService   *services.Janitor
}

func NewServer(
	cfg *config.Configuration,
	db *gorm.DB,
	containerService services.ContainerService,
	containerHandler *handlers.ContainerHandler,
	itemService services.ItemService,
	itemHandler *handlers.ItemHandler,
	imageService services.ImageService,
	imageHandler *handlers.ImageHandler,
	logService services.LogService,
	janitorService *services.Janitor,
) *Server {
	return &Server{
		Config:           cfg,
		DB:               db,
		ContainerService: containerService,
		ContainerHandler: containerHandler,
		ItemService:      itemService,
		ItemHandler:      itemHandler,
		ImageService:     imageService,
		ImageHandler:     imageHandler,
		LogService:       logService,
		JanitorService:   janitorService,
	}
}
