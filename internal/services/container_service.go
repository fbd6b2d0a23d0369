package services

import (
	"Stowed/internal/models"
	"Stowed/internal/repository"
	"mime/multipart"
)

type ContainerService interface {
	GetContainers() ([]models.Container, error)
	CreateContainer(name string, image *multipart.FileHeader) (*models.Container, error)
	DeleteContainer(id uint) error
}

type containerServiceImpl struct {
	containerRepo repository.ContainerRepository
	itemRepo      repository.ItemRepository
	imageService  ImageService
	logService    LogService
}

func NewContainerService(
	containerRepo repository.ContainerRepository,
	itemRepo repository.ItemRepository,
	imageService ImageService,
	logService LogService,
) ContainerService {
	return &containerServiceImpl{
		containerRepo: containerRepo,
		itemRepo:      itemRepo,
		imageService:  imageService,
		logService:    logService,
	}
}

func (s *containerServiceImpl) GetContainers() ([]models.Container, error) {
	return s.containerRepo.FindAllNewestFirst()
}

func (s *containerServiceImpl) CreateContainer(name string, image *multipart.FileHeader) (*models.Container, error) {
	if name == "" || image == nil {
		return nil, NewValidationError("name and image are required")
	}
	imagePath, err := s.imageService.Store(image)
	if err != nil {
		return nil, err
	}
	container := &models.Container{Name: name, ImagePath: imagePath}
	if err := s.containerRepo.Create(container); err != nil {
		return nil, err
	}
	return container, nil
}

// DeleteContainer cascades: item images, item rows, the container's own
// image, then the container row. File removal is best-effort; a database
// failure aborts the rest of the sequence. The cascade is not atomic.
func (s *containerServiceImpl) DeleteContainer(id uint) error {
	paths, err := s.itemRepo.ImagePathsByContainer(id)
	if err != nil {
		s.logService.Log.Warnf("could not list item images for container %d: %v", id, err)
		paths = nil
	}
	for _, path := range paths {
		s.imageService.Remove(path)
	}

	if err := s.itemRepo.DeleteByContainer(id); err != nil {
		return err
	}

	imagePath, err := s.containerRepo.ImagePath(id)
	if err != nil {
		s.logService.Log.Warnf("could not look up image for container %d: %v", id, err)
	} else {
		s.imageService.Remove(imagePath)
	}

	return s.containerRepo.Delete(id)
}
