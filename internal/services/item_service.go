package services

import (
	"Stowed/internal/models"
	"Stowed/internal/repository"
	"errors"
	"mime/multipart"

	"gorm.io/gorm"
)

type ItemService interface {
	GetItemsByContainer(containerID uint) ([]models.ClothingItem, error)
	CreateItem(containerID uint, name string, image *multipart.FileHeader, purchasePrice, sellPrice *float64, storageDate, notes *string) (*models.ClothingItem, error)
	UpdateItem(id uint, name string, sold bool, purchasePrice, sellPrice *float64, storageDate, notes *string) (*models.ClothingItem, error)
	DeleteItem(id uint) error
}

type itemServiceImpl struct {
	itemRepo     repository.ItemRepository
	imageService ImageService
}

func NewItemService(itemRepo repository.ItemRepository, imageService ImageService) ItemService {
	return &itemServiceImpl{itemRepo: itemRepo, imageService: imageService}
}

func (s *itemServiceImpl) GetItemsByContainer(containerID uint) ([]models.ClothingItem, error) {
	return s.itemRepo.FindByContainer(containerID)
}

func (s *itemServiceImpl) CreateItem(containerID uint, name string, image *multipart.FileHeader, purchasePrice, sellPrice *float64, storageDate, notes *string) (*models.ClothingItem, error) {
	if containerID == 0 || name == "" {
		return nil, NewValidationError("container ID and name are required")
	}

	var imagePath *string
	if image != nil {
		path, err := s.imageService.Store(image)
		if err != nil {
			return nil, err
		}
		imagePath = &path
	}

	item := &models.ClothingItem{
		ContainerID:   containerID,
		Name:          name,
		ImagePath:     imagePath,
		PurchasePrice: purchasePrice,
		SellPrice:     sellPrice,
		StorageDate:   storageDate,
		Notes:         notes,
	}
	if err := s.itemRepo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateItem overwrites the full record; omitted optional fields become
// NULL. An absent id yields (nil, nil), not a not-found error.
func (s *itemServiceImpl) UpdateItem(id uint, name string, sold bool, purchasePrice, sellPrice *float64, storageDate, notes *string) (*models.ClothingItem, error) {
	return s.itemRepo.UpdateFull(id, name, sold, purchasePrice, sellPrice, storageDate, notes)
}

// DeleteItem removes the item's image file before the row. An unknown id
// is success either way.
func (s *itemServiceImpl) DeleteItem(id uint) error {
	item, err := s.itemRepo.FindByID(id)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if err == nil && item.ImagePath != nil {
		s.imageService.Remove(*item.ImagePath)
	}
	return s.itemRepo.Delete(id)
}
