package repository

import (
	"Stowed/internal/models"
	"errors"

	"gorm.io/gorm"
)

type ItemRepository interface {
	GenericRepository[models.ClothingItem]
	FindByContainer(containerID uint) ([]models.ClothingItem, error)
	UpdateFull(id uint, name string, sold bool, purchasePrice, sellPrice *float64, storageDate, notes *string) (*models.ClothingItem, error)
	ImagePathsByContainer(containerID uint) ([]string, error)
	DeleteByContainer(containerID uint) error
	AllImagePaths() ([]string, error)
}

type ItemRepositoryImpl struct {
	GenericRepository[models.ClothingItem]
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &ItemRepositoryImpl{
		GenericRepository: NewGenericRepository[models.ClothingItem](db),
		db:                db,
	}
}

// FindByContainer lists a container's items newest first. An unknown
// container id yields an empty slice, not an error.
func (r *ItemRepositoryImpl) FindByContainer(containerID uint) ([]models.ClothingItem, error) {
	var items []models.ClothingItem
	err := r.db.Where("container_id = ?", containerID).
		Order("created_at DESC, id DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateFull overwrites every mutable column unconditionally. Nil pointers
// are written as NULL, not skipped, which is why this goes through a map
// update instead of a struct update. Returns (nil, nil) when id is absent.
func (r *ItemRepositoryImpl) UpdateFull(id uint, name string, sold bool, purchasePrice, sellPrice *float64, storageDate, notes *string) (*models.ClothingItem, error) {
	updates := map[string]interface{}{
		"name":           name,
		"sold":           sold,
		"purchase_price": purchasePrice,
		"sell_price":     sellPrice,
		"storage_date":   storageDate,
		"notes":          notes,
	}
	err := r.db.Model(&models.ClothingItem{}).Where("id = ?", id).Updates(updates).Error
	if err != nil {
		return nil, err
	}

	item, err := r.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return item, nil
}

func (r *ItemRepositoryImpl) ImagePathsByContainer(containerID uint) ([]string, error) {
	var paths []string
	err := r.db.Model(&models.ClothingItem{}).
		Where("container_id = ? AND image_path IS NOT NULL", containerID).
		Pluck("image_path", &paths).Error
	if err != nil {
		return nil, err
	}
	return paths, nil
}

func (r *ItemRepositoryImpl) DeleteByContainer(containerID uint) error {
	return r.db.Where("container_id = ?", containerID).Delete(&models.ClothingItem{}).Error
}

func (r *ItemRepositoryImpl) AllImagePaths() ([]string, error) {
	var paths []string
	err := r.db.Model(&models.ClothingItem{}).
		Where("image_path IS NOT NULL").
		Pluck("image_path", &paths).Error
	if err != nil {
		return nil, err
	}
	return paths, nil
}
