package repository

import (
	"Stowed/internal/models"
	"errors"

	"gorm.io/gorm"
)

type ContainerRepository interface {
	GenericRepository[models.Container]
	FindAllNewestFirst() ([]models.Container, error)
	ImagePath(id uint) (string, error)
	AllImagePaths() ([]string, error)
}

type ContainerRepositoryImpl struct {
	GenericRepository[models.Container]
	db *gorm.DB
}

func NewContainerRepository(db *gorm.DB) ContainerRepository {
	return &ContainerRepositoryImpl{
		GenericRepository: NewGenericRepository[models.Container](db),
		db:                db,
	}
}

// FindAllNewestFirst orders by creation time descending, id as tiebreak
// since sqlite timestamps share a second between fast inserts.
func (r *ContainerRepositoryImpl) FindAllNewestFirst() ([]models.Container, error) {
	var containers []models.Container
	err := r.db.Order("created_at DESC, id DESC").Find(&containers).Error
	if err != nil {
		return nil, err
	}
	return containers, nil
}

// ImagePath returns the container's image path, or "" when the row is absent.
func (r *ContainerRepositoryImpl) ImagePath(id uint) (string, error) {
	var container models.Container
	err := r.db.Select("image_path").First(&container, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return container.ImagePath, nil
}

func (r *ContainerRepositoryImpl) AllImagePaths() ([]string, error) {
	var paths []string
	err := r.db.Model(&models.Container{}).Pluck("image_path", &paths).Error
	if err != nil {
		return nil, err
	}
	return paths, nil
}
