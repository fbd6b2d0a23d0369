package repository

import (
	"Stowed/internal/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDBWithContainers() *gorm.DB {
	db, _ := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	err := db.AutoMigrate(&models.Container{}, &models.ClothingItem{})
	if err != nil {
		panic(err)
	}
	return db
}

func TestContainerRepository_Create(t *testing.T) {
	db := setupTestDBWithContainers()
	containerRepo := NewContainerRepository(db)

	container := &models.Container{Name: "Bin1", ImagePath: "uploads/1-bin.jpg"}
	err := containerRepo.Create(container)

	assert.NoError(t, err)
	assert.NotZero(t, container.ID)
	assert.False(t, container.CreatedAt.IsZero())
}

func TestContainerRepository_FindAllNewestFirst(t *testing.T) {
	db := setupTestDBWithContainers()
	containerRepo := NewContainerRepository(db)

	older := &models.Container{Name: "Older", ImagePath: "uploads/1-a.jpg"}
	older.CreatedAt = time.Now().Add(-time.Hour)
	err := containerRepo.Create(older)
	assert.NoError(t, err)

	err = containerRepo.Create(&models.Container{Name: "First", ImagePath: "uploads/2-b.jpg"})
	assert.NoError(t, err)
	err = containerRepo.Create(&models.Container{Name: "Second", ImagePath: "uploads/3-c.jpg"})
	assert.NoError(t, err)

	containers, err := containerRepo.FindAllNewestFirst()

	assert.NoError(t, err)
	assert.Len(t, containers, 3)
	assert.Equal(t, "Second", containers[0].Name)
	assert.Equal(t, "First", containers[1].Name)
	assert.Equal(t, "Older", containers[2].Name)
}

func TestContainerRepository_ImagePath(t *testing.T) {
	db := setupTestDBWithContainers()
	containerRepo := NewContainerRepository(db)

	container := &models.Container{Name: "Bin1", ImagePath: "uploads/1-bin.jpg"}
	err := containerRepo.Create(container)
	assert.NoError(t, err)

	path, err := containerRepo.ImagePath(container.ID)
	assert.NoError(t, err)
	assert.Equal(t, "uploads/1-bin.jpg", path)
}

func TestContainerRepository_ImagePath_Missing(t *testing.T) {
	db := setupTestDBWithContainers()
	containerRepo := NewContainerRepository(db)

	path, err := containerRepo.ImagePath(42)

	assert.NoError(t, err)
	assert.Empty(t, path)
}

func TestContainerRepository_AllImagePaths(t *testing.T) {
	db := setupTestDBWithContainers()
	containerRepo := NewContainerRepository(db)

	err := containerRepo.Create(&models.Container{Name: "Bin1", ImagePath: "uploads/1-a.jpg"})
	assert.NoError(t, err)
	err = containerRepo.Create(&models.Container{Name: "Bin2", ImagePath: "uploads/2-b.jpg"})
	assert.NoError(t, err)

	paths, err := containerRepo.AllImagePaths()

	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"uploads/1-a.jpg", "uploads/2-b.jpg"}, paths)
}

func TestContainerRepository_Delete(t *testing.T) {
	db := setupTestDBWithContainers()
	containerRepo := NewContainerRepository(db)

	container := &models.Container{Name: "To Delete", ImagePath: "uploads/1-x.jpg"}
	err := containerRepo.Create(container)
	assert.NoError(t, err)

	err = containerRepo.Delete(container.ID)
	assert.NoError(t, err)

	_, err = containerRepo.FindByID(container.ID)
	assert.Equal(t, gorm.ErrRecordNotFound, err)
}

func TestContainerRepository_Delete_Missing(t *testing.T) {
	db := setupTestDBWithContainers()
	containerRepo := NewContainerRepository(db)

	err := containerRepo.Delete(1234)

	assert.NoError(t, err)
}
