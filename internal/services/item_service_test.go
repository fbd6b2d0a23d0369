package services

import (
	"Stowed/internal/models"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func stringPtr(value string) *string {
	return &value
}

func floatPtr(value float64) *float64 {
	return &value
}

func newItemServiceForTest() (ItemService, *MockItemRepository, *MockImageService) {
	itemRepo := new(MockItemRepository)
	imageService := new(MockImageService)
	service := NewItemService(itemRepo, imageService)
	return service, itemRepo, imageService
}

func TestItemService_GetItemsByContainer(t *testing.T) {
	service, itemRepo, _ := newItemServiceForTest()

	items := []models.ClothingItem{
		{BaseModel: models.BaseModel{ID: 2}, ContainerID: 1, Name: "Jacket"},
		{BaseModel: models.BaseModel{ID: 1}, ContainerID: 1, Name: "Shirt"},
	}
	itemRepo.On("FindByContainer", uint(1)).Return(items, nil)

	found, err := service.GetItemsByContainer(1)

	assert.NoError(t, err)
	assert.Len(t, found, 2)
	itemRepo.AssertExpectations(t)
}

func TestItemService_CreateItem_WithoutImage(t *testing.T) {
	service, itemRepo, imageService := newItemServiceForTest()

	itemRepo.On("Create", mock.AnythingOfType("*models.ClothingItem")).Return(nil)

	item, err := service.CreateItem(1, "Shirt", nil, nil, nil, nil, nil)

	assert.NoError(t, err)
	assert.Equal(t, uint(1), item.ContainerID)
	assert.Equal(t, "Shirt", item.Name)
	assert.Nil(t, item.ImagePath)
	assert.False(t, item.Sold)
	imageService.AssertNotCalled(t, "Store", mock.Anything)
	itemRepo.AssertExpectations(t)
}

func TestItemService_CreateItem_WithImage(t *testing.T) {
	service, itemRepo, imageService := newItemServiceForTest()

	image := &multipart.FileHeader{Filename: "shirt.jpg"}
	imageService.On("Store", image).Return("uploads/1700000000000-shirt.jpg", nil)
	itemRepo.On("Create", mock.AnythingOfType("*models.ClothingItem")).Return(nil)

	item, err := service.CreateItem(1, "Shirt", image, floatPtr(10), floatPtr(25), stringPtr("2024-01-15"), stringPtr("winter box"))

	assert.NoError(t, err)
	assert.Equal(t, "uploads/1700000000000-shirt.jpg", *item.ImagePath)
	assert.Equal(t, 10.0, *item.PurchasePrice)
	assert.Equal(t, 25.0, *item.SellPrice)
	itemRepo.AssertExpectations(t)
	imageService.AssertExpectations(t)
}

func TestItemService_CreateItem_MissingRequired(t *testing.T) {
	service, itemRepo, _ := newItemServiceForTest()

	var validationErr *ValidationError

	item, err := service.CreateItem(0, "Shirt", nil, nil, nil, nil, nil)
	assert.Nil(t, item)
	assert.ErrorAs(t, err, &validationErr)

	item, err = service.CreateItem(1, "", nil, nil, nil, nil, nil)
	assert.Nil(t, item)
	assert.ErrorAs(t, err, &validationErr)

	itemRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestItemService_UpdateItem_MissingID(t *testing.T) {
	service, itemRepo, _ := newItemServiceForTest()

	itemRepo.On("UpdateFull", uint(99), "Ghost", false, (*float64)(nil), (*float64)(nil), (*string)(nil), (*string)(nil)).Return(nil, nil)

	item, err := service.UpdateItem(99, "Ghost", false, nil, nil, nil, nil)

	assert.NoError(t, err)
	assert.Nil(t, item)
	itemRepo.AssertExpectations(t)
}

func TestItemService_DeleteItem_RemovesImageFirst(t *testing.T) {
	service, itemRepo, imageService := newItemServiceForTest()

	item := &models.ClothingItem{BaseModel: models.BaseModel{ID: 1}, ContainerID: 1, Name: "Shirt", ImagePath: stringPtr("uploads/1-shirt.jpg")}
	itemRepo.On("FindByID", uint(1)).Return(item, nil)
	imageService.On("Remove", "uploads/1-shirt.jpg").Return()
	itemRepo.On("Delete", uint(1)).Return(nil)

	err := service.DeleteItem(1)

	assert.NoError(t, err)
	itemRepo.AssertExpectations(t)
	imageService.AssertExpectations(t)
}

func TestItemService_DeleteItem_NoImage(t *testing.T) {
	service, itemRepo, imageService := newItemServiceForTest()

	item := &models.ClothingItem{BaseModel: models.BaseModel{ID: 1}, ContainerID: 1, Name: "Shirt"}
	itemRepo.On("FindByID", uint(1)).Return(item, nil)
	itemRepo.On("Delete", uint(1)).Return(nil)

	err := service.DeleteItem(1)

	assert.NoError(t, err)
	imageService.AssertNotCalled(t, "Remove", mock.Anything)
	itemRepo.AssertExpectations(t)
}

func TestItemService_DeleteItem_MissingID(t *testing.T) {
	service, itemRepo, _ := newItemServiceForTest()

	itemRepo.On("FindByID", uint(42)).Return(nil, gorm.ErrRecordNotFound)
	itemRepo.On("Delete", uint(42)).Return(nil)

	err := service.DeleteItem(42)

	assert.NoError(t, err)
	itemRepo.AssertExpectations(t)
}
