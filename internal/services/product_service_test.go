package services_test

import (
	"testing"

	"kodeks24/internal/models"
	"kodeks24/internal/repositories"
	"kodeks24/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll(filter repositories.ProductFilter) ([]models.Product, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) GetBySlug(slug string) (*models.Product, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestProductService_GetProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	expected := []models.Product{
		{ID: "1", Name: "Product A", Price: 10, Quantity: 100},
		{ID: "2", Name: "Product B", Price: 20, Quantity: 50},
	}
	filter := repositories.ProductFilter{Search: "Product"}

	mockRepo.On("GetAll", filter).Return(expected, nil).Once()

	products, err := service.GetProducts(filter)

	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, expected, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductBySlug(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	expected := &models.Product{ID: "1", Name: "Product A", Slug: "product-a"}

	mockRepo.On("GetBySlug", "product-a").Return(expected, nil).Once()
	product, err := service.GetProductBySlug("product-a")
	assert.NoError(t, err)
	assert.Equal(t, expected, product)

	mockRepo.On("GetBySlug", "missing").Return(nil, repositories.ErrNotFound).Once()
	product, err = service.GetProductBySlug("missing")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.Nil(t, product)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	newProduct := &models.Product{Name: "New Product", Price: 50, Quantity: 20}

	// The caller becomes the owner before the repository sees the row.
	mockRepo.On("Create", mock.MatchedBy(func(p *models.Product) bool {
		return p.OwnerID == "user-1"
	})).Return(nil).Once()

	err := service.CreateProduct(newProduct, "user-1")
	assert.NoError(t, err)
	assert.Equal(t, "user-1", newProduct.OwnerID)
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProductOwnership(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	existing := &models.Product{ID: "p1", Name: "Old Name", Price: 10, Quantity: 5, OwnerID: "user-1", CategoryID: "c1"}
	changes := &models.Product{Name: "New Name", Price: 15, Quantity: 3}

	// A stranger cannot modify the product.
	mockRepo.On("GetByID", "p1").Return(existing, nil).Once()
	_, err := service.UpdateProduct("p1", changes, "user-2", false)
	assert.ErrorIs(t, err, services.ErrNotOwner)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything)

	// The owner can; unset category keeps the old one.
	mockRepo.On("GetByID", "p1").Return(existing, nil).Once()
	mockRepo.On("Update", mock.MatchedBy(func(p *models.Product) bool {
		return p.ID == "p1" && p.Name == "New Name" && p.Price == 15 && p.CategoryID == "c1"
	})).Return(nil).Once()
	updated, err := service.UpdateProduct("p1", changes, "user-1", false)
	assert.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	mockRepo.AssertExpectations(t)
}

func TestProductService_DeleteProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	existing := &models.Product{ID: "p1", OwnerID: "user-1"}

	mockRepo.On("GetByID", "p1").Return(existing, nil).Twice()

	err := service.DeleteProduct("p1", "user-2", false)
	assert.ErrorIs(t, err, services.ErrNotOwner)

	// Staff may delete products they do not own.
	mockRepo.On("Delete", "p1").Return(nil).Once()
	err = service.DeleteProduct("p1", "user-2", true)
	assert.NoError(t, err)

	mockRepo.On("GetByID", "missing").Return(nil, repositories.ErrNotFound).Once()
	err = service.DeleteProduct("missing", "user-1", false)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockRepo.AssertExpectations(t)
}
