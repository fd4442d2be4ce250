package repositories

import (
	"kodeks24/internal/models"
)

// ProductFilter narrows and orders product listings. Zero values mean "no
// constraint". Ordering accepts price, quantity and category, each with an
// optional leading "-" for descending.
type ProductFilter struct {
	CategorySlug string
	OwnerID      string
	Search       string
	Ordering     string
}

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll(filter ProductFilter) ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	GetBySlug(slug string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
}

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	GetAll() ([]models.Category, error)
	GetBySlug(slug string) (*models.Category, error)
	Create(category *models.Category) error
}
