package repositories

import (
	"errors"
	"fmt"
	"strings"

	"kodeks24/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// orderings whitelists the sortable columns for product listings.
var orderings = map[string]string{
	"price":     "price",
	"-price":    "price DESC",
	"quantity":  "quantity",
	"-quantity": "quantity DESC",
	"category":  "category_id",
	"-category": "category_id DESC",
}

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// GetAll retrieves products matching the filter, with category and owner
// preloaded for the nested response representation.
func (r *GORMProductRepository) GetAll(filter ProductFilter) ([]models.Product, error) {
	query := r.db.Preload("Category").Preload("Owner").Preload("Images")

	if filter.CategorySlug != "" {
		query = query.Joins("JOIN categories ON categories.id = products.category_id").
			Where("categories.slug = ?", filter.CategorySlug)
	}
	if filter.OwnerID != "" {
		query = query.Where("owner_id = ?", filter.OwnerID)
	}
	if filter.Search != "" {
		// LOWER on both sides keeps the match case-insensitive on every
		// dialect; postgres LIKE alone is case-sensitive.
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(products.name) LIKE ? OR LOWER(products.description) LIKE ?", pattern, pattern)
	}
	if order, ok := orderings[filter.Ordering]; ok {
		query = query.Order(order)
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID from the database.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	return r.first("products.id = ?", id)
}

// GetBySlug retrieves a single product by its slug from the database.
func (r *GORMProductRepository) GetBySlug(slug string) (*models.Product, error) {
	return r.first("products.slug = ?", slug)
}

// Create assigns a unique slug from the product name and inserts the row.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	slug, err := assignUniqueSlug(product.Name, r.slugExists)
	if err != nil {
		return err
	}
	product.Slug = slug
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update re-derives the slug from the (possibly renamed) product and saves
// all fields.
func (r *GORMProductRepository) Update(product *models.Product) error {
	slug, err := assignUniqueSlug(product.Name, func(candidate string) (bool, error) {
		var count int64
		err := r.db.Model(&models.Product{}).
			Where("slug = ? AND id <> ?", candidate, product.ID).
			Count(&count).Error
		return count > 0, err
	})
	if err != nil {
		return err
	}
	product.Slug = slug

	res := r.db.Save(product)
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete deletes a product by its ID from the database.
func (r *GORMProductRepository) Delete(id string) error {
	res := r.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GORMProductRepository) first(query string, args ...interface{}) (*models.Product, error) {
	var product models.Product
	err := r.db.Preload("Category").Preload("Owner").Preload("Images").
		First(&product, append([]interface{}{query}, args...)...).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return &product, nil
}

func (r *GORMProductRepository) slugExists(candidate string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Product{}).Where("slug = ?", candidate).Count(&count).Error
	return count > 0, err
}

// GORMCategoryRepository is a GORM implementation of CategoryRepository.
type GORMCategoryRepository struct {
	db *gorm.DB
}

// NewGORMCategoryRepository creates a new instance of GORMCategoryRepository.
func NewGORMCategoryRepository(db *gorm.DB) *GORMCategoryRepository {
	return &GORMCategoryRepository{
		db: db,
	}
}

// GetAll retrieves all categories.
func (r *GORMCategoryRepository) GetAll() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return categories, nil
}

// GetBySlug retrieves a category by its slug.
func (r *GORMCategoryRepository) GetBySlug(slug string) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &category, nil
}

// Create assigns a unique slug from the category name and inserts the row.
func (r *GORMCategoryRepository) Create(category *models.Category) error {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	slug, err := assignUniqueSlug(category.Name, func(candidate string) (bool, error) {
		var count int64
		err := r.db.Model(&models.Category{}).Where("slug = ?", candidate).Count(&count).Error
		return count > 0, err
	})
	if err != nil {
		return err
	}
	category.Slug = slug
	if err := r.db.Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}
