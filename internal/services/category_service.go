package services

import (
	"kodeks24/internal/models"
	"kodeks24/internal/repositories"
)

// CategoryService handles business logic related to categories.
type CategoryService struct {
	repo repositories.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo repositories.CategoryRepository) *CategoryService {
	return &CategoryService{
		repo: repo,
	}
}

// GetCategories retrieves all categories.
func (s *CategoryService) GetCategories() ([]models.Category, error) {
	return s.repo.GetAll()
}

// CreateCategory creates a new category. The slug is assigned by the
// repository.
func (s *CategoryService) CreateCategory(category *models.Category) error {
	return s.repo.Create(category)
}
