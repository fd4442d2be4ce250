package services

import (
	"errors"

	"kodeks24/internal/models"
	"kodeks24/internal/repositories"
)

// ErrNotOwner is returned when a caller tries to modify a product they do not
// own. Staff accounts bypass the check.
var ErrNotOwner = errors.New("product belongs to another user")

// ProductService handles business logic related to products.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// GetProducts retrieves products matching the filter.
func (s *ProductService) GetProducts(filter repositories.ProductFilter) ([]models.Product, error) {
	return s.repo.GetAll(filter)
}

// GetProductBySlug retrieves a single product by its slug.
func (s *ProductService) GetProductBySlug(slug string) (*models.Product, error) {
	return s.repo.GetBySlug(slug)
}

// CreateProduct creates a new product owned by ownerID. The slug is assigned
// by the repository.
func (s *ProductService) CreateProduct(product *models.Product, ownerID string) error {
	product.OwnerID = ownerID
	return s.repo.Create(product)
}

// UpdateProduct applies changes to the product with the given ID after
// checking that the caller owns it. The slug is re-derived from the new name.
func (s *ProductService) UpdateProduct(id string, changes *models.Product, callerID string, isStaff bool) (*models.Product, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !isStaff && existing.OwnerID != callerID {
		return nil, ErrNotOwner
	}

	existing.Name = changes.Name
	existing.Price = changes.Price
	existing.Quantity = changes.Quantity
	existing.Description = changes.Description
	if changes.CategoryID != "" {
		existing.CategoryID = changes.CategoryID
	}
	// Drop the preloaded associations so the save touches only the product row.
	existing.Category = nil
	existing.Owner = nil
	existing.Images = nil
	if err := s.repo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteProduct deletes the product with the given ID after checking that the
// caller owns it.
func (s *ProductService) DeleteProduct(id, callerID string, isStaff bool) error {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if !isStaff && existing.OwnerID != callerID {
		return ErrNotOwner
	}
	return s.repo.Delete(id)
}
