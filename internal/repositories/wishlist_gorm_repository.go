package repositories

import (
	"fmt"

	"kodeks24/internal/models"

	"gorm.io/gorm"
)

// GORMWishlistRepository is a GORM implementation of WishlistRepository.
type GORMWishlistRepository struct {
	db *gorm.DB
}

// NewGORMWishlistRepository creates a new instance of GORMWishlistRepository.
func NewGORMWishlistRepository(db *gorm.DB) *GORMWishlistRepository {
	return &GORMWishlistRepository{
		db: db,
	}
}

// Toggle flips wishlist membership for (user, product): get-or-create the
// row, and if it already existed, delete it instead.
func (r *GORMWishlistRepository) Toggle(userID, productID string) (ToggleResult, error) {
	var count int64
	if err := r.db.Model(&models.Product{}).Where("id = ?", productID).Count(&count).Error; err != nil {
		return "", fmt.Errorf("failed to look up product %s: %w", productID, err)
	}
	if count == 0 {
		return "", ErrNotFound
	}

	// Get-or-create atomically; two concurrent adds cannot trip over the
	// unique index.
	var entry models.Wishlist
	res := r.db.Where(models.Wishlist{UserID: userID, ProductID: productID}).FirstOrCreate(&entry)
	if res.Error != nil {
		return "", fmt.Errorf("failed to toggle wishlist entry: %w", res.Error)
	}
	if res.RowsAffected > 0 {
		return ToggleAdded, nil
	}

	if err := r.db.Delete(&entry).Error; err != nil {
		return "", fmt.Errorf("failed to remove wishlist entry: %w", err)
	}
	return ToggleRemoved, nil
}

// GetByUser retrieves the user's wishlist with products preloaded.
func (r *GORMWishlistRepository) GetByUser(userID string) ([]models.Wishlist, error) {
	var entries []models.Wishlist
	err := r.db.Preload("Product").Preload("Product.Category").
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get wishlist for user %s: %w", userID, err)
	}
	return entries, nil
}
