package repositories

import (
	"errors"
	"fmt"

	"kodeks24/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{
		db: db,
	}
}

// Toggle adds the product to the user's cart, decrementing its stock, or
// removes it and returns the stock. The whole read-check-write runs in one
// transaction holding a row lock on the product, so concurrent toggles on
// the same product cannot oversell.
func (r *GORMCartRepository) Toggle(userID, productID string) (ToggleResult, error) {
	var result ToggleResult
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := lockForUpdate(tx).First(&product, "id = ?", productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to load product %s: %w", productID, err)
		}

		var entry models.Cart
		err := tx.First(&entry, "user_id = ? AND product_id = ?", userID, productID).Error
		switch {
		case err == nil:
			if err := tx.Delete(&entry).Error; err != nil {
				return fmt.Errorf("failed to remove cart entry: %w", err)
			}
			if err := tx.Model(&product).Update("quantity", gorm.Expr("quantity + 1")).Error; err != nil {
				return fmt.Errorf("failed to return stock for product %s: %w", productID, err)
			}
			result = ToggleRemoved
			return nil

		case errors.Is(err, gorm.ErrRecordNotFound):
			if product.Quantity <= 0 {
				return ErrOutOfStock
			}
			entry = models.Cart{UserID: userID, ProductID: productID, Quantity: 1}
			if err := tx.Create(&entry).Error; err != nil {
				return fmt.Errorf("failed to create cart entry: %w", err)
			}
			if err := tx.Model(&product).Update("quantity", gorm.Expr("quantity - 1")).Error; err != nil {
				return fmt.Errorf("failed to take stock for product %s: %w", productID, err)
			}
			result = ToggleAdded
			return nil

		default:
			return fmt.Errorf("failed to look up cart entry: %w", err)
		}
	})
	if err != nil {
		return "", err
	}
	return result, nil
}

// GetByUser retrieves the user's cart entries with products preloaded.
func (r *GORMCartRepository) GetByUser(userID string) ([]models.Cart, error) {
	var entries []models.Cart
	err := r.db.Preload("Product").Preload("Product.Category").
		Where("user_id = ?", userID).
		Order("added_at").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get cart for user %s: %w", userID, err)
	}
	return entries, nil
}

// lockForUpdate takes a SELECT ... FOR UPDATE row lock where the dialect
// supports one. SQLite serializes writers on its own and rejects the clause.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}
