package repositories

import "kodeks24/internal/models"

// CartRepository defines the interface for cart data access. Toggle flips
// (user, product) membership and moves the product's stock with it.
type CartRepository interface {
	Toggle(userID, productID string) (ToggleResult, error)
	GetByUser(userID string) ([]models.Cart, error)
}

// WishlistRepository defines the interface for wishlist data access.
type WishlistRepository interface {
	Toggle(userID, productID string) (ToggleResult, error)
	GetByUser(userID string) ([]models.Wishlist, error)
}
