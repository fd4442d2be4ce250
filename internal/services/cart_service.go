package services

import (
	"kodeks24/internal/models"
	"kodeks24/internal/repositories"
)

// CartService handles business logic related to carts. The stock-coupled
// toggle itself lives in the repository so the read-check-write shares one
// transaction with the row lock.
type CartService struct {
	repo repositories.CartRepository
}

// NewCartService creates a new CartService.
func NewCartService(repo repositories.CartRepository) *CartService {
	return &CartService{
		repo: repo,
	}
}

// Toggle flips cart membership of (user, product), moving stock with it.
func (s *CartService) Toggle(userID, productID string) (repositories.ToggleResult, error) {
	return s.repo.Toggle(userID, productID)
}

// GetCart retrieves the user's cart entries.
func (s *CartService) GetCart(userID string) ([]models.Cart, error) {
	return s.repo.GetByUser(userID)
}

// WishlistService handles business logic related to wishlists.
type WishlistService struct {
	repo repositories.WishlistRepository
}

// NewWishlistService creates a new WishlistService.
func NewWishlistService(repo repositories.WishlistRepository) *WishlistService {
	return &WishlistService{
		repo: repo,
	}
}

// Toggle flips wishlist membership of (user, product).
func (s *WishlistService) Toggle(userID, productID string) (repositories.ToggleResult, error) {
	return s.repo.Toggle(userID, productID)
}

// GetWishlist retrieves the user's wishlist entries.
func (s *WishlistService) GetWishlist(userID string) ([]models.Wishlist, error) {
	return s.repo.GetByUser(userID)
}
