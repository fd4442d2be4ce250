package handlers

import (
	"errors"
	"log"

	"kodeks24/internal/repositories"
	"kodeks24/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ToggleRequest represents the request body for cart and wishlist toggles.
type ToggleRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
}

// CartHandler handles HTTP requests for the user's cart.
type CartHandler struct {
	service  *services.CartService
	validate *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the cart routes with the Fiber app. Both routes
// require authentication.
func (h *CartHandler) RegisterRoutes(router fiber.Router, requireAuth fiber.Handler) {
	cartRoutes := router.Group("/cart", requireAuth)
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Post("/", h.HandleToggle)
}

// HandleGetCart lists the caller's cart entries.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	entries, err := h.service.GetCart(userID)
	if err != nil {
		log.Printf("Error getting cart for %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve cart",
			"error":   err.Error(),
		})
	}
	return c.JSON(entries)
}

// HandleToggle flips cart membership for the given product, moving stock
// with it. Out-of-stock products cannot be added.
func (h *CartHandler) HandleToggle(c *fiber.Ctx) error {
	var req ToggleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  formatValidationErrors(err),
		})
	}

	userID, _ := c.Locals("user_id").(string)
	result, err := h.service.Toggle(userID, req.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		case errors.Is(err, repositories.ErrOutOfStock):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Product is out of stock",
			})
		}
		log.Printf("Error toggling cart for %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update cart",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{"status": string(result)})
}

// WishlistHandler handles HTTP requests for the user's wishlist.
type WishlistHandler struct {
	service  *services.WishlistService
	validate *validator.Validate
}

// NewWishlistHandler creates a new WishlistHandler.
func NewWishlistHandler(service *services.WishlistService) *WishlistHandler {
	return &WishlistHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the wishlist routes with the Fiber app. Both
// routes require authentication.
func (h *WishlistHandler) RegisterRoutes(router fiber.Router, requireAuth fiber.Handler) {
	wishlistRoutes := router.Group("/wishlist", requireAuth)
	wishlistRoutes.Get("/", h.HandleGetWishlist)
	wishlistRoutes.Post("/", h.HandleToggle)
}

// HandleGetWishlist lists the caller's wishlist entries.
func (h *WishlistHandler) HandleGetWishlist(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	entries, err := h.service.GetWishlist(userID)
	if err != nil {
		log.Printf("Error getting wishlist for %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve wishlist",
			"error":   err.Error(),
		})
	}
	return c.JSON(entries)
}

// HandleToggle flips wishlist membership for the given product.
func (h *WishlistHandler) HandleToggle(c *fiber.Ctx) error {
	var req ToggleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  formatValidationErrors(err),
		})
	}

	userID, _ := c.Locals("user_id").(string)
	result, err := h.service.Toggle(userID, req.ProductID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		}
		log.Printf("Error toggling wishlist for %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update wishlist",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{"status": string(result)})
}
