package models

import "time"

// Wishlist marks a product as wished by a user. One row per (user, product);
// membership is flipped by the toggle endpoint.
type Wishlist struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"type:varchar(36);uniqueIndex:idx_wishlist_user_product"`
	ProductID string    `json:"product_id" gorm:"type:varchar(36);uniqueIndex:idx_wishlist_user_product"`
	Product   *Product  `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Cart holds a product reserved by a user. One row per (user, product); the
// row's existence is coupled to a stock decrement on the product, so create
// and delete always run in the same transaction as the quantity update.
type Cart struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"type:varchar(36);uniqueIndex:idx_cart_user_product"`
	ProductID string    `json:"product_id" gorm:"type:varchar(36);uniqueIndex:idx_cart_user_product"`
	Product   *Product  `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Quantity  int       `json:"quantity" gorm:"default:1"`
	AddedAt   time.Time `json:"added_at" gorm:"autoCreateTime"`
}
