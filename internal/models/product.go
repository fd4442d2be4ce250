package models

import "time"

// Category groups products. The slug is derived from the name on save and is
// unique among categories.
type Category struct {
	ID   string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name string `json:"name" gorm:"type:varchar(255)" validate:"required,min=1,max=255"`
	Slug string `json:"slug" gorm:"uniqueIndex;type:varchar(255)"`
}

// Product represents an item for sale. Quantity is the stock level and is
// mutated by cart toggles; it never goes below zero.
type Product struct {
	ID          string         `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string         `json:"name" gorm:"type:varchar(255)" validate:"required,min=1,max=255"`
	Slug        string         `json:"slug" gorm:"uniqueIndex;type:varchar(255)"`
	Price       int            `json:"price" validate:"required,gt=0"`
	Quantity    int            `json:"quantity" gorm:"not null;default:0" validate:"gte=0"`
	Description string         `json:"description" gorm:"type:text" validate:"omitempty,max=5000"`
	CategoryID  string         `json:"category_id" gorm:"type:varchar(36);index" validate:"required"`
	Category    *Category      `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	OwnerID     string         `json:"owner_id" gorm:"type:varchar(36);index"`
	Owner       *User          `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Images      []ProductImage `json:"images,omitempty" gorm:"foreignKey:ProductID"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"-"`
}

// ProductImage is one of up to three images attached to a product. The 1-3
// bound is enforced by the administrative tooling, not here.
type ProductImage struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	ProductID string `json:"product_id" gorm:"type:varchar(36);index"`
	Image     string `json:"image" gorm:"type:varchar(500)"`
}
