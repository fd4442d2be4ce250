package models

import "time"

// User represents an account in the store. Email is the primary login handle
// but the username works too; both are unique. Phone number is optional and
// unique when present.
type User struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username    string    `json:"username" gorm:"uniqueIndex;type:varchar(150)" validate:"required,min=3,max=150"`
	Email       *string   `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"omitempty,email"`
	PhoneNumber *string   `json:"phone_number" gorm:"uniqueIndex;type:varchar(25)"`
	Password    string    `json:"-" gorm:"type:varchar(255)"` // bcrypt hash, never serialized
	FirstName   string    `json:"first_name" gorm:"type:varchar(150)"`
	LastName    string    `json:"last_name" gorm:"type:varchar(150)"`
	IsActive    bool      `json:"is_active"`
	IsStaff     bool      `json:"is_staff"`
	IsSuperuser bool      `json:"-"`
	JoinedAt    time.Time `json:"date_joined" gorm:"autoCreateTime"`
}
