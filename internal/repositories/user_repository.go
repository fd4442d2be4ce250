package repositories

import "kodeks24/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetAll() ([]models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	// GetByIdentifier resolves a login handle that may be either an email or
	// a username.
	GetByIdentifier(identifier string) (*models.User, error)
	GetByID(id string) (*models.User, error)
}
