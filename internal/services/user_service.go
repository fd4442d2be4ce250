package services

import (
	"fmt"

	"kodeks24/internal/models"
	"kodeks24/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// UserService handles the open user listing surface. Self-registration goes
// through AuthService; this creates basic records only.
type UserService struct {
	repo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

// GetUsers retrieves all users ordered by join time.
func (s *UserService) GetUsers() ([]models.User, error) {
	return s.repo.GetAll()
}

// CreateUser creates a basic user record, hashing the password if one was
// provided.
func (s *UserService) CreateUser(user *models.User) error {
	if user.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = string(hashed)
	}
	return s.repo.Create(user)
}
