package services

import (
	"fmt"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

// UserService manages existing user accounts.
type UserService struct {
	repo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// UpdateUserInput carries the profile fields a client may change. Nil
// fields are left as they are.
type UpdateUserInput struct {
	Name *string
	Role *models.Role
}

func (s *UserService) ListUsers() ([]models.User, error) {
	return s.repo.GetAll()
}

func (s *UserService) GetUser(id string) (*models.User, error) {
	return s.repo.GetByID(id)
}

func (s *UserService) UpdateUser(id string, in UpdateUserInput) (*models.User, error) {
	fields := make(map[string]interface{}, 2)
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Role != nil {
		if !in.Role.Valid() {
			return nil, fmt.Errorf("%q: %w", *in.Role, ErrInvalidRole)
		}
		fields["role"] = *in.Role
	}
	return s.repo.Update(id, fields)
}

func (s *UserService) DeleteUser(id string) error {
	return s.repo.Delete(id)
}
