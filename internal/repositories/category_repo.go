package repositories

import "storefront/internal/models"

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	Create(category *models.Category) error
	GetAll() ([]models.Category, error)
	GetByID(id string) (*models.Category, error)
	// GetByName matches the name exactly, case included.
	GetByName(name string) (*models.Category, error)
}
