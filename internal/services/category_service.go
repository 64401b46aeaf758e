package services

import (
	"errors"
	"fmt"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

// CategoryService handles business logic related to categories.
type CategoryService struct {
	repo repositories.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo repositories.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// CreateCategory stores a new category. Names are unique.
func (s *CategoryService) CreateCategory(name string) (*models.Category, error) {
	category := &models.Category{Name: name}
	if err := s.repo.Create(category); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, fmt.Errorf("%q: %w", name, ErrCategoryExists)
		}
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) ListCategories() ([]models.Category, error) {
	return s.repo.GetAll()
}

// ResolveByName finds the category with exactly this name. It never
// creates one.
func (s *CategoryService) ResolveByName(name string) (*models.Category, error) {
	category, err := s.repo.GetByName(name)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%q: %w", name, ErrCategoryNotFound)
		}
		return nil, err
	}
	return category, nil
}
