package services_test

import (
	"fmt"
	"testing"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCategoryService_CreateCategory(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	svc := services.NewCategoryService(mockRepo)

	mockRepo.On("Create", mock.MatchedBy(func(c *models.Category) bool { return c.Name == "Shoes" })).Return(nil).Once()
	category, err := svc.CreateCategory("Shoes")
	require.NoError(t, err)
	assert.Equal(t, "Shoes", category.Name)

	mockRepo.On("Create", mock.AnythingOfType("*models.Category")).Return(fmt.Errorf("x: %w", repositories.ErrDuplicate)).Once()
	_, err = svc.CreateCategory("Shoes")
	assert.ErrorIs(t, err, services.ErrCategoryExists)
	mockRepo.AssertExpectations(t)
}

func TestCategoryService_ResolveByName(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	svc := services.NewCategoryService(mockRepo)

	mockRepo.On("GetByName", "Shoes").Return(&models.Category{ID: "c1", Name: "Shoes"}, nil).Once()
	mockRepo.On("GetByName", "SHOES").Return(nil, notFound("SHOES")).Once()

	category, err := svc.ResolveByName("Shoes")
	require.NoError(t, err)
	assert.Equal(t, "c1", category.ID)

	_, err = svc.ResolveByName("SHOES")
	assert.ErrorIs(t, err, services.ErrCategoryNotFound)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}
