// Package seed fills an empty database with demo data.
package seed

import (
	"errors"
	"fmt"

	"storefront/internal/logger"
	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	DemoEmail    = "user@example.com"
	DemoPassword = "password123"
	DemoCategory = "General"
	DemoProduct  = "Sample Product"
)

var demoPrice = decimal.RequireFromString("99.99")

// Run creates the demo user, category, product and one PENDING order.
// Rows that already exist are reused, so running it twice is harmless.
func Run(db *gorm.DB) error {
	userRepo := repositories.NewGORMUserRepository(db)
	categoryRepo := repositories.NewGORMCategoryRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)

	user, err := ensureUser(userRepo)
	if err != nil {
		return err
	}
	category, err := ensureCategory(services.NewCategoryService(categoryRepo))
	if err != nil {
		return err
	}
	product, err := ensureProduct(productRepo, category)
	if err != nil {
		return err
	}

	orders, err := orderRepo.GetAll()
	if err != nil {
		return err
	}
	for _, o := range orders {
		if o.UserID == user.ID && o.ProductID == product.ID {
			logger.L().Info("seed order exists", zap.String("order_id", o.ID))
			return nil
		}
	}

	order, err := services.NewOrderService(orderRepo, productRepo, userRepo, nil).CreateOrder(services.CreateOrderInput{
		UserID:    user.ID,
		ProductID: product.ID,
		Quantity:  1,
	})
	if err != nil {
		return fmt.Errorf("failed to seed order: %w", err)
	}
	logger.L().Info("seeded order", zap.String("order_id", order.ID), zap.String("total_price", order.TotalPrice.String()))
	return nil
}

func ensureUser(repo repositories.UserRepository) (*models.User, error) {
	user, err := services.NewAuthService(repo, "").RegisterUser(DemoEmail, DemoPassword)
	if errors.Is(err, services.ErrEmailTaken) {
		return repo.GetByEmail(DemoEmail)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to seed user: %w", err)
	}
	if user, err = repo.Update(user.ID, map[string]interface{}{"name": "Mock User"}); err != nil {
		return nil, err
	}
	logger.L().Info("seeded user", zap.String("email", user.Email))
	return user, nil
}

func ensureCategory(svc *services.CategoryService) (*models.Category, error) {
	category, err := svc.CreateCategory(DemoCategory)
	if errors.Is(err, services.ErrCategoryExists) {
		return svc.ResolveByName(DemoCategory)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to seed category: %w", err)
	}
	logger.L().Info("seeded category", zap.String("name", category.Name))
	return category, nil
}

// ensureProduct writes the product straight to the repository; the demo
// product has no image.
func ensureProduct(repo repositories.ProductRepository, category *models.Category) (*models.Product, error) {
	products, err := repo.GetAll()
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].Name == DemoProduct {
			return &products[i], nil
		}
	}

	product := &models.Product{
		Name:        DemoProduct,
		Description: "Demo product created by the seed command",
		Price:       demoPrice,
		Quantity:    10,
		CategoryID:  &category.ID,
	}
	if err := repo.Create(product); err != nil {
		return nil, fmt.Errorf("failed to seed product: %w", err)
	}
	logger.L().Info("seeded product", zap.String("product_id", product.ID))
	return product, nil
}
