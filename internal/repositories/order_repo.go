package repositories

import (
	"storefront/internal/models"

	"github.com/shopspring/decimal"
)

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	Create(order *models.Order) error
	UpdateStatus(id string, status models.OrderStatus) error
	Count() (int64, error)
	// SumTotalPrice returns zero when there are no orders.
	SumTotalPrice() (decimal.Decimal, error)
}
