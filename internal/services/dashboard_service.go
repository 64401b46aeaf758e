package services

import (
	"storefront/internal/models"
	"storefront/internal/repositories"
)

// DashboardService computes store-wide totals.
type DashboardService struct {
	products repositories.ProductRepository
	users    repositories.UserRepository
	orders   repositories.OrderRepository
}

func NewDashboardService(products repositories.ProductRepository, users repositories.UserRepository, orders repositories.OrderRepository) *DashboardService {
	return &DashboardService{products: products, users: users, orders: orders}
}

// Summary counts products, users and orders and sums order revenue.
func (s *DashboardService) Summary() (*models.DashboardSummary, error) {
	var (
		summary models.DashboardSummary
		err     error
	)
	if summary.TotalProducts, err = s.products.Count(); err != nil {
		return nil, err
	}
	if summary.TotalUsers, err = s.users.Count(); err != nil {
		return nil, err
	}
	if summary.TotalOrders, err = s.orders.Count(); err != nil {
		return nil, err
	}
	if summary.TotalRevenue, err = s.orders.SumTotalPrice(); err != nil {
		return nil, err
	}
	return &summary, nil
}
