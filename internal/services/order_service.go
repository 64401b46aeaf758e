package services

import (
	"encoding/json"
	"fmt"
	"time"

	"storefront/internal/logger"
	"storefront/internal/models"
	"storefront/internal/repositories"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	EventOrderCreated       = "order.created"
	EventOrderStatusUpdated = "order.status_updated"
)

// EventPublisher sends a message to the broker under a routing key.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// OrderEvent is the message body published for order changes.
type OrderEvent struct {
	OrderID    string             `json:"orderId"`
	UserID     string             `json:"userId"`
	ProductID  string             `json:"productId"`
	Quantity   int                `json:"quantity"`
	TotalPrice decimal.Decimal    `json:"totalPrice"`
	Status     models.OrderStatus `json:"status"`
	OccurredAt time.Time          `json:"occurredAt"`
}

// CreateOrderInput is a request to buy quantity units of one product.
type CreateOrderInput struct {
	UserID    string
	ProductID string
	Quantity  int
}

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	userRepo    repositories.UserRepository
	publisher   EventPublisher // nil disables events
}

// NewOrderService creates a new OrderService. publisher may be nil.
func NewOrderService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository, userRepo repositories.UserRepository, publisher EventPublisher) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		publisher:   publisher,
	}
}

// ListOrders retrieves all orders with their user and product.
func (s *OrderService) ListOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrder retrieves a single order by its ID.
func (s *OrderService) GetOrder(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// CreateOrder prices the order from the product's current price and stores
// it as PENDING. Stock is not checked or decremented.
func (s *OrderService) CreateOrder(in CreateOrderInput) (*models.Order, error) {
	if in.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	if s.userRepo != nil {
		if _, err := s.userRepo.GetByID(in.UserID); err != nil {
			return nil, err
		}
	}

	product, err := s.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		UserID:     in.UserID,
		ProductID:  in.ProductID,
		Quantity:   in.Quantity,
		TotalPrice: product.Price.Mul(decimal.NewFromInt(int64(in.Quantity))),
		Status:     models.OrderStatusPending,
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order in repository: %w", err)
	}

	s.publish(EventOrderCreated, order)
	return order, nil
}

// UpdateOrderStatus sets the status of an order. Any known status may
// follow any other, including itself.
func (s *OrderService) UpdateOrderStatus(id string, status models.OrderStatus) (*models.Order, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%q: %w", status, ErrInvalidOrderStatus)
	}

	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return nil, err
	}

	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	s.publish(EventOrderStatusUpdated, order)
	return order, nil
}

func (s *OrderService) publish(routingKey string, order *models.Order) {
	if s.publisher == nil {
		return
	}

	body, err := json.Marshal(OrderEvent{
		OrderID:    order.ID,
		UserID:     order.UserID,
		ProductID:  order.ProductID,
		Quantity:   order.Quantity,
		TotalPrice: order.TotalPrice,
		Status:     order.Status,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		logger.L().Error("failed to marshal order event", zap.String("order_id", order.ID), zap.Error(err))
		return
	}

	if err := s.publisher.Publish(routingKey, body); err != nil {
		logger.L().Warn("failed to publish order event",
			zap.String("routing_key", routingKey),
			zap.String("order_id", order.ID),
			zap.Error(err),
		)
	}
}
