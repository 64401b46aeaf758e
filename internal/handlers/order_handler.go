package handlers

import (
	"storefront/internal/models"
	"storefront/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the order routes.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Post("/create", h.HandleCreateOrder)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
	orderRoutes.Put("/:id/status", h.HandleUpdateOrderStatus)
}

// HandleGetOrders returns every order with its user and product.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.service.ListOrders()
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, codeInternal, "Failed to fetch orders", err)
	}
	return c.JSON(fiber.Map{
		"orders": orders,
	})
}

// HandleGetOrderByID retrieves a single order by its ID.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	order, err := h.service.GetOrder(c.Params("id"))
	if err != nil {
		return respondServiceError(c, err, "Order not found")
	}
	return c.JSON(fiber.Map{
		"order": order,
	})
}

// CreateOrderRequest is the body of an order creation.
type CreateOrderRequest struct {
	UserID    string `json:"userId" validate:"required"`
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// HandleCreateOrder creates a PENDING order priced from the product.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var req CreateOrderRequest
	if ok, err := parseJSON(c, h.validate, &req); !ok {
		return err
	}

	order, err := h.service.CreateOrder(services.CreateOrderInput{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return respondServiceError(c, err, "Product or user not found")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"order": order,
	})
}

// UpdateOrderStatusRequest is the body of a status change.
type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status"`
}

// HandleUpdateOrderStatus moves an order to any known status.
func (h *OrderHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	var req UpdateOrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, codeInvalidBody, "Invalid request body", err)
	}

	order, err := h.service.UpdateOrderStatus(c.Params("id"), req.Status)
	if err != nil {
		return respondServiceError(c, err, "Order not found")
	}
	return c.JSON(fiber.Map{
		"updatedOrder": order,
	})
}
