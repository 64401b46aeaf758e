package handlers

import (
	"storefront/internal/models"
	"storefront/internal/services"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles admin operations on user accounts.
type UserHandler struct {
	service *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// RegisterRoutes registers the user routes.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Get("/", h.HandleGetUsers)
	userRoutes.Get("/:id", h.HandleGetUser)
	userRoutes.Put("/:id", h.HandleUpdateUser)
	userRoutes.Delete("/:id", h.HandleDeleteUser)
}

func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	users, err := h.service.ListUsers()
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, codeInternal, "Error fetching users", err)
	}
	return c.JSON(users)
}

func (h *UserHandler) HandleGetUser(c *fiber.Ctx) error {
	user, err := h.service.GetUser(c.Params("id"))
	if err != nil {
		return respondServiceError(c, err, "User not found")
	}
	return c.JSON(user)
}

// UpdateUserRequest holds the profile fields an admin may change.
type UpdateUserRequest struct {
	Name *string      `json:"name"`
	Role *models.Role `json:"role"`
}

func (h *UserHandler) HandleUpdateUser(c *fiber.Ctx) error {
	var req UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, codeInvalidBody, "Invalid request body", err)
	}

	user, err := h.service.UpdateUser(c.Params("id"), services.UpdateUserInput{
		Name: req.Name,
		Role: req.Role,
	})
	if err != nil {
		return respondServiceError(c, err, "User not found")
	}
	return c.JSON(user)
}

func (h *UserHandler) HandleDeleteUser(c *fiber.Ctx) error {
	if err := h.service.DeleteUser(c.Params("id")); err != nil {
		return respondServiceError(c, err, "User not found")
	}
	return c.JSON(fiber.Map{
		"message": "User deleted successfully",
	})
}
