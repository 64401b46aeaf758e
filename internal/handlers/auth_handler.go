package handlers

import (
	"storefront/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles signup and login.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the signup and login routes.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Post("/create", h.HandleRegister)
	userRoutes.Post("/login", h.HandleLogin)
}

// CredentialsRequest is the body of both signup and login.
type CredentialsRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// HandleRegister creates a USER account.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var req CredentialsRequest
	if ok, err := parseJSON(c, h.validate, &req); !ok {
		return err
	}

	user, err := h.authService.RegisterUser(req.Email, req.Password)
	if err != nil {
		return respondServiceError(c, err, "User not found")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user": user,
	})
}

// HandleLogin checks credentials and issues a one-hour token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req CredentialsRequest
	if ok, err := parseJSON(c, h.validate, &req); !ok {
		return err
	}

	token, err := h.authService.LoginUser(req.Email, req.Password)
	if err != nil {
		return respondServiceError(c, err, "User not found")
	}

	return c.JSON(fiber.Map{
		"token": token,
	})
}
