package handlers

import (
	"storefront/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	service  *services.CategoryService
	validate *validator.Validate
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the category routes. Listing shares the create
// path, as existing clients expect.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router) {
	categoryRoutes := router.Group("/categories")
	categoryRoutes.Post("/create", h.HandleCreateCategory)
	categoryRoutes.Get("/create", h.HandleGetCategories)
}

// CreateCategoryRequest is the body of a category creation.
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

func (h *CategoryHandler) HandleCreateCategory(c *fiber.Ctx) error {
	var req CreateCategoryRequest
	if ok, err := parseJSON(c, h.validate, &req); !ok {
		return err
	}

	category, err := h.service.CreateCategory(req.Name)
	if err != nil {
		return respondServiceError(c, err, "Category not found")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"category": category,
	})
}

func (h *CategoryHandler) HandleGetCategories(c *fiber.Ctx) error {
	categories, err := h.service.ListCategories()
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, codeInternal, "Internal server error", err)
	}
	return c.JSON(fiber.Map{
		"categories": categories,
	})
}
