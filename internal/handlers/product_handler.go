package handlers

import (
	"storefront/internal/forms"
	"storefront/internal/services"

	"github.com/gofiber/fiber/v2"
)

const malformedPayload = "Request payload is malformed or missing required fields."

// ProductHandler handles HTTP requests for products. Create and update
// take multipart/form-data so an image can be attached.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// RegisterRoutes registers the product routes.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Post("/create", h.HandleCreateProduct)
	productRoutes.Get("/:id", h.HandleGetProduct)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.ListProducts()
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, codeInternal, "Internal server error", err)
	}
	return c.JSON(fiber.Map{
		"products": products,
	})
}

func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	product, err := h.service.GetProduct(c.Params("id"))
	if err != nil {
		return respondServiceError(c, err, "Product not found")
	}
	return c.JSON(product)
}

// HandleCreateProduct accepts name, description, price, quantity,
// category and an image file.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	mf, err := c.MultipartForm()
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, codeMalformedPayload, malformedPayload, err)
	}
	form := forms.Normalize(mf)

	// An unparsable price stays zero and is rejected by the service.
	price, _ := form.Decimal("price")
	in := services.CreateProductInput{
		Name:         form.String("name", ""),
		Description:  form.String("description", ""),
		Price:        price,
		CategoryName: form.String("category", ""),
	}
	if qty, ok := form.Int("quantity"); ok {
		in.Quantity = &qty
	}

	image, closeImage, err := openImage(form)
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, codeMalformedPayload, malformedPayload, err)
	}
	defer closeImage()
	in.Image = image

	product, err := h.service.CreateProduct(c.UserContext(), in)
	if err != nil {
		return respondServiceError(c, err, "Product not found")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"product": product,
	})
}

// HandleUpdateProduct changes only the fields present in the form.
// Numeric fields that do not parse are treated as absent.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	mf, err := c.MultipartForm()
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, codeMalformedPayload, malformedPayload, err)
	}
	form := forms.Normalize(mf)

	var in services.UpdateProductInput
	if v, ok := form.Lookup("name"); ok {
		in.Name = &v
	}
	if v, ok := form.Lookup("description"); ok {
		in.Description = &v
	}
	if v, ok := form.Lookup("category"); ok {
		in.CategoryName = &v
	}
	if v, ok := form.Decimal("price"); ok {
		in.Price = &v
	}
	if v, ok := form.Int("quantity"); ok {
		in.Quantity = &v
	}

	image, closeImage, err := openImage(form)
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, codeMalformedPayload, malformedPayload, err)
	}
	defer closeImage()
	in.Image = image

	product, err := h.service.UpdateProduct(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondServiceError(c, err, "Product not found")
	}
	return c.JSON(fiber.Map{
		"product": product,
	})
}

func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	if err := h.service.DeleteProduct(c.Params("id")); err != nil {
		return respondServiceError(c, err, "Product not found")
	}
	return c.JSON(fiber.Map{
		"message": "Product deleted successfully",
	})
}

// openImage opens the "image" file part, if any. The returned func closes
// it and is safe to call when there is no image.
func openImage(form *forms.Form) (*services.Image, func(), error) {
	fh := form.File("image")
	if fh == nil {
		return nil, func() {}, nil
	}
	f, err := fh.Open()
	if err != nil {
		return nil, func() {}, err
	}
	return &services.Image{Filename: fh.Filename, Content: f}, func() { f.Close() }, nil
}
