package services

import (
	"context"
	"fmt"
	"io"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/pkg/imagestore"

	"github.com/shopspring/decimal"
)

// Image is an uploaded file waiting to be sent to image storage.
type Image struct {
	Filename string
	Content  io.Reader
}

// CreateProductInput is a product submission after form normalization.
// Quantity is nil when the client omitted it or sent a non-number.
type CreateProductInput struct {
	Name         string
	Description  string
	Price        decimal.Decimal
	Quantity     *int
	CategoryName string
	Image        *Image
}

// UpdateProductInput lists the fields to change. Nil fields keep the
// stored value.
type UpdateProductInput struct {
	Name         *string
	Description  *string
	Price        *decimal.Decimal
	Quantity     *int
	CategoryName *string
	Image        *Image
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo       repositories.ProductRepository
	categories *CategoryService
	uploader   imagestore.Uploader
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, categories *CategoryService, uploader imagestore.Uploader) *ProductService {
	return &ProductService{
		repo:       repo,
		categories: categories,
		uploader:   uploader,
	}
}

// ListProducts retrieves all products.
func (s *ProductService) ListProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProduct retrieves a single product by its ID.
func (s *ProductService) GetProduct(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct resolves the category, uploads the image and stores the
// product. Nothing is stored if any step fails.
func (s *ProductService) CreateProduct(ctx context.Context, in CreateProductInput) (*models.Product, error) {
	if in.Name == "" || in.Price.IsZero() || in.Price.IsNegative() || in.Image == nil || in.CategoryName == "" {
		return nil, ErrInvalidProduct
	}

	category, err := s.categories.ResolveByName(in.CategoryName)
	if err != nil {
		return nil, err
	}

	imageURL, err := s.upload(ctx, in.Image)
	if err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Image:       imageURL,
		CategoryID:  &category.ID,
		Category:    category,
	}
	if in.Quantity != nil {
		product.Quantity = *in.Quantity
	}

	if err := s.repo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct applies the given fields to an existing product. The
// category is looked up again only when its name changes, and a new image
// is uploaded only when one is attached.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, in UpdateProductInput) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, ErrInvalidProduct
		}
		product.Price = *in.Price
	}
	if in.Quantity != nil {
		product.Quantity = *in.Quantity
	}

	var currentCategory string
	if product.Category != nil {
		currentCategory = product.Category.Name
	}
	if in.CategoryName != nil && *in.CategoryName != "" && *in.CategoryName != currentCategory {
		category, err := s.categories.ResolveByName(*in.CategoryName)
		if err != nil {
			return nil, err
		}
		product.CategoryID = &category.ID
		product.Category = category
	}

	if in.Image != nil {
		imageURL, err := s.upload(ctx, in.Image)
		if err != nil {
			return nil, err
		}
		product.Image = imageURL
	}

	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(id string) error {
	return s.repo.Delete(id)
}

func (s *ProductService) upload(ctx context.Context, img *Image) (string, error) {
	url, err := s.uploader.Upload(ctx, img.Filename, img.Content)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrImageUpload, err)
	}
	return url, nil
}
