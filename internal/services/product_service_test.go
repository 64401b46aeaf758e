package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const imageURL = "https://res.cloudinary.com/demo/image/upload/ecommerce/products/shoe.png"

func newProductService(t *testing.T) (*services.ProductService, *repositories.InMemoryProductRepository, *MockCategoryRepository, *MockUploader) {
	t.Helper()
	products := repositories.NewInMemoryProductRepository()
	categories := new(MockCategoryRepository)
	uploader := new(MockUploader)
	svc := services.NewProductService(products, services.NewCategoryService(categories), uploader)
	return svc, products, categories, uploader
}

func image() *services.Image {
	return &services.Image{Filename: "shoe.png", Content: strings.NewReader("png-bytes")}
}

func intPtr(i int) *int { return &i }

func TestProductService_CreateProduct(t *testing.T) {
	svc, products, categories, uploader := newProductService(t)
	shoes := &models.Category{ID: "cat-1", Name: "Shoes"}

	categories.On("GetByName", "Shoes").Return(shoes, nil).Once()
	uploader.On("Upload", mock.Anything, "shoe.png", mock.Anything).Return(imageURL, nil).Once()

	product, err := svc.CreateProduct(context.Background(), services.CreateProductInput{
		Name:         "Runner",
		Description:  "Road shoe",
		Price:        decimal.RequireFromString("59.90"),
		Quantity:     intPtr(3),
		CategoryName: "Shoes",
		Image:        image(),
	})
	require.NoError(t, err)
	assert.Equal(t, imageURL, product.Image)
	assert.Equal(t, "cat-1", *product.CategoryID)
	assert.Equal(t, 3, product.Quantity)

	stored, err := products.GetByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Runner", stored.Name)
	categories.AssertExpectations(t)
	uploader.AssertExpectations(t)
}

func TestProductService_CreateProductDefaultsQuantity(t *testing.T) {
	svc, _, categories, uploader := newProductService(t)
	categories.On("GetByName", "Shoes").Return(&models.Category{ID: "cat-1", Name: "Shoes"}, nil).Once()
	uploader.On("Upload", mock.Anything, "shoe.png", mock.Anything).Return(imageURL, nil).Once()

	product, err := svc.CreateProduct(context.Background(), services.CreateProductInput{
		Name: "Runner", Price: decimal.NewFromInt(10), CategoryName: "Shoes", Image: image(),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, product.Quantity)
}

func TestProductService_CreateProductRejectsInvalidInput(t *testing.T) {
	valid := services.CreateProductInput{
		Name: "Runner", Price: decimal.NewFromInt(10), CategoryName: "Shoes", Image: image(),
	}
	cases := map[string]func(in *services.CreateProductInput){
		"missing image":    func(in *services.CreateProductInput) { in.Image = nil },
		"missing name":     func(in *services.CreateProductInput) { in.Name = "" },
		"zero price":       func(in *services.CreateProductInput) { in.Price = decimal.Zero },
		"negative price":   func(in *services.CreateProductInput) { in.Price = decimal.NewFromInt(-1) },
		"missing category": func(in *services.CreateProductInput) { in.CategoryName = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			svc, products, categories, uploader := newProductService(t)
			in := valid
			mutate(&in)

			_, err := svc.CreateProduct(context.Background(), in)
			assert.ErrorIs(t, err, services.ErrInvalidProduct)

			n, _ := products.Count()
			assert.Zero(t, n)
			categories.AssertNotCalled(t, "GetByName", mock.Anything)
			uploader.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestProductService_CreateProductUnknownCategory(t *testing.T) {
	svc, products, categories, uploader := newProductService(t)
	categories.On("GetByName", "shoes").Return(nil, notFound("shoes")).Once()

	_, err := svc.CreateProduct(context.Background(), services.CreateProductInput{
		Name: "Runner", Price: decimal.NewFromInt(10), CategoryName: "shoes", Image: image(),
	})
	assert.ErrorIs(t, err, services.ErrCategoryNotFound)
	uploader.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
	n, _ := products.Count()
	assert.Zero(t, n)
}

func TestProductService_CreateProductUploadFailure(t *testing.T) {
	svc, products, categories, uploader := newProductService(t)
	categories.On("GetByName", "Shoes").Return(&models.Category{ID: "cat-1", Name: "Shoes"}, nil).Once()
	uploader.On("Upload", mock.Anything, "shoe.png", mock.Anything).Return("", errors.New("cloudinary down")).Once()

	_, err := svc.CreateProduct(context.Background(), services.CreateProductInput{
		Name: "Runner", Price: decimal.NewFromInt(10), CategoryName: "Shoes", Image: image(),
	})
	assert.ErrorIs(t, err, services.ErrImageUpload)
	assert.Contains(t, err.Error(), "cloudinary down")
	n, _ := products.Count()
	assert.Zero(t, n)
}

func seedProduct(t *testing.T, repo *repositories.InMemoryProductRepository) *models.Product {
	t.Helper()
	shoes := &models.Category{ID: "cat-1", Name: "Shoes"}
	p := &models.Product{
		Name:        "Runner",
		Description: "Road shoe",
		Price:       decimal.NewFromInt(50),
		Quantity:    7,
		Image:       "https://img.example/old.png",
		CategoryID:  &shoes.ID,
		Category:    shoes,
	}
	require.NoError(t, repo.Create(p))
	return p
}

func TestProductService_UpdateProductKeepsOmittedFields(t *testing.T) {
	svc, products, categories, uploader := newProductService(t)
	existing := seedProduct(t, products)

	newName := "Runner 2"
	sameCategory := "Shoes"
	updated, err := svc.UpdateProduct(context.Background(), existing.ID, services.UpdateProductInput{
		Name:         &newName,
		CategoryName: &sameCategory,
	})
	require.NoError(t, err)
	assert.Equal(t, "Runner 2", updated.Name)
	assert.Equal(t, "Road shoe", updated.Description)
	assert.True(t, updated.Price.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, 7, updated.Quantity)
	assert.Equal(t, "https://img.example/old.png", updated.Image)
	categories.AssertNotCalled(t, "GetByName", mock.Anything)
	uploader.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
}

func TestProductService_UpdateProductChangesCategoryAndImage(t *testing.T) {
	svc, products, categories, uploader := newProductService(t)
	existing := seedProduct(t, products)

	boots := &models.Category{ID: "cat-2", Name: "Boots"}
	categories.On("GetByName", "Boots").Return(boots, nil).Once()
	uploader.On("Upload", mock.Anything, "shoe.png", mock.Anything).Return(imageURL, nil).Once()

	price := decimal.RequireFromString("45.50")
	category := "Boots"
	updated, err := svc.UpdateProduct(context.Background(), existing.ID, services.UpdateProductInput{
		Price:        &price,
		Quantity:     intPtr(0),
		CategoryName: &category,
		Image:        image(),
	})
	require.NoError(t, err)
	assert.Equal(t, "cat-2", *updated.CategoryID)
	assert.Equal(t, imageURL, updated.Image)
	assert.Equal(t, 0, updated.Quantity)
	assert.True(t, updated.Price.Equal(price))
	categories.AssertExpectations(t)
	uploader.AssertExpectations(t)
}

func TestProductService_UpdateProductErrors(t *testing.T) {
	svc, products, categories, _ := newProductService(t)

	_, err := svc.UpdateProduct(context.Background(), "missing", services.UpdateProductInput{})
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	existing := seedProduct(t, products)
	categories.On("GetByName", "Hats").Return(nil, notFound("Hats")).Once()
	hats := "Hats"
	_, err = svc.UpdateProduct(context.Background(), existing.ID, services.UpdateProductInput{CategoryName: &hats})
	assert.ErrorIs(t, err, services.ErrCategoryNotFound)

	stored, _ := products.GetByID(existing.ID)
	assert.Equal(t, "cat-1", *stored.CategoryID)

	negative := decimal.NewFromInt(-5)
	_, err = svc.UpdateProduct(context.Background(), existing.ID, services.UpdateProductInput{Price: &negative})
	assert.ErrorIs(t, err, services.ErrInvalidProduct)
	stored, _ = products.GetByID(existing.ID)
	assert.True(t, stored.Price.Equal(decimal.NewFromInt(50)))
}

func TestProductService_DeleteProduct(t *testing.T) {
	svc, products, _, _ := newProductService(t)
	existing := seedProduct(t, products)

	require.NoError(t, svc.DeleteProduct(existing.ID))
	assert.ErrorIs(t, svc.DeleteProduct(existing.ID), repositories.ErrNotFound)

	list, err := svc.ListProducts()
	require.NoError(t, err)
	assert.Empty(t, list)
}
