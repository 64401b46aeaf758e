package services

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrCategoryExists     = errors.New("category already exists")
	ErrCategoryNotFound   = errors.New("category does not exist")
	ErrInvalidProduct     = errors.New("name, price, image, and category are required and must be valid")
	ErrImageUpload        = errors.New("image upload failed")
	ErrInvalidOrderStatus = errors.New("invalid order status")
	ErrInvalidQuantity    = errors.New("quantity must be a positive integer")
	ErrInvalidRole        = errors.New("invalid role")
)
