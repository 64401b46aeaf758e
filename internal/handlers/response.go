package handlers

import (
	"errors"
	"fmt"

	"storefront/internal/logger"
	"storefront/internal/repositories"
	"storefront/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Error codes returned next to the human readable message.
const (
	codeInvalidBody        = "INVALID_BODY"
	codeValidationFailed   = "VALIDATION_FAILED"
	codeMalformedPayload   = "MALFORMED_PAYLOAD"
	codeInvalidCredentials = "INVALID_CREDENTIALS"
	codeEmailTaken         = "EMAIL_TAKEN"
	codeCategoryExists     = "CATEGORY_EXISTS"
	codeCategoryNotFound   = "CATEGORY_NOT_FOUND"
	codeInvalidProduct     = "INVALID_PRODUCT"
	codeInvalidStatus      = "INVALID_STATUS"
	codeInvalidQuantity    = "INVALID_QUANTITY"
	codeInvalidRole        = "INVALID_ROLE"
	codeNotFound           = "NOT_FOUND"
	codeUploadFailed       = "UPLOAD_FAILED"
	codeInternal           = "INTERNAL_ERROR"
)

// respondError logs the cause and sends a sanitized error body. Callers
// never see err itself.
func respondError(c *fiber.Ctx, status int, code, message string, err error) error {
	if err != nil {
		log := logger.L().With(
			zap.String("request_id", c.GetRespHeader(fiber.HeaderXRequestID)),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("code", code),
			zap.Error(err),
		)
		if status >= fiber.StatusInternalServerError {
			log.Error(message)
		} else {
			log.Info(message)
		}
	}
	return c.Status(status).JSON(fiber.Map{
		"error": message,
		"code":  code,
	})
}

// respondServiceError maps a service or repository error to its HTTP
// status. notFound is the message used when the primary entity is missing.
func respondServiceError(c *fiber.Ctx, err error, notFound string) error {
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		return respondError(c, fiber.StatusUnauthorized, codeInvalidCredentials, "Invalid credentials", err)
	case errors.Is(err, services.ErrEmailTaken):
		return respondError(c, fiber.StatusConflict, codeEmailTaken, "User already exists", err)
	case errors.Is(err, services.ErrCategoryExists):
		return respondError(c, fiber.StatusBadRequest, codeCategoryExists, "Category already exists", err)
	case errors.Is(err, services.ErrCategoryNotFound):
		return respondError(c, fiber.StatusBadRequest, codeCategoryNotFound, "Category does not exist", err)
	case errors.Is(err, services.ErrInvalidProduct):
		return respondError(c, fiber.StatusBadRequest, codeInvalidProduct, "Name, price, image, and category are required and must be valid", err)
	case errors.Is(err, services.ErrInvalidOrderStatus):
		return respondError(c, fiber.StatusBadRequest, codeInvalidStatus, "Invalid order status", err)
	case errors.Is(err, services.ErrInvalidQuantity):
		return respondError(c, fiber.StatusBadRequest, codeInvalidQuantity, "Quantity must be a positive integer", err)
	case errors.Is(err, services.ErrInvalidRole):
		return respondError(c, fiber.StatusBadRequest, codeInvalidRole, "Role must be USER or ADMIN", err)
	case errors.Is(err, services.ErrImageUpload):
		return respondError(c, fiber.StatusInternalServerError, codeUploadFailed, "Image upload failed", err)
	case errors.Is(err, repositories.ErrNotFound):
		return respondError(c, fiber.StatusNotFound, codeNotFound, notFound, err)
	default:
		return respondError(c, fiber.StatusInternalServerError, codeInternal, "Internal server error", err)
	}
}

// parseJSON decodes the body into req and runs struct validation. It
// writes the 400 response itself and reports whether the handler may go on.
func parseJSON(c *fiber.Ctx, validate *validator.Validate, req interface{}) (bool, error) {
	if err := c.BodyParser(req); err != nil {
		return false, respondError(c, fiber.StatusBadRequest, codeInvalidBody, "Invalid request body", err)
	}

	if err := validate.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return false, respondError(c, fiber.StatusBadRequest, codeInvalidBody, "Invalid request body", err)
		}
		fields := make(map[string]string, len(validationErrors))
		for _, e := range validationErrors {
			fields[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Validation failed",
			"code":   codeValidationFailed,
			"fields": fields,
		})
	}
	return true, nil
}

// ErrorHandler renders errors that escape handlers, such as unknown routes
// or oversized bodies, in the same shape as handler errors.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return respondError(c, fe.Code, codeForStatus(fe.Code), fe.Message, nil)
	}
	return respondError(c, fiber.StatusInternalServerError, codeInternal, "Internal server error", err)
}

func codeForStatus(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return codeNotFound
	case fiber.StatusBadRequest, fiber.StatusRequestEntityTooLarge, fiber.StatusUnprocessableEntity:
		return codeInvalidBody
	default:
		if status >= fiber.StatusInternalServerError {
			return codeInternal
		}
		return "HTTP_" + fmt.Sprint(status)
	}
}
