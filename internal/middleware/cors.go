package middleware

import (
	"github.com/gofiber/fiber/v2"
)

var corsHeaders = [][2]string{
	{fiber.HeaderAccessControlAllowOrigin, "*"},
	{fiber.HeaderAccessControlAllowMethods, "GET, POST, PUT, DELETE, OPTIONS"},
	{fiber.HeaderAccessControlAllowHeaders, "Content-Type, Authorization"},
	{fiber.HeaderAccessControlAllowCredentials, "true"},
}

// CORS sets a fixed, permissive header set on every response and answers
// preflight requests itself with 204 and an empty body.
//
// Fiber's own cors middleware refuses a wildcard origin together with
// credentials, which is exactly the header set clients of this API expect.
func CORS() fiber.Handler {
	return func(c *fiber.Ctx) error {
		for _, h := range corsHeaders {
			c.Set(h[0], h[1])
		}
		if c.Method() == fiber.MethodOptions {
			c.Status(fiber.StatusNoContent)
			return nil
		}
		return c.Next()
	}
}
