package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CORS allows a configured frontend origin to call the API. An empty
// allowedOrigin allows any origin (local single-operator deployments).
func CORS(allowedOrigin string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		origin := c.Get("Origin")
		if origin == "" {
			return c.Next()
		}
		if allowedOrigin == "" || strings.EqualFold(origin, allowedOrigin) {
			c.Set("Access-Control-Allow-Origin", origin)
			c.Set("Access-Control-Allow-Methods", "GET,POST,PUT,PATCH,DELETE,OPTIONS")
			c.Set("Access-Control-Allow-Headers", "Content-Type, X-Trace-Id")
			if c.Method() == fiber.MethodOptions {
				return c.SendStatus(fiber.StatusNoContent)
			}
			return c.Next()
		}
		return fiber.NewError(fiber.StatusForbidden, "Not allowed by CORS")
	}
}
