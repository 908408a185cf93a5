// Package auth provides API-key middleware for Fiber.
//
// Requests must carry the configured key in the X-API-Key header. An empty
// configured key disables the check entirely, which is the expected mode for
// local single-user deployments.
package auth

import "github.com/gofiber/fiber/v2"

// HeaderName is the header carrying the API key.
const HeaderName = "X-API-Key"

// Config holds the middleware settings.
type Config struct {
	// ApiKey is the expected key. Empty disables authentication.
	ApiKey string
}

// New creates the API key middleware.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.ApiKey == "" {
			return c.Next()
		}
		if c.Get(HeaderName) != cfg.ApiKey {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid or missing API key",
			})
		}
		return c.Next()
	}
}
