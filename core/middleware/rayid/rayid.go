// Package rayid provides request-identifier middleware for Fiber.
//
// Every request gets a RayID: either the one supplied by an upstream proxy
// in the X-Ray-ID header, or a freshly generated UUID. The ID is stored in
// the request locals for logger correlation and echoed back on the response.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the header carrying the request identifier.
const HeaderName = "X-Ray-ID"

// New creates the RayID middleware.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals("ray_id", rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}
