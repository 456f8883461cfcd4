package middleware

import (
	"github.com/gofiber/fiber/v2"

	"credtrack/internal/apperror"
	"credtrack/internal/auth"
	"credtrack/internal/model"
)

// IdentityLocalKey is the key under which the authenticated identity is
// stored in Fiber's context locals.
const IdentityLocalKey = "identity"

// Authenticate verifies the bearer token on every request it guards and
// stores the resulting identity in context locals. Failures propagate to the
// global error handler before any handler or store is reached.
func Authenticate(gate *auth.Gate) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := gate.Authenticate(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return err
		}
		c.Locals(IdentityLocalKey, id)
		return c.Next()
	}
}

// RequireRole enforces a capability after Authenticate has run. Declaring it
// once per route group keeps role checks out of individual handlers.
func RequireRole(gate *auth.Gate, role model.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := IdentityFromCtx(c)
		if !ok {
			return apperror.New(apperror.CodeUnauthenticated, "missing bearer token")
		}
		if err := gate.Authorize(id, role); err != nil {
			return err
		}
		return c.Next()
	}
}

// IdentityFromCtx returns the identity stored by Authenticate.
func IdentityFromCtx(c *fiber.Ctx) (auth.Identity, bool) {
	id, ok := c.Locals(IdentityLocalKey).(auth.Identity)
	return id, ok
}
