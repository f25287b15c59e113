package auth

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// RequireUsableState ensures the authenticated account is in a state that may
// hold a session (ACTIVE or INACTIVE). Accounts still waiting on verification
// or a manager decision cannot reach protected routes even with a valid token.
func RequireUsableState() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || principal.User == nil {
			return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		}
		if !principal.User.State.Usable() {
			return fiber.NewError(http.StatusForbidden, "account not activated")
		}
		return c.Next()
	}
}
