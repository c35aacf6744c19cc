package auth

import (
	"github.com/gofiber/fiber/v2"
)

// OnlyRoles membatasi route untuk role tertentu. Role diisi AuthMiddleware
// dari claim token.
func OnlyRoles(errMessage string, allowed ...string) fiber.Handler {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, r := range allowed {
		allowedSet[r] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		if _, ok := allowedSet[role]; !ok {
			return fiber.NewError(fiber.StatusForbidden, errMessage)
		}
		return c.Next()
	}
}
