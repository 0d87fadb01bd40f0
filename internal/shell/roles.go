package shell

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/nagarseva/internal/domain"
)

// RequireRole sends visitors without one of the allowed roles back to the landing page.
func RequireRole(allowed ...domain.Role) fiber.Handler {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		state := StateFromContext(c)
		if _, ok := allowedSet[state.Role]; !ok {
			return c.Redirect("/", fiber.StatusSeeOther)
		}
		return c.Next()
	}
}
