package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/HanishaChandrasekaran/placement-prep/backend/config"
	"github.com/HanishaChandrasekaran/placement-prep/backend/session"
	"github.com/HanishaChandrasekaran/placement-prep/backend/utils"
)

// AuthMiddleware gates a route on the presence of an active session. The
// token identifies the caller; the session manager stays the source of truth,
// so a valid token for a logged-out (or different) user is still rejected.
func AuthMiddleware(mgr *session.Manager, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := utils.ExtractUserIDFromToken(c, cfg)
		if err != nil {
			return utils.Unauthorized(c, "Unauthorized")
		}

		sess := mgr.Session()
		if sess == nil || sess.ID != userID {
			return utils.Unauthorized(c, "Unauthorized")
		}
		return c.Next()
	}
}
