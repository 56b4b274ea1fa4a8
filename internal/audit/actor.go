package audit

import (
	"restoflow-backend/internal/auth"

	"github.com/gofiber/fiber/v2"
)

// ActorFromCtx pulls the acting user out of the request context set by
// the JWT middleware.
func ActorFromCtx(c *fiber.Ctx) (uint, string) {
	id, _ := c.Locals(auth.CtxUserIDKey).(uint)
	name, _ := c.Locals(auth.CtxUserNameKey).(string)
	return id, name
}
