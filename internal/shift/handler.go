package shift

import (
	"strings"

	"restoflow-backend/internal/httperr"
	"restoflow-backend/internal/models"
	"restoflow-backend/internal/pos"

	"github.com/gofiber/fiber/v2"
)

type StartShiftRequest struct {
	Cashier     string  `json:"cashier"`
	OpeningCash float64 `json:"opening_cash"`
	Role        string  `json:"role"`
}

// POST /api/shift/start
// For role MANAGER the bearer token of the request doubles as the
// credential; the middleware has already validated it, the till only
// checks that one is present.
func StartShiftHandler(store *pos.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body StartShiftRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		role := models.RoleCashier
		if strings.EqualFold(body.Role, string(models.RoleManager)) {
			role = models.RoleManager
		}

		credential := ""
		if parts := strings.SplitN(c.Get("Authorization"), " ", 2); len(parts) == 2 {
			credential = parts[1]
		}

		snap, err := store.Dispatch(pos.StartShift{
			Cashier:     body.Cashier,
			OpeningCash: body.OpeningCash,
			Role:        role,
			Credential:  credential,
		})
		if err != nil {
			return httperr.FromDispatch(err)
		}

		return c.Status(fiber.StatusCreated).JSON(snap.Shift)
	}
}

// POST /api/shift/end
func EndShiftHandler(store *pos.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		snap, err := store.Dispatch(pos.EndShift{})
		if err != nil {
			return httperr.FromDispatch(err)
		}
		return c.JSON(snap.Shift)
	}
}

// GET /api/shift
func GetShiftHandler(store *pos.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(store.Snapshot().Shift)
	}
}
