package kitchen

import (
	"restoflow-backend/internal/httperr"
	"restoflow-backend/internal/models"
	"restoflow-backend/internal/pos"

	"github.com/gofiber/fiber/v2"
)

type SetStatusRequest struct {
	Status string `json:"status"`
}

// GET /api/kitchen/orders — active tickets, earliest first.
func ListActiveOrdersHandler(store *pos.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(pos.ActiveOrders(store.Snapshot()))
	}
}

// POST /api/kitchen/orders/:id/advance
func AdvanceOrderHandler(store *pos.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		snap, err := store.Dispatch(pos.AdvanceOrder{OrderID: c.Params("id")})
		if err != nil {
			return httperr.FromDispatch(err)
		}
		for _, o := range snap.Orders {
			if o.ID == c.Params("id") {
				return c.JSON(o)
			}
		}
		return fiber.NewError(fiber.StatusNotFound, "order not found")
	}
}

// PUT /api/orders/:id/status — admin-level direct status set.
func SetOrderStatusHandler(store *pos.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body SetStatusRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		status := models.OrderStatus(body.Status)
		switch status {
		case models.OrderPending, models.OrderPreparing, models.OrderReady, models.OrderCompleted:
		default:
			return fiber.NewError(fiber.StatusBadRequest, "unknown order status")
		}

		snap, err := store.Dispatch(pos.UpdateOrderStatus{OrderID: c.Params("id"), Status: status})
		if err != nil {
			return httperr.FromDispatch(err)
		}
		for _, o := range snap.Orders {
			if o.ID == c.Params("id") {
				return c.JSON(o)
			}
		}
		return fiber.NewError(fiber.StatusNotFound, "order not found")
	}
}

// GET /api/orders — the full ledger, for billing and reporting views.
func ListOrdersHandler(store *pos.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(store.Snapshot().Orders)
	}
}
