package insights

import (
	"restoflow-backend/internal/pos"

	"github.com/gofiber/fiber/v2"
)

// GET /api/admin/insights — the summary text is always a displayable
// string; failures of the external call never surface as errors here.
func GetInsightsHandler(store *pos.Store, svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		snap := store.Snapshot()
		text := svc.Summarize(c.Context(), snap.Orders)
		return c.JSON(fiber.Map{"insights": text})
	}
}

// GET /api/admin/sales-summary — revenue, order count and top sellers
// for the dashboard.
func SalesSummaryHandler(store *pos.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := c.QueryInt("top", 5)
		return c.JSON(pos.SummarizeSales(store.Snapshot().Orders, limit))
	}
}
