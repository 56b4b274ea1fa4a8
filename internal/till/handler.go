package till

import (
	"time"

	"restoflow-backend/internal/config"
	"restoflow-backend/internal/httperr"
	"restoflow-backend/internal/models"
	"restoflow-backend/internal/pos"
	"restoflow-backend/internal/receipt"

	"github.com/gofiber/fiber/v2"
)

type SelectTableRequest struct {
	TableID string `json:"table_id"` // table id, "TAKEAWAY", or empty to clear
}

type AddToCartRequest struct {
	ProductID   string   `json:"product_id"`
	ModifierIDs []string `json:"modifier_ids"`
	Notes       string   `json:"notes"`
}

type UpdateQtyRequest struct {
	Delta int `json:"delta"`
}

type SubmitOrderRequest struct {
	PaymentMethod string `json:"payment_method"`
	CustomerName  string `json:"customer_name"`
	SplitCount    int    `json:"split_count"`
}

// GET /api/state — the full current snapshot, for rendering.
func GetStateHandler(store *pos.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(store.Snapshot())
	}
}

// POST /api/pos/table
func SelectTableHandler(store *pos.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body SelectTableRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		snap, err := store.Dispatch(pos.SelectTable{TableID: body.TableID})
		if err != nil {
			return httperr.FromDispatch(err)
		}
		return c.JSON(fiber.Map{"active_table_id": snap.ActiveTableID})
	}
}

// POST /api/pos/cart
func AddToCartHandler(store *pos.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body AddToCartRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		snap, err := store.Dispatch(pos.AddToCart{
			ProductID:   body.ProductID,
			ModifierIDs: body.ModifierIDs,
			Notes:       body.Notes,
		})
		if err != nil {
			return httperr.FromDispatch(err)
		}
		return c.JSON(snap.Cart)
	}
}

// PUT /api/pos/cart/:lineId
func UpdateCartQtyHandler(store *pos.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body UpdateQtyRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		snap, err := store.Dispatch(pos.UpdateCartQty{LineID: c.Params("lineId"), Delta: body.Delta})
		if err != nil {
			return httperr.FromDispatch(err)
		}
		return c.JSON(snap.Cart)
	}
}

// DELETE /api/pos/cart/:lineId
func RemoveFromCartHandler(store *pos.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		snap, err := store.Dispatch(pos.RemoveFromCart{LineID: c.Params("lineId")})
		if err != nil {
			return httperr.FromDispatch(err)
		}
		return c.JSON(snap.Cart)
	}
}

// DELETE /api/pos/cart
func ClearCartHandler(store *pos.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		snap, err := store.Dispatch(pos.ClearCart{})
		if err != nil {
			return httperr.FromDispatch(err)
		}
		return c.JSON(snap.Cart)
	}
}

// GET /api/pos/cart/totals?split=2
func CartTotalsHandler(store *pos.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		snap := store.Snapshot()
		totals := pos.ComputeTotals(snap.Cart)
		split := c.QueryInt("split", 1)
		return c.JSON(fiber.Map{
			"subtotal":     totals.Subtotal,
			"tax":          totals.Tax,
			"grand_total":  totals.GrandTotal,
			"split_count":  split,
			"split_amount": pos.SplitAmount(totals.GrandTotal, split),
		})
	}
}

// POST /api/pos/orders — submit the cart. The response carries the new
// order and a printable receipt; receipt emission is a side effect the
// till does not depend on.
func SubmitOrderHandler(store *pos.Store, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body SubmitOrderRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		snap, err := store.Dispatch(pos.SubmitOrder{
			PaymentMethod: models.PaymentMethod(body.PaymentMethod),
			CustomerName:  body.CustomerName,
		})
		if err != nil {
			return httperr.FromDispatch(err)
		}

		// Label the receipt from the order itself; the active selection
		// may already belong to the next request.
		order := snap.Orders[len(snap.Orders)-1]
		text := receipt.Render(receipt.Data{
			MerchantName: cfg.MerchantName,
			MerchantInfo: cfg.MerchantInfo,
			OrderRef:     order.ID,
			Time:         order.Timestamp,
			TableLabel:   tableLabel(snap, order.TableID),
			Items:        order.Items,
			Totals:       pos.ComputeTotals(order.Items),
			SplitCount:   body.SplitCount,
		})

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"order":   order,
			"receipt": text,
		})
	}
}

// POST /api/pos/receipt — explicit print request for the current cart.
func PrintCartHandler(store *pos.Store, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		snap := store.Snapshot()
		if len(snap.Cart) == 0 {
			return httperr.FromDispatch(pos.ErrEmptyCart)
		}

		split := c.QueryInt("split", 1)
		text := receipt.Render(receipt.Data{
			MerchantName: cfg.MerchantName,
			MerchantInfo: cfg.MerchantInfo,
			OrderRef:     "preview",
			Time:         time.Now(),
			TableLabel:   tableLabel(snap, snap.ActiveTableID),
			Items:        snap.Cart,
			Totals:       pos.ComputeTotals(snap.Cart),
			SplitCount:   split,
		})
		return c.JSON(fiber.Map{"receipt": text})
	}
}

func tableLabel(snap pos.Snapshot, tableID string) string {
	switch tableID {
	case "", models.TakeawayID:
		return "Takeaway"
	}
	for _, t := range snap.Tables {
		if t.ID == tableID {
			return t.Name
		}
	}
	return tableID
}
