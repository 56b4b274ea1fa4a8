package till_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"restoflow-backend/internal/config"
	"restoflow-backend/internal/models"
	"restoflow-backend/internal/pos"
	"restoflow-backend/internal/till"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type submitResponse struct {
	Order   models.Order `json:"order"`
	Receipt string       `json:"receipt"`
}

func newTestApp(t *testing.T) (*fiber.App, *pos.Store) {
	t.Helper()
	store := pos.NewStore(pos.NewSnapshot())
	cfg := &config.Config{
		MerchantName: "RestoFlow Diner",
		MerchantInfo: "123 Main St",
	}

	app := fiber.New()
	app.Post("/orders", till.SubmitOrderHandler(store, cfg))
	return app, store
}

func submitOrder(t *testing.T, app *fiber.App) submitResponse {
	t.Helper()
	req := httptest.NewRequest("POST", "/orders", strings.NewReader(`{"payment_method":"CASH"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out submitResponse
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

// The receipt must name the order's own table; the active selection is
// already cleared (and may belong to the next request) by render time.
func TestSubmitOrderReceiptNamesOrderTable(t *testing.T) {
	app, store := newTestApp(t)

	_, err := store.Dispatch(pos.StartShift{Cashier: "Sam", OpeningCash: 50, Role: models.RoleCashier})
	require.NoError(t, err)
	_, err = store.Dispatch(pos.SelectTable{TableID: "t3"})
	require.NoError(t, err)
	_, err = store.Dispatch(pos.AddToCart{ProductID: "7"})
	require.NoError(t, err)

	out := submitOrder(t, app)

	assert.Equal(t, "t3", out.Order.TableID)
	assert.Contains(t, out.Receipt, "Table: T3")
	assert.Empty(t, store.Snapshot().ActiveTableID)
}

func TestSubmitOrderReceiptLabelsTakeaway(t *testing.T) {
	app, store := newTestApp(t)

	_, err := store.Dispatch(pos.StartShift{Cashier: "Sam", OpeningCash: 50, Role: models.RoleCashier})
	require.NoError(t, err)
	_, err = store.Dispatch(pos.SelectTable{TableID: models.TakeawayID})
	require.NoError(t, err)
	_, err = store.Dispatch(pos.AddToCart{ProductID: "8"})
	require.NoError(t, err)

	out := submitOrder(t, app)

	assert.Empty(t, out.Order.TableID)
	assert.Contains(t, out.Receipt, "Table: Takeaway")
}
