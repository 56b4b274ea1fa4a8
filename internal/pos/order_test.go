package pos_test

import (
	"testing"

	"restoflow-backend/internal/models"
	"restoflow-backend/internal/pos"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Full cashier flow: start shift, seat a table, ring up two portions of
// fries, take cash.
func TestSubmitOrderEndToEnd(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Dispatch(pos.StartShift{
		Cashier:     "Sam",
		OpeningCash: 100.00,
		Role:        models.RoleCashier,
	})
	require.NoError(t, err)

	_, err = store.Dispatch(pos.SelectTable{TableID: "t3"})
	require.NoError(t, err)

	_, err = store.Dispatch(pos.AddToCart{ProductID: "7"}) // French Fries, 5.00
	require.NoError(t, err)
	_, err = store.Dispatch(pos.AddToCart{ProductID: "7"})
	require.NoError(t, err)

	stockBefore := productStock(t, store.Snapshot(), "7")

	snap, err := store.Dispatch(pos.SubmitOrder{PaymentMethod: models.PaymentCash})
	require.NoError(t, err)

	require.Len(t, snap.Orders, 1)
	order := snap.Orders[0]
	assert.Equal(t, 10.00, order.Total)
	assert.Equal(t, models.OrderPending, order.Status)
	assert.Equal(t, models.PaymentCash, order.PaymentMethod)
	assert.Equal(t, "t3", order.TableID)

	assert.Equal(t, stockBefore-2, productStock(t, snap, "7"))

	table := findTable(t, snap, "t3")
	assert.Equal(t, models.TableOccupied, table.Status)
	assert.Equal(t, order.ID, table.CurrentOrderID)

	assert.Equal(t, 10.00, snap.Shift.TotalSales)
	assert.Empty(t, snap.Cart)
	assert.Empty(t, snap.ActiveTableID)
}

func TestSubmitOrderGuards(t *testing.T) {
	t.Run("empty cart", func(t *testing.T) {
		store, _ := newTestStore(t)
		openShift(t, store)

		_, err := store.Dispatch(pos.SubmitOrder{PaymentMethod: models.PaymentCash})
		assert.ErrorIs(t, err, pos.ErrEmptyCart)
	})

	t.Run("insufficient stock rejects whole order", func(t *testing.T) {
		store, _ := newTestStore(t)
		openShift(t, store)

		// Lava cake has 25 in stock; ask for 26.
		snap, err := store.Dispatch(pos.AddToCart{ProductID: "9"})
		require.NoError(t, err)
		_, err = store.Dispatch(pos.UpdateCartQty{LineID: snap.Cart[0].ID, Delta: 25})
		require.NoError(t, err)

		_, err = store.Dispatch(pos.SubmitOrder{PaymentMethod: models.PaymentCash})
		assert.ErrorIs(t, err, pos.ErrInsufficientStock)

		after := store.Snapshot()
		assert.Equal(t, 25, productStock(t, after, "9"), "stock untouched")
		assert.Empty(t, after.Orders)
		assert.Len(t, after.Cart, 1, "cart kept for correction")
	})
}

func TestStockAggregatesAcrossLines(t *testing.T) {
	store, _ := newTestStore(t)
	openShift(t, store)

	// Same product on two lines (different modifier sets).
	_, err := store.Dispatch(pos.AddToCart{ProductID: "1", ModifierIDs: []string{"m1"}})
	require.NoError(t, err)
	_, err = store.Dispatch(pos.AddToCart{ProductID: "1", ModifierIDs: []string{"m3"}})
	require.NoError(t, err)

	before := productStock(t, store.Snapshot(), "1")

	snap, err := store.Dispatch(pos.SubmitOrder{PaymentMethod: models.PaymentCard})
	require.NoError(t, err)

	assert.Equal(t, before-2, productStock(t, snap, "1"))
}

func TestTakeawayOrderHasNoTable(t *testing.T) {
	store, _ := newTestStore(t)
	openShift(t, store)

	_, err := store.Dispatch(pos.SelectTable{TableID: models.TakeawayID})
	require.NoError(t, err)
	_, err = store.Dispatch(pos.AddToCart{ProductID: "5"})
	require.NoError(t, err)

	snap, err := store.Dispatch(pos.SubmitOrder{PaymentMethod: models.PaymentOnline, CustomerName: "Walk-in"})
	require.NoError(t, err)

	require.Len(t, snap.Orders, 1)
	assert.Empty(t, snap.Orders[0].TableID)
	assert.Equal(t, "Walk-in", snap.Orders[0].CustomerName)

	for _, table := range snap.Tables {
		assert.Equal(t, models.TableAvailable, table.Status)
	}
}

func TestOrderTotalFrozenAfterPriceChange(t *testing.T) {
	store, _ := newTestStore(t)
	openShift(t, store)

	_, err := store.Dispatch(pos.AddToCart{ProductID: "7"})
	require.NoError(t, err)
	snap, err := store.Dispatch(pos.SubmitOrder{PaymentMethod: models.PaymentCash})
	require.NoError(t, err)
	orderID := snap.Orders[0].ID
	require.Equal(t, 5.00, snap.Orders[0].Total)

	fries := *findProductModel(t, snap, "7")
	fries.Price = 99.00
	snap, err = store.Dispatch(pos.UpdateProduct{Product: fries})
	require.NoError(t, err)

	for _, o := range snap.Orders {
		if o.ID == orderID {
			assert.Equal(t, 5.00, o.Total)
			assert.Equal(t, 5.00, o.Items[0].Price)
		}
	}
}

func TestOrderIDsUniquePerMillisecond(t *testing.T) {
	store, _ := newTestStore(t)
	openShift(t, store)

	// Two submissions without the clock moving.
	_, err := store.Dispatch(pos.AddToCart{ProductID: "7"})
	require.NoError(t, err)
	_, err = store.Dispatch(pos.SubmitOrder{PaymentMethod: models.PaymentCash})
	require.NoError(t, err)

	_, err = store.Dispatch(pos.AddToCart{ProductID: "8"})
	require.NoError(t, err)
	snap, err := store.Dispatch(pos.SubmitOrder{PaymentMethod: models.PaymentCash})
	require.NoError(t, err)

	require.Len(t, snap.Orders, 2)
	assert.NotEqual(t, snap.Orders[0].ID, snap.Orders[1].ID)
}

func productStock(t *testing.T, snap pos.Snapshot, id string) int {
	t.Helper()
	return findProductModel(t, snap, id).Stock
}

func findProductModel(t *testing.T, snap pos.Snapshot, id string) *models.Product {
	t.Helper()
	for i := range snap.Products {
		if snap.Products[i].ID == id {
			return &snap.Products[i]
		}
	}
	t.Fatalf("product %s not in snapshot", id)
	return nil
}

func findTable(t *testing.T, snap pos.Snapshot, id string) models.Table {
	t.Helper()
	for _, table := range snap.Tables {
		if table.ID == id {
			return table
		}
	}
	t.Fatalf("table %s not in snapshot", id)
	return models.Table{}
}
