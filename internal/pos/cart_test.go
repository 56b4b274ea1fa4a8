package pos_test

import (
	"testing"

	"restoflow-backend/internal/models"
	"restoflow-backend/internal/pos"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddToCart(t *testing.T) {
	t.Run("price includes modifiers", func(t *testing.T) {
		store, _ := newTestStore(t)
		openShift(t, store)

		// Classic Cheese Burger 12.50 + Extra Cheese 1.50 + Spicy Sauce 0.50
		snap, err := store.Dispatch(pos.AddToCart{ProductID: "1", ModifierIDs: []string{"m1", "m4"}})

		require.NoError(t, err)
		require.Len(t, snap.Cart, 1)
		assert.Equal(t, 14.50, snap.Cart[0].Price)
		assert.Equal(t, 1, snap.Cart[0].Quantity)
		assert.Len(t, snap.Cart[0].Modifiers, 2)
	})

	t.Run("out of stock is rejected", func(t *testing.T) {
		store, _ := newTestStore(t)
		openShift(t, store)

		_, err := store.Dispatch(pos.UpdateStock{ProductID: "9", Amount: -25})
		require.NoError(t, err)

		_, err = store.Dispatch(pos.AddToCart{ProductID: "9"})
		assert.ErrorIs(t, err, pos.ErrOutOfStock)
	})

	t.Run("unknown product", func(t *testing.T) {
		store, _ := newTestStore(t)
		openShift(t, store)

		_, err := store.Dispatch(pos.AddToCart{ProductID: "nope"})
		assert.ErrorIs(t, err, pos.ErrProductNotFound)
	})

	t.Run("unknown modifier", func(t *testing.T) {
		store, _ := newTestStore(t)
		openShift(t, store)

		_, err := store.Dispatch(pos.AddToCart{ProductID: "1", ModifierIDs: []string{"zz"}})
		assert.ErrorIs(t, err, pos.ErrModifierNotFound)
	})
}

func TestCartMerge(t *testing.T) {
	t.Run("same modifier set merges regardless of pick order", func(t *testing.T) {
		store, _ := newTestStore(t)
		openShift(t, store)

		_, err := store.Dispatch(pos.AddToCart{ProductID: "1", ModifierIDs: []string{"m1", "m4"}})
		require.NoError(t, err)
		snap, err := store.Dispatch(pos.AddToCart{ProductID: "1", ModifierIDs: []string{"m4", "m1"}})
		require.NoError(t, err)

		require.Len(t, snap.Cart, 1)
		assert.Equal(t, 2, snap.Cart[0].Quantity)
	})

	t.Run("different modifier set gets its own line", func(t *testing.T) {
		store, _ := newTestStore(t)
		openShift(t, store)

		_, err := store.Dispatch(pos.AddToCart{ProductID: "1", ModifierIDs: []string{"m1"}})
		require.NoError(t, err)
		snap, err := store.Dispatch(pos.AddToCart{ProductID: "1", ModifierIDs: []string{"m3"}})
		require.NoError(t, err)

		require.Len(t, snap.Cart, 2)
		assert.Equal(t, 1, snap.Cart[0].Quantity)
		assert.Equal(t, 1, snap.Cart[1].Quantity)
	})

	t.Run("no modifiers merges with no modifiers", func(t *testing.T) {
		store, _ := newTestStore(t)
		openShift(t, store)

		_, err := store.Dispatch(pos.AddToCart{ProductID: "7"})
		require.NoError(t, err)
		snap, err := store.Dispatch(pos.AddToCart{ProductID: "7"})
		require.NoError(t, err)

		require.Len(t, snap.Cart, 1)
		assert.Equal(t, 2, snap.Cart[0].Quantity)
	})
}

func TestUpdateCartQty(t *testing.T) {
	store, _ := newTestStore(t)
	openShift(t, store)

	snap, err := store.Dispatch(pos.AddToCart{ProductID: "7"})
	require.NoError(t, err)
	lineID := snap.Cart[0].ID

	snap, err = store.Dispatch(pos.UpdateCartQty{LineID: lineID, Delta: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, snap.Cart[0].Quantity)

	// Driving quantity to zero removes the line.
	snap, err = store.Dispatch(pos.UpdateCartQty{LineID: lineID, Delta: -3})
	require.NoError(t, err)
	assert.Empty(t, snap.Cart)

	_, err = store.Dispatch(pos.UpdateCartQty{LineID: lineID, Delta: 1})
	assert.ErrorIs(t, err, pos.ErrLineNotFound)
}

func TestRemoveAndClearCart(t *testing.T) {
	store, _ := newTestStore(t)
	openShift(t, store)

	snap, err := store.Dispatch(pos.AddToCart{ProductID: "7"})
	require.NoError(t, err)
	_, err = store.Dispatch(pos.AddToCart{ProductID: "8"})
	require.NoError(t, err)

	removed, err := store.Dispatch(pos.RemoveFromCart{LineID: snap.Cart[0].ID})
	require.NoError(t, err)
	require.Len(t, removed.Cart, 1)
	assert.Equal(t, "8", removed.Cart[0].ProductID)

	cleared, err := store.Dispatch(pos.ClearCart{})
	require.NoError(t, err)
	assert.Empty(t, cleared.Cart)
}

func TestLineNameFrozenInAddTimeLanguage(t *testing.T) {
	store, _ := newTestStore(t)
	openShift(t, store)

	_, err := store.Dispatch(pos.SetLanguage{Language: models.LangArabic})
	require.NoError(t, err)

	snap, err := store.Dispatch(pos.AddToCart{ProductID: "7"})
	require.NoError(t, err)
	arabicName := snap.Cart[0].Name
	assert.Equal(t, "بطاطس مقلية", arabicName)

	// A later language switch does not re-resolve captured names.
	snap, err = store.Dispatch(pos.SetLanguage{Language: models.LangEnglish})
	require.NoError(t, err)
	assert.Equal(t, arabicName, snap.Cart[0].Name)
}
