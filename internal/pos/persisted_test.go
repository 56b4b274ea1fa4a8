package pos_test

import (
	"testing"

	"restoflow-backend/internal/models"
	"restoflow-backend/internal/pos"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersistedRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	openShift(t, store)

	order := submitTableOrder(t, store, "t1")
	_, err := store.Dispatch(pos.SetLanguage{Language: models.LangArabic})
	require.NoError(t, err)
	_, err = store.Dispatch(pos.ToggleTheme{})
	require.NoError(t, err)

	// Leave something in the cart so the round trip proves it is dropped.
	_, err = store.Dispatch(pos.SelectTable{TableID: "t2"})
	require.NoError(t, err)
	_, err = store.Dispatch(pos.AddToCart{ProductID: "8"})
	require.NoError(t, err)

	before := store.Snapshot()
	restored := pos.Restore(before.Persisted())

	// Durable parts survive.
	assert.Equal(t, before.Shift, restored.Shift)
	require.Len(t, restored.Orders, 1)
	assert.Equal(t, order.ID, restored.Orders[0].ID)
	assert.Equal(t, before.Theme, restored.Theme)
	assert.Equal(t, models.LangArabic, restored.Language)
	assert.Equal(t, before.Products, restored.Products)
	assert.Equal(t, before.Staff, restored.Staff)

	// Volatile parts reset.
	assert.Empty(t, restored.Cart)
	assert.Empty(t, restored.ActiveTableID)
	for _, table := range restored.Tables {
		assert.Equal(t, models.TableAvailable, table.Status)
		assert.Empty(t, table.CurrentOrderID)
	}
}

func TestRestoreEmptyRecordFallsBackToDefaults(t *testing.T) {
	restored := pos.Restore(pos.PersistedState{})
	fresh := pos.NewSnapshot()

	assert.Equal(t, fresh.Theme, restored.Theme)
	assert.Equal(t, fresh.Language, restored.Language)
	assert.Equal(t, fresh.Products, restored.Products)
	assert.Equal(t, fresh.Staff, restored.Staff)
	assert.False(t, restored.Shift.IsOpen)
}

func TestPersistedIsDetachedFromSnapshot(t *testing.T) {
	store, _ := newTestStore(t)
	openShift(t, store)
	submitTableOrder(t, store, "t1")

	snap := store.Snapshot()
	p := snap.Persisted()
	p.Orders[0].Status = models.OrderCompleted
	p.Products[0].Stock = -999

	assert.Equal(t, models.OrderPending, snap.Orders[0].Status)
	assert.NotEqual(t, -999, snap.Products[0].Stock)
}
