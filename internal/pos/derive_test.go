package pos_test

import (
	"testing"

	"restoflow-backend/internal/models"
	"restoflow-backend/internal/pos"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotals(t *testing.T) {
	items := []models.OrderItem{
		{ID: "a", Price: 4.00, Quantity: 2},
		{ID: "b", Price: 2.00, Quantity: 1},
	}

	totals := pos.ComputeTotals(items)

	assert.InDelta(t, 10.00, totals.Subtotal, 1e-9)
	assert.InDelta(t, 1.00, totals.Tax, 1e-9)
	assert.InDelta(t, 11.00, totals.GrandTotal, 1e-9)
}

func TestSplitAmount(t *testing.T) {
	tests := []struct {
		name  string
		grand float64
		count int
		want  float64
	}{
		{"unsplit", 11.00, 1, 11.00},
		{"two ways", 11.00, 2, 5.50},
		{"four ways", 22.00, 4, 5.50},
		{"zero count treated as unsplit", 11.00, 0, 11.00},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, pos.SplitAmount(tc.grand, tc.count), 1e-9)
		})
	}
}

func TestSummarizeSales(t *testing.T) {
	orders := []models.Order{
		{Total: 10, Items: []models.OrderItem{{Name: "Fries", Quantity: 2}}},
		{Total: 25, Items: []models.OrderItem{
			{Name: "Burger", Quantity: 1},
			{Name: "Fries", Quantity: 3},
		}},
		{Total: 5, Items: []models.OrderItem{{Name: "Tea", Quantity: 1}}},
	}

	sum := pos.SummarizeSales(orders, 2)

	assert.InDelta(t, 40.0, sum.Revenue, 1e-9)
	assert.Equal(t, 3, sum.OrderCount)
	assert.Equal(t, []pos.ItemCount{
		{Name: "Fries", Quantity: 5},
		{Name: "Burger", Quantity: 1},
	}, sum.TopItems)
}

func TestSummarizeSalesEmptyLedger(t *testing.T) {
	sum := pos.SummarizeSales(nil, 5)

	assert.Zero(t, sum.Revenue)
	assert.Zero(t, sum.OrderCount)
	assert.Empty(t, sum.TopItems)
}
