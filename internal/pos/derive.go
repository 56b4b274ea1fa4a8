package pos

import (
	"sort"

	"restoflow-backend/internal/models"
)

// TaxRate is the flat tax applied on top of the line-item subtotal at
// payment time. Order totals in the ledger are ex-tax.
const TaxRate = 0.10

type Totals struct {
	Subtotal   float64 `json:"subtotal"`
	Tax        float64 `json:"tax"`
	GrandTotal float64 `json:"grandTotal"`
}

func Subtotal(items []models.OrderItem) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Price * float64(it.Quantity)
	}
	return sum
}

func ComputeTotals(items []models.OrderItem) Totals {
	sub := Subtotal(items)
	tax := sub * TaxRate
	return Totals{Subtotal: sub, Tax: tax, GrandTotal: sub + tax}
}

// SplitAmount divides the grand total across count payers. A count of
// one (or less) is an unsplit payment.
func SplitAmount(grandTotal float64, count int) float64 {
	if count <= 1 {
		return grandTotal
	}
	return grandTotal / float64(count)
}

// ActiveOrders is the kitchen projection: everything not yet completed,
// earliest submission first.
func ActiveOrders(snap Snapshot) []models.Order {
	var out []models.Order
	for _, o := range snap.Orders {
		if o.Status != models.OrderCompleted {
			out = append(out, o)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}

type ItemCount struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type SalesSummary struct {
	Revenue    float64     `json:"revenue"`
	OrderCount int         `json:"orderCount"`
	TopItems   []ItemCount `json:"topItems"`
}

// SummarizeSales aggregates the ledger for the admin dashboard and the
// insights prompt: total revenue, order count and the top-selling items
// by quantity (at most limit entries).
func SummarizeSales(orders []models.Order, limit int) SalesSummary {
	sum := SalesSummary{OrderCount: len(orders)}
	counts := map[string]int{}
	for _, o := range orders {
		sum.Revenue += o.Total
		for _, it := range o.Items {
			counts[it.Name] += it.Quantity
		}
	}
	for name, qty := range counts {
		sum.TopItems = append(sum.TopItems, ItemCount{Name: name, Quantity: qty})
	}
	sort.Slice(sum.TopItems, func(i, j int) bool {
		if sum.TopItems[i].Quantity != sum.TopItems[j].Quantity {
			return sum.TopItems[i].Quantity > sum.TopItems[j].Quantity
		}
		return sum.TopItems[i].Name < sum.TopItems[j].Name
	})
	if limit > 0 && len(sum.TopItems) > limit {
		sum.TopItems = sum.TopItems[:limit]
	}
	return sum
}
