package models

import "time"

type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderPreparing OrderStatus = "PREPARING"
	OrderReady     OrderStatus = "READY"
	OrderCompleted OrderStatus = "COMPLETED"
)

type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "CASH"
	PaymentCard   PaymentMethod = "CARD"
	PaymentOnline PaymentMethod = "ONLINE"
)

// OrderItem is one cart line or order line. Name and Price are captured
// at add-to-cart time (name in the active display language, price
// including modifiers) and never re-resolved afterwards.
type OrderItem struct {
	ID        string     `json:"id"`
	ProductID string     `json:"productId"`
	Name      string     `json:"name"`
	Price     float64    `json:"price"`
	Quantity  int        `json:"quantity"`
	Modifiers []Modifier `json:"modifiers,omitempty"`
	Notes     string     `json:"notes,omitempty"`
}

// Order is immutable after submission except for Status. TableID is
// empty for takeaway/no-table orders.
type Order struct {
	ID            string        `json:"id"`
	TableID       string        `json:"tableId,omitempty"`
	Items         []OrderItem   `json:"items"`
	Total         float64       `json:"total"`
	Status        OrderStatus   `json:"status"`
	Timestamp     time.Time     `json:"timestamp"`
	PaymentMethod PaymentMethod `json:"paymentMethod,omitempty"`
	CustomerName  string        `json:"customerName,omitempty"`
}

// NextStatus returns the single forward step in the kitchen workflow.
// ok is false when the order is already COMPLETED.
func NextStatus(s OrderStatus) (OrderStatus, bool) {
	switch s {
	case OrderPending:
		return OrderPreparing, true
	case OrderPreparing:
		return OrderReady, true
	case OrderReady:
		return OrderCompleted, true
	default:
		return s, false
	}
}
