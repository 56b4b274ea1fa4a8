package models

// Modifier is a priced add-on choice attached to a product. Selected
// modifiers are copied by value into order lines, so historical orders
// keep their own snapshot even if the product's modifier list changes.
type Modifier struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type Product struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`   // English name
	NameAr    string     `json:"nameAr"` // Arabic name
	Price     float64    `json:"price"`
	Category  string     `json:"category"`
	Image     string     `json:"image"`
	Stock     int        `json:"stock"`
	SKU       string     `json:"sku"`
	Modifiers []Modifier `json:"availableModifiers,omitempty"`
}
