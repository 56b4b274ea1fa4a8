package pos

import "restoflow-backend/internal/models"

// Snapshot is the complete state of the till after one intent. A
// snapshot handed out by the store never shares slices with the store's
// own copy, so readers can hold one across later dispatches.
type Snapshot struct {
	Products      []models.Product   `json:"products"`
	Tables        []models.Table     `json:"tables"`
	Orders        []models.Order     `json:"orders"`
	Shift         models.Shift       `json:"shift"`
	ActiveTableID string             `json:"activeTableId,omitempty"`
	Cart          []models.OrderItem `json:"cart"`
	View          models.View        `json:"view"`
	Theme         models.Theme       `json:"theme"`
	Language      models.Language    `json:"language"`
	Staff         []models.Staff     `json:"staff"`
}

// Clone deep-copies the snapshot, including nested modifier and item
// slices.
func (s Snapshot) Clone() Snapshot {
	out := s
	out.Products = cloneProducts(s.Products)
	out.Tables = append([]models.Table(nil), s.Tables...)
	out.Orders = cloneOrders(s.Orders)
	out.Cart = cloneItems(s.Cart)
	out.Staff = append([]models.Staff(nil), s.Staff...)
	if s.Shift.StartTime != nil {
		t := *s.Shift.StartTime
		out.Shift.StartTime = &t
	}
	return out
}

func cloneProducts(in []models.Product) []models.Product {
	out := make([]models.Product, len(in))
	for i, p := range in {
		p.Modifiers = append([]models.Modifier(nil), p.Modifiers...)
		out[i] = p
	}
	return out
}

func cloneItems(in []models.OrderItem) []models.OrderItem {
	out := make([]models.OrderItem, len(in))
	for i, it := range in {
		it.Modifiers = append([]models.Modifier(nil), it.Modifiers...)
		out[i] = it
	}
	return out
}

func cloneOrders(in []models.Order) []models.Order {
	out := make([]models.Order, len(in))
	for i, o := range in {
		o.Items = cloneItems(o.Items)
		out[i] = o
	}
	return out
}

func (s Snapshot) findProduct(id string) (int, bool) {
	for i := range s.Products {
		if s.Products[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

func (s Snapshot) findTable(id string) (int, bool) {
	for i := range s.Tables {
		if s.Tables[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

func (s Snapshot) findOrder(id string) (int, bool) {
	for i := range s.Orders {
		if s.Orders[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

func (s Snapshot) findStaff(id string) (int, bool) {
	for i := range s.Staff {
		if s.Staff[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

func (s Snapshot) findCartLine(id string) (int, bool) {
	for i := range s.Cart {
		if s.Cart[i].ID == id {
			return i, true
		}
	}
	return -1, false
}
