package pos

import "restoflow-backend/internal/models"

// Intent is the closed set of state transitions the till accepts. The
// marker method seals the set: every variant lives in this file and the
// dispatch switch in apply.go handles each one.
type Intent interface {
	isIntent()
}

// StartShift opens the till session. Credential is only checked for
// presence when Role is MANAGER; validating it is the caller's job.
type StartShift struct {
	Cashier     string
	OpeningCash float64
	Role        models.Role
	Credential  string
}

// EndShift closes the session and abandons any in-progress cart and
// table selection. The ledger, catalog and floor plan are untouched.
type EndShift struct{}

type SetView struct {
	View models.View
}

// SelectTable sets the active selection. TableID may be a registered
// table id, models.TakeawayID, or empty to return to the floor plan.
type SelectTable struct {
	TableID string
}

// AddToCart adds one unit of a product with the chosen modifiers
// (referenced by id against the product's modifier list).
type AddToCart struct {
	ProductID   string
	ModifierIDs []string
	Notes       string
}

// UpdateCartQty adjusts a line's quantity by Delta; a line driven to
// zero is removed.
type UpdateCartQty struct {
	LineID string
	Delta  int
}

type RemoveFromCart struct {
	LineID string
}

type ClearCart struct{}

// SubmitOrder turns the cart into a PENDING order: snapshots the lines,
// decrements stock, occupies the selected table, adds the total to the
// shift revenue and clears the cart and selection.
type SubmitOrder struct {
	PaymentMethod models.PaymentMethod
	CustomerName  string
}

// UpdateOrderStatus applies a target status directly. Completing an
// order releases its table. Backward moves are rejected.
type UpdateOrderStatus struct {
	OrderID string
	Status  models.OrderStatus
}

// AdvanceOrder steps an order one place forward in
// PENDING -> PREPARING -> READY -> COMPLETED.
type AdvanceOrder struct {
	OrderID string
}

type AddProduct struct {
	Product models.Product
}

type UpdateProduct struct {
	Product models.Product
}

type DeleteProduct struct {
	ProductID string
}

// UpdateStock adjusts a product's stock by Amount (positive or
// negative); the result may not go below zero.
type UpdateStock struct {
	ProductID string
	Amount    int
}

type AddStaff struct {
	Staff models.Staff
}

type UpdateStaff struct {
	Staff models.Staff
}

type DeleteStaff struct {
	StaffID string
}

type AddTable struct {
	Table models.Table
}

// UpdateTable renames/resizes a table. Occupancy fields are owned by
// the order lifecycle and cannot be set here.
type UpdateTable struct {
	Table models.Table
}

// DeleteTable removes a table; refused unless the table is AVAILABLE.
type DeleteTable struct {
	TableID string
}

type ToggleTheme struct{}

type SetLanguage struct {
	Language models.Language
}

func (StartShift) isIntent()        {}
func (EndShift) isIntent()          {}
func (SetView) isIntent()           {}
func (SelectTable) isIntent()       {}
func (AddToCart) isIntent()         {}
func (UpdateCartQty) isIntent()     {}
func (RemoveFromCart) isIntent()    {}
func (ClearCart) isIntent()         {}
func (SubmitOrder) isIntent()       {}
func (UpdateOrderStatus) isIntent() {}
func (AdvanceOrder) isIntent()      {}
func (AddProduct) isIntent()        {}
func (UpdateProduct) isIntent()     {}
func (DeleteProduct) isIntent()     {}
func (UpdateStock) isIntent()       {}
func (AddStaff) isIntent()          {}
func (UpdateStaff) isIntent()       {}
func (DeleteStaff) isIntent()       {}
func (AddTable) isIntent()          {}
func (UpdateTable) isIntent()       {}
func (DeleteTable) isIntent()       {}
func (ToggleTheme) isIntent()       {}
func (SetLanguage) isIntent()       {}
