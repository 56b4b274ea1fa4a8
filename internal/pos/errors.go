package pos

import "errors"

// Guard and validation errors. None of these are fatal: a failed
// dispatch leaves the snapshot exactly as it was.
var (
	ErrShiftClosed      = errors.New("no shift is open")
	ErrShiftAlreadyOpen = errors.New("a shift is already open")
	ErrCashierRequired  = errors.New("cashier name is required")
	ErrCredentialNeeded = errors.New("manager credential is required")
	ErrNegativeCash     = errors.New("opening cash cannot be negative")

	ErrProductNotFound   = errors.New("product not found")
	ErrModifierNotFound  = errors.New("modifier not found")
	ErrOutOfStock        = errors.New("product is out of stock")
	ErrInsufficientStock = errors.New("insufficient stock for order")

	ErrTableNotFound  = errors.New("table not found")
	ErrTableNotIdle   = errors.New("table is occupied or reserved")
	ErrDuplicateTable = errors.New("table id or name already exists")

	ErrLineNotFound = errors.New("cart line not found")
	ErrEmptyCart    = errors.New("cart is empty")

	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderCompleted     = errors.New("order is already completed")
	ErrBackwardTransition = errors.New("order status cannot move backward")

	ErrDuplicateProduct = errors.New("product id or sku already exists")
	ErrDuplicateStaff   = errors.New("staff id already exists")
	ErrStaffNotFound    = errors.New("staff member not found")
	ErrInvalidProduct   = errors.New("invalid product data")
	ErrInvalidTable     = errors.New("invalid table data")
	ErrInvalidStaff     = errors.New("invalid staff data")
	ErrNegativeStock    = errors.New("stock cannot go negative")
)
