package pos

import (
	"fmt"
	"sort"
	"strings"

	"restoflow-backend/internal/models"
)

// apply computes the next snapshot for one intent. snap is already a
// private copy and may be mutated freely; on error the caller discards
// it.
func (s *Store) apply(snap Snapshot, in Intent) (Snapshot, error) {
	switch in := in.(type) {
	case StartShift:
		return s.applyStartShift(snap, in)
	case EndShift:
		return applyEndShift(snap)
	case SetView:
		snap.View = in.View
		return snap, nil
	case SelectTable:
		return applySelectTable(snap, in)
	case AddToCart:
		return s.applyAddToCart(snap, in)
	case UpdateCartQty:
		return applyUpdateCartQty(snap, in)
	case RemoveFromCart:
		return applyRemoveFromCart(snap, in)
	case ClearCart:
		if err := requireOpenShift(snap); err != nil {
			return snap, err
		}
		snap.Cart = nil
		return snap, nil
	case SubmitOrder:
		return s.applySubmitOrder(snap, in)
	case UpdateOrderStatus:
		return applyUpdateOrderStatus(snap, in)
	case AdvanceOrder:
		return applyAdvanceOrder(snap, in)
	case AddProduct:
		return s.applyAddProduct(snap, in)
	case UpdateProduct:
		return applyUpdateProduct(snap, in)
	case DeleteProduct:
		return applyDeleteProduct(snap, in)
	case UpdateStock:
		return applyUpdateStock(snap, in)
	case AddStaff:
		return s.applyAddStaff(snap, in)
	case UpdateStaff:
		return applyUpdateStaff(snap, in)
	case DeleteStaff:
		return applyDeleteStaff(snap, in)
	case AddTable:
		return s.applyAddTable(snap, in)
	case UpdateTable:
		return applyUpdateTable(snap, in)
	case DeleteTable:
		return applyDeleteTable(snap, in)
	case ToggleTheme:
		if snap.Theme == models.ThemeDark {
			snap.Theme = models.ThemeLight
		} else {
			snap.Theme = models.ThemeDark
		}
		return snap, nil
	case SetLanguage:
		snap.Language = in.Language
		return snap, nil
	default:
		return snap, fmt.Errorf("unhandled intent %T", in)
	}
}

func requireOpenShift(snap Snapshot) error {
	if !snap.Shift.IsOpen {
		return ErrShiftClosed
	}
	return nil
}

// --- shift ---

func (s *Store) applyStartShift(snap Snapshot, in StartShift) (Snapshot, error) {
	if snap.Shift.IsOpen {
		return snap, ErrShiftAlreadyOpen
	}
	cashier := strings.TrimSpace(in.Cashier)
	if cashier == "" {
		return snap, ErrCashierRequired
	}
	if in.OpeningCash < 0 {
		return snap, ErrNegativeCash
	}
	if in.Role == models.RoleManager && strings.TrimSpace(in.Credential) == "" {
		return snap, ErrCredentialNeeded
	}

	start := s.now()
	snap.Shift = models.Shift{
		IsOpen:      true,
		StartTime:   &start,
		StartCash:   in.OpeningCash,
		TotalSales:  0,
		CashierName: cashier,
		Role:        in.Role,
	}
	// UX default: managers land on the admin view, cashiers on the till.
	if in.Role == models.RoleManager {
		snap.View = models.ViewAdmin
	} else {
		snap.View = models.ViewPOS
	}
	return snap, nil
}

func applyEndShift(snap Snapshot) (Snapshot, error) {
	snap.Shift = models.Shift{Role: models.RoleCashier}
	snap.Cart = nil
	snap.ActiveTableID = ""
	snap.View = models.ViewPOS
	return snap, nil
}

// --- table selection & cart ---

func applySelectTable(snap Snapshot, in SelectTable) (Snapshot, error) {
	if err := requireOpenShift(snap); err != nil {
		return snap, err
	}
	if in.TableID != "" && in.TableID != models.TakeawayID {
		if _, ok := snap.findTable(in.TableID); !ok {
			return snap, ErrTableNotFound
		}
	}
	snap.ActiveTableID = in.TableID
	return snap, nil
}

func (s *Store) applyAddToCart(snap Snapshot, in AddToCart) (Snapshot, error) {
	if err := requireOpenShift(snap); err != nil {
		return snap, err
	}
	pi, ok := snap.findProduct(in.ProductID)
	if !ok {
		return snap, ErrProductNotFound
	}
	product := snap.Products[pi]
	if product.Stock <= 0 {
		return snap, ErrOutOfStock
	}

	mods, err := resolveModifiers(product, in.ModifierIDs)
	if err != nil {
		return snap, err
	}

	price := product.Price
	for _, m := range mods {
		price += m.Price
	}

	// Merge by product and canonical modifier set, so the same
	// selection picked in a different order lands on one line.
	key := modifierKey(in.ProductID, mods)
	for i := range snap.Cart {
		if modifierKey(snap.Cart[i].ProductID, snap.Cart[i].Modifiers) == key {
			snap.Cart[i].Quantity++
			return snap, nil
		}
	}

	snap.Cart = append(snap.Cart, models.OrderItem{
		ID:        s.newID(),
		ProductID: product.ID,
		Name:      displayName(product, snap.Language),
		Price:     price,
		Quantity:  1,
		Modifiers: mods,
		Notes:     strings.TrimSpace(in.Notes),
	})
	return snap, nil
}

func resolveModifiers(p models.Product, ids []string) ([]models.Modifier, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	mods := make([]models.Modifier, 0, len(ids))
	for _, id := range ids {
		found := false
		for _, m := range p.Modifiers {
			if m.ID == id {
				mods = append(mods, m)
				found = true
				break
			}
		}
		if !found {
			return nil, ErrModifierNotFound
		}
	}
	return mods, nil
}

func modifierKey(productID string, mods []models.Modifier) string {
	ids := make([]string, len(mods))
	for i, m := range mods {
		ids[i] = m.ID
	}
	sort.Strings(ids)
	return productID + "|" + strings.Join(ids, ",")
}

func displayName(p models.Product, lang models.Language) string {
	if lang == models.LangArabic && p.NameAr != "" {
		return p.NameAr
	}
	return p.Name
}

func applyUpdateCartQty(snap Snapshot, in UpdateCartQty) (Snapshot, error) {
	if err := requireOpenShift(snap); err != nil {
		return snap, err
	}
	i, ok := snap.findCartLine(in.LineID)
	if !ok {
		return snap, ErrLineNotFound
	}
	q := snap.Cart[i].Quantity + in.Delta
	if q <= 0 {
		snap.Cart = append(snap.Cart[:i], snap.Cart[i+1:]...)
	} else {
		snap.Cart[i].Quantity = q
	}
	return snap, nil
}

func applyRemoveFromCart(snap Snapshot, in RemoveFromCart) (Snapshot, error) {
	if err := requireOpenShift(snap); err != nil {
		return snap, err
	}
	i, ok := snap.findCartLine(in.LineID)
	if !ok {
		return snap, ErrLineNotFound
	}
	snap.Cart = append(snap.Cart[:i], snap.Cart[i+1:]...)
	return snap, nil
}

// --- order submission ---

func (s *Store) applySubmitOrder(snap Snapshot, in SubmitOrder) (Snapshot, error) {
	if err := requireOpenShift(snap); err != nil {
		return snap, err
	}
	if len(snap.Cart) == 0 {
		return snap, ErrEmptyCart
	}

	// Aggregate required quantity per product across lines (the same
	// product can appear on several lines with different modifiers) and
	// refuse the whole order rather than let any stock go negative.
	required := map[string]int{}
	for _, line := range snap.Cart {
		required[line.ProductID] += line.Quantity
	}
	for pid, qty := range required {
		i, ok := snap.findProduct(pid)
		if !ok {
			return snap, ErrProductNotFound
		}
		if snap.Products[i].Stock < qty {
			return snap, ErrInsufficientStock
		}
	}
	for pid, qty := range required {
		i, _ := snap.findProduct(pid)
		snap.Products[i].Stock -= qty
	}

	var total float64
	for _, line := range snap.Cart {
		total += line.Price * float64(line.Quantity)
	}

	now := s.now()
	order := models.Order{
		ID:            nextOrderID(snap, now.UnixMilli()),
		Items:         cloneItems(snap.Cart),
		Total:         total,
		Status:        models.OrderPending,
		Timestamp:     now,
		PaymentMethod: in.PaymentMethod,
		CustomerName:  in.CustomerName,
	}

	if snap.ActiveTableID != "" && snap.ActiveTableID != models.TakeawayID {
		ti, ok := snap.findTable(snap.ActiveTableID)
		if !ok {
			return snap, ErrTableNotFound
		}
		order.TableID = snap.ActiveTableID
		snap.Tables[ti].Status = models.TableOccupied
		snap.Tables[ti].CurrentOrderID = order.ID
	}

	snap.Orders = append(snap.Orders, order)
	snap.Shift.TotalSales += total
	snap.Cart = nil
	snap.ActiveTableID = ""
	return snap, nil
}

// nextOrderID derives a time-based id, bumping past any collision with
// an order submitted in the same millisecond.
func nextOrderID(snap Snapshot, millis int64) string {
	for {
		id := fmt.Sprintf("ord-%d", millis)
		if _, ok := snap.findOrder(id); !ok {
			return id
		}
		millis++
	}
}

// --- order lifecycle ---

var statusRank = map[models.OrderStatus]int{
	models.OrderPending:   0,
	models.OrderPreparing: 1,
	models.OrderReady:     2,
	models.OrderCompleted: 3,
}

func applyUpdateOrderStatus(snap Snapshot, in UpdateOrderStatus) (Snapshot, error) {
	if err := requireOpenShift(snap); err != nil {
		return snap, err
	}
	i, ok := snap.findOrder(in.OrderID)
	if !ok {
		return snap, ErrOrderNotFound
	}
	return setOrderStatus(snap, i, in.Status)
}

func applyAdvanceOrder(snap Snapshot, in AdvanceOrder) (Snapshot, error) {
	if err := requireOpenShift(snap); err != nil {
		return snap, err
	}
	i, ok := snap.findOrder(in.OrderID)
	if !ok {
		return snap, ErrOrderNotFound
	}
	next, ok := models.NextStatus(snap.Orders[i].Status)
	if !ok {
		return snap, ErrOrderCompleted
	}
	return setOrderStatus(snap, i, next)
}

func setOrderStatus(snap Snapshot, i int, target models.OrderStatus) (Snapshot, error) {
	current := snap.Orders[i].Status
	if statusRank[target] < statusRank[current] {
		return snap, ErrBackwardTransition
	}
	snap.Orders[i].Status = target

	// Completing a dine-in order releases its table.
	if target == models.OrderCompleted && snap.Orders[i].TableID != "" {
		if ti, ok := snap.findTable(snap.Orders[i].TableID); ok {
			snap.Tables[ti].Status = models.TableAvailable
			snap.Tables[ti].CurrentOrderID = ""
		}
	}
	return snap, nil
}

// --- catalog administration ---

func validProduct(p models.Product) bool {
	return strings.TrimSpace(p.Name) != "" && p.Price >= 0 && p.Stock >= 0
}

func (s *Store) applyAddProduct(snap Snapshot, in AddProduct) (Snapshot, error) {
	p := in.Product
	if !validProduct(p) {
		return snap, ErrInvalidProduct
	}
	if p.ID == "" {
		p.ID = s.newID()
	}
	for _, existing := range snap.Products {
		if existing.ID == p.ID || (p.SKU != "" && existing.SKU == p.SKU) {
			return snap, ErrDuplicateProduct
		}
	}
	snap.Products = append(snap.Products, p)
	return snap, nil
}

func applyUpdateProduct(snap Snapshot, in UpdateProduct) (Snapshot, error) {
	p := in.Product
	i, ok := snap.findProduct(p.ID)
	if !ok {
		return snap, ErrProductNotFound
	}
	if !validProduct(p) {
		return snap, ErrInvalidProduct
	}
	for j, existing := range snap.Products {
		if j != i && p.SKU != "" && existing.SKU == p.SKU {
			return snap, ErrDuplicateProduct
		}
	}
	snap.Products[i] = p
	return snap, nil
}

func applyDeleteProduct(snap Snapshot, in DeleteProduct) (Snapshot, error) {
	i, ok := snap.findProduct(in.ProductID)
	if !ok {
		return snap, ErrProductNotFound
	}
	// No cascade: orders hold their own copies of item data.
	snap.Products = append(snap.Products[:i], snap.Products[i+1:]...)
	return snap, nil
}

func applyUpdateStock(snap Snapshot, in UpdateStock) (Snapshot, error) {
	i, ok := snap.findProduct(in.ProductID)
	if !ok {
		return snap, ErrProductNotFound
	}
	next := snap.Products[i].Stock + in.Amount
	if next < 0 {
		return snap, ErrNegativeStock
	}
	snap.Products[i].Stock = next
	return snap, nil
}

// --- staff administration ---

func (s *Store) applyAddStaff(snap Snapshot, in AddStaff) (Snapshot, error) {
	st := in.Staff
	if strings.TrimSpace(st.Name) == "" {
		return snap, ErrInvalidStaff
	}
	if st.ID == "" {
		st.ID = s.newID()
	}
	if _, ok := snap.findStaff(st.ID); ok {
		return snap, ErrDuplicateStaff
	}
	if st.Status == "" {
		st.Status = models.StaffActive
	}
	snap.Staff = append(snap.Staff, st)
	return snap, nil
}

func applyUpdateStaff(snap Snapshot, in UpdateStaff) (Snapshot, error) {
	i, ok := snap.findStaff(in.Staff.ID)
	if !ok {
		return snap, ErrStaffNotFound
	}
	if strings.TrimSpace(in.Staff.Name) == "" {
		return snap, ErrInvalidStaff
	}
	snap.Staff[i] = in.Staff
	return snap, nil
}

func applyDeleteStaff(snap Snapshot, in DeleteStaff) (Snapshot, error) {
	i, ok := snap.findStaff(in.StaffID)
	if !ok {
		return snap, ErrStaffNotFound
	}
	snap.Staff = append(snap.Staff[:i], snap.Staff[i+1:]...)
	return snap, nil
}

// --- table administration ---

func (s *Store) applyAddTable(snap Snapshot, in AddTable) (Snapshot, error) {
	t := in.Table
	if strings.TrimSpace(t.Name) == "" || t.Seats <= 0 {
		return snap, ErrInvalidTable
	}
	if t.ID == "" {
		t.ID = s.newID()
	}
	if t.ID == models.TakeawayID {
		return snap, ErrInvalidTable
	}
	for _, existing := range snap.Tables {
		if existing.ID == t.ID || existing.Name == t.Name {
			return snap, ErrDuplicateTable
		}
	}
	t.Status = models.TableAvailable
	t.CurrentOrderID = ""
	snap.Tables = append(snap.Tables, t)
	return snap, nil
}

func applyUpdateTable(snap Snapshot, in UpdateTable) (Snapshot, error) {
	t := in.Table
	i, ok := snap.findTable(t.ID)
	if !ok {
		return snap, ErrTableNotFound
	}
	if strings.TrimSpace(t.Name) == "" || t.Seats <= 0 {
		return snap, ErrInvalidTable
	}
	for j, existing := range snap.Tables {
		if j != i && existing.Name == t.Name {
			return snap, ErrDuplicateTable
		}
	}
	existing := snap.Tables[i]
	existing.Name = t.Name
	existing.Seats = t.Seats
	// Occupancy belongs to the order lifecycle; only the reserved flag
	// may be toggled here, and never on an occupied table.
	if existing.Status != models.TableOccupied &&
		(t.Status == models.TableAvailable || t.Status == models.TableReserved) {
		existing.Status = t.Status
	}
	snap.Tables[i] = existing
	return snap, nil
}

func applyDeleteTable(snap Snapshot, in DeleteTable) (Snapshot, error) {
	i, ok := snap.findTable(in.TableID)
	if !ok {
		return snap, ErrTableNotFound
	}
	if snap.Tables[i].Status != models.TableAvailable {
		return snap, ErrTableNotIdle
	}
	snap.Tables = append(snap.Tables[:i], snap.Tables[i+1:]...)
	return snap, nil
}
