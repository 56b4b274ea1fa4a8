package pos

import "restoflow-backend/internal/models"

// Categories shown on the till, in menu order.
var Categories = []string{"Burgers", "Pizza", "Drinks", "Sides", "Desserts"}

var burgerMods = []models.Modifier{
	{ID: "m1", Name: "Extra Cheese", Price: 1.5},
	{ID: "m2", Name: "No Onion", Price: 0},
	{ID: "m3", Name: "Double Patty", Price: 4.0},
	{ID: "m4", Name: "Spicy Sauce", Price: 0.5},
}

var drinkMods = []models.Modifier{
	{ID: "d1", Name: "No Ice", Price: 0},
	{ID: "d2", Name: "Extra Ice", Price: 0},
	{ID: "d3", Name: "Lemon Slice", Price: 0.2},
}

var pizzaMods = []models.Modifier{
	{ID: "p1", Name: "Extra Mozzarella", Price: 2.0},
	{ID: "p2", Name: "Thin Crust", Price: 0},
	{ID: "p3", Name: "Stuffed Crust", Price: 3.0},
}

// SeedProducts is the default catalog used when no persisted state
// exists yet.
func SeedProducts() []models.Product {
	return []models.Product{
		{ID: "1", Name: "Classic Cheese Burger", NameAr: "برجر كلاسيك بالجبن", Price: 12.50, Category: "Burgers", Stock: 50, SKU: "101", Modifiers: burgerMods},
		{ID: "2", Name: "Double Bacon BBQ", NameAr: "برجر باربيكيو مزدوج", Price: 15.00, Category: "Burgers", Stock: 35, SKU: "102", Modifiers: burgerMods},
		{ID: "3", Name: "Margherita Pizza", NameAr: "بيتزا مارغريتا", Price: 14.00, Category: "Pizza", Stock: 30, SKU: "201", Modifiers: pizzaMods},
		{ID: "4", Name: "Pepperoni Pizza", NameAr: "بيتزا بيبروني", Price: 16.00, Category: "Pizza", Stock: 28, SKU: "202", Modifiers: pizzaMods},
		{ID: "5", Name: "Fresh Lemonade", NameAr: "عصير ليمون طازج", Price: 4.50, Category: "Drinks", Stock: 80, SKU: "301", Modifiers: drinkMods},
		{ID: "6", Name: "Iced Tea", NameAr: "شاي مثلج", Price: 3.50, Category: "Drinks", Stock: 90, SKU: "302", Modifiers: drinkMods},
		{ID: "7", Name: "French Fries", NameAr: "بطاطس مقلية", Price: 5.00, Category: "Sides", Stock: 100, SKU: "401"},
		{ID: "8", Name: "Onion Rings", NameAr: "حلقات البصل", Price: 5.50, Category: "Sides", Stock: 60, SKU: "402"},
		{ID: "9", Name: "Chocolate Lava Cake", NameAr: "كيكة الشوكولاتة البركانية", Price: 7.50, Category: "Desserts", Stock: 25, SKU: "501"},
	}
}

// SeedTables is the default floor plan. Table state is volatile and
// resets to this layout on every load.
func SeedTables() []models.Table {
	return []models.Table{
		{ID: "t1", Name: "T1", Status: models.TableAvailable, Seats: 2},
		{ID: "t2", Name: "T2", Status: models.TableAvailable, Seats: 2},
		{ID: "t3", Name: "T3", Status: models.TableAvailable, Seats: 4},
		{ID: "t4", Name: "T4", Status: models.TableAvailable, Seats: 4},
		{ID: "t5", Name: "T5", Status: models.TableAvailable, Seats: 6},
		{ID: "t6", Name: "T6", Status: models.TableAvailable, Seats: 8},
	}
}

func SeedStaff() []models.Staff {
	return []models.Staff{
		{ID: "s1", Name: "Ahmed Ali", Role: models.RoleManager, Phone: "+1 555 0101", Status: models.StaffActive},
		{ID: "s2", Name: "Sara Hassan", Role: models.RoleCashier, Phone: "+1 555 0102", Status: models.StaffActive},
		{ID: "s3", Name: "Omar Khalid", Role: models.RoleChef, Phone: "+1 555 0103", Status: models.StaffActive},
		{ID: "s4", Name: "Lina Yousef", Role: models.RoleWaiter, Phone: "+1 555 0104", Status: models.StaffInactive},
	}
}

// NewSnapshot is the initial state of a fresh till.
func NewSnapshot() Snapshot {
	return Snapshot{
		Products: SeedProducts(),
		Tables:   SeedTables(),
		Staff:    SeedStaff(),
		Shift:    models.Shift{Role: models.RoleCashier},
		View:     models.ViewPOS,
		Theme:    models.ThemeDark,
		Language: models.LangEnglish,
	}
}
