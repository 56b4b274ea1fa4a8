package models

import "time"

type Role string

const (
	RoleManager Role = "MANAGER"
	RoleCashier Role = "CASHIER"
	RoleChef    Role = "CHEF"
	RoleWaiter  Role = "WAITER"
)

// Shift is the single active till session. While IsOpen is false every
// cart/order/table-selection intent is rejected.
type Shift struct {
	IsOpen      bool       `json:"isOpen"`
	StartTime   *time.Time `json:"startTime,omitempty"`
	StartCash   float64    `json:"startCash"`
	TotalSales  float64    `json:"totalSales"`
	CashierName string     `json:"cashierName"`
	Role        Role       `json:"role"`
}
