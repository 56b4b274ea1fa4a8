package models

type StaffStatus string

const (
	StaffActive   StaffStatus = "ACTIVE"
	StaffInactive StaffStatus = "INACTIVE"
)

// Staff is the roster entry. It has no runtime coupling to Shift beyond
// role names matching for display.
type Staff struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Role   Role        `json:"role"`
	Phone  string      `json:"phone"`
	Status StaffStatus `json:"status"`
}
