package models

type TableStatus string

const (
	TableAvailable TableStatus = "AVAILABLE"
	TableOccupied  TableStatus = "OCCUPIED"
	TableReserved  TableStatus = "RESERVED"
)

// TakeawayID is accepted wherever a table id is accepted but is never a
// member of the table registry and never carries occupancy state.
const TakeawayID = "TAKEAWAY"

type Table struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Status         TableStatus `json:"status"`
	Seats          int         `json:"seats"`
	CurrentOrderID string      `json:"currentOrderId,omitempty"`
}
