package tables

import "time"

type Status string

const (
	StatusFree        Status = "free"
	StatusOccupied    Status = "occupied"
	StatusReserved    Status = "reserved"
	StatusMaintenance Status = "maintenance"
)

// DefaultTableIDs is the fixed set created by the bootstrap.
var DefaultTableIDs = []string{"table1", "table2", "table3", "table4", "table5", "table6"}

// Table is a shared long-lived record. OrderID is set only while an order
// occupies the table.
type Table struct {
	ID        string    `json:"id"`
	Status    Status    `json:"status"`
	OrderID   *string   `json:"order_id"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ValidStatus(s Status) bool {
	switch s {
	case StatusFree, StatusOccupied, StatusReserved, StatusMaintenance:
		return true
	}
	return false
}
