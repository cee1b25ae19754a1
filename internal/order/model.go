package order

import "time"

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

const (
	PaymentPayOnDelivery = "Pay on Delivery"
	PaymentOther         = "Other"
)

// Line is a snapshot of catalog data at order time, not a live reference.
type Line struct {
	ItemID   string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

func (l Line) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}

// Order is immutable after creation except for Status.
type Order struct {
	ID            string    `json:"id"`
	CustomerName  string    `json:"customer_name"`
	Phone         string    `json:"phone"`
	PaymentMethod string    `json:"payment_method"`
	Lines         []Line    `json:"items"`
	TotalPrice    float64   `json:"total_price"`
	Status        Status    `json:"status"`
	TableID       *string   `json:"table_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type CustomerInfo struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	PayOnDelivery bool   `json:"pay_on_delivery"`
	TableID       string `json:"table_id"`
}
