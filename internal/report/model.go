package report

import "dinepos-be/internal/order"

// Period filters completed orders by age. Mirrors the sales-report screen's
// time filter.
type Period string

const (
	PeriodAll   Period = "all"
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

func ValidPeriod(p Period) bool {
	switch p {
	case PeriodAll, PeriodDay, PeriodWeek, PeriodMonth, PeriodYear:
		return true
	}
	return false
}

type SalesReport struct {
	Orders            []*order.Order `json:"orders"`
	TotalRevenue      float64        `json:"total_revenue"`
	OrderCount        int            `json:"order_count"`
	AverageOrderValue float64        `json:"average_order_value"`
}

// Summary feeds the admin dashboard tiles.
type Summary struct {
	PendingOrders   int     `json:"pending_orders"`
	CompletedOrders int     `json:"completed_orders"`
	TotalRevenue    float64 `json:"total_revenue"`
	LowStockItems   int     `json:"low_stock_items"`
}
