package domain

// Stats is the admin dashboard summary, recomputed on every request.
type Stats struct {
	TotalOrders     int64            `json:"total_orders"`
	PendingOrders   int64            `json:"pending_orders"`
	CompletedOrders int64            `json:"completed_orders"`
	OrdersByStatus  map[string]int64 `json:"orders_by_status"`
	TotalRevenue    float64          `json:"total_revenue"`
	OrdersToday     int64            `json:"orders_today"`
	TotalUsers      int64            `json:"total_users"`
}
