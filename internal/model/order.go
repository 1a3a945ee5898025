package model

// Order statuses accepted by the order validator.
const (
	OrderStatusPending    = "Pending"
	OrderStatusProcessing = "Processing"
	OrderStatusCompleted  = "Completed"
	OrderStatusCancelled  = "Cancelled"
)

// AllowedOrderStatuses lists the statuses in their canonical order.
var AllowedOrderStatuses = []string{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusCompleted,
	OrderStatusCancelled,
}

type OrderCreateDto struct {
	UserID int     `json:"userId"`
	Total  float64 `json:"total"`
	Status *string `json:"status"`
}
