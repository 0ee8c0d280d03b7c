package domain

import "time"

// Routing keys for order lifecycle events.
const (
	EventOrderCreated     = "order.created"
	EventOrderUpdated     = "order.updated"
	EventOrderItemRemoved = "order.item_removed"
	EventOrderDeleted     = "order.deleted"
)

type OrderEvent struct {
	OrderID    string    `json:"orderId"`
	Email      string    `json:"email"`
	TotalPrice float64   `json:"totalPrice"`
	ItemCount  int       `json:"itemCount"`
	OccurredAt time.Time `json:"occurredAt"`
}

func NewOrderEvent(o *Order) OrderEvent {
	return OrderEvent{
		OrderID:    o.ID,
		Email:      o.Email,
		TotalPrice: o.TotalPrice,
		ItemCount:  len(o.Products),
		OccurredAt: time.Now(),
	}
}
