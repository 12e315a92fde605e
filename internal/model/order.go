package model

import "time"

// OrderStatus is the closed set of order states.  ready_for_delivery
// is terminal; no cancellation or delivered state is modeled.
type OrderStatus string

const (
	OrderInProgress       OrderStatus = "in_progress"
	OrderReadyForDelivery OrderStatus = "ready_for_delivery"
)

// Order mirrors the 'orders' table.  Orders are created by staff on
// behalf of a client and never deleted.
type Order struct {
	OrderID        string
	ClientUsername string
	Status         OrderStatus
	CreatedAt      time.Time
}

// OrderItemLocation pairs an item in an order with its current
// storage location, as returned by the order-items lookup.
type OrderItemLocation struct {
	ItemID   string
	Location string
}
