package model

import "errors"

// ItemStatus is the closed set of inventory item states.  Transitions
// are driven by the order lifecycle: available -> ordered when an item
// is added to an order, ordered -> ready when the order is prepared.
type ItemStatus string

const (
	ItemAvailable ItemStatus = "available"
	ItemOrdered   ItemStatus = "ordered"
	ItemReady     ItemStatus = "ready"
)

// DeliveryHolding is the fixed location items are moved to when their
// order is prepared for delivery.
const DeliveryHolding = "delivery_holding"

// ErrUnknownItemStatus is returned by ParseItemStatus for values
// outside the enumeration.
var ErrUnknownItemStatus = errors.New("unknown item status")

// ParseItemStatus validates a status string against the enumeration.
func ParseItemStatus(s string) (ItemStatus, error) {
	switch ItemStatus(s) {
	case ItemAvailable, ItemOrdered, ItemReady:
		return ItemStatus(s), nil
	}
	return "", ErrUnknownItemStatus
}

// Item mirrors the 'items' table.  CategoryID is nullable because
// donated goods are often intaken before they are classified.
type Item struct {
	ItemID      string
	CategoryID  *int64
	Name        string
	Description string
	Status      ItemStatus
	Location    string
}

// Category mirrors the 'categories' table.  Static reference data.
type Category struct {
	CategoryID  int64
	Name        string
	Subcategory string
}
