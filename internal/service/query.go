package service

import (
	"context"

	"github.com/welcomehome/inventory/internal/model"
)

// FindItemLocations returns the storage locations recorded for an
// item. An unknown item yields an empty list, not an error.
func (a *App) FindItemLocations(ctx context.Context, itemID string) ([]string, error) {
	return a.items.Locations(ctx, itemID)
}

// FindOrderItems returns the (item, location) pairs currently
// associated with an order. Empty when none.
func (a *App) FindOrderItems(ctx context.Context, orderID string) ([]model.OrderItemLocation, error) {
	return a.orders.ItemsWithLocations(ctx, orderID)
}

// UserOrders returns the orders visible to the session: clients see
// only the orders placed on their behalf, elevated roles see every
// order.
func (a *App) UserOrders(ctx context.Context, sess *Session) ([]model.Order, error) {
	if sess == nil {
		return nil, ErrAuthenticationRequired
	}
	if sess.Role.Elevated() {
		return a.orders.ListAll(ctx)
	}
	return a.orders.ListByClient(ctx, sess.Username)
}

// AvailableItems lists inventory currently open for ordering.
func (a *App) AvailableItems(ctx context.Context) ([]model.Item, error) {
	return a.items.ListByStatus(ctx, model.ItemAvailable)
}

// Categories returns the category taxonomy.
func (a *App) Categories(ctx context.Context) ([]model.Category, error) {
	return a.categories.List(ctx)
}

// AddCategory inserts a category into the reference taxonomy.
// Requires an elevated session.
func (a *App) AddCategory(ctx context.Context, sess *Session, cat *model.Category) error {
	if sess == nil {
		return ErrAuthenticationRequired
	}
	if !sess.Role.Elevated() {
		return ErrNotAuthorized
	}
	return a.categories.Create(ctx, cat)
}
