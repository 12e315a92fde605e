package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/welcomehome/inventory/internal/model"
)

// toMillis normalizes timestamps into millisecond precision for storage.
func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

// fromMillis restores millisecond precision and keeps UTC normalization.
func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// OrderRepo provides access to the orders and order_items tables.
type OrderRepo struct {
	db *sql.DB
}

// NewOrderRepo constructs an OrderRepo with the given DB handle.
func NewOrderRepo(db *sql.DB) *OrderRepo { return &OrderRepo{db: db} }

// CreateTx inserts a new order within the scope of an existing
// transaction. The caller must commit or rollback.
func (r *OrderRepo) CreateTx(ctx context.Context, tx *sql.Tx, o model.Order) error {
	const q = `INSERT INTO orders (order_id, client_username, status, created_at) VALUES (?, ?, ?, ?)`
	_, err := tx.ExecContext(ctx, q, o.OrderID, o.ClientUsername, string(o.Status), toMillis(o.CreatedAt))
	return err
}

// GetByID fetches a single order.
func (r *OrderRepo) GetByID(ctx context.Context, orderID string) (model.Order, error) {
	const q = `SELECT order_id, client_username, status, created_at FROM orders WHERE order_id = ? LIMIT 1`
	var o model.Order
	var status string
	var created int64
	err := r.db.QueryRowContext(ctx, q, orderID).Scan(&o.OrderID, &o.ClientUsername, &status, &created)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Order{}, ErrNotFound
		}
		return model.Order{}, err
	}
	o.Status = model.OrderStatus(status)
	o.CreatedAt = fromMillis(created)
	return o, nil
}

// AddItemTx inserts an order-item association within a transaction.
// The accompanying item status transition lives in the same
// transaction so an item can never be claimed by two orders.
func (r *OrderRepo) AddItemTx(ctx context.Context, tx *sql.Tx, orderID, itemID string) error {
	const q = `INSERT INTO order_items (order_id, item_id) VALUES (?, ?)`
	_, err := tx.ExecContext(ctx, q, orderID, itemID)
	return err
}

// UpdateStatusTx transitions an order's status within a transaction.
func (r *OrderRepo) UpdateStatusTx(ctx context.Context, tx *sql.Tx, orderID string, status model.OrderStatus) error {
	const q = `UPDATE orders SET status = ? WHERE order_id = ?`
	_, err := tx.ExecContext(ctx, q, string(status), orderID)
	return err
}

// ItemsWithLocations returns the (item, location) pairs currently
// associated with an order. Empty when the order has no items or does
// not exist.
func (r *OrderRepo) ItemsWithLocations(ctx context.Context, orderID string) ([]model.OrderItemLocation, error) {
	const q = `SELECT i.item_id, i.location
	           FROM items i
	           JOIN order_items oi ON i.item_id = oi.item_id
	           WHERE oi.order_id = ?
	           ORDER BY i.item_id`
	rows, err := r.db.QueryContext(ctx, q, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.OrderItemLocation, 0)
	for rows.Next() {
		var pair model.OrderItemLocation
		var loc sql.NullString
		if err := rows.Scan(&pair.ItemID, &loc); err != nil {
			return nil, err
		}
		pair.Location = loc.String
		out = append(out, pair)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByClient returns every order belonging to a client, newest first.
func (r *OrderRepo) ListByClient(ctx context.Context, clientUsername string) ([]model.Order, error) {
	const q = `SELECT order_id, client_username, status, created_at
	           FROM orders WHERE client_username = ? ORDER BY created_at DESC`
	return r.list(ctx, q, clientUsername)
}

// ListAll returns every order in the store, newest first. Used by
// staff views.
func (r *OrderRepo) ListAll(ctx context.Context) ([]model.Order, error) {
	const q = `SELECT order_id, client_username, status, created_at
	           FROM orders ORDER BY created_at DESC`
	return r.list(ctx, q)
}

func (r *OrderRepo) list(ctx context.Context, q string, args ...any) ([]model.Order, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	orders := make([]model.Order, 0)
	for rows.Next() {
		var o model.Order
		var status string
		var created int64
		if err := rows.Scan(&o.OrderID, &o.ClientUsername, &status, &created); err != nil {
			return nil, err
		}
		o.Status = model.OrderStatus(status)
		o.CreatedAt = fromMillis(created)
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}
