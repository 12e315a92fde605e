package repository // repository defines data access for inventory items

import (
	"context"
	"database/sql"
	"errors"

	"github.com/welcomehome/inventory/internal/model"
)

// ItemRepo provides methods to work with items in the database.
type ItemRepo struct {
	db *sql.DB
}

// NewItemRepo constructs an ItemRepo with the given DB handle.
func NewItemRepo(db *sql.DB) *ItemRepo {
	return &ItemRepo{db: db}
}

// InsertTx inserts a single item within an existing transaction.
// Donation intake inserts the donation row and every item row in one
// transaction, so partial intakes never persist.
func (r *ItemRepo) InsertTx(ctx context.Context, tx *sql.Tx, it model.Item) error {
	const q = `INSERT INTO items (item_id, category_id, name, description, status, location)
	           VALUES (?, ?, ?, ?, ?, ?)`
	_, err := tx.ExecContext(ctx, q, it.ItemID, it.CategoryID, it.Name, it.Description, string(it.Status), it.Location)
	return err
}

// StatusTx reads an item's current status inside a transaction, so the
// availability check and the subsequent transition commit atomically.
func (r *ItemRepo) StatusTx(ctx context.Context, tx *sql.Tx, itemID string) (model.ItemStatus, error) {
	const q = `SELECT status FROM items WHERE item_id = ? LIMIT 1`
	var status string
	err := tx.QueryRowContext(ctx, q, itemID).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}
	return model.ItemStatus(status), nil
}

// UpdateStatusTx transitions a single item's status within a transaction.
func (r *ItemRepo) UpdateStatusTx(ctx context.Context, tx *sql.Tx, itemID string, status model.ItemStatus) error {
	const q = `UPDATE items SET status = ? WHERE item_id = ?`
	_, err := tx.ExecContext(ctx, q, string(status), itemID)
	return err
}

// MarkOrderReadyTx moves every item associated with an order to the
// given status and location in one statement.
func (r *ItemRepo) MarkOrderReadyTx(ctx context.Context, tx *sql.Tx, orderID string, status model.ItemStatus, location string) error {
	const q = `UPDATE items SET status = ?, location = ?
	           WHERE item_id IN (SELECT item_id FROM order_items WHERE order_id = ?)`
	_, err := tx.ExecContext(ctx, q, string(status), location, orderID)
	return err
}

// Locations returns every storage location recorded for an item.
// Normally a single row, but the contract is a list; an unknown item
// yields an empty list, not an error.
func (r *ItemRepo) Locations(ctx context.Context, itemID string) ([]string, error) {
	const q = `SELECT location FROM items WHERE item_id = ?`
	rows, err := r.db.QueryContext(ctx, q, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	locs := make([]string, 0)
	for rows.Next() {
		var loc sql.NullString
		if err := rows.Scan(&loc); err != nil {
			return nil, err
		}
		locs = append(locs, loc.String)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return locs, nil
}

// ListByStatus returns all items in the given status, ordered by name.
func (r *ItemRepo) ListByStatus(ctx context.Context, status model.ItemStatus) ([]model.Item, error) {
	const q = `SELECT item_id, category_id, name, description, status, location
	           FROM items WHERE status = ? ORDER BY name`
	rows, err := r.db.QueryContext(ctx, q, string(status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := make([]model.Item, 0)
	for rows.Next() {
		var it model.Item
		var catID sql.NullInt64
		var desc, loc sql.NullString
		var st string
		if err := rows.Scan(&it.ItemID, &catID, &it.Name, &desc, &st, &loc); err != nil {
			return nil, err
		}
		if catID.Valid {
			cid := catID.Int64
			it.CategoryID = &cid
		}
		it.Description = desc.String
		it.Location = loc.String
		it.Status = model.ItemStatus(st)
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
