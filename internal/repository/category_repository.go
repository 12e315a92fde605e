package repository

import (
	"context"
	"database/sql"

	"github.com/welcomehome/inventory/internal/model"
)

// CategoryRepo provides access to the categories reference table.
type CategoryRepo struct {
	db *sql.DB
}

// NewCategoryRepo constructs a CategoryRepo with the given DB handle.
func NewCategoryRepo(db *sql.DB) *CategoryRepo { return &CategoryRepo{db: db} }

// Create inserts a category. On success the generated ID is populated.
func (r *CategoryRepo) Create(ctx context.Context, cat *model.Category) error {
	const q = `INSERT INTO categories (name, subcategory) VALUES (?, ?)`
	res, err := r.db.ExecContext(ctx, q, cat.Name, cat.Subcategory)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	cat.CategoryID = id
	return nil
}

// List returns the full category taxonomy ordered by name.
func (r *CategoryRepo) List(ctx context.Context) ([]model.Category, error) {
	const q = `SELECT category_id, name, subcategory FROM categories ORDER BY name`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	cats := make([]model.Category, 0)
	for rows.Next() {
		var c model.Category
		var sub sql.NullString
		if err := rows.Scan(&c.CategoryID, &c.Name, &sub); err != nil {
			return nil, err
		}
		c.Subcategory = sub.String
		cats = append(cats, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return cats, nil
}
