package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/welcomehome/inventory/internal/model"
)

// DonorRepo provides access to the donors table.
type DonorRepo struct {
	db *sql.DB
}

// NewDonorRepo constructs a DonorRepo with the given DB handle.
func NewDonorRepo(db *sql.DB) *DonorRepo { return &DonorRepo{db: db} }

// Create inserts a donor record.
func (r *DonorRepo) Create(ctx context.Context, d model.Donor) error {
	const q = `INSERT INTO donors (donor_id, name, contact_info) VALUES (?, ?, ?)`
	_, err := r.db.ExecContext(ctx, q, d.DonorID, d.Name, d.ContactInfo)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return ErrDuplicateDonor
		}
		return err
	}
	return nil
}

// GetByID fetches a donor by its identifier.
func (r *DonorRepo) GetByID(ctx context.Context, donorID string) (model.Donor, error) {
	const q = `SELECT donor_id, name, contact_info FROM donors WHERE donor_id = ? LIMIT 1`
	var d model.Donor
	var contact sql.NullString
	err := r.db.QueryRowContext(ctx, q, donorID).Scan(&d.DonorID, &d.Name, &contact)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Donor{}, ErrNotFound
		}
		return model.Donor{}, err
	}
	d.ContactInfo = contact.String
	return d, nil
}

// Exists reports whether a donor is registered.
func (r *DonorRepo) Exists(ctx context.Context, donorID string) (bool, error) {
	const q = `SELECT 1 FROM donors WHERE donor_id = ? LIMIT 1`
	var one int
	err := r.db.QueryRowContext(ctx, q, donorID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
