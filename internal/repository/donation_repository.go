package repository

import (
	"context"
	"database/sql"

	"github.com/welcomehome/inventory/internal/model"
)

// DonationRepo provides access to the donations table.
type DonationRepo struct {
	db *sql.DB
}

// NewDonationRepo constructs a DonationRepo with the given DB handle.
func NewDonationRepo(db *sql.DB) *DonationRepo { return &DonationRepo{db: db} }

// CreateTx inserts a donation receipt within an existing transaction.
// Intake inserts the receipt and its items in the same transaction.
func (r *DonationRepo) CreateTx(ctx context.Context, tx *sql.Tx, d model.Donation) error {
	const q = `INSERT INTO donations (donation_id, donor_id, staff_username, donation_date) VALUES (?, ?, ?, ?)`
	_, err := tx.ExecContext(ctx, q, d.DonationID, d.DonorID, d.StaffUsername, toMillis(d.DonationDate))
	return err
}

// ListByDonor returns every donation recorded for a donor, newest first.
func (r *DonationRepo) ListByDonor(ctx context.Context, donorID string) ([]model.Donation, error) {
	const q = `SELECT donation_id, donor_id, staff_username, donation_date
	           FROM donations WHERE donor_id = ? ORDER BY donation_date DESC`
	rows, err := r.db.QueryContext(ctx, q, donorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Donation, 0)
	for rows.Next() {
		var d model.Donation
		var date int64
		if err := rows.Scan(&d.DonationID, &d.DonorID, &d.StaffUsername, &date); err != nil {
			return nil, err
		}
		d.DonationDate = fromMillis(date)
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Count returns the number of donation receipts in the store.
func (r *DonationRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM donations`).Scan(&n)
	return n, err
}
