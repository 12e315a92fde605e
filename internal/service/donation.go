package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/welcomehome/inventory/internal/model"
	"github.com/welcomehome/inventory/internal/queue"
	"github.com/welcomehome/inventory/internal/repository"
)

// ItemIntake describes one donated item as supplied by the caller.
// ItemID is optional; a fresh UUID is assigned when empty.
type ItemIntake struct {
	ItemID      string
	CategoryID  *int64
	Name        string
	Description string
	Location    string
}

// RegisterDonor records a donor so later donations can reference it.
// Requires an elevated (staff or admin) session.
func (a *App) RegisterDonor(ctx context.Context, sess *Session, d model.Donor) error {
	if sess == nil {
		return ErrAuthenticationRequired
	}
	if !sess.Role.Elevated() {
		return ErrNotAuthorized
	}
	return a.donors.Create(ctx, d)
}

// AcceptDonation records a donation receipt and its items as a single
// batch. The receipt row and every item row commit in one transaction;
// a failed item insert rolls the whole intake back. Items default to
// the available status. Returns the generated donation ID.
func (a *App) AcceptDonation(ctx context.Context, sess *Session, donorID string, items []ItemIntake) (string, error) {
	if sess == nil {
		return "", ErrAuthenticationRequired
	}
	if !sess.Role.Elevated() {
		return "", ErrNotAuthorized
	}
	ok, err := a.donors.Exists(ctx, donorID)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", repository.ErrNotFound
	}

	donation := model.Donation{
		DonationID:    uuid.NewString(),
		DonorID:       donorID,
		StaffUsername: sess.Username,
		DonationDate:  time.Now().UTC(),
	}

	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := a.donations.CreateTx(ctx, tx, donation); err != nil {
		return "", err
	}
	itemIDs := make([]string, 0, len(items))
	for _, in := range items {
		id := in.ItemID
		if id == "" {
			id = uuid.NewString()
		}
		it := model.Item{
			ItemID:      id,
			CategoryID:  in.CategoryID,
			Name:        in.Name,
			Description: in.Description,
			Status:      model.ItemAvailable,
			Location:    in.Location,
		}
		if err := a.items.InsertTx(ctx, tx, it); err != nil {
			return "", err
		}
		itemIDs = append(itemIDs, id)
	}
	if err := tx.Commit(); err != nil {
		return "", err
	}
	committed = true

	if a.publisher != nil {
		ev := queue.DonationRecordedEvent{
			DonationID:    donation.DonationID,
			DonorID:       donation.DonorID,
			StaffUsername: donation.StaffUsername,
			ItemIDs:       itemIDs,
			RecordedAt:    donation.DonationDate.Format(time.RFC3339),
		}
		if err := a.publisher.PublishDonationRecorded(ctx, ev); err != nil {
			log.Printf("donation event publish failed: %v", err)
		}
	}
	return donation.DonationID, nil
}

// DonorDonations returns the donation receipts recorded for a donor.
func (a *App) DonorDonations(ctx context.Context, donorID string) ([]model.Donation, error) {
	if ok, err := a.donors.Exists(ctx, donorID); err != nil {
		return nil, err
	} else if !ok {
		return nil, repository.ErrNotFound
	}
	return a.donations.ListByDonor(ctx, donorID)
}
