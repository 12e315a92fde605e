package service

import (
	"context"
	"errors"
	"testing"

	"github.com/welcomehome/inventory/internal/model"
	"github.com/welcomehome/inventory/internal/repository"
)

func registerDonor(t *testing.T, app *App, sess *Session, id, name string) {
	t.Helper()
	err := app.RegisterDonor(context.Background(), sess, model.Donor{
		DonorID:     id,
		Name:        name,
		ContactInfo: name + "@example.org",
	})
	if err != nil {
		t.Fatalf("register donor %s: %v", id, err)
	}
}

func TestAcceptDonationRecordsItems(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()
	staff := login(t, app, "staff", "pw", model.RoleStaff)
	registerDonor(t, app, staff, "donor-1", "Goodwill Partner")

	donationID, err := app.AcceptDonation(ctx, staff, "donor-1", []ItemIntake{
		{Name: "Dining table", Location: "warehouse A"},
		{ItemID: "item-lamp", Name: "Floor lamp", Location: "warehouse A"},
	})
	if err != nil {
		t.Fatalf("accept donation: %v", err)
	}
	if donationID == "" {
		t.Fatal("expected a donation ID")
	}

	donations, err := app.DonorDonations(ctx, "donor-1")
	if err != nil {
		t.Fatalf("donor donations: %v", err)
	}
	if len(donations) != 1 {
		t.Fatalf("got %d donations, want 1", len(donations))
	}
	if donations[0].StaffUsername != "staff" {
		t.Fatalf("donation attributed to %s, want staff", donations[0].StaffUsername)
	}

	// Donated items enter the catalog as available.
	items, err := app.AvailableItems(ctx)
	if err != nil {
		t.Fatalf("available items: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d available items, want 2", len(items))
	}
	locs, err := app.FindItemLocations(ctx, "item-lamp")
	if err != nil {
		t.Fatalf("item locations: %v", err)
	}
	if len(locs) != 1 || locs[0] != "warehouse A" {
		t.Fatalf("unexpected locations %v", locs)
	}
}

func TestAcceptDonationRequiresElevatedRole(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()
	staff := login(t, app, "staff", "pw", model.RoleStaff)
	registerDonor(t, app, staff, "donor-1", "Goodwill Partner")
	client := login(t, app, "carol", "pw", model.RoleClient)

	_, err := app.AcceptDonation(ctx, client, "donor-1", []ItemIntake{{Name: "Chair"}})
	if !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("client intake: got %v, want ErrNotAuthorized", err)
	}
	// The rejected intake must leave the store untouched.
	n, err := app.donations.Count(ctx)
	if err != nil {
		t.Fatalf("count donations: %v", err)
	}
	if n != 0 {
		t.Fatalf("got %d donations after rejected intake, want 0", n)
	}
	items, err := app.AvailableItems(ctx)
	if err != nil {
		t.Fatalf("available items: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("got %d items after rejected intake, want 0", len(items))
	}

	if _, err := app.AcceptDonation(ctx, nil, "donor-1", nil); !errors.Is(err, ErrAuthenticationRequired) {
		t.Fatalf("nil session: got %v, want ErrAuthenticationRequired", err)
	}
}

func TestAcceptDonationUnknownDonor(t *testing.T) {
	app := newTestApp(t)
	staff := login(t, app, "staff", "pw", model.RoleStaff)

	_, err := app.AcceptDonation(context.Background(), staff, "missing", []ItemIntake{{Name: "Chair"}})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("unknown donor: got %v, want ErrNotFound", err)
	}
}

func TestRegisterDonorDuplicate(t *testing.T) {
	app := newTestApp(t)
	staff := login(t, app, "staff", "pw", model.RoleStaff)
	registerDonor(t, app, staff, "donor-1", "Goodwill Partner")

	err := app.RegisterDonor(context.Background(), staff, model.Donor{DonorID: "donor-1", Name: "Again"})
	if !errors.Is(err, repository.ErrDuplicateDonor) {
		t.Fatalf("duplicate donor: got %v, want ErrDuplicateDonor", err)
	}
}

func TestDonorDonationsUnknownDonor(t *testing.T) {
	app := newTestApp(t)
	if _, err := app.DonorDonations(context.Background(), "missing"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}
