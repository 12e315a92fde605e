package model

import "time"

// Donor mirrors the 'donors' table.  Donor IDs are human-chosen
// identifiers, not UUIDs.
type Donor struct {
	DonorID     string
	Name        string
	ContactInfo string
}

// Donation mirrors the 'donations' table.  A donation is the receipt
// for one intake event: it links the donor, the staff member who
// recorded it, and (via the items inserted in the same transaction)
// the goods that entered inventory.
type Donation struct {
	DonationID    string
	DonorID       string
	StaffUsername string
	DonationDate  time.Time
}
