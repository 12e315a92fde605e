// Package queue defines message payloads exchanged over the message broker.
package queue

// DonationRecordedEvent is published when a donation intake commits.
// It carries enough information for downstream consumers to log or
// notify without querying the primary store.
type DonationRecordedEvent struct {
	DonationID    string   `json:"donation_id"`
	DonorID       string   `json:"donor_id"`
	StaffUsername string   `json:"staff_username"`
	ItemIDs       []string `json:"item_ids"`
	RecordedAt    string   `json:"recorded_at"`
}

// OrderPreparedEvent is published when an order transitions to
// ready_for_delivery and its items move to the holding location.
type OrderPreparedEvent struct {
	OrderID        string   `json:"order_id"`
	ClientUsername string   `json:"client_username"`
	ItemIDs        []string `json:"item_ids"`
	Location       string   `json:"location"`
	PreparedAt     string   `json:"prepared_at"`
}
