// Package queue defines message payloads exchanged over the message broker.
package queue

// PaymentRecordedEvent is published after a payment mutation commits. It
// carries enough information for downstream consumers (receipt mailers,
// bookkeeping exports) to act without querying the primary datastore.
type PaymentRecordedEvent struct {
	PaymentID  string  `json:"payment_id"`
	AccountID  string  `json:"account_id"`
	TenantID   string  `json:"tenant_id"`
	PropertyID string  `json:"property_id"`
	Amount     float64 `json:"amount"`
	Date       string  `json:"date"`
	Method     string  `json:"method"`
	Type       string  `json:"type"`
	Status     string  `json:"status"`
	RecordedAt string  `json:"recorded_at"`
}
