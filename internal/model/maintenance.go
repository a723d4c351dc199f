package model

// Maintenance ticket statuses. Transitions are free form; no ordering is
// enforced between them.
const (
	TicketOpen       = "open"
	TicketInProgress = "in_progress"
	TicketResolved   = "resolved"
	TicketClosed     = "closed"
)

// ValidTicketStatus reports whether s is one of the known ticket statuses.
func ValidTicketStatus(s string) bool {
	switch s {
	case TicketOpen, TicketInProgress, TicketResolved, TicketClosed:
		return true
	}
	return false
}

// MaintenanceTicket tracks a repair or complaint raised for a room.
//
// Fields:
//  ID         – unique identifier (uuid).
//  AccountID  – owning account; stamped at creation, immutable.
//  PropertyID – property concerned (may be dangling).
//  TenantID   – tenant who raised it ("" for manager-raised tickets).
//  Room       – room label.
//  Category   – plumbing, electrical, ...
//  Issue      – free-form description.
//  Priority   – low, medium, high.
//  Status     – one of the ticket statuses above.
//  CreatedAt  – RFC 3339 creation timestamp.
type MaintenanceTicket struct {
	ID         string `json:"id"`
	AccountID  string `json:"userId"`
	PropertyID string `json:"propertyId"`
	TenantID   string `json:"tenantId"`
	Room       string `json:"room"`
	Category   string `json:"category"`
	Issue      string `json:"issue"`
	Priority   string `json:"priority"`
	Status     string `json:"status"`
	CreatedAt  string `json:"createdAt"`
}
