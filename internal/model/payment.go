package model

// Payment statuses. Only StatusPaid counts toward collected-revenue figures.
const (
	StatusPaid    = "paid"
	StatusPending = "pending"
)

// Payment types. Outstanding-rent reports only consider TypeRent payments.
const (
	TypeRent    = "rent"
	TypeDeposit = "deposit"
	TypeOther   = "other"
)

// Payment records money received from a tenant. Amount is coerced to >= 0 at
// creation. Date is a "YYYY-MM-DD" string; payments with missing or
// unparseable dates are skipped by the monthly income series rather than
// treated as errors.
//
// Fields:
//  ID         – unique identifier (uuid).
//  AccountID  – owning account; stamped at creation, immutable.
//  TenantID   – paying tenant (may be dangling).
//  PropertyID – property the payment relates to (may be dangling).
//  Amount     – amount received (>= 0).
//  Date       – payment date.
//  Method     – UPI, cash, bank transfer, ... (defaults to UPI).
//  Type       – rent, deposit or other (defaults to rent).
//  Status     – paid or pending (defaults to paid).
type Payment struct {
	ID         string  `json:"id"`
	AccountID  string  `json:"userId"`
	TenantID   string  `json:"tenantId"`
	PropertyID string  `json:"propertyId"`
	Amount     float64 `json:"amount"`
	Date       string  `json:"date"`
	Method     string  `json:"method"`
	Type       string  `json:"type"`
	Status     string  `json:"status"`
}
