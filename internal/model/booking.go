package model

// Booking is a visit request from a prospective tenant who wants to see a
// property before moving in.
//
// Fields:
//  ID         – unique identifier (uuid).
//  AccountID  – owning account; stamped at creation, immutable.
//  PropertyID – property to visit (may be dangling).
//  Name       – visitor name.
//  Phone      – visitor contact number.
//  Date       – requested visit date ("YYYY-MM-DD").
//  Note       – free-form note.
//  Status     – requested, confirmed or cancelled (free form).
//  CreatedAt  – RFC 3339 creation timestamp.
type Booking struct {
	ID         string `json:"id"`
	AccountID  string `json:"userId"`
	PropertyID string `json:"propertyId"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Date       string `json:"date"`
	Note       string `json:"note"`
	Status     string `json:"status"`
	CreatedAt  string `json:"createdAt"`
}
