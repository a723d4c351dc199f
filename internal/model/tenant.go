package model

// Tenant is a person renting a room. PropertyID may reference a property that
// no longer exists; referential integrity is deliberately not enforced, so
// consumers must tolerate dangling references. Dates are stored as
// "YYYY-MM-DD" strings, matching the persisted document format.
//
// Fields:
//  ID               – unique identifier (uuid).
//  AccountID        – owning account; stamped at creation, immutable.
//  Name             – tenant name.
//  Phone            – contact number, used by the phone lookup.
//  PropertyID       – property the tenant lives in (may be dangling).
//  Room             – room label within the property.
//  Rent             – monthly rent, coerced to >= 0.
//  Deposit          – security deposit, coerced to >= 0.
//  MoveIn / MoveOut – occupancy dates ("" when unset).
//  RentDueDate      – next rent due date.
//  EmergencyContact – emergency phone number.
//  IDProofType      – kind of identity proof (Aadhaar, passport, ...).
//  IDNumber         – identity proof number.
type Tenant struct {
	ID               string  `json:"id"`
	AccountID        string  `json:"userId"`
	Name             string  `json:"name"`
	Phone            string  `json:"phone"`
	PropertyID       string  `json:"propertyId"`
	Room             string  `json:"room"`
	Rent             float64 `json:"rent"`
	Deposit          float64 `json:"deposit"`
	MoveIn           string  `json:"moveIn"`
	MoveOut          string  `json:"moveOut"`
	RentDueDate      string  `json:"rentDueDate"`
	EmergencyContact string  `json:"emergencyContact"`
	IDProofType      string  `json:"idProofType"`
	IDNumber         string  `json:"idNumber"`
}
