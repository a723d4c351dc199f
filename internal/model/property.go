package model

// Property is a building or PG unit managed by an account. Rooms counts the
// lettable rooms and is never negative. RentPerRoom and DepositPerRoom are
// defaults applied when onboarding a tenant into a room.
//
// Fields:
//  ID             – unique identifier (uuid).
//  AccountID      – owning account; stamped at creation, immutable.
//  Name           – display name of the property.
//  Address        – postal address.
//  Rooms          – number of lettable rooms (>= 0).
//  RentPerRoom    – default monthly rent for a room.
//  DepositPerRoom – default security deposit for a room.
//  Amenities      – free-form amenity labels (WiFi, AC, ...).
type Property struct {
	ID             string   `json:"id"`
	AccountID      string   `json:"userId"`
	Name           string   `json:"name"`
	Address        string   `json:"address"`
	Rooms          int      `json:"rooms"`
	RentPerRoom    float64  `json:"rentPerRoom"`
	DepositPerRoom float64  `json:"depositPerRoom"`
	Amenities      []string `json:"amenities"`
}
