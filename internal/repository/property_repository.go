package repository

import (
	"github.com/google/uuid"

	"github.com/iliyamo/rental-property-manager/internal/model"
	"github.com/iliyamo/rental-property-manager/internal/store"
)

// PropertyRepo provides account-scoped access to the properties collection.
type PropertyRepo struct {
	store *store.Store
}

func NewPropertyRepo(s *store.Store) *PropertyRepo {
	return &PropertyRepo{store: s}
}

// NewProperty is the input for creating a property. Numeric fields are
// coerced to zero when negative; missing strings default to empty.
type NewProperty struct {
	Name           string   `json:"name"`
	Address        string   `json:"address"`
	Rooms          int      `json:"rooms"`
	RentPerRoom    float64  `json:"rentPerRoom"`
	DepositPerRoom float64  `json:"depositPerRoom"`
	Amenities      []string `json:"amenities"`
}

// PropertyPatch enumerates the updatable fields. Nil fields are left
// untouched; the owner field is not part of the patch and can never change.
type PropertyPatch struct {
	Name           *string   `json:"name"`
	Address        *string   `json:"address"`
	Rooms          *int      `json:"rooms"`
	RentPerRoom    *float64  `json:"rentPerRoom"`
	DepositPerRoom *float64  `json:"depositPerRoom"`
	Amenities      *[]string `json:"amenities"`
}

// List returns the account's properties in insertion order.
func (r *PropertyRepo) List(accountID string) []model.Property {
	out := []model.Property{}
	r.store.View(func(db *store.Database) {
		for _, p := range db.Properties {
			if p.AccountID == accountID {
				out = append(out, p)
			}
		}
	})
	return out
}

// Create appends a new property owned by accountID and persists it.
func (r *PropertyRepo) Create(accountID string, in NewProperty) (model.Property, error) {
	p := model.Property{
		ID:             uuid.NewString(),
		AccountID:      accountID,
		Name:           in.Name,
		Address:        in.Address,
		Rooms:          max(in.Rooms, 0),
		RentPerRoom:    nonNegative(in.RentPerRoom),
		DepositPerRoom: nonNegative(in.DepositPerRoom),
		Amenities:      in.Amenities,
	}
	if p.Amenities == nil {
		p.Amenities = []string{}
	}
	err := r.store.Update(func(db *store.Database) error {
		db.Properties = append(db.Properties, p)
		return nil
	})
	if err != nil {
		return model.Property{}, err
	}
	return p, nil
}

// Get returns the property if it exists and is owned by accountID.
func (r *PropertyRepo) Get(accountID, id string) (model.Property, error) {
	var (
		out   model.Property
		found bool
	)
	r.store.View(func(db *store.Database) {
		for _, p := range db.Properties {
			if p.ID == id && p.AccountID == accountID {
				out, found = p, true
				return
			}
		}
	})
	if !found {
		return model.Property{}, ErrNotFound
	}
	return out, nil
}

// Update applies the non-nil patch fields to the owned property and persists
// the result. Fields absent from the patch are preserved unchanged.
func (r *PropertyRepo) Update(accountID, id string, patch PropertyPatch) (model.Property, error) {
	var out model.Property
	err := r.store.Update(func(db *store.Database) error {
		for i := range db.Properties {
			p := &db.Properties[i]
			if p.ID != id || p.AccountID != accountID {
				continue
			}
			if patch.Name != nil {
				p.Name = *patch.Name
			}
			if patch.Address != nil {
				p.Address = *patch.Address
			}
			if patch.Rooms != nil {
				p.Rooms = max(*patch.Rooms, 0)
			}
			if patch.RentPerRoom != nil {
				p.RentPerRoom = nonNegative(*patch.RentPerRoom)
			}
			if patch.DepositPerRoom != nil {
				p.DepositPerRoom = nonNegative(*patch.DepositPerRoom)
			}
			if patch.Amenities != nil {
				p.Amenities = append([]string{}, (*patch.Amenities)...)
			}
			out = *p
			return nil
		}
		return ErrNotFound
	})
	if err != nil {
		return model.Property{}, err
	}
	return out, nil
}

// Delete removes the owned property. No cascade: tenants and payments
// pointing at the property keep their dangling propertyId.
func (r *PropertyRepo) Delete(accountID, id string) error {
	return r.store.Update(func(db *store.Database) error {
		for i := range db.Properties {
			if db.Properties[i].ID == id && db.Properties[i].AccountID == accountID {
				db.Properties = append(db.Properties[:i], db.Properties[i+1:]...)
				return nil
			}
		}
		return ErrNotFound
	})
}

// nonNegative floors a float at zero. Negative rents and deposits are
// treated as absent rather than rejected.
func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
