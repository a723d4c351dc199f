package repository

import (
	"github.com/google/uuid"

	"github.com/iliyamo/rental-property-manager/internal/model"
	"github.com/iliyamo/rental-property-manager/internal/store"
)

// TenantRepo provides account-scoped access to the tenants collection.
type TenantRepo struct {
	store *store.Store
}

func NewTenantRepo(s *store.Store) *TenantRepo {
	return &TenantRepo{store: s}
}

// NewTenant is the input for creating a tenant. Rent and deposit are coerced
// to non-negative numbers; the property reference is accepted as-is and may
// dangle.
type NewTenant struct {
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

// TenantPatch enumerates the updatable tenant fields.
type TenantPatch struct {
	Name             *string  `json:"name"`
	Phone            *string  `json:"phone"`
	PropertyID       *string  `json:"propertyId"`
	Room             *string  `json:"room"`
	Rent             *float64 `json:"rent"`
	Deposit          *float64 `json:"deposit"`
	MoveIn           *string  `json:"moveIn"`
	MoveOut          *string  `json:"moveOut"`
	RentDueDate      *string  `json:"rentDueDate"`
	EmergencyContact *string  `json:"emergencyContact"`
	IDProofType      *string  `json:"idProofType"`
	IDNumber         *string  `json:"idNumber"`
}

// List returns the account's tenants in insertion order.
func (r *TenantRepo) List(accountID string) []model.Tenant {
	out := []model.Tenant{}
	r.store.View(func(db *store.Database) {
		for _, t := range db.Tenants {
			if t.AccountID == accountID {
				out = append(out, t)
			}
		}
	})
	return out
}

// Create appends a new tenant owned by accountID and persists it.
func (r *TenantRepo) Create(accountID string, in NewTenant) (model.Tenant, error) {
	t := model.Tenant{
		ID:               uuid.NewString(),
		AccountID:        accountID,
		Name:             in.Name,
		Phone:            in.Phone,
		PropertyID:       in.PropertyID,
		Room:             in.Room,
		Rent:             nonNegative(in.Rent),
		Deposit:          nonNegative(in.Deposit),
		MoveIn:           in.MoveIn,
		MoveOut:          in.MoveOut,
		RentDueDate:      in.RentDueDate,
		EmergencyContact: in.EmergencyContact,
		IDProofType:      in.IDProofType,
		IDNumber:         in.IDNumber,
	}
	err := r.store.Update(func(db *store.Database) error {
		db.Tenants = append(db.Tenants, t)
		return nil
	})
	if err != nil {
		return model.Tenant{}, err
	}
	return t, nil
}

// Get returns the tenant if it exists and is owned by accountID.
func (r *TenantRepo) Get(accountID, id string) (model.Tenant, error) {
	var (
		out   model.Tenant
		found bool
	)
	r.store.View(func(db *store.Database) {
		for _, t := range db.Tenants {
			if t.ID == id && t.AccountID == accountID {
				out, found = t, true
				return
			}
		}
	})
	if !found {
		return model.Tenant{}, ErrNotFound
	}
	return out, nil
}

// FindByPhone returns the account's tenant with an exact phone match.
func (r *TenantRepo) FindByPhone(accountID, phone string) (model.Tenant, error) {
	var (
		out   model.Tenant
		found bool
	)
	r.store.View(func(db *store.Database) {
		for _, t := range db.Tenants {
			if t.Phone == phone && t.AccountID == accountID {
				out, found = t, true
				return
			}
		}
	})
	if !found {
		return model.Tenant{}, ErrNotFound
	}
	return out, nil
}

// Update applies the non-nil patch fields to the owned tenant. The owner
// field is not part of the patch and is preserved no matter what the request
// carried.
func (r *TenantRepo) Update(accountID, id string, patch TenantPatch) (model.Tenant, error) {
	var out model.Tenant
	err := r.store.Update(func(db *store.Database) error {
		for i := range db.Tenants {
			t := &db.Tenants[i]
			if t.ID != id || t.AccountID != accountID {
				continue
			}
			if patch.Name != nil {
				t.Name = *patch.Name
			}
			if patch.Phone != nil {
				t.Phone = *patch.Phone
			}
			if patch.PropertyID != nil {
				t.PropertyID = *patch.PropertyID
			}
			if patch.Room != nil {
				t.Room = *patch.Room
			}
			if patch.Rent != nil {
				t.Rent = nonNegative(*patch.Rent)
			}
			if patch.Deposit != nil {
				t.Deposit = nonNegative(*patch.Deposit)
			}
			if patch.MoveIn != nil {
				t.MoveIn = *patch.MoveIn
			}
			if patch.MoveOut != nil {
				t.MoveOut = *patch.MoveOut
			}
			if patch.RentDueDate != nil {
				t.RentDueDate = *patch.RentDueDate
			}
			if patch.EmergencyContact != nil {
				t.EmergencyContact = *patch.EmergencyContact
			}
			if patch.IDProofType != nil {
				t.IDProofType = *patch.IDProofType
			}
			if patch.IDNumber != nil {
				t.IDNumber = *patch.IDNumber
			}
			out = *t
			return nil
		}
		return ErrNotFound
	})
	if err != nil {
		return model.Tenant{}, err
	}
	return out, nil
}

// Delete removes the owned tenant.
func (r *TenantRepo) Delete(accountID, id string) error {
	return r.store.Update(func(db *store.Database) error {
		for i := range db.Tenants {
			if db.Tenants[i].ID == id && db.Tenants[i].AccountID == accountID {
				db.Tenants = append(db.Tenants[:i], db.Tenants[i+1:]...)
				return nil
			}
		}
		return ErrNotFound
	})
}
