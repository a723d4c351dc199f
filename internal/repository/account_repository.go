package repository

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/rental-property-manager/internal/model"
	"github.com/iliyamo/rental-property-manager/internal/store"
	"github.com/iliyamo/rental-property-manager/internal/utils"
)

// AccountRepo manages account records. Accounts are the only collection that
// is not tenancy scoped; everything else hangs off an account id.
type AccountRepo struct {
	store *store.Store
}

func NewAccountRepo(s *store.Store) *AccountRepo {
	return &AccountRepo{store: s}
}

// NewAccount carries the input for registration. Password is the plain text
// credential; only its bcrypt hash is ever persisted.
type NewAccount struct {
	Email       string
	Password    string
	FullName    string
	CompanyName string
	Phone       string
}

// Create registers a new account. Email uniqueness is checked inside the same
// critical section that appends the record, so two concurrent registrations
// with the same email cannot both succeed. A freshly registered account gets
// a small sample dataset (one property, tenant and payment) so the dashboard
// is not empty on first login.
func (r *AccountRepo) Create(in NewAccount, bcryptCost int) (model.Account, error) {
	hash, err := utils.HashPassword(in.Password, bcryptCost)
	if err != nil {
		return model.Account{}, err
	}
	acc := model.Account{
		ID:           uuid.NewString(),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash: hash,
		FullName:     in.FullName,
		CompanyName:  in.CompanyName,
		Phone:        in.Phone,
		IsActive:     true,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	err = r.store.Update(func(db *store.Database) error {
		for _, a := range db.Accounts {
			if a.Email == acc.Email {
				return ErrEmailExists
			}
		}
		db.Accounts = append(db.Accounts, acc)
		seedSampleData(db, acc)
		return nil
	})
	if err != nil {
		return model.Account{}, err
	}
	return acc, nil
}

// GetByEmail returns the account with the given email, or ErrNotFound.
func (r *AccountRepo) GetByEmail(email string) (model.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var (
		out   model.Account
		found bool
	)
	r.store.View(func(db *store.Database) {
		for _, a := range db.Accounts {
			if a.Email == email {
				out, found = a, true
				return
			}
		}
	})
	if !found {
		return model.Account{}, ErrNotFound
	}
	return out, nil
}

// GetByID returns the account with the given id, or ErrNotFound.
func (r *AccountRepo) GetByID(id string) (model.Account, error) {
	var (
		out   model.Account
		found bool
	)
	r.store.View(func(db *store.Database) {
		for _, a := range db.Accounts {
			if a.ID == id {
				out, found = a, true
				return
			}
		}
	})
	if !found {
		return model.Account{}, ErrNotFound
	}
	return out, nil
}

// SetActive flips the active flag. Deactivated accounts fail authentication
// on their next request even when they hold an unexpired token.
func (r *AccountRepo) SetActive(id string, active bool) error {
	return r.store.Update(func(db *store.Database) error {
		for i := range db.Accounts {
			if db.Accounts[i].ID == id {
				db.Accounts[i].IsActive = active
				return nil
			}
		}
		return ErrNotFound
	})
}

// seedSampleData gives a new account something to look at: one property with
// a tenant and a first rent payment. Mirrors what the product does on signup.
func seedSampleData(db *store.Database, acc model.Account) {
	name := "My"
	if acc.CompanyName != "" {
		name = acc.CompanyName
	}
	now := time.Now().UTC()
	prop := model.Property{
		ID:        uuid.NewString(),
		AccountID: acc.ID,
		Name:      name + " Property",
		Address:   "123 Main Street, City",
		Rooms:     5,
		Amenities: []string{"WiFi", "AC", "Parking", "Food"},
	}
	tenant := model.Tenant{
		ID:               uuid.NewString(),
		AccountID:        acc.ID,
		Name:             "John Doe",
		Phone:            "+919876543210",
		PropertyID:       prop.ID,
		Room:             "A101",
		Rent:             8000,
		Deposit:          10000,
		MoveIn:           now.Format("2006-01-02"),
		RentDueDate:      time.Date(now.Year(), now.Month()+1, 1, 0, 0, 0, 0, time.UTC).Format("2006-01-02"),
		EmergencyContact: "+919876543211",
		IDProofType:      "Aadhaar",
		IDNumber:         "1234-5678-9012",
	}
	payment := model.Payment{
		ID:         uuid.NewString(),
		AccountID:  acc.ID,
		TenantID:   tenant.ID,
		PropertyID: prop.ID,
		Amount:     8000,
		Date:       now.Format("2006-01-02"),
		Method:     "UPI",
		Type:       model.TypeRent,
		Status:     model.StatusPaid,
	}
	db.Properties = append(db.Properties, prop)
	db.Tenants = append(db.Tenants, tenant)
	db.Payments = append(db.Payments, payment)
}
