package repository

import (
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/rental-property-manager/internal/model"
	"github.com/iliyamo/rental-property-manager/internal/store"
)

// PaymentRepo provides account-scoped access to the payments collection.
type PaymentRepo struct {
	store *store.Store
}

func NewPaymentRepo(s *store.Store) *PaymentRepo {
	return &PaymentRepo{store: s}
}

// NewPayment is the input for recording a payment. Amount is coerced to a
// non-negative number; date defaults to today, method to UPI, type to rent
// and status to paid.
type NewPayment struct {
	TenantID   string  `json:"tenantId"`
	PropertyID string  `json:"propertyId"`
	Amount     float64 `json:"amount"`
	Date       string  `json:"date"`
	Method     string  `json:"method"`
	Type       string  `json:"type"`
	Status     string  `json:"status"`
}

// PaymentPatch enumerates the updatable payment fields.
type PaymentPatch struct {
	TenantID   *string  `json:"tenantId"`
	PropertyID *string  `json:"propertyId"`
	Amount     *float64 `json:"amount"`
	Date       *string  `json:"date"`
	Method     *string  `json:"method"`
	Type       *string  `json:"type"`
	Status     *string  `json:"status"`
}

// List returns the account's payments in insertion order.
func (r *PaymentRepo) List(accountID string) []model.Payment {
	out := []model.Payment{}
	r.store.View(func(db *store.Database) {
		for _, p := range db.Payments {
			if p.AccountID == accountID {
				out = append(out, p)
			}
		}
	})
	return out
}

// ListByTenant returns the account's payments recorded against one tenant.
func (r *PaymentRepo) ListByTenant(accountID, tenantID string) []model.Payment {
	out := []model.Payment{}
	r.store.View(func(db *store.Database) {
		for _, p := range db.Payments {
			if p.AccountID == accountID && p.TenantID == tenantID {
				out = append(out, p)
			}
		}
	})
	return out
}

// Create appends a new payment owned by accountID and persists it.
func (r *PaymentRepo) Create(accountID string, in NewPayment) (model.Payment, error) {
	p := model.Payment{
		ID:         uuid.NewString(),
		AccountID:  accountID,
		TenantID:   in.TenantID,
		PropertyID: in.PropertyID,
		Amount:     nonNegative(in.Amount),
		Date:       in.Date,
		Method:     in.Method,
		Type:       in.Type,
		Status:     in.Status,
	}
	if p.Date == "" {
		p.Date = time.Now().UTC().Format("2006-01-02")
	}
	if p.Method == "" {
		p.Method = "UPI"
	}
	if p.Type == "" {
		p.Type = model.TypeRent
	}
	if p.Status == "" {
		p.Status = model.StatusPaid
	}
	err := r.store.Update(func(db *store.Database) error {
		db.Payments = append(db.Payments, p)
		return nil
	})
	if err != nil {
		return model.Payment{}, err
	}
	return p, nil
}

// Get returns the payment if it exists and is owned by accountID.
func (r *PaymentRepo) Get(accountID, id string) (model.Payment, error) {
	var (
		out   model.Payment
		found bool
	)
	r.store.View(func(db *store.Database) {
		for _, p := range db.Payments {
			if p.ID == id && p.AccountID == accountID {
				out, found = p, true
				return
			}
		}
	})
	if !found {
		return model.Payment{}, ErrNotFound
	}
	return out, nil
}

// Update applies the non-nil patch fields to the owned payment.
func (r *PaymentRepo) Update(accountID, id string, patch PaymentPatch) (model.Payment, error) {
	var out model.Payment
	err := r.store.Update(func(db *store.Database) error {
		for i := range db.Payments {
			p := &db.Payments[i]
			if p.ID != id || p.AccountID != accountID {
				continue
			}
			if patch.TenantID != nil {
				p.TenantID = *patch.TenantID
			}
			if patch.PropertyID != nil {
				p.PropertyID = *patch.PropertyID
			}
			if patch.Amount != nil {
				p.Amount = nonNegative(*patch.Amount)
			}
			if patch.Date != nil {
				p.Date = *patch.Date
			}
			if patch.Method != nil {
				p.Method = *patch.Method
			}
			if patch.Type != nil {
				p.Type = *patch.Type
			}
			if patch.Status != nil {
				p.Status = *patch.Status
			}
			out = *p
			return nil
		}
		return ErrNotFound
	})
	if err != nil {
		return model.Payment{}, err
	}
	return out, nil
}

// Delete removes the owned payment.
func (r *PaymentRepo) Delete(accountID, id string) error {
	return r.store.Update(func(db *store.Database) error {
		for i := range db.Payments {
			if db.Payments[i].ID == id && db.Payments[i].AccountID == accountID {
				db.Payments = append(db.Payments[:i], db.Payments[i+1:]...)
				return nil
			}
		}
		return ErrNotFound
	})
}
