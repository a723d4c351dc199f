package repository

import (
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/rental-property-manager/internal/model"
	"github.com/iliyamo/rental-property-manager/internal/store"
)

// BookingRepo provides account-scoped access to visit bookings.
type BookingRepo struct {
	store *store.Store
}

func NewBookingRepo(s *store.Store) *BookingRepo {
	return &BookingRepo{store: s}
}

// NewBooking is the input for recording a visit request.
type NewBooking struct {
	PropertyID string `json:"propertyId"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Date       string `json:"date"`
	Note       string `json:"note"`
	Status     string `json:"status"`
}

// BookingPatch enumerates the updatable booking fields.
type BookingPatch struct {
	PropertyID *string `json:"propertyId"`
	Name       *string `json:"name"`
	Phone      *string `json:"phone"`
	Date       *string `json:"date"`
	Note       *string `json:"note"`
	Status     *string `json:"status"`
}

// List returns the account's bookings in insertion order.
func (r *BookingRepo) List(accountID string) []model.Booking {
	out := []model.Booking{}
	r.store.View(func(db *store.Database) {
		for _, b := range db.Bookings {
			if b.AccountID == accountID {
				out = append(out, b)
			}
		}
	})
	return out
}

// Create appends a new booking owned by accountID and persists it.
func (r *BookingRepo) Create(accountID string, in NewBooking) (model.Booking, error) {
	b := model.Booking{
		ID:         uuid.NewString(),
		AccountID:  accountID,
		PropertyID: in.PropertyID,
		Name:       in.Name,
		Phone:      in.Phone,
		Date:       in.Date,
		Note:       in.Note,
		Status:     in.Status,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	if b.Status == "" {
		b.Status = "requested"
	}
	err := r.store.Update(func(db *store.Database) error {
		db.Bookings = append(db.Bookings, b)
		return nil
	})
	if err != nil {
		return model.Booking{}, err
	}
	return b, nil
}

// Get returns the booking if it exists and is owned by accountID.
func (r *BookingRepo) Get(accountID, id string) (model.Booking, error) {
	var (
		out   model.Booking
		found bool
	)
	r.store.View(func(db *store.Database) {
		for _, b := range db.Bookings {
			if b.ID == id && b.AccountID == accountID {
				out, found = b, true
				return
			}
		}
	})
	if !found {
		return model.Booking{}, ErrNotFound
	}
	return out, nil
}

// Update applies the non-nil patch fields to the owned booking.
func (r *BookingRepo) Update(accountID, id string, patch BookingPatch) (model.Booking, error) {
	var out model.Booking
	err := r.store.Update(func(db *store.Database) error {
		for i := range db.Bookings {
			b := &db.Bookings[i]
			if b.ID != id || b.AccountID != accountID {
				continue
			}
			if patch.PropertyID != nil {
				b.PropertyID = *patch.PropertyID
			}
			if patch.Name != nil {
				b.Name = *patch.Name
			}
			if patch.Phone != nil {
				b.Phone = *patch.Phone
			}
			if patch.Date != nil {
				b.Date = *patch.Date
			}
			if patch.Note != nil {
				b.Note = *patch.Note
			}
			if patch.Status != nil {
				b.Status = *patch.Status
			}
			out = *b
			return nil
		}
		return ErrNotFound
	})
	if err != nil {
		return model.Booking{}, err
	}
	return out, nil
}

// Delete removes the owned booking.
func (r *BookingRepo) Delete(accountID, id string) error {
	return r.store.Update(func(db *store.Database) error {
		for i := range db.Bookings {
			if db.Bookings[i].ID == id && db.Bookings[i].AccountID == accountID {
				db.Bookings = append(db.Bookings[:i], db.Bookings[i+1:]...)
				return nil
			}
		}
		return ErrNotFound
	})
}
