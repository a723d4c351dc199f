package repository

import (
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/rental-property-manager/internal/model"
	"github.com/iliyamo/rental-property-manager/internal/store"
)

// MaintenanceRepo provides account-scoped access to maintenance tickets.
type MaintenanceRepo struct {
	store *store.Store
}

func NewMaintenanceRepo(s *store.Store) *MaintenanceRepo {
	return &MaintenanceRepo{store: s}
}

// NewTicket is the input for raising a maintenance ticket. Status defaults to
// open; an explicit status must be one of the known values.
type NewTicket struct {
	PropertyID string `json:"propertyId"`
	TenantID   string `json:"tenantId"`
	Room       string `json:"room"`
	Category   string `json:"category"`
	Issue      string `json:"issue"`
	Priority   string `json:"priority"`
	Status     string `json:"status"`
}

// TicketPatch enumerates the updatable ticket fields. Status transitions are
// free form but the target status itself must be a known value.
type TicketPatch struct {
	PropertyID *string `json:"propertyId"`
	TenantID   *string `json:"tenantId"`
	Room       *string `json:"room"`
	Category   *string `json:"category"`
	Issue      *string `json:"issue"`
	Priority   *string `json:"priority"`
	Status     *string `json:"status"`
}

// List returns the account's tickets in insertion order.
func (r *MaintenanceRepo) List(accountID string) []model.MaintenanceTicket {
	out := []model.MaintenanceTicket{}
	r.store.View(func(db *store.Database) {
		for _, t := range db.Maintenance {
			if t.AccountID == accountID {
				out = append(out, t)
			}
		}
	})
	return out
}

// Create appends a new ticket owned by accountID and persists it.
func (r *MaintenanceRepo) Create(accountID string, in NewTicket) (model.MaintenanceTicket, error) {
	if in.Status == "" {
		in.Status = model.TicketOpen
	}
	if !model.ValidTicketStatus(in.Status) {
		return model.MaintenanceTicket{}, ErrValidation
	}
	t := model.MaintenanceTicket{
		ID:         uuid.NewString(),
		AccountID:  accountID,
		PropertyID: in.PropertyID,
		TenantID:   in.TenantID,
		Room:       in.Room,
		Category:   in.Category,
		Issue:      in.Issue,
		Priority:   in.Priority,
		Status:     in.Status,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	err := r.store.Update(func(db *store.Database) error {
		db.Maintenance = append(db.Maintenance, t)
		return nil
	})
	if err != nil {
		return model.MaintenanceTicket{}, err
	}
	return t, nil
}

// Get returns the ticket if it exists and is owned by accountID.
func (r *MaintenanceRepo) Get(accountID, id string) (model.MaintenanceTicket, error) {
	var (
		out   model.MaintenanceTicket
		found bool
	)
	r.store.View(func(db *store.Database) {
		for _, t := range db.Maintenance {
			if t.ID == id && t.AccountID == accountID {
				out, found = t, true
				return
			}
		}
	})
	if !found {
		return model.MaintenanceTicket{}, ErrNotFound
	}
	return out, nil
}

// Update applies the non-nil patch fields to the owned ticket.
func (r *MaintenanceRepo) Update(accountID, id string, patch TicketPatch) (model.MaintenanceTicket, error) {
	if patch.Status != nil && !model.ValidTicketStatus(*patch.Status) {
		return model.MaintenanceTicket{}, ErrValidation
	}
	var out model.MaintenanceTicket
	err := r.store.Update(func(db *store.Database) error {
		for i := range db.Maintenance {
			t := &db.Maintenance[i]
			if t.ID != id || t.AccountID != accountID {
				continue
			}
			if patch.PropertyID != nil {
				t.PropertyID = *patch.PropertyID
			}
			if patch.TenantID != nil {
				t.TenantID = *patch.TenantID
			}
			if patch.Room != nil {
				t.Room = *patch.Room
			}
			if patch.Category != nil {
				t.Category = *patch.Category
			}
			if patch.Issue != nil {
				t.Issue = *patch.Issue
			}
			if patch.Priority != nil {
				t.Priority = *patch.Priority
			}
			if patch.Status != nil {
				t.Status = *patch.Status
			}
			out = *t
			return nil
		}
		return ErrNotFound
	})
	if err != nil {
		return model.MaintenanceTicket{}, err
	}
	return out, nil
}

// Delete removes the owned ticket.
func (r *MaintenanceRepo) Delete(accountID, id string) error {
	return r.store.Update(func(db *store.Database) error {
		for i := range db.Maintenance {
			if db.Maintenance[i].ID == id && db.Maintenance[i].AccountID == accountID {
				db.Maintenance = append(db.Maintenance[:i], db.Maintenance[i+1:]...)
				return nil
			}
		}
		return ErrNotFound
	})
}
