package repository

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/rental-property-manager/internal/model"
	"github.com/iliyamo/rental-property-manager/internal/store"
)

// DocumentRepo provides account-scoped access to document records. It also
// owns cleanup of the stored files: deleting a record removes the file from
// the uploads directory.
type DocumentRepo struct {
	store     *store.Store
	uploadDir string
}

func NewDocumentRepo(s *store.Store, uploadDir string) *DocumentRepo {
	return &DocumentRepo{store: s, uploadDir: uploadDir}
}

// NewDocument is the input for recording an uploaded file. Filename is the
// generated on-disk name produced by the upload handler.
type NewDocument struct {
	Filename    string
	Original    string
	TenantID    string
	PropertyID  string
	DocType     string
	Description string
}

// DocumentPatch enumerates the updatable metadata fields. The stored
// filename is not patchable; replacing a file means a new upload.
type DocumentPatch struct {
	TenantID    *string `json:"tenantId"`
	PropertyID  *string `json:"propertyId"`
	DocType     *string `json:"docType"`
	Description *string `json:"description"`
}

// List returns the account's documents in insertion order.
func (r *DocumentRepo) List(accountID string) []model.Document {
	out := []model.Document{}
	r.store.View(func(db *store.Database) {
		for _, d := range db.Documents {
			if d.AccountID == accountID {
				out = append(out, d)
			}
		}
	})
	return out
}

// ListByTenant returns the account's documents filed against one tenant.
func (r *DocumentRepo) ListByTenant(accountID, tenantID string) []model.Document {
	out := []model.Document{}
	r.store.View(func(db *store.Database) {
		for _, d := range db.Documents {
			if d.AccountID == accountID && d.TenantID == tenantID {
				out = append(out, d)
			}
		}
	})
	return out
}

// Create appends a new document record owned by accountID and persists it.
func (r *DocumentRepo) Create(accountID string, in NewDocument) (model.Document, error) {
	d := model.Document{
		ID:          uuid.NewString(),
		AccountID:   accountID,
		Filename:    in.Filename,
		Original:    in.Original,
		TenantID:    in.TenantID,
		PropertyID:  in.PropertyID,
		DocType:     in.DocType,
		Description: in.Description,
		UploadedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	err := r.store.Update(func(db *store.Database) error {
		db.Documents = append(db.Documents, d)
		return nil
	})
	if err != nil {
		return model.Document{}, err
	}
	return d, nil
}

// Get returns the document if it exists and is owned by accountID.
func (r *DocumentRepo) Get(accountID, id string) (model.Document, error) {
	var (
		out   model.Document
		found bool
	)
	r.store.View(func(db *store.Database) {
		for _, d := range db.Documents {
			if d.ID == id && d.AccountID == accountID {
				out, found = d, true
				return
			}
		}
	})
	if !found {
		return model.Document{}, ErrNotFound
	}
	return out, nil
}

// Update applies the non-nil patch fields to the owned document record.
func (r *DocumentRepo) Update(accountID, id string, patch DocumentPatch) (model.Document, error) {
	var out model.Document
	err := r.store.Update(func(db *store.Database) error {
		for i := range db.Documents {
			d := &db.Documents[i]
			if d.ID != id || d.AccountID != accountID {
				continue
			}
			if patch.TenantID != nil {
				d.TenantID = *patch.TenantID
			}
			if patch.PropertyID != nil {
				d.PropertyID = *patch.PropertyID
			}
			if patch.DocType != nil {
				d.DocType = *patch.DocType
			}
			if patch.Description != nil {
				d.Description = *patch.Description
			}
			out = *d
			return nil
		}
		return ErrNotFound
	})
	if err != nil {
		return model.Document{}, err
	}
	return out, nil
}

// Delete removes the owned document record and its stored file. The record
// is the source of truth: the file is removed only after the record delete
// commits, and a missing file is not an error.
func (r *DocumentRepo) Delete(accountID, id string) error {
	var filename string
	err := r.store.Update(func(db *store.Database) error {
		for i := range db.Documents {
			if db.Documents[i].ID == id && db.Documents[i].AccountID == accountID {
				filename = db.Documents[i].Filename
				db.Documents = append(db.Documents[:i], db.Documents[i+1:]...)
				return nil
			}
		}
		return ErrNotFound
	})
	if err != nil {
		return err
	}
	if filename != "" {
		path := filepath.Join(r.uploadDir, filepath.Base(filename))
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Printf("documents: remove stored file %s: %v", path, err)
		}
	}
	return nil
}
