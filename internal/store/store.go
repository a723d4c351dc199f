// Package store owns the single persisted document backing the whole
// application. The document is a JSON file holding one array per collection.
// There is no partial persistence: Load reads the whole document and save
// replaces it entirely, so every mutation runs inside one exclusive critical
// section to keep two concurrent read-modify-write sequences from losing an
// update. Reads run concurrently against the last committed snapshot.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/iliyamo/rental-property-manager/internal/model"
)

// Database is the in-memory form of the persisted document. Records are kept
// in insertion order; callers that want recency sort on their side.
type Database struct {
	Accounts    []model.Account           `json:"accounts"`
	Properties  []model.Property          `json:"properties"`
	Tenants     []model.Tenant            `json:"tenants"`
	Payments    []model.Payment           `json:"payments"`
	Documents   []model.Document          `json:"documents"`
	Maintenance []model.MaintenanceTicket `json:"maintenance"`
	Bookings    []model.Booking           `json:"bookings"`
}

func emptyDatabase() *Database {
	return &Database{
		Accounts:    []model.Account{},
		Properties:  []model.Property{},
		Tenants:     []model.Tenant{},
		Payments:    []model.Payment{},
		Documents:   []model.Document{},
		Maintenance: []model.MaintenanceTicket{},
		Bookings:    []model.Booking{},
	}
}

// clone returns a deep copy of the database. Entity structs are value types;
// the only reference field that needs duplicating is the amenity slice.
func (d *Database) clone() *Database {
	c := &Database{
		Accounts:    append([]model.Account{}, d.Accounts...),
		Properties:  append([]model.Property{}, d.Properties...),
		Tenants:     append([]model.Tenant{}, d.Tenants...),
		Payments:    append([]model.Payment{}, d.Payments...),
		Documents:   append([]model.Document{}, d.Documents...),
		Maintenance: append([]model.MaintenanceTicket{}, d.Maintenance...),
		Bookings:    append([]model.Booking{}, d.Bookings...),
	}
	for i := range c.Properties {
		c.Properties[i].Amenities = append([]string{}, c.Properties[i].Amenities...)
	}
	return c
}

// Store is the sole owner of the document file. No other component may read
// or write the underlying path.
type Store struct {
	path string
	mu   sync.RWMutex
	db   *Database // last committed snapshot
}

// Open loads the document at path. A missing file is not an error; it yields
// an empty database with every collection initialized, matching first-run
// behavior.
func Open(path string) (*Store, error) {
	db, err := load(path)
	if err != nil {
		return nil, err
	}
	return &Store{path: path, db: db}, nil
}

func load(path string) (*Database, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return emptyDatabase(), nil
		}
		return nil, fmt.Errorf("store: read %s: %w", path, err)
	}
	db := emptyDatabase()
	if err := json.Unmarshal(raw, db); err != nil {
		return nil, fmt.Errorf("store: parse %s: %w", path, err)
	}
	// Collections absent from an older document come back nil; normalize so
	// callers can append without nil checks and the next save writes arrays.
	if db.Accounts == nil {
		db.Accounts = []model.Account{}
	}
	if db.Properties == nil {
		db.Properties = []model.Property{}
	}
	if db.Tenants == nil {
		db.Tenants = []model.Tenant{}
	}
	if db.Payments == nil {
		db.Payments = []model.Payment{}
	}
	if db.Documents == nil {
		db.Documents = []model.Document{}
	}
	if db.Maintenance == nil {
		db.Maintenance = []model.MaintenanceTicket{}
	}
	if db.Bookings == nil {
		db.Bookings = []model.Booking{}
	}
	return db, nil
}

// View runs fn with shared read access to the last committed snapshot.
// fn must not retain or mutate the database; copy out what it needs.
func (s *Store) View(fn func(db *Database)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.db)
}

// Update runs fn inside the exclusive critical section. fn receives a working
// copy of the current snapshot; when it returns nil the copy is persisted
// atomically and becomes the new snapshot. Any error from fn or from
// persistence aborts the mutation with nothing written and nothing swapped,
// so a half-applied document can never be observed or persisted.
func (s *Store) Update(fn func(db *Database) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.db.clone()
	if err := fn(work); err != nil {
		return err
	}
	if err := s.persist(work); err != nil {
		return fmt.Errorf("store: save %s: %w", s.path, err)
	}
	s.db = work
	return nil
}

// persist writes the document to a temp file in the same directory and
// renames it over the target, so readers of the file never see a torn write.
func (s *Store) persist(db *Database) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	raw, err := json.MarshalIndent(db, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".db-*.json")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}
