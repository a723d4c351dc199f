package store

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/rental-property-manager/internal/model"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "db.json")
	s, err := Open(path)
	require.NoError(t, err)
	return s, path
}

func TestOpenMissingFileYieldsEmptyDatabase(t *testing.T) {
	s, _ := newTestStore(t)
	s.View(func(db *Database) {
		require.NotNil(t, db.Accounts)
		require.Empty(t, db.Accounts)
		require.NotNil(t, db.Tenants)
		require.Empty(t, db.Tenants)
		require.NotNil(t, db.Payments)
		require.Empty(t, db.Payments)
	})
}

func TestUpdatePersistsAndReloads(t *testing.T) {
	s, path := newTestStore(t)
	err := s.Update(func(db *Database) error {
		db.Tenants = append(db.Tenants, model.Tenant{ID: "t1", AccountID: "a1", Name: "Alice"})
		return nil
	})
	require.NoError(t, err)

	reopened, err := Open(path)
	require.NoError(t, err)
	reopened.View(func(db *Database) {
		require.Len(t, db.Tenants, 1)
		require.Equal(t, "Alice", db.Tenants[0].Name)
	})
}

func TestUpdateErrorAbortsMutation(t *testing.T) {
	s, path := newTestStore(t)
	require.NoError(t, s.Update(func(db *Database) error {
		db.Tenants = append(db.Tenants, model.Tenant{ID: "t1", AccountID: "a1"})
		return nil
	}))

	boom := os.ErrPermission
	err := s.Update(func(db *Database) error {
		db.Tenants = append(db.Tenants, model.Tenant{ID: "t2", AccountID: "a1"})
		return boom
	})
	require.ErrorIs(t, err, boom)

	// Neither the snapshot nor the file may contain the aborted record.
	s.View(func(db *Database) {
		require.Len(t, db.Tenants, 1)
	})
	reopened, err := Open(path)
	require.NoError(t, err)
	reopened.View(func(db *Database) {
		require.Len(t, db.Tenants, 1)
	})
}

func TestLoadNormalizesMissingCollections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"accounts":[]}`), 0o644))
	s, err := Open(path)
	require.NoError(t, err)
	err = s.Update(func(db *Database) error {
		db.Bookings = append(db.Bookings, model.Booking{ID: "b1", AccountID: "a1"})
		return nil
	})
	require.NoError(t, err)
}

func TestOpenCorruptFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	_, err := Open(path)
	require.Error(t, err)
}

// Two concurrent creates must both survive: the exclusive critical section
// around load-mutate-save prevents the second writer from clobbering the
// first writer's record.
func TestConcurrentUpdatesLoseNothing(t *testing.T) {
	s, path := newTestStore(t)

	const writers = 20
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func() {
			defer wg.Done()
			err := s.Update(func(db *Database) error {
				db.Payments = append(db.Payments, model.Payment{
					ID:        uuid.NewString(),
					AccountID: "a1",
					Amount:    100,
					Status:    model.StatusPaid,
				})
				return nil
			})
			require.NoError(t, err)
		}()
	}
	wg.Wait()

	s.View(func(db *Database) {
		require.Len(t, db.Payments, writers)
	})
	reopened, err := Open(path)
	require.NoError(t, err)
	reopened.View(func(db *Database) {
		require.Len(t, db.Payments, writers)
	})
}

func TestViewSeesLastCommittedSnapshot(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.Update(func(db *Database) error {
		db.Properties = append(db.Properties, model.Property{ID: "p1", AccountID: "a1", Amenities: []string{"WiFi"}})
		return nil
	}))

	// Mutating the copy returned through View must not leak into the store:
	// repositories copy records out, and clone() duplicates amenity slices
	// before a mutation touches them.
	require.NoError(t, s.Update(func(db *Database) error {
		db.Properties[0].Amenities[0] = "AC"
		return nil
	}))
	s.View(func(db *Database) {
		require.Equal(t, []string{"AC"}, db.Properties[0].Amenities)
	})
}
