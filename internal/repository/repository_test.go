package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iliyamo/rental-property-manager/internal/model"
	"github.com/iliyamo/rental-property-manager/internal/store"
	"github.com/iliyamo/rental-property-manager/internal/utils"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "db.json"))
	require.NoError(t, err)
	return s
}

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }

func TestAccountCreateHashesPasswordAndSeeds(t *testing.T) {
	s := newTestStore(t)
	repo := NewAccountRepo(s)

	acc, err := repo.Create(NewAccount{
		Email:    "Owner@Example.com",
		Password: "password",
		FullName: "Owner One",
	}, 4)
	require.NoError(t, err)
	require.Equal(t, "owner@example.com", acc.Email)
	require.True(t, acc.IsActive)
	require.NotEqual(t, "password", acc.PasswordHash)
	require.True(t, utils.VerifyPassword(acc.PasswordHash, "password"))

	// Signup seeds one property, tenant and payment for the new account.
	props := NewPropertyRepo(s).List(acc.ID)
	require.Len(t, props, 1)
	require.Len(t, NewTenantRepo(s).List(acc.ID), 1)
	require.Len(t, NewPaymentRepo(s).List(acc.ID), 1)
}

func TestAccountCreateDuplicateEmail(t *testing.T) {
	repo := NewAccountRepo(newTestStore(t))
	_, err := repo.Create(NewAccount{Email: "a@b.c", Password: "secret1", FullName: "A"}, 4)
	require.NoError(t, err)
	_, err = repo.Create(NewAccount{Email: "A@B.C", Password: "secret2", FullName: "B"}, 4)
	require.ErrorIs(t, err, ErrEmailExists)
}

func TestTenantScopingAcrossAccounts(t *testing.T) {
	s := newTestStore(t)
	repo := NewTenantRepo(s)

	created, err := repo.Create("account-a", NewTenant{Name: "Alice", Phone: "111", Rent: 8000})
	require.NoError(t, err)
	require.Equal(t, "account-a", created.AccountID)

	// A different account can neither see nor touch the record, and the
	// failure is indistinguishable from the record not existing.
	_, err = repo.Get("account-b", created.ID)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = repo.Update("account-b", created.ID, TenantPatch{Name: strPtr("Mallory")})
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, repo.Delete("account-b", created.ID), ErrNotFound)
	require.Empty(t, repo.List("account-b"))

	_, err = repo.FindByPhone("account-b", "111")
	require.ErrorIs(t, err, ErrNotFound)
	got, err := repo.FindByPhone("account-a", "111")
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)
}

func TestTenantPatchPreservesUnsetFieldsAndOwner(t *testing.T) {
	repo := NewTenantRepo(newTestStore(t))
	created, err := repo.Create("account-a", NewTenant{
		Name:    "Alice",
		Phone:   "111",
		Room:    "A1",
		Rent:    8000,
		Deposit: 10000,
		MoveIn:  "2025-11-01",
	})
	require.NoError(t, err)

	updated, err := repo.Update("account-a", created.ID, TenantPatch{Rent: f64Ptr(9000)})
	require.NoError(t, err)
	require.Equal(t, 9000.0, updated.Rent)
	require.Equal(t, "Alice", updated.Name)
	require.Equal(t, "A1", updated.Room)
	require.Equal(t, 10000.0, updated.Deposit)
	require.Equal(t, "2025-11-01", updated.MoveIn)
	require.Equal(t, "account-a", updated.AccountID)
}

func TestTenantNumericCoercion(t *testing.T) {
	repo := NewTenantRepo(newTestStore(t))
	created, err := repo.Create("account-a", NewTenant{Name: "Bob", Rent: -500, Deposit: -1})
	require.NoError(t, err)
	require.Equal(t, 0.0, created.Rent)
	require.Equal(t, 0.0, created.Deposit)

	updated, err := repo.Update("account-a", created.ID, TenantPatch{Rent: f64Ptr(-100)})
	require.NoError(t, err)
	require.Equal(t, 0.0, updated.Rent)
}

func TestPaymentDefaults(t *testing.T) {
	repo := NewPaymentRepo(newTestStore(t))
	p, err := repo.Create("account-a", NewPayment{Amount: 8000})
	require.NoError(t, err)
	require.Equal(t, "UPI", p.Method)
	require.Equal(t, model.TypeRent, p.Type)
	require.Equal(t, model.StatusPaid, p.Status)
	require.NotEmpty(t, p.Date)
}

func TestPaymentListByTenantIsScoped(t *testing.T) {
	repo := NewPaymentRepo(newTestStore(t))
	_, err := repo.Create("account-a", NewPayment{TenantID: "t1", Amount: 100})
	require.NoError(t, err)
	_, err = repo.Create("account-b", NewPayment{TenantID: "t1", Amount: 200})
	require.NoError(t, err)

	got := repo.ListByTenant("account-a", "t1")
	require.Len(t, got, 1)
	require.Equal(t, 100.0, got[0].Amount)
}

func TestMaintenanceStatusValidation(t *testing.T) {
	repo := NewMaintenanceRepo(newTestStore(t))

	created, err := repo.Create("account-a", NewTicket{Issue: "leaking tap"})
	require.NoError(t, err)
	require.Equal(t, model.TicketOpen, created.Status)

	_, err = repo.Create("account-a", NewTicket{Issue: "x", Status: "escalated"})
	require.ErrorIs(t, err, ErrValidation)

	_, err = repo.Update("account-a", created.ID, TicketPatch{Status: strPtr("fixed")})
	require.ErrorIs(t, err, ErrValidation)

	updated, err := repo.Update("account-a", created.ID, TicketPatch{Status: strPtr(model.TicketResolved)})
	require.NoError(t, err)
	require.Equal(t, model.TicketResolved, updated.Status)
}

func TestDocumentDeleteRemovesStoredFile(t *testing.T) {
	dir := t.TempDir()
	s, err := store.Open(filepath.Join(dir, "db.json"))
	require.NoError(t, err)
	uploadDir := filepath.Join(dir, "uploads")
	require.NoError(t, os.MkdirAll(uploadDir, 0o755))
	repo := NewDocumentRepo(s, uploadDir)

	stored := "1700000000-abc-agreement.pdf"
	path := filepath.Join(uploadDir, stored)
	require.NoError(t, os.WriteFile(path, []byte("pdf"), 0o644))

	doc, err := repo.Create("account-a", NewDocument{
		Filename: stored,
		Original: "agreement.pdf",
		TenantID: "t1",
		DocType:  model.DocAgreement,
	})
	require.NoError(t, err)

	require.NoError(t, repo.Delete("account-a", doc.ID))
	_, err = os.Stat(path)
	require.True(t, os.IsNotExist(err))
	_, err = repo.Get("account-a", doc.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestBookingDefaultsAndScoping(t *testing.T) {
	repo := NewBookingRepo(newTestStore(t))
	b, err := repo.Create("account-a", NewBooking{Name: "Visitor", Date: "2026-09-01"})
	require.NoError(t, err)
	require.Equal(t, "requested", b.Status)

	_, err = repo.Get("account-b", b.ID)
	require.ErrorIs(t, err, ErrNotFound)
}
