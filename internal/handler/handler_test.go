package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/rental-property-manager/internal/config"
	"github.com/iliyamo/rental-property-manager/internal/handler"
	"github.com/iliyamo/rental-property-manager/internal/repository"
	"github.com/iliyamo/rental-property-manager/internal/router"
	"github.com/iliyamo/rental-property-manager/internal/store"
)

type testApp struct {
	e        *echo.Echo
	accounts *repository.AccountRepo
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	dir := t.TempDir()
	st, err := store.Open(filepath.Join(dir, "db.json"))
	require.NoError(t, err)

	cfg := config.Config{
		Env:          "test",
		Port:         "0",
		DataFile:     filepath.Join(dir, "db.json"),
		UploadDir:    filepath.Join(dir, "uploads"),
		JWTSecret:    "test-secret",
		AccessTTLMin: 60,
		BcryptCost:   4,
	}

	accounts := repository.NewAccountRepo(st)
	properties := repository.NewPropertyRepo(st)
	tenants := repository.NewTenantRepo(st)
	payments := repository.NewPaymentRepo(st)
	maintenance := repository.NewMaintenanceRepo(st)
	documents := repository.NewDocumentRepo(st, cfg.UploadDir)
	bookings := repository.NewBookingRepo(st)

	h := router.Handlers{
		Auth:        handler.NewAuthHandler(cfg, accounts),
		Properties:  handler.NewPropertyHandler(properties),
		Tenants:     handler.NewTenantHandler(tenants),
		Payments:    handler.NewPaymentHandler(payments, false),
		Maintenance: handler.NewMaintenanceHandler(maintenance),
		Documents:   handler.NewDocumentHandler(documents, cfg.UploadDir),
		Bookings:    handler.NewBookingHandler(bookings),
		Dashboard:   handler.NewDashboardHandler(properties, tenants, payments, documents),
	}

	e := echo.New()
	router.RegisterRoutes(e, cfg, accounts, h, nil)
	return &testApp{e: e, accounts: accounts}
}

func (a *testApp) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func (a *testApp) register(t *testing.T, email string) (token, accountID string) {
	t.Helper()
	rec := a.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    email,
		"password": "password",
		"fullName": "Test Owner",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	decode(t, rec, &resp)
	require.NotEmpty(t, resp.Token)
	return resp.Token, resp.User.ID
}

func TestRegisterValidationAndConflict(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{"email": "a@b.c"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = app.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email": "a@b.c", "password": "short", "fullName": "A",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	app.register(t, "a@b.c")
	rec = app.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email": "a@b.c", "password": "password", "fullName": "A",
	})
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestLoginAndVerify(t *testing.T) {
	app := newTestApp(t)
	app.register(t, "owner@example.com")

	rec := app.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "owner@example.com", "password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = app.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "owner@example.com", "password": "password",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Token string `json:"token"`
	}
	decode(t, rec, &resp)

	rec = app.do(t, http.MethodGet, "/api/auth/verify", resp.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "owner@example.com")
	// The bcrypt hash must never appear in a response.
	require.NotContains(t, rec.Body.String(), "$2a$")
}

func TestGuardRejectsMissingAndInvalidTokens(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/api/tenants", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "access token required")

	rec = app.do(t, http.MethodGet, "/api/tenants", "not-a-jwt", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "invalid or expired token")
}

// A token issued before deactivation must stop working on the next request
// even though its own expiry has not elapsed.
func TestDeactivatedAccountFailsVerification(t *testing.T) {
	app := newTestApp(t)
	token, accID := app.register(t, "owner@example.com")

	rec := app.do(t, http.MethodGet, "/api/auth/verify", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	require.NoError(t, app.accounts.SetActive(accID, false))

	rec = app.do(t, http.MethodGet, "/api/auth/verify", token, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "deactivated")

	// Login is refused as well.
	rec = app.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "owner@example.com", "password": "password",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCrossAccountIsolationOverHTTP(t *testing.T) {
	app := newTestApp(t)
	tokenA, _ := app.register(t, "a@example.com")
	tokenB, _ := app.register(t, "b@example.com")

	rec := app.do(t, http.MethodPost, "/api/tenants", tokenA, map[string]any{
		"name": "Alice", "phone": "111", "rent": 8000,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created struct {
		ID string `json:"id"`
	}
	decode(t, rec, &created)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		rec := app.do(t, method, "/api/tenants/"+created.ID, tokenB, map[string]string{"name": "Mallory"})
		require.Equal(t, http.StatusNotFound, rec.Code, "method %s must not see foreign records", method)
	}

	// Owner still sees the untouched record.
	rec = app.do(t, http.MethodGet, "/api/tenants/"+created.ID, tokenA, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Alice")
}

// The owner field cannot be rewritten through an update, even when the
// request body carries it explicitly.
func TestUpdateCannotChangeOwner(t *testing.T) {
	app := newTestApp(t)
	tokenA, accA := app.register(t, "a@example.com")
	_, accB := app.register(t, "b@example.com")

	rec := app.do(t, http.MethodPost, "/api/tenants", tokenA, map[string]any{"name": "Alice"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created struct {
		ID string `json:"id"`
	}
	decode(t, rec, &created)

	rec = app.do(t, http.MethodPut, "/api/tenants/"+created.ID, tokenA, map[string]any{
		"name": "Alice Updated", "userId": accB,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var updated struct {
		Name      string `json:"name"`
		AccountID string `json:"userId"`
	}
	decode(t, rec, &updated)
	require.Equal(t, "Alice Updated", updated.Name)
	require.Equal(t, accA, updated.AccountID)
}

func TestDashboardAndIncomeEndpoints(t *testing.T) {
	app := newTestApp(t)
	token, _ := app.register(t, "owner@example.com")

	rec := app.do(t, http.MethodGet, "/api/dashboard", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var summary struct {
		TotalRentCollected float64 `json:"totalRentCollected"`
		SecurityHeld       float64 `json:"securityHeld"`
	}
	decode(t, rec, &summary)
	// Registration seeds one 8000 paid payment and a 10000 deposit.
	require.Equal(t, 8000.0, summary.TotalRentCollected)
	require.Equal(t, 10000.0, summary.SecurityHeld)

	rec = app.do(t, http.MethodGet, "/api/dashboard/income?months=3", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var series struct {
		Labels []string  `json:"labels"`
		Series []float64 `json:"series"`
	}
	decode(t, rec, &series)
	require.Len(t, series.Labels, 3)
	require.Len(t, series.Series, 3)
	require.Equal(t, 8000.0, series.Series[2]) // seeded payment is dated today

	rec = app.do(t, http.MethodGet, "/api/dashboard/income?months=0", token, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTenantReportOutstandingScenario(t *testing.T) {
	app := newTestApp(t)
	token, _ := app.register(t, "owner@example.com")

	rec := app.do(t, http.MethodPost, "/api/tenants", token, map[string]any{"name": "T", "rent": 8000})
	require.Equal(t, http.StatusCreated, rec.Code)
	var tenant struct {
		ID string `json:"id"`
	}
	decode(t, rec, &tenant)

	pay := func(amount float64) {
		rec := app.do(t, http.MethodPost, "/api/payments", token, map[string]any{
			"tenantId": tenant.ID, "amount": amount, "type": "rent", "status": "paid",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}
	pay(3000)
	pay(3000)

	pending := func() float64 {
		rec := app.do(t, http.MethodGet, "/api/reports/tenants", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var rows []struct {
			Tenant struct {
				ID string `json:"id"`
			} `json:"tenant"`
			Pending float64 `json:"pending"`
		}
		decode(t, rec, &rows)
		for _, row := range rows {
			if row.Tenant.ID == tenant.ID {
				return row.Pending
			}
		}
		t.Fatalf("tenant %s missing from report", tenant.ID)
		return 0
	}

	require.Equal(t, 2000.0, pending())
	pay(5000)
	require.Equal(t, 0.0, pending(), "overpayment must not go negative")
}

func TestConcurrentCreatesBothSurvive(t *testing.T) {
	app := newTestApp(t)
	token, _ := app.register(t, "owner@example.com")

	const n = 10
	done := make(chan int, n)
	for i := 0; i < n; i++ {
		go func(i int) {
			rec := app.do(t, http.MethodPost, "/api/properties", token, map[string]any{
				"name": fmt.Sprintf("Property %d", i), "rooms": 1,
			})
			done <- rec.Code
		}(i)
	}
	for i := 0; i < n; i++ {
		require.Equal(t, http.StatusCreated, <-done)
	}

	rec := app.do(t, http.MethodGet, "/api/properties", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []struct {
		ID string `json:"id"`
	}
	decode(t, rec, &list)
	require.Len(t, list, n+1) // n created here plus the seeded sample
}
