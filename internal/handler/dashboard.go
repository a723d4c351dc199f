package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/rental-property-manager/internal/report"
	"github.com/iliyamo/rental-property-manager/internal/repository"
)

// DashboardHandler serves the aggregation endpoints. Every figure is
// recomputed from the acting account's scoped slices on each request.
type DashboardHandler struct {
	Properties *repository.PropertyRepo
	Tenants    *repository.TenantRepo
	Payments   *repository.PaymentRepo
	Documents  *repository.DocumentRepo
}

func NewDashboardHandler(p *repository.PropertyRepo, t *repository.TenantRepo, pay *repository.PaymentRepo, d *repository.DocumentRepo) *DashboardHandler {
	return &DashboardHandler{Properties: p, Tenants: t, Payments: pay, Documents: d}
}

// Summary handles GET /api/dashboard.
func (h *DashboardHandler) Summary(c echo.Context) error {
	accID, err := accountID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	summary := report.Dashboard(h.Properties.List(accID), h.Tenants.List(accID), h.Payments.List(accID))
	return c.JSON(http.StatusOK, summary)
}

// Income handles GET /api/dashboard/income?months=N (default 6, capped at
// 24). The series covers the trailing N calendar months including the
// current one, oldest bucket first.
func (h *DashboardHandler) Income(c echo.Context) error {
	accID, err := accountID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	months := 6
	if s := c.QueryParam("months"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "months must be a positive integer"})
		}
		months = min(n, 24)
	}
	series := report.Income(h.Payments.List(accID), months, time.Now().UTC())
	return c.JSON(http.StatusOK, series)
}

// TenantReport handles GET /api/reports/tenants?months=N. months narrows the
// payment window; omitted or 0 means all history.
func (h *DashboardHandler) TenantReport(c echo.Context) error {
	accID, err := accountID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	months, ok := windowParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "months must be a non-negative integer"})
	}
	payments := report.WindowPayments(h.Payments.List(accID), months, time.Now().UTC())
	rows := report.Tenants(h.Tenants.List(accID), payments, h.Documents.List(accID))
	return c.JSON(http.StatusOK, rows)
}

// PropertyReport handles GET /api/reports/properties?months=N.
func (h *DashboardHandler) PropertyReport(c echo.Context) error {
	accID, err := accountID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	months, ok := windowParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "months must be a non-negative integer"})
	}
	payments := report.WindowPayments(h.Payments.List(accID), months, time.Now().UTC())
	rows := report.Properties(h.Properties.List(accID), h.Tenants.List(accID), payments)
	return c.JSON(http.StatusOK, rows)
}

func windowParam(c echo.Context) (int, bool) {
	s := c.QueryParam("months")
	if s == "" {
		return 0, true
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
