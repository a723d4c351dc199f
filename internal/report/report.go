// Package report computes derived financial and occupancy figures for an
// account by scanning its scoped slices of the datastore at request time.
// Nothing here is cached or incrementally maintained; every function is a
// pure full scan, so repeated calls over unchanged data return identical
// results.
package report

import (
	"time"

	"github.com/iliyamo/rental-property-manager/internal/model"
)

// DashboardSummary is the payload of the dashboard endpoint.
type DashboardSummary struct {
	TotalRentCollected float64             `json:"totalRentCollected"`
	PendingDuesCount   int                 `json:"pendingDuesCount"`
	SecurityHeld       float64             `json:"securityHeld"`
	Occupancy          []PropertyOccupancy `json:"occupancy"`
}

// PropertyOccupancy pairs a property with the number of tenants living in it.
type PropertyOccupancy struct {
	PropertyID string `json:"propertyId"`
	Name       string `json:"name"`
	Rooms      int    `json:"rooms"`
	Occupied   int    `json:"occupied"`
}

// Dashboard computes the headline figures: rent collected over all paid
// payments, the number of tenants with no paid payment on record at all,
// deposits held, and per-property occupancy.
func Dashboard(properties []model.Property, tenants []model.Tenant, payments []model.Payment) DashboardSummary {
	var collected float64
	paidByTenant := map[string]bool{}
	for _, p := range payments {
		if p.Status == model.StatusPaid {
			collected += p.Amount
			paidByTenant[p.TenantID] = true
		}
	}

	pending := 0
	var deposits float64
	tenantsByProperty := map[string]int{}
	for _, t := range tenants {
		if !paidByTenant[t.ID] {
			pending++
		}
		deposits += t.Deposit
		tenantsByProperty[t.PropertyID]++
	}

	occ := make([]PropertyOccupancy, 0, len(properties))
	for _, p := range properties {
		occ = append(occ, PropertyOccupancy{
			PropertyID: p.ID,
			Name:       p.Name,
			Rooms:      p.Rooms,
			Occupied:   tenantsByProperty[p.ID],
		})
	}

	return DashboardSummary{
		TotalRentCollected: collected,
		PendingDuesCount:   pending,
		SecurityHeld:       deposits,
		Occupancy:          occ,
	}
}

// IncomeSeries is a trailing window of calendar-month income buckets,
// oldest first, each labeled with a short month name.
type IncomeSeries struct {
	Labels []string  `json:"labels"`
	Series []float64 `json:"series"`
}

// Income buckets paid payments into a trailing window of calendar months
// ending with the month of now. Payments with missing or unparseable dates
// are skipped, not treated as errors.
func Income(payments []model.Payment, months int, now time.Time) IncomeSeries {
	if months < 1 {
		months = 1
	}
	out := IncomeSeries{
		Labels: make([]string, 0, months),
		Series: make([]float64, 0, months),
	}
	for i := months - 1; i >= 0; i-- {
		bucket := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, time.UTC)
		var sum float64
		for _, p := range payments {
			if p.Status != model.StatusPaid {
				continue
			}
			d, ok := parseDate(p.Date)
			if !ok {
				continue
			}
			if d.Year() == bucket.Year() && d.Month() == bucket.Month() {
				sum += p.Amount
			}
		}
		out.Labels = append(out.Labels, bucket.Format("Jan"))
		out.Series = append(out.Series, sum)
	}
	return out
}

// OutstandingRent returns how much of the tenant's monthly rent is still due
// given the supplied payment history: rent minus the sum of paid rent-type
// payments, floored at zero so an overpaying tenant never shows negative
// dues. Callers restrict payments to the reporting window beforehand.
func OutstandingRent(t model.Tenant, payments []model.Payment) float64 {
	var paid float64
	for _, p := range payments {
		if p.TenantID == t.ID && p.Status == model.StatusPaid && p.Type == model.TypeRent {
			paid += p.Amount
		}
	}
	if due := t.Rent - paid; due > 0 {
		return due
	}
	return 0
}

// Compliant reports whether the tenant has at least one document on file of
// each required type (agreement, id proof, police verification).
func Compliant(tenantID string, documents []model.Document) bool {
	have := map[string]bool{}
	for _, d := range documents {
		if d.TenantID == tenantID {
			have[d.DocType] = true
		}
	}
	for _, required := range model.RequiredDocTypes {
		if !have[required] {
			return false
		}
	}
	return true
}

// parseDate accepts the document's date formats: plain "YYYY-MM-DD" or a
// full RFC 3339 timestamp.
func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if d, err := time.Parse("2006-01-02", s); err == nil {
		return d, true
	}
	if d, err := time.Parse(time.RFC3339, s); err == nil {
		return d, true
	}
	return time.Time{}, false
}
