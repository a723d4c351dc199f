package report

import (
	"time"

	"github.com/iliyamo/rental-property-manager/internal/model"
)

// TenantReport is one row of the per-tenant reporting view.
type TenantReport struct {
	Tenant          model.Tenant `json:"tenant"`
	TotalPaid       float64      `json:"totalPaid"`
	Pending         float64      `json:"pending"`
	PaymentCount    int          `json:"paymentCount"`
	LastPaymentDate string       `json:"lastPaymentDate"`
	Compliant       bool         `json:"compliant"`
}

// PropertyReport is one row of the per-property reporting view.
type PropertyReport struct {
	Property      model.Property `json:"property"`
	TenantCount   int            `json:"tenantCount"`
	Collected     float64        `json:"collected"`
	PendingRent   float64        `json:"pendingRent"`
	TotalDeposits float64        `json:"totalDeposits"`
	OccupancyRate float64        `json:"occupancyRate"`
}

// WindowPayments narrows payments to a trailing window of calendar months
// ending with the month of now. months <= 0 means no window: all history.
func WindowPayments(payments []model.Payment, months int, now time.Time) []model.Payment {
	if months <= 0 {
		return payments
	}
	start := time.Date(now.Year(), now.Month()-time.Month(months-1), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(now.Year(), now.Month()+1, 1, 0, 0, 0, 0, time.UTC)
	out := []model.Payment{}
	for _, p := range payments {
		d, ok := parseDate(p.Date)
		if !ok {
			continue
		}
		if !d.Before(start) && d.Before(end) {
			out = append(out, p)
		}
	}
	return out
}

// Tenants builds the per-tenant reporting rows over the given payment window.
func Tenants(tenants []model.Tenant, payments []model.Payment, documents []model.Document) []TenantReport {
	out := make([]TenantReport, 0, len(tenants))
	for _, t := range tenants {
		row := TenantReport{Tenant: t, Compliant: Compliant(t.ID, documents)}
		var last time.Time
		for _, p := range payments {
			if p.TenantID != t.ID {
				continue
			}
			row.PaymentCount++
			if p.Status == model.StatusPaid {
				row.TotalPaid += p.Amount
			}
			if d, ok := parseDate(p.Date); ok && d.After(last) {
				last = d
				row.LastPaymentDate = p.Date
			}
		}
		row.Pending = OutstandingRent(t, payments)
		out = append(out, row)
	}
	return out
}

// Properties builds the per-property reporting rows over the given payment
// window. OccupancyRate is a percentage; zero-room properties report zero.
func Properties(properties []model.Property, tenants []model.Tenant, payments []model.Payment) []PropertyReport {
	out := make([]PropertyReport, 0, len(properties))
	for _, prop := range properties {
		row := PropertyReport{Property: prop}
		for _, p := range payments {
			if p.PropertyID == prop.ID && p.Status == model.StatusPaid {
				row.Collected += p.Amount
			}
		}
		for _, t := range tenants {
			if t.PropertyID != prop.ID {
				continue
			}
			row.TenantCount++
			row.TotalDeposits += t.Deposit
			row.PendingRent += OutstandingRent(t, payments)
		}
		if prop.Rooms > 0 {
			row.OccupancyRate = float64(row.TenantCount) / float64(prop.Rooms) * 100
		}
		out = append(out, row)
	}
	return out
}
