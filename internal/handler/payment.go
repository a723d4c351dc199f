package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/rental-property-manager/internal/queue"
	"github.com/iliyamo/rental-property-manager/internal/repository"
	queue_publisher "github.com/iliyamo/rental-property-manager/internal/service"
)

// PaymentHandler exposes CRUD and the per-tenant listing over the acting
// account's payments.
type PaymentHandler struct {
	Payments *repository.PaymentRepo
	// PublishEvents toggles best-effort domain event publication after a
	// payment is recorded. Off in tests.
	PublishEvents bool
}

func NewPaymentHandler(p *repository.PaymentRepo, publishEvents bool) *PaymentHandler {
	return &PaymentHandler{Payments: p, PublishEvents: publishEvents}
}

// List handles GET /api/payments.
func (h *PaymentHandler) List(c echo.Context) error {
	accID, err := accountID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	return c.JSON(http.StatusOK, h.Payments.List(accID))
}

// ListByTenant handles GET /api/payments/tenant/:tenantId.
func (h *PaymentHandler) ListByTenant(c echo.Context) error {
	accID, err := accountID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	return c.JSON(http.StatusOK, h.Payments.ListByTenant(accID, c.Param("tenantId")))
}

// Create handles POST /api/payments. After the mutation commits, a
// payment.recorded event is published to the broker; publication is best
// effort and never fails the request.
func (h *PaymentHandler) Create(c echo.Context) error {
	accID, err := accountID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var in repository.NewPayment
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	p, err := h.Payments.Create(accID, in)
	if err != nil {
		return repoError(c, err)
	}
	if h.PublishEvents {
		event := queue.PaymentRecordedEvent{
			PaymentID:  p.ID,
			AccountID:  p.AccountID,
			TenantID:   p.TenantID,
			PropertyID: p.PropertyID,
			Amount:     p.Amount,
			Date:       p.Date,
			Method:     p.Method,
			Type:       p.Type,
			Status:     p.Status,
			RecordedAt: time.Now().UTC().Format(time.RFC3339),
		}
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = queue_publisher.PublishPaymentRecorded(ctx, event)
		}()
	}
	return c.JSON(http.StatusCreated, p)
}

// Get handles GET /api/payments/:id.
func (h *PaymentHandler) Get(c echo.Context) error {
	accID, err := accountID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	p, err := h.Payments.Get(accID, c.Param("id"))
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

// Update handles PUT /api/payments/:id with a partial-field merge.
func (h *PaymentHandler) Update(c echo.Context) error {
	accID, err := accountID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var patch repository.PaymentPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	p, err := h.Payments.Update(accID, c.Param("id"), patch)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

// Delete handles DELETE /api/payments/:id.
func (h *PaymentHandler) Delete(c echo.Context) error {
	accID, err := accountID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	if err := h.Payments.Delete(accID, c.Param("id")); err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
