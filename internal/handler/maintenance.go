package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/rental-property-manager/internal/repository"
)

// MaintenanceHandler exposes CRUD over the acting account's maintenance
// tickets.
type MaintenanceHandler struct {
	Tickets *repository.MaintenanceRepo
}

func NewMaintenanceHandler(t *repository.MaintenanceRepo) *MaintenanceHandler {
	return &MaintenanceHandler{Tickets: t}
}

// List handles GET /api/maintenance.
func (h *MaintenanceHandler) List(c echo.Context) error {
	accID, err := accountID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	return c.JSON(http.StatusOK, h.Tickets.List(accID))
}

// Create handles POST /api/maintenance.
func (h *MaintenanceHandler) Create(c echo.Context) error {
	accID, err := accountID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var in repository.NewTicket
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	t, err := h.Tickets.Create(accID, in)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusCreated, t)
}

// Get handles GET /api/maintenance/:id.
func (h *MaintenanceHandler) Get(c echo.Context) error {
	accID, err := accountID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	t, err := h.Tickets.Get(accID, c.Param("id"))
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

// Update handles PUT /api/maintenance/:id with a partial-field merge.
func (h *MaintenanceHandler) Update(c echo.Context) error {
	accID, err := accountID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var patch repository.TicketPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	t, err := h.Tickets.Update(accID, c.Param("id"), patch)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

// Delete handles DELETE /api/maintenance/:id.
func (h *MaintenanceHandler) Delete(c echo.Context) error {
	accID, err := accountID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	if err := h.Tickets.Delete(accID, c.Param("id")); err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
