package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/rental-property-manager/internal/repository"
)

// BookingHandler exposes CRUD over the acting account's visit bookings.
type BookingHandler struct {
	Bookings *repository.BookingRepo
}

func NewBookingHandler(b *repository.BookingRepo) *BookingHandler {
	return &BookingHandler{Bookings: b}
}

// List handles GET /api/bookings.
func (h *BookingHandler) List(c echo.Context) error {
	accID, err := accountID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	return c.JSON(http.StatusOK, h.Bookings.List(accID))
}

// Create handles POST /api/bookings.
func (h *BookingHandler) Create(c echo.Context) error {
	accID, err := accountID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var in repository.NewBooking
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	b, err := h.Bookings.Create(accID, in)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusCreated, b)
}

// Get handles GET /api/bookings/:id.
func (h *BookingHandler) Get(c echo.Context) error {
	accID, err := accountID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	b, err := h.Bookings.Get(accID, c.Param("id"))
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

// Update handles PUT /api/bookings/:id with a partial-field merge.
func (h *BookingHandler) Update(c echo.Context) error {
	accID, err := accountID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var patch repository.BookingPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	b, err := h.Bookings.Update(accID, c.Param("id"), patch)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

// Delete handles DELETE /api/bookings/:id.
func (h *BookingHandler) Delete(c echo.Context) error {
	accID, err := accountID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	if err := h.Bookings.Delete(accID, c.Param("id")); err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
