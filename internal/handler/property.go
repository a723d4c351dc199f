package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/rental-property-manager/internal/repository"
)

// PropertyHandler exposes CRUD over the acting account's properties.
type PropertyHandler struct {
	Properties *repository.PropertyRepo
}

func NewPropertyHandler(p *repository.PropertyRepo) *PropertyHandler {
	return &PropertyHandler{Properties: p}
}

// List handles GET /api/properties.
func (h *PropertyHandler) List(c echo.Context) error {
	accID, err := accountID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	return c.JSON(http.StatusOK, h.Properties.List(accID))
}

// Create handles POST /api/properties.
func (h *PropertyHandler) Create(c echo.Context) error {
	accID, err := accountID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var in repository.NewProperty
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	p, err := h.Properties.Create(accID, in)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

// Get handles GET /api/properties/:id.
func (h *PropertyHandler) Get(c echo.Context) error {
	accID, err := accountID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	p, err := h.Properties.Get(accID, c.Param("id"))
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

// Update handles PUT /api/properties/:id with a partial-field merge.
func (h *PropertyHandler) Update(c echo.Context) error {
	accID, err := accountID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var patch repository.PropertyPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	p, err := h.Properties.Update(accID, c.Param("id"), patch)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

// Delete handles DELETE /api/properties/:id.
func (h *PropertyHandler) Delete(c echo.Context) error {
	accID, err := accountID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	if err := h.Properties.Delete(accID, c.Param("id")); err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
