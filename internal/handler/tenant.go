package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/rental-property-manager/internal/repository"
)

// TenantHandler exposes CRUD and the phone lookup over the acting account's
// tenants.
type TenantHandler struct {
	Tenants *repository.TenantRepo
}

func NewTenantHandler(t *repository.TenantRepo) *TenantHandler {
	return &TenantHandler{Tenants: t}
}

// List handles GET /api/tenants.
func (h *TenantHandler) List(c echo.Context) error {
	accID, err := accountID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	return c.JSON(http.StatusOK, h.Tenants.List(accID))
}

// Create handles POST /api/tenants.
func (h *TenantHandler) Create(c echo.Context) error {
	accID, err := accountID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var in repository.NewTenant
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	t, err := h.Tenants.Create(accID, in)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusCreated, t)
}

// Get handles GET /api/tenants/:id.
func (h *TenantHandler) Get(c echo.Context) error {
	accID, err := accountID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	t, err := h.Tenants.Get(accID, c.Param("id"))
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

// GetByPhone handles GET /api/tenants/phone/:phone, an exact-match lookup
// within the account's own tenants.
func (h *TenantHandler) GetByPhone(c echo.Context) error {
	accID, err := accountID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	t, err := h.Tenants.FindByPhone(accID, c.Param("phone"))
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

// Update handles PUT /api/tenants/:id with a partial-field merge.
func (h *TenantHandler) Update(c echo.Context) error {
	accID, err := accountID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var patch repository.TenantPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	t, err := h.Tenants.Update(accID, c.Param("id"), patch)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

// Delete handles DELETE /api/tenants/:id.
func (h *TenantHandler) Delete(c echo.Context) error {
	accID, err := accountID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	if err := h.Tenants.Delete(accID, c.Param("id")); err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
