// Package handler contains the HTTP handlers. Each handler resolves the
// acting account from the session guard's context values and delegates to an
// account-scoped repository; no handler touches the datastore directly.
package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/rental-property-manager/internal/middleware"
	"github.com/iliyamo/rental-property-manager/internal/repository"
)

// accountID pulls the acting account id out of the request context.
func accountID(c echo.Context) (string, error) {
	return middleware.AccountID(c)
}

// repoError maps repository sentinel errors onto HTTP responses. Anything
// unrecognized (typically a persistence failure) becomes a generic 500 so no
// internal detail leaks to the caller.
func repoError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	case errors.Is(err, repository.ErrValidation):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "validation failed"})
	case errors.Is(err, repository.ErrEmailExists):
		return c.JSON(http.StatusConflict, echo.Map{"error": "email already registered"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
}
