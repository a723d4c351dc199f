// Package middleware provides reusable HTTP middleware: the session guard
// that authenticates every protected request and a redis-backed rate limiter
// for the public auth endpoints.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/rental-property-manager/internal/model"
	"github.com/iliyamo/rental-property-manager/internal/repository"
	"github.com/iliyamo/rental-property-manager/internal/utils"
)

// Context keys set by the guard for downstream handlers.
const (
	ctxAccountID = "account_id"
	ctxAccount   = "account"
)

// Auth returns the session guard. It validates the bearer token's signature
// and expiry, then re-fetches the account record and confirms it still
// exists, matches the token's email and is active. The re-fetch is what makes
// deactivation effective immediately even though the token itself is
// stateless and cannot be recalled.
//
// Responses: 401 "access token required" when no credential is supplied,
// 401 "invalid or expired token" when the token check fails, and
// 401 "account not found or deactivated" when the account is gone or
// inactive. This middleware is the only place those responses originate.
func Auth(secret string, accounts *repository.AccountRepo) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "access token required"})
			}
			raw := strings.TrimPrefix(header, "Bearer ")

			claims, err := utils.ParseAccessToken(secret, raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired token"})
			}

			acc, err := accounts.GetByID(claims.AccountID)
			if err != nil || acc.Email != claims.Email || !acc.IsActive {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "account not found or deactivated"})
			}

			c.Set(ctxAccountID, acc.ID)
			c.Set(ctxAccount, acc)
			return next(c)
		}
	}
}

// AccountID extracts the acting account id placed in the context by Auth.
func AccountID(c echo.Context) (string, error) {
	if id, ok := c.Get(ctxAccountID).(string); ok && id != "" {
		return id, nil
	}
	return "", errors.New("no account in context")
}

// Account extracts the acting account record placed in the context by Auth.
func Account(c echo.Context) (model.Account, error) {
	if acc, ok := c.Get(ctxAccount).(model.Account); ok {
		return acc, nil
	}
	return model.Account{}, errors.New("no account in context")
}
