// Package router wires HTTP routes to their handlers and middleware.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/rental-property-manager/internal/config"
	"github.com/iliyamo/rental-property-manager/internal/handler"
	"github.com/iliyamo/rental-property-manager/internal/middleware"
	"github.com/iliyamo/rental-property-manager/internal/repository"
)

// Handlers bundles every handler the router needs.
type Handlers struct {
	Auth        *handler.AuthHandler
	Properties  *handler.PropertyHandler
	Tenants     *handler.TenantHandler
	Payments    *handler.PaymentHandler
	Maintenance *handler.MaintenanceHandler
	Documents   *handler.DocumentHandler
	Bookings    *handler.BookingHandler
	Dashboard   *handler.DashboardHandler
}

// RegisterRoutes registers the whole API surface under /api. The auth
// endpoints that issue credentials are public (and rate limited when redis
// is available); everything else sits behind the session guard, which
// resolves and validates the acting account on every request.
func RegisterRoutes(e *echo.Echo, cfg config.Config, accounts *repository.AccountRepo, h Handlers, rdb *redis.Client) {
	e.GET("/healthz", handler.Health)

	public := e.Group("/api/auth")
	public.Use(middleware.RateLimit(config.LoadRateLimit(), rdb))
	public.POST("/register", h.Auth.Register)
	public.POST("/login", h.Auth.Login)
	public.POST("/otp/request", h.Auth.RequestOTP)

	api := e.Group("/api")
	api.Use(middleware.Auth(cfg.JWTSecret, accounts))

	api.GET("/auth/verify", h.Auth.Verify)

	api.GET("/properties", h.Properties.List)
	api.POST("/properties", h.Properties.Create)
	api.GET("/properties/:id", h.Properties.Get)
	api.PUT("/properties/:id", h.Properties.Update)
	api.DELETE("/properties/:id", h.Properties.Delete)

	api.GET("/tenants", h.Tenants.List)
	api.POST("/tenants", h.Tenants.Create)
	api.GET("/tenants/phone/:phone", h.Tenants.GetByPhone)
	api.GET("/tenants/:id", h.Tenants.Get)
	api.PUT("/tenants/:id", h.Tenants.Update)
	api.DELETE("/tenants/:id", h.Tenants.Delete)

	api.GET("/payments", h.Payments.List)
	api.POST("/payments", h.Payments.Create)
	api.GET("/payments/tenant/:tenantId", h.Payments.ListByTenant)
	api.GET("/payments/:id", h.Payments.Get)
	api.PUT("/payments/:id", h.Payments.Update)
	api.DELETE("/payments/:id", h.Payments.Delete)

	api.GET("/maintenance", h.Maintenance.List)
	api.POST("/maintenance", h.Maintenance.Create)
	api.GET("/maintenance/:id", h.Maintenance.Get)
	api.PUT("/maintenance/:id", h.Maintenance.Update)
	api.DELETE("/maintenance/:id", h.Maintenance.Delete)

	api.GET("/documents", h.Documents.List)
	api.POST("/documents/upload", h.Documents.Upload)
	api.GET("/documents/tenant/:tenantId", h.Documents.ListByTenant)
	api.GET("/documents/:id", h.Documents.Get)
	api.PUT("/documents/:id", h.Documents.Update)
	api.DELETE("/documents/:id", h.Documents.Delete)

	api.GET("/bookings", h.Bookings.List)
	api.POST("/bookings", h.Bookings.Create)
	api.GET("/bookings/:id", h.Bookings.Get)
	api.PUT("/bookings/:id", h.Bookings.Update)
	api.DELETE("/bookings/:id", h.Bookings.Delete)

	api.GET("/dashboard", h.Dashboard.Summary)
	api.GET("/dashboard/income", h.Dashboard.Income)
	api.GET("/reports/tenants", h.Dashboard.TenantReport)
	api.GET("/reports/properties", h.Dashboard.PropertyReport)
}
