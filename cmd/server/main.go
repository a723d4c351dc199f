package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/rental-property-manager/internal/config"
	"github.com/iliyamo/rental-property-manager/internal/handler"
	"github.com/iliyamo/rental-property-manager/internal/repository"
	"github.com/iliyamo/rental-property-manager/internal/router"
	"github.com/iliyamo/rental-property-manager/internal/store"
)

func main() {
	cfg := config.Load()

	st, err := store.Open(cfg.DataFile)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}

	accounts := repository.NewAccountRepo(st)
	properties := repository.NewPropertyRepo(st)
	tenants := repository.NewTenantRepo(st)
	payments := repository.NewPaymentRepo(st)
	maintenance := repository.NewMaintenanceRepo(st)
	documents := repository.NewDocumentRepo(st, cfg.UploadDir)
	bookings := repository.NewBookingRepo(st)

	h := router.Handlers{
		Auth:        handler.NewAuthHandler(cfg, accounts),
		Properties:  handler.NewPropertyHandler(properties),
		Tenants:     handler.NewTenantHandler(tenants),
		Payments:    handler.NewPaymentHandler(payments, true),
		Maintenance: handler.NewMaintenanceHandler(maintenance),
		Documents:   handler.NewDocumentHandler(documents, cfg.UploadDir),
		Bookings:    handler.NewBookingHandler(bookings),
		Dashboard:   handler.NewDashboardHandler(properties, tenants, payments, documents),
	}

	rdb := config.NewRedisClient() // nil when redis is unreachable; limiter disables itself

	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Static("/uploads", cfg.UploadDir)
	router.RegisterRoutes(e, cfg, accounts, h, rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
