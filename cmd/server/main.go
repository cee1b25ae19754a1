package main

import (
	"log"
	"net/http"

	"dinepos-be/internal/api"
	"dinepos-be/internal/config"
	"dinepos-be/internal/db"
	"dinepos-be/internal/inventory"
	"dinepos-be/internal/logger"
	"dinepos-be/internal/middleware"
	"dinepos-be/internal/order"
	"dinepos-be/internal/report"
	"dinepos-be/internal/tables"
	"dinepos-be/internal/user"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo)

	inventoryRepo := inventory.NewRepository(database)
	inventorySvc := inventory.NewService(inventoryRepo)

	tableRepo := tables.NewRepository(database)
	tableSvc := tables.NewService(tableRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo, inventoryRepo, tableRepo)

	reportRepo := report.NewRepository(database)
	reportSvc := report.NewService(reportRepo)

	handler := &api.Handler{
		UserSvc:      userSvc,
		InventorySvc: inventorySvc,
		OrderSvc:     orderSvc,
		TableSvc:     tableSvc,
		ReportSvc:    reportSvc,
	}

	var srv http.Handler = handler.Routes()
	srv = middleware.RateLimitMiddleware(srv)
	srv = middleware.AuthMiddleware(srv)
	srv = logger.LoggingMiddleware(srv)
	srv = logger.RequestIDMiddleware(srv)

	log.Printf("dinepos server running at http://localhost:%s/", cfg.AppPort)
	log.Fatal(http.ListenAndServe(":"+cfg.AppPort, srv))
}
