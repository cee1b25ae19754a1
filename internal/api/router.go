package api

import (
	"net/http"

	"dinepos-be/internal/inventory"
	"dinepos-be/internal/order"
	"dinepos-be/internal/report"
	"dinepos-be/internal/tables"
	"dinepos-be/internal/user"
)

type Handler struct {
	UserSvc      user.Service
	InventorySvc inventory.Service
	OrderSvc     order.Service
	TableSvc     tables.Service
	ReportSvc    report.Service
}

func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/register", h.register)
	mux.HandleFunc("POST /api/login", h.login)

	// Buyer ordering screen
	mux.HandleFunc("GET /api/menu", h.menu)
	mux.HandleFunc("GET /api/tables/free", h.freeTables)
	mux.HandleFunc("POST /api/orders", h.placeOrder)

	// Admin screens
	mux.HandleFunc("GET /api/orders/pending", h.pendingOrders)
	mux.HandleFunc("POST /api/orders/{id}/complete", h.completeOrder)
	mux.HandleFunc("GET /api/inventory", h.listInventory)
	mux.HandleFunc("POST /api/inventory", h.addItem)
	mux.HandleFunc("PUT /api/inventory/{id}", h.editItem)
	mux.HandleFunc("DELETE /api/inventory/{id}", h.deleteItem)
	mux.HandleFunc("GET /api/tables", h.listTables)
	mux.HandleFunc("PUT /api/tables/{id}/status", h.setTableStatus)
	mux.HandleFunc("GET /api/reports/sales", h.salesReport)
	mux.HandleFunc("GET /api/reports/sales.csv", h.salesReportCSV)
	mux.HandleFunc("GET /api/reports/summary", h.summary)

	return mux
}
