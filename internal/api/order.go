package api

import (
	"errors"
	"net/http"

	"dinepos-be/internal/cart"
	"dinepos-be/internal/order"
)

type placeOrderRequest struct {
	Items    []cart.Line        `json:"items"`
	Customer order.CustomerInfo `json:"customer"`
}

type placeOrderResponse struct {
	Order   *order.Order `json:"order"`
	Receipt string       `json:"receipt"`
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var req placeOrderRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	o, err := h.OrderSvc.PlaceOrder(r.Context(), cart.FromLines(req.Items), req.Customer)
	if err != nil {
		writePlacementError(w, err)
		return
	}

	receipt, err := order.RenderReceipt(o)
	if err != nil {
		// Order is committed; a broken receipt should not fail the call.
		receipt = ""
	}

	writeJSON(w, http.StatusCreated, placeOrderResponse{Order: o, Receipt: receipt})
}

func writePlacementError(w http.ResponseWriter, err error) {
	var stockErr *order.InsufficientStockError
	var unknownErr *order.UnknownItemError

	switch {
	case errors.As(err, &stockErr),
		errors.As(err, &unknownErr),
		errors.Is(err, order.ErrTableUnavailable):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, order.ErrEmptyCart),
		errors.Is(err, order.ErrMissingCustomerInfo),
		errors.Is(err, order.ErrTableRequired):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "failed to place order")
	}
}

func (h *Handler) pendingOrders(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	orders, err := h.OrderSvc.PendingOrders(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load pending orders")
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) completeOrder(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	o, err := h.OrderSvc.CompleteOrder(r.Context(), r.PathValue("id"))
	if err != nil {
		var partial *order.PartialWriteError
		switch {
		case errors.As(err, &partial):
			// The order is completed; only the table release failed.
			writeJSON(w, http.StatusOK, map[string]any{
				"order":   o,
				"warning": "order completed, table status not updated",
			})
		case errors.Is(err, order.ErrOrderNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, order.ErrOrderNotPending):
			writeError(w, http.StatusConflict, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to complete order")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"order": o})
}
