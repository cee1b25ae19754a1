package api

import (
	"errors"
	"net/http"

	"dinepos-be/internal/tables"
)

func (h *Handler) freeTables(w http.ResponseWriter, r *http.Request) {
	list, err := h.TableSvc.ListFree(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load tables")
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handler) listTables(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	list, err := h.TableSvc.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load tables")
		return
	}
	writeJSON(w, http.StatusOK, list)
}

type setTableStatusRequest struct {
	Status tables.Status `json:"status"`
}

func (h *Handler) setTableStatus(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	var req setTableStatusRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	t, err := h.TableSvc.SetStatus(r.Context(), r.PathValue("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, tables.ErrInvalidStatus):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, tables.ErrTableNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to update table")
		}
		return
	}

	writeJSON(w, http.StatusOK, t)
}
