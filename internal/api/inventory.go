package api

import (
	"errors"
	"net/http"

	"dinepos-be/internal/inventory"
)

func (h *Handler) menu(w http.ResponseWriter, r *http.Request) {
	// First load of the ordering screen seeds the default tables.
	if err := h.TableSvc.Bootstrap(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to initialize tables")
		return
	}

	items, categories, err := h.InventorySvc.Menu(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load menu")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"items":      items,
		"categories": categories,
	})
}

func (h *Handler) listInventory(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	items, _, err := h.InventorySvc.Menu(r.Context(), "")
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load inventory")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	var input inventory.NewItemInput
	if err := decode(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.InventorySvc.AddItem(r.Context(), input)
	if err != nil {
		if errors.Is(err, inventory.ErrInvalidItem) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to add item")
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) editItem(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	var input inventory.UpdateItemInput
	if err := decode(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.InventorySvc.EditItem(r.Context(), r.PathValue("id"), input)
	if err != nil {
		switch {
		case errors.Is(err, inventory.ErrInvalidItem):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, inventory.ErrItemNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to update item")
		}
		return
	}

	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	if err := h.InventorySvc.RemoveItem(r.Context(), r.PathValue("id")); err != nil {
		if errors.Is(err, inventory.ErrItemNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete item")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
