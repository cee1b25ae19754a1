package api

import (
	"encoding/json"
	"net/http"

	"dinepos-be/internal/utils"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func decode(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

// requireAdmin gates staff-only routes on the role the auth middleware put
// into context.
func requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	if utils.GetUserRoleFromContext(r.Context()) != "admin" {
		writeError(w, http.StatusForbidden, "admin access required")
		return false
	}
	return true
}
