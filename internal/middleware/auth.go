package middleware

import (
	"net/http"
	"strings"

	"dinepos-be/internal/user"
	"dinepos-be/internal/utils"
)

// AuthMiddleware parses the bearer token, if any, and stores the caller's
// identity in the request context. Requests without a valid token pass
// through anonymous; role checks happen at the handler.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := user.ParseJWT(tokenStr)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := utils.SetUserContext(r.Context(), claims.UserID, claims.Email, claims.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
