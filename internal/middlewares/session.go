package middlewares

import (
	"net/http"
)

// SessionStore reports whether an administrator session is stored
type SessionStore interface {
	// Token returns the stored bearer token or "" when there is none or it expired
	Token() string
}

// SessionRequiredMiddleware rejects requests while no valid administrator token is stored.
// The backend still authorizes every proxied call; this only spares pointless round trips.
func SessionRequiredMiddleware(store SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if store.Token() == "" {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"session expired"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
