package middleware

import (
	"net/http"

	"github.com/google/uuid"
)

// RequestID assigns an ID to requests that arrive without one. The ID is
// written onto the inbound request too, so error responses built from
// r.Header always see it.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
			r.Header.Set("X-Request-ID", id)
		}
		w.Header().Set("X-Request-ID", id)

		next.ServeHTTP(w, r)
	})
}
