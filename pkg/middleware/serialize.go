package middleware

import (
	"net/http"
	"sync"
)

// Serialize lets one request through at a time. Code outside the router
// that touches the same state must hold lock too.
func Serialize(lock sync.Locker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lock.Lock()
			defer lock.Unlock()

			next.ServeHTTP(w, r)
		})
	}
}
