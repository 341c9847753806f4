package middleware

import (
	"io"
	"net/http"
)

// DefaultMaxBodyBytes caps write payloads; sets, events and profiles are tiny.
const DefaultMaxBodyBytes int64 = 1 << 20

// LimitAndDrainRequest caps the request body at maxBodyBytes and, once the
// handler is done, drains and closes whatever is left of it so the
// connection can be reused.
func LimitAndDrainRequest(maxBodyBytes int64) func(next http.Handler) http.Handler {
	if maxBodyBytes <= 0 {
		maxBodyBytes = DefaultMaxBodyBytes
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil && r.Body != http.NoBody {
				r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
			}

			next.ServeHTTP(w, r)

			if r.Body != nil {
				_, _ = io.Copy(io.Discard, r.Body)
				_ = r.Body.Close()
			}
		})
	}
}
