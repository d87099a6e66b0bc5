package requestid

import (
	"net/http"

	"github.com/google/uuid"

	"komek/pkg/requestcontext"
)

// Header is the inbound/outbound correlation ID header.
const Header = "X-Request-ID"

// Middleware propagates the caller's correlation ID, generating one when
// absent, and echoes it on the response.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(Header)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx := requestcontext.WithRequestID(r.Context(), requestID)
		w.Header().Set(Header, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
