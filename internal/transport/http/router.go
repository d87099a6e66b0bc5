// Package httptransport assembles the HTTP surface: middleware chain,
// module handlers and operational endpoints. Handlers stay thin and
// delegate to services; business rules never live here.
package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	apphandler "komek/internal/application/handler"
	audithandler "komek/internal/audit/handler"
	consenthandler "komek/internal/consent/handler"
	"komek/pkg/platform/middleware/auth"
	"komek/pkg/platform/middleware/metadata"
	"komek/pkg/platform/middleware/requestid"
	"komek/pkg/platform/middleware/requesttime"
)

// Deps carries everything the router mounts.
type Deps struct {
	Applications *apphandler.Handler
	Consents     *consenthandler.Handler
	Audit        *audithandler.Handler
	Validator    auth.TokenValidator
	Logger       *slog.Logger
}

// NewRouter wires the middleware chain and every module's endpoints.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(requestid.Middleware)
	r.Use(requesttime.Middleware)
	r.Use(metadata.ClientMetadata)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(d.Validator, d.Logger))

		d.Applications.Register(r)
		d.Consents.Register(r)
		d.Audit.Register(r)
	})

	return r
}
