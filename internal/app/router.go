package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/vantage-invest/vantage-admin/internal/auth"
	"github.com/vantage-invest/vantage-admin/internal/dashboard"
	"github.com/vantage-invest/vantage-admin/internal/observability"
	"github.com/vantage-invest/vantage-admin/internal/profile"
	"github.com/vantage-invest/vantage-admin/internal/rbac"
	"github.com/vantage-invest/vantage-admin/internal/shared"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger         *slog.Logger
	Config         *Config
	SessionManager *shared.SessionManager

	AuthHandler        *auth.Handler
	DashboardHandler   *dashboard.Handler
	ProfileHandler     *profile.Handler
	PermissionsHandler *rbac.Handler
	RBACMiddleware     rbac.Middleware
	Metrics            *observability.Metrics
}

// NewRouter constructs the chi.Router with application defaults.
//
// The dashboard and profile groups carry no authorization middleware; that
// gap is a known property of this surface. RBACMiddleware is available for
// deployments that choose to gate them.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:         params.Logger,
		Config:         params.Config,
		SessionManager: params.SessionManager,
		Metrics:        params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/auth", params.AuthHandler.MountRoutes)
	r.Route("/dashboard", params.DashboardHandler.MountRoutes)
	r.Route("/profile", params.ProfileHandler.MountRoutes)
	r.Route("/permissions", params.PermissionsHandler.MountRoutes)

	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	return r
}
