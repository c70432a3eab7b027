package http

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"weddingrsvp/internal/delivery/http/controllers"
	"weddingrsvp/internal/delivery/http/middleware"
	"weddingrsvp/internal/domain"
)

// RouterConfig holds what NewRouter needs to mount the application routes.
type RouterConfig struct {
	Logger         *slog.Logger
	RSVP           *controllers.RSVPController
	Admin          *controllers.AdminController
	Authorizer     domain.AdminAuthorizer
	Gatherer       prometheus.Gatherer
	AllowedOrigins []string
}

// NewRouter initializes the HTTP router with all application routes, wrapped
// in CORS and request logging.
func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()
	requireAdmin := middleware.RequireAdmin(cfg.Authorizer, cfg.Logger)

	// Guest form
	mux.HandleFunc("POST /rsvps", cfg.RSVP.Submit)

	// Admin
	mux.HandleFunc("POST /admin/login", cfg.Admin.Login)
	mux.HandleFunc("GET /admin/stats", cfg.Admin.GetStats)
	mux.HandleFunc("GET /admin/rsvps", requireAdmin(cfg.Admin.ListRSVPs))
	mux.HandleFunc("GET /admin/rsvps/export.csv", requireAdmin(cfg.Admin.ExportRSVPs))

	// Ops
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	if cfg.Gatherer != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return middleware.LoggingMiddleware(cfg.Logger, middleware.CORS(cfg.AllowedOrigins, mux))
}
