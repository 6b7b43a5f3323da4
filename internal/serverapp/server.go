package serverapp

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/thedidscuf/GameYoutube/internal/httpmw"
	"github.com/thedidscuf/GameYoutube/internal/studio"
	staticfiles "github.com/thedidscuf/GameYoutube/static"
	"github.com/thedidscuf/GameYoutube/ui/page"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

type Options struct {
	Service       *studio.Service
	Logger        zerolog.Logger
	Gatherer      prometheus.Gatherer
	RateLimiter   *httpmw.IPRateLimiter
	CORSOrigins   []string
	StaticDir     string
	UseDiskStatic bool
}

func NewHandler(opts Options) (http.Handler, error) {
	if opts.Service == nil {
		return nil, errors.New("service is required")
	}
	if strings.TrimSpace(opts.StaticDir) == "" {
		opts.StaticDir = "static"
	}
	if opts.Gatherer == nil {
		opts.Gatherer = prometheus.DefaultGatherer
	}
	if len(opts.CORSOrigins) == 0 {
		opts.CORSOrigins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))

	staticHandler := http.FileServer(http.FS(staticfiles.EmbeddedFS()))
	if opts.UseDiskStatic {
		staticHandler = http.FileServer(http.Dir(opts.StaticDir))
	}
	r.Handle("/static/*", http.StripPrefix("/static/", staticHandler))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"service": "gameyoutube",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if err := opts.Service.Ping(r.Context()); err != nil {
			opts.Logger.Warn().Err(err).Msg("store_not_ready")
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{
				"ok":    false,
				"error": "store unavailable",
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"service": "gameyoutube",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})
	r.Handle("/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))

	api := &apiHandler{svc: opts.Service, log: opts.Logger}
	r.Route("/api", api.routes)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		data, err := api.dashboard(r)
		if err != nil {
			opts.Logger.Error().Err(err).Msg("dashboard_failed")
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		templ.Handler(page.Dashboard(data)).ServeHTTP(w, r)
	})

	return httpmw.Chain(
		r,
		httpmw.WithRequestID,
		httpmw.WithRecover(opts.Logger),
		httpmw.WithAccessLog(opts.Logger),
		httpmw.WithRateLimit(opts.RateLimiter),
	), nil
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
