package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/skadix/skadix/internal/config"
	"github.com/skadix/skadix/internal/events"
	"github.com/skadix/skadix/internal/risk"
	"github.com/skadix/skadix/internal/scoring"
	"github.com/skadix/skadix/internal/store"
)

func NewRouter(s store.Store, scorer *scoring.Scorer, sim *risk.Simulator, ev events.Client, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(RateLimitMiddleware(120))

	scenarios := NewScenariosHandler(s, ev, logger)
	scores := NewScoresHandler(scorer, ev, logger)
	shares := NewShareHandler(cfg.Share.BaseURL)
	dashboard := NewDashboardHandler(sim, logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/catalog/climate-scenarios", ClimateScenarios)
		r.Get("/catalog/horizons", Horizons)
		r.Get("/catalog/ports", Ports)
		r.Get("/catalog/dashboard-scenarios", DashboardScenarios)

		r.Post("/score", scores.Score)
		r.Post("/score/compare", scores.Compare)
		r.Post("/predict", scores.Predict)

		r.Get("/scenarios", scenarios.List)
		r.Post("/scenarios", scenarios.Create)
		r.Delete("/scenarios/{id}", scenarios.Delete)

		r.Post("/share", shares.Encode)
		r.Get("/share/{token}", shares.Decode)

		r.Get("/risk", dashboard.Risk)
		r.Get("/report", dashboard.Report)
	})

	return r
}

func NewMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
