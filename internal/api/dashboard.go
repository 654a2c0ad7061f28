package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/skadix/skadix/internal/catalog"
	"github.com/skadix/skadix/internal/risk"
)

type DashboardHandler struct {
	sim    *risk.Simulator
	logger *slog.Logger
}

func NewDashboardHandler(sim *risk.Simulator, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{sim: sim, logger: logger}
}

// Risk serves the dashboard's fabricated reading for a port/scenario pair.
// The fetch is tied to the request context: a client that navigates away
// cancels it, and no stale result is produced.
func (h *DashboardHandler) Risk(w http.ResponseWriter, r *http.Request) {
	port, scenario, ok := h.selection(w, r)
	if !ok {
		return
	}

	data, err := h.sim.Fetch(r.Context(), port, scenario)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, data)
}

type ReportResponse struct {
	Port         string  `json:"port"`
	Country      string  `json:"country"`
	Scenario     string  `json:"scenario"`
	Year         int     `json:"year"`
	SeaLevelRise float64 `json:"seaLevelRise"`
	FloodRisk    int     `json:"floodRisk"`
	Status       string  `json:"status"`
	Note         string  `json:"note"`
}

// Report is the JSON form of the dashboard's summary view.
func (h *DashboardHandler) Report(w http.ResponseWriter, r *http.Request) {
	port, scenario, ok := h.selection(w, r)
	if !ok {
		return
	}

	data, err := h.sim.Fetch(r.Context(), port, scenario)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, ReportResponse{
		Port:         port.Name,
		Country:      port.Country,
		Scenario:     scenario.Name,
		Year:         scenario.Year,
		SeaLevelRise: data.SeaLevelRise,
		FloodRisk:    data.RiskIndex,
		Status:       data.Status,
		Note:         "Figures are placeholder data, not a hazard model output.",
	})
}

func (h *DashboardHandler) selection(w http.ResponseWriter, r *http.Request) (catalog.Port, catalog.DashboardScenario, bool) {
	port, ok := catalog.PortByID(r.URL.Query().Get("port"))
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown port"})
		return catalog.Port{}, catalog.DashboardScenario{}, false
	}
	scenario, ok := catalog.DashboardScenarioByID(r.URL.Query().Get("scenario"))
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown scenario"})
		return catalog.Port{}, catalog.DashboardScenario{}, false
	}
	return port, scenario, true
}
