package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/skadix/skadix/internal/catalog"
	"github.com/skadix/skadix/internal/events"
	"github.com/skadix/skadix/internal/scoring"
)

type ScoresHandler struct {
	scorer *scoring.Scorer
	events events.Client
	logger *slog.Logger
}

func NewScoresHandler(scorer *scoring.Scorer, ev events.Client, logger *slog.Logger) *ScoresHandler {
	return &ScoresHandler{scorer: scorer, events: ev, logger: logger}
}

type ScoreRequest struct {
	Weights    scoring.Weights `json:"weights"`
	ScenarioID string          `json:"scenarioId"`
}

type ScoreResponse struct {
	Weights scoring.Weights `json:"weights"`
	Result  scoring.Result  `json:"result"`
}

// Score evaluates a single weight distribution. Weights are normalized before
// scoring; the response echoes the normalized snapshot.
func (h *ScoresHandler) Score(w http.ResponseWriter, r *http.Request) {
	req, scenario, ok := h.decodeScoreRequest(w, r)
	if !ok {
		return
	}

	normalized := scoring.Normalize(req.Weights)
	result, err := h.scorer.Score(normalized, scenario)
	if err != nil {
		// Catalog validation at startup makes this unreachable for
		// catalog-sourced scenarios.
		h.logger.Error("scoring failed", "scenario", scenario.ID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "scoring failed"})
		return
	}

	writeJSON(w, http.StatusOK, ScoreResponse{Weights: normalized, Result: result})
}

// Compare runs the baseline and the caller's distribution side by side.
func (h *ScoresHandler) Compare(w http.ResponseWriter, r *http.Request) {
	req, scenario, ok := h.decodeScoreRequest(w, r)
	if !ok {
		return
	}

	cmp, err := h.scorer.Compare(req.Weights, scenario)
	if err != nil {
		h.logger.Error("comparison failed", "scenario", scenario.ID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "scoring failed"})
		return
	}

	scoresComputed.Inc()
	if h.events != nil {
		_ = h.events.Publish(events.SubjectScoreComputed, events.ScoreComputedEvent{
			ClimateScenario: scenario.ID,
			OverallScore:    cmp.Current.OverallScore,
			RiskLevel:       cmp.Current.RiskLevel,
		})
	}

	writeJSON(w, http.StatusOK, cmp)
}

func (h *ScoresHandler) decodeScoreRequest(w http.ResponseWriter, r *http.Request) (ScoreRequest, catalog.ClimateScenario, bool) {
	var req ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return req, catalog.ClimateScenario{}, false
	}
	if err := req.Weights.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return req, catalog.ClimateScenario{}, false
	}
	scenario, ok := catalog.ClimateScenarioByID(req.ScenarioID)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown climate scenario"})
		return req, catalog.ClimateScenario{}, false
	}
	return req, scenario, true
}

// Predict returns the cold-chain suitability score for raw port features.
func (h *ScoresHandler) Predict(w http.ResponseWriter, r *http.Request) {
	var features scoring.SuitabilityFeatures
	if err := json.NewDecoder(r.Body).Decode(&features); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]float64{"score": scoring.Suitability(features)})
}
