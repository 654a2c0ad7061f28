package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/skadix/skadix/internal/catalog"
	"github.com/skadix/skadix/internal/scoring"
	"github.com/skadix/skadix/internal/share"
)

type ShareHandler struct {
	baseURL string
}

func NewShareHandler(baseURL string) *ShareHandler {
	return &ShareHandler{baseURL: baseURL}
}

type EncodeShareRequest struct {
	Weights         scoring.Weights `json:"weights"`
	ScenarioID      string          `json:"scenarioId"`
	PlanningHorizon int             `json:"planningHorizon"`
}

type EncodeShareResponse struct {
	Token string `json:"token"`
	URL   string `json:"url"`
}

func (h *ShareHandler) Encode(w http.ResponseWriter, r *http.Request) {
	var req EncodeShareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if _, ok := catalog.ClimateScenarioByID(req.ScenarioID); !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown climate scenario"})
		return
	}
	if !catalog.ValidHorizon(req.PlanningHorizon) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "planning horizon not in catalog"})
		return
	}

	token := share.EncodeToken(scoring.Normalize(req.Weights), req.ScenarioID, req.PlanningHorizon)
	u, err := share.URL(h.baseURL, token)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, EncodeShareResponse{Token: token, URL: u})
}

func (h *ShareHandler) Decode(w http.ResponseWriter, r *http.Request) {
	payload, err := share.DecodeToken(chi.URLParam(r, "token"))
	if err != nil {
		if errors.Is(err, share.ErrRestoreFailed) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "malformed share token"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, payload)
}
