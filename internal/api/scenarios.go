package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/skadix/skadix/internal/catalog"
	"github.com/skadix/skadix/internal/events"
	"github.com/skadix/skadix/internal/scoring"
	"github.com/skadix/skadix/internal/store"
)

type ScenariosHandler struct {
	store  store.Store
	events events.Client
	logger *slog.Logger
}

func NewScenariosHandler(s store.Store, ev events.Client, logger *slog.Logger) *ScenariosHandler {
	return &ScenariosHandler{store: s, events: ev, logger: logger}
}

type CreateScenarioRequest struct {
	Name            string          `json:"name"`
	Weights         scoring.Weights `json:"weights"`
	ScenarioID      string          `json:"scenarioId"`
	PlanningHorizon int             `json:"planningHorizon"`
	Description     string          `json:"description,omitempty"`
}

func (h *ScenariosHandler) List(w http.ResponseWriter, r *http.Request) {
	scenarios, err := h.store.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if scenarios == nil {
		scenarios = []*store.SavedScenario{}
	}
	writeJSON(w, http.StatusOK, scenarios)
}

func (h *ScenariosHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if err := req.Weights.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	scenario, ok := catalog.ClimateScenarioByID(req.ScenarioID)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown climate scenario"})
		return
	}

	// Stored weights are always the normalized snapshot.
	rec, err := h.store.Save(r.Context(), req.Name, scoring.Normalize(req.Weights), scenario, req.PlanningHorizon, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEmptyName), errors.Is(err, store.ErrInvalidHorizon):
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		default:
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return
	}

	scenariosSaved.Inc()
	if h.events != nil {
		_ = h.events.Publish(events.SubjectScenarioSaved(rec.ID), events.ScenarioSavedEvent{
			ScenarioID:      rec.ID,
			Name:            rec.Name,
			ClimateScenario: rec.ClimateScenario.ID,
			PlanningHorizon: rec.PlanningHorizon,
			CreatedAt:       rec.CreatedAt,
		})
	}

	writeJSON(w, http.StatusCreated, rec)
}

func (h *ScenariosHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.store.Delete(r.Context(), id); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	if h.events != nil {
		_ = h.events.Publish(events.SubjectScenarioDeleted(id), events.ScenarioDeletedEvent{ScenarioID: id})
	}

	w.WriteHeader(http.StatusNoContent)
}
