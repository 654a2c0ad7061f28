package api

import (
	"net/http"

	"github.com/skadix/skadix/internal/catalog"
)

// Catalog endpoints serve fixed reference data; no handler state needed.

func ClimateScenarios(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, catalog.ClimateScenarios())
}

func Horizons(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, catalog.PlanningHorizons())
}

func Ports(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Ports())
}

func DashboardScenarios(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, catalog.DashboardScenarios())
}
