package events

import "time"

// ScenarioSavedEvent is published after a scenario is persisted.
type ScenarioSavedEvent struct {
	ScenarioID      string    `json:"scenario_id"`
	Name            string    `json:"name"`
	ClimateScenario string    `json:"climate_scenario"`
	PlanningHorizon int       `json:"planning_horizon"`
	CreatedAt       time.Time `json:"created_at"`
}

// ScenarioDeletedEvent is published after a scenario is removed.
type ScenarioDeletedEvent struct {
	ScenarioID string `json:"scenario_id"`
}

// ScoreComputedEvent is published for each comparison request.
type ScoreComputedEvent struct {
	ClimateScenario string `json:"climate_scenario"`
	OverallScore    int    `json:"overall_score"`
	RiskLevel       string `json:"risk_level"`
}
