package catalog

import "fmt"

// RCP tiers used by the scoring multiplier. The catalog is fixed; anything
// outside this set is a programming error, not user input.
const (
	RCPLow  = "2.6"
	RCPMid  = "4.5"
	RCPHigh = "8.5"
)

// ClimateScenario is a read-only catalog entry describing an emissions
// pathway. Field names on the wire match what the web client expects.
type ClimateScenario struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	RCP         string `json:"rcp"`
	Description string `json:"description"`
	Year        int    `json:"year"`
}

var climateScenarios = []ClimateScenario{
	{
		ID:          "rcp-26",
		Name:        "RCP 2.6",
		RCP:         RCPLow,
		Description: "Low emissions scenario with strong mitigation",
		Year:        2100,
	},
	{
		ID:          "rcp-45",
		Name:        "RCP 4.5",
		RCP:         RCPMid,
		Description: "Intermediate emissions scenario",
		Year:        2100,
	},
	{
		ID:          "rcp-85",
		Name:        "RCP 8.5",
		RCP:         RCPHigh,
		Description: "High emissions scenario with minimal mitigation",
		Year:        2100,
	},
}

// ClimateScenarios returns the full catalog in display order.
func ClimateScenarios() []ClimateScenario {
	out := make([]ClimateScenario, len(climateScenarios))
	copy(out, climateScenarios)
	return out
}

// ClimateScenarioByID looks up a catalog entry.
func ClimateScenarioByID(id string) (ClimateScenario, bool) {
	for _, s := range climateScenarios {
		if s.ID == id {
			return s, true
		}
	}
	return ClimateScenario{}, false
}

// Baseline returns the scenario the fixed baseline comparison is scored
// against (the lowest-emissions entry).
func Baseline() ClimateScenario {
	return climateScenarios[0]
}

// Validate checks every catalog entry carries a known RCP tier. Run at
// startup so the scorer never sees an unknown tier at request time.
func Validate() error {
	for _, s := range climateScenarios {
		switch s.RCP {
		case RCPLow, RCPMid, RCPHigh:
		default:
			return fmt.Errorf("climate scenario %s: unknown rcp tier %q", s.ID, s.RCP)
		}
	}
	return nil
}

var planningHorizons = []int{2030, 2050, 2100}

// PlanningHorizons returns the selectable target years.
func PlanningHorizons() []int {
	out := make([]int, len(planningHorizons))
	copy(out, planningHorizons)
	return out
}

// ValidHorizon reports whether year is a member of the planning-horizon set.
func ValidHorizon(year int) bool {
	for _, y := range planningHorizons {
		if y == year {
			return true
		}
	}
	return false
}
