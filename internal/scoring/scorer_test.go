package scoring

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/skadix/skadix/internal/catalog"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testScorer() *Scorer {
	return NewScorer(DefaultBaseline(), discardLogger())
}

func mustScenario(t *testing.T, id string) catalog.ClimateScenario {
	t.Helper()
	s, ok := catalog.ClimateScenarioByID(id)
	if !ok {
		t.Fatalf("catalog scenario %s missing", id)
	}
	return s
}

func TestScoreBaselineReference(t *testing.T) {
	// Reference vector: baseline weights against the lowest-emissions
	// scenario. weightImpact = 0.2275, multiplier = 1.1,
	// overall = round(75*0.2275*1.1) = 19.
	r, err := testScorer().Score(DefaultBaseline(), mustScenario(t, "rcp-26"))
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}

	if r.OverallScore != 19 {
		t.Errorf("overall score = %d, want 19", r.OverallScore)
	}
	if r.EnergyEfficiency != 21 {
		t.Errorf("energy efficiency = %d, want 21", r.EnergyEfficiency)
	}
	if r.InfrastructureReadiness != 24 {
		t.Errorf("infrastructure readiness = %d, want 24", r.InfrastructureReadiness)
	}
	// infraScore = (30+25+10)/3 = 21.67, riskRaw = 78.33, no surcharge
	if r.RiskLevel != RiskMedium {
		t.Errorf("risk level = %s, want %s", r.RiskLevel, RiskMedium)
	}
}

func TestScoreMultiplierPerTier(t *testing.T) {
	tests := []struct {
		scenarioID  string
		wantOverall int
	}{
		{"rcp-26", 19}, // 75 * 0.2275 * 1.1 = 18.77
		{"rcp-45", 17}, // 75 * 0.2275 * 1.0 = 17.06
		{"rcp-85", 15}, // 75 * 0.2275 * 0.9 = 15.36
	}

	for _, tt := range tests {
		t.Run(tt.scenarioID, func(t *testing.T) {
			r, err := testScorer().Score(DefaultBaseline(), mustScenario(t, tt.scenarioID))
			if err != nil {
				t.Fatalf("Score failed: %v", err)
			}
			if r.OverallScore != tt.wantOverall {
				t.Errorf("overall score = %d, want %d", r.OverallScore, tt.wantOverall)
			}
		})
	}
}

func TestScoreRiskLadder(t *testing.T) {
	tests := []struct {
		name       string
		weights    Weights
		scenarioID string
		want       string
	}{
		// infraScore = (10+10+10)/3 = 10, riskRaw = 90 + 20 surcharge
		{"high under worst tier", Weights{Infrastructure: 10, Energy: 10, Risk: 35, Socioeconomic: 35, Connectivity: 10}, "rcp-85", RiskHigh},
		// infraScore = 60, riskRaw = 40
		{"low with strong infrastructure", Weights{Infrastructure: 60, Energy: 60, Risk: 0, Socioeconomic: 0, Connectivity: 60}, "rcp-26", RiskLow},
		// infraScore = 30, riskRaw = 70 + 10 = 80: strictly greater than 80 is
		// required for High, so exactly 80 stays Medium.
		{"boundary at exactly 80", Weights{Infrastructure: 30, Energy: 30, Risk: 5, Socioeconomic: 5, Connectivity: 30}, "rcp-45", RiskMedium},
		// infraScore = 35, riskRaw = 65 exactly: > 65 required for Medium.
		{"boundary at exactly 65", Weights{Infrastructure: 35, Energy: 35, Risk: 0, Socioeconomic: 0, Connectivity: 35}, "rcp-26", RiskLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := testScorer().Score(tt.weights, mustScenario(t, tt.scenarioID))
			if err != nil {
				t.Fatalf("Score failed: %v", err)
			}
			if r.RiskLevel != tt.want {
				t.Errorf("risk level = %s, want %s", r.RiskLevel, tt.want)
			}
		})
	}
}

func TestScoreDeterministic(t *testing.T) {
	w := Normalize(Weights{Infrastructure: 44, Energy: 18, Risk: 9, Socioeconomic: 27, Connectivity: 2})
	sc := mustScenario(t, "rcp-45")

	a, err := testScorer().Score(w, sc)
	if err != nil {
		t.Fatalf("first Score failed: %v", err)
	}
	b, err := testScorer().Score(w, sc)
	if err != nil {
		t.Fatalf("second Score failed: %v", err)
	}
	if a != b {
		t.Errorf("identical inputs produced %+v and %+v", a, b)
	}
}

func TestScoreUnknownTier(t *testing.T) {
	bad := catalog.ClimateScenario{ID: "rcp-60", Name: "RCP 6.0", RCP: "6.0"}
	_, err := testScorer().Score(DefaultBaseline(), bad)
	if !errors.Is(err, ErrInvalidScenario) {
		t.Errorf("expected ErrInvalidScenario, got %v", err)
	}
}

func TestCompareIndependentCalls(t *testing.T) {
	// Skewed current weights must not disturb the baseline side.
	cmp, err := testScorer().Compare(Weights{Infrastructure: 100}, mustScenario(t, "rcp-85"))
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}

	if cmp.Baseline.OverallScore != 19 {
		t.Errorf("baseline overall = %d, want 19", cmp.Baseline.OverallScore)
	}
	// current normalizes to infrastructure=100: impact = 0.30,
	// overall = round(75*0.30*0.9) = 20
	if cmp.Current.OverallScore != 20 {
		t.Errorf("current overall = %d, want 20", cmp.Current.OverallScore)
	}
	if cmp.Current.InfrastructureReadiness != 80 {
		t.Errorf("current readiness = %d, want 80", cmp.Current.InfrastructureReadiness)
	}
	if cmp.Current.EnergyEfficiency != 0 {
		t.Errorf("current efficiency = %d, want 0", cmp.Current.EnergyEfficiency)
	}
}
