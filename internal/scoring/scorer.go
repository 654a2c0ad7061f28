package scoring

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/skadix/skadix/internal/catalog"
)

// ErrInvalidScenario is returned when a scenario outside the known RCP tier
// set reaches the scorer. The catalog is validated at startup, so this is a
// programming-error condition rather than bad user input.
var ErrInvalidScenario = errors.New("invalid climate scenario")

// Risk levels for the comparison view.
const (
	RiskLow    = "Low"
	RiskMedium = "Medium"
	RiskHigh   = "High"
)

// Result holds the derived figures for one weight distribution. Never
// persisted; recomputed on demand.
type Result struct {
	OverallScore            int    `json:"overallScore"`
	RiskLevel               string `json:"riskLevel"`
	EnergyEfficiency        int    `json:"energyEfficiency"`
	InfrastructureReadiness int    `json:"infrastructureReadiness"`
}

// Comparison pairs the fixed baseline result with the user's current one.
type Comparison struct {
	Baseline Result `json:"baseline"`
	Current  Result `json:"current"`
}

// Scorer computes scenario results from normalized weights. Pure and
// deterministic; safe for concurrent use.
type Scorer struct {
	baseline Weights
	logger   *slog.Logger
}

// NewScorer creates a Scorer with the given baseline distribution.
func NewScorer(baseline Weights, logger *slog.Logger) *Scorer {
	return &Scorer{baseline: baseline, logger: logger}
}

// Score derives a Result from a normalized weight set and a climate scenario.
//
// The business rules:
//
//	weightImpact = (infra*0.30 + energy*0.25 + risk*0.20 + socio*0.15 + conn*0.10) / 100
//	overallScore = round(75 * weightImpact * multiplier)   multiplier = 1.1 / 1.0 / 0.9 by tier
//	riskRaw      = (100 - (infra+energy+conn)/3) + tier surcharge (0 / 10 / 20)
//
// The risk ladder is strict greater-than: >80 High, >65 Medium, else Low.
func (s *Scorer) Score(w Weights, scenario catalog.ClimateScenario) (Result, error) {
	var multiplier float64
	var surcharge float64
	switch scenario.RCP {
	case catalog.RCPLow:
		multiplier, surcharge = 1.1, 0
	case catalog.RCPMid:
		multiplier, surcharge = 1.0, 10
	case catalog.RCPHigh:
		multiplier, surcharge = 0.9, 20
	default:
		s.logger.Error("scenario with unknown rcp tier reached scorer",
			"scenario_id", scenario.ID, "rcp", scenario.RCP)
		return Result{}, fmt.Errorf("%w: rcp %q", ErrInvalidScenario, scenario.RCP)
	}

	weightImpact := (float64(w.Infrastructure)*0.30 +
		float64(w.Energy)*0.25 +
		float64(w.Risk)*0.20 +
		float64(w.Socioeconomic)*0.15 +
		float64(w.Connectivity)*0.10) / 100

	infrastructureScore := float64(w.Infrastructure+w.Energy+w.Connectivity) / 3
	riskRaw := (100 - infrastructureScore) + surcharge

	riskLevel := RiskLow
	if riskRaw > 80 {
		riskLevel = RiskHigh
	} else if riskRaw > 65 {
		riskLevel = RiskMedium
	}

	return Result{
		OverallScore:            int(math.Round(75 * weightImpact * multiplier)),
		RiskLevel:               riskLevel,
		EnergyEfficiency:        int(math.Round(85 * float64(w.Energy) / 100)),
		InfrastructureReadiness: int(math.Round(80 * float64(w.Infrastructure) / 100)),
	}, nil
}

// Compare scores the fixed baseline and the caller's current weights as two
// independent calls. The baseline is always evaluated against the
// lowest-emissions catalog scenario; current weights are normalized first.
func (s *Scorer) Compare(current Weights, scenario catalog.ClimateScenario) (Comparison, error) {
	baseline, err := s.Score(s.baseline, catalog.Baseline())
	if err != nil {
		return Comparison{}, err
	}
	cur, err := s.Score(Normalize(current), scenario)
	if err != nil {
		return Comparison{}, err
	}
	return Comparison{Baseline: baseline, Current: cur}, nil
}
