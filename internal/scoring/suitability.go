package scoring

import "math"

// idealSST is the target sea surface temperature for cold-chain suitability.
const idealSST = 18.0

// SuitabilityFeatures are the inputs to the port suitability prediction.
type SuitabilityFeatures struct {
	SST        float64 `json:"sst"`
	ElecCost   float64 `json:"elec_cost"`
	Throughput float64 `json:"throughput"`
}

// Suitability returns a port suitability score: throughput helps, electricity
// cost and distance from the ideal sea surface temperature hurt. Rounded to
// three decimals.
func Suitability(f SuitabilityFeatures) float64 {
	score := 0.5*f.Throughput - 0.3*f.ElecCost - 0.2*math.Abs(f.SST-idealSST)
	return math.Round(score*1000) / 1000
}
