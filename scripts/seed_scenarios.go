// seed_scenarios.go — standalone script to seed sample saved scenarios via the SkadiX API.
//
// Usage:
//
//	go run scripts/seed_scenarios.go -api http://localhost:8620
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
)

type scenarioSeed struct {
	Name            string         `json:"name"`
	Weights         map[string]int `json:"weights"`
	ScenarioID      string         `json:"scenarioId"`
	PlanningHorizon int            `json:"planningHorizon"`
	Description     string         `json:"description,omitempty"`
}

var seeds = []scenarioSeed{
	{
		Name:            "Balanced baseline",
		Weights:         map[string]int{"infrastructure": 30, "energy": 25, "risk": 20, "socioeconomic": 15, "connectivity": 10},
		ScenarioID:      "rcp-26",
		PlanningHorizon: 2030,
		Description:     "Default weighting under the optimistic emissions pathway.",
	},
	{
		Name:            "Infrastructure-first",
		Weights:         map[string]int{"infrastructure": 50, "energy": 20, "risk": 10, "socioeconomic": 10, "connectivity": 10},
		ScenarioID:      "rcp-45",
		PlanningHorizon: 2050,
		Description:     "Heavy emphasis on port infrastructure readiness.",
	},
	{
		Name:            "Worst-case stress test",
		Weights:         map[string]int{"infrastructure": 20, "energy": 20, "risk": 40, "socioeconomic": 10, "connectivity": 10},
		ScenarioID:      "rcp-85",
		PlanningHorizon: 2100,
		Description:     "Risk-dominated weighting under the high-emissions pathway.",
	},
}

func main() {
	apiURL := flag.String("api", "http://localhost:8620", "SkadiX API base URL")
	dryRun := flag.Bool("dry-run", false, "print scenarios without posting")
	flag.Parse()

	if *dryRun {
		for i, s := range seeds {
			fmt.Printf("[%d] %s (scenario=%s, horizon=%d)\n", i+1, s.Name, s.ScenarioID, s.PlanningHorizon)
		}
		return
	}

	client := &http.Client{}
	created, skipped := 0, 0
	for _, s := range seeds {
		body, _ := json.Marshal(s)
		req, err := http.NewRequest("POST", *apiURL+"/api/v1/scenarios", bytes.NewReader(body))
		if err != nil {
			log.Printf("skip %q: %v", s.Name, err)
			skipped++
			continue
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			log.Printf("skip %q: %v", s.Name, err)
			skipped++
			continue
		}
		resp.Body.Close()

		if resp.StatusCode == http.StatusCreated {
			created++
		} else {
			log.Printf("skip %q: status %d", s.Name, resp.StatusCode)
			skipped++
		}
	}

	log.Printf("done: %d created, %d skipped", created, skipped)
}
