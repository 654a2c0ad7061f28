// Package risk fabricates dashboard risk figures for a port/scenario pair.
// Nothing here is modeled; the product ships with placeholder data until the
// real hazard pipeline exists.
package risk

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/skadix/skadix/internal/catalog"
)

// Status labels for the fabricated risk index.
const (
	StatusLow    = "Low Risk"
	StatusMedium = "Medium Risk"
	StatusHigh   = "High Risk"
)

// Data is one fabricated risk reading.
type Data struct {
	RiskIndex    int     `json:"riskIndex"`
	SeaLevelRise float64 `json:"seaLevelRise"`
	Status       string  `json:"status"`
	PortID       string  `json:"portId"`
	ScenarioID   string  `json:"scenarioId"`
}

// Simulator produces risk data after an artificial fetch delay. At most one
// background request is in flight: issuing a new one cancels the previous, so
// a stale result can never land after a newer selection (last-write-wins by
// cancellation, not timestamp comparison).
type Simulator struct {
	delay  time.Duration
	logger *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSimulator creates a Simulator with the given fetch delay.
func NewSimulator(delay time.Duration, logger *slog.Logger) *Simulator {
	return &Simulator{delay: delay, logger: logger}
}

// Fetch blocks for the configured delay, then returns a fabricated reading.
// Returns ctx.Err() if the context is cancelled first.
func (s *Simulator) Fetch(ctx context.Context, port catalog.Port, scenario catalog.DashboardScenario) (*Data, error) {
	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
	}
	return generate(port, scenario), nil
}

// Request starts a background fetch and invokes deliver with the result. Any
// prior in-flight request is cancelled first, and a cancelled request never
// delivers.
func (s *Simulator) Request(port catalog.Port, scenario catalog.DashboardScenario, deliver func(*Data)) {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		data, err := s.Fetch(ctx, port, scenario)
		if err != nil {
			s.logger.Debug("risk fetch superseded", "port", port.ID, "scenario", scenario.ID)
			return
		}
		deliver(data)
	}()
}

// Stop cancels any in-flight request and waits for its goroutine to exit.
func (s *Simulator) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()
	s.wg.Wait()
}

// generate fabricates a reading: risk index 1..95, sea level rise 0.5..2.5 m,
// status ladder at 70 and 40.
func generate(port catalog.Port, scenario catalog.DashboardScenario) *Data {
	riskIndex := rand.Intn(95) + 1
	seaLevelRise := rand.Float64()*2 + 0.5

	status := StatusLow
	if riskIndex >= 70 {
		status = StatusHigh
	} else if riskIndex >= 40 {
		status = StatusMedium
	}

	return &Data{
		RiskIndex:    riskIndex,
		SeaLevelRise: seaLevelRise,
		Status:       status,
		PortID:       port.ID,
		ScenarioID:   scenario.ID,
	}
}
