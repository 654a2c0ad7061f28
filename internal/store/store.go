package store

import (
	"context"
	"errors"
	"time"

	"github.com/skadix/skadix/internal/catalog"
	"github.com/skadix/skadix/internal/scoring"
)

var (
	// ErrEmptyName rejects a save with a blank or whitespace-only name. The
	// caller declines the operation; nothing is persisted.
	ErrEmptyName = errors.New("scenario name is empty")

	// ErrInvalidHorizon rejects a planning horizon outside the catalog set.
	ErrInvalidHorizon = errors.New("planning horizon not in catalog")
)

// SavedScenario is one named scenario configuration. Records are immutable
// once saved: loading one copies its fields into the live editing state, it
// never mutates the stored record. The embedded climate scenario is a full
// copy, not a catalog reference.
type SavedScenario struct {
	ID              string                  `json:"id"`
	Name            string                  `json:"name"`
	Weights         scoring.Weights         `json:"weights"`
	ClimateScenario catalog.ClimateScenario `json:"editosScenario"`
	PlanningHorizon int                     `json:"planningHorizon"`
	Description     string                  `json:"description,omitempty"`
	CreatedAt       time.Time               `json:"createdAt"`
}

// Store owns the saved-scenario collection. Implementations persist the whole
// collection on every mutation; there is no incremental append.
type Store interface {
	// List returns the collection in insertion order. A missing or
	// unparseable backing payload yields an empty collection, not an error.
	List(ctx context.Context) ([]*SavedScenario, error)

	// Save appends a new record and persists immediately. The weights are
	// stored as given; normalize before calling. Returns ErrEmptyName for a
	// blank name and ErrInvalidHorizon for a horizon outside the catalog.
	Save(ctx context.Context, name string, weights scoring.Weights, scenario catalog.ClimateScenario, horizon int, description string) (*SavedScenario, error)

	// Delete removes the record with the given id and persists immediately.
	// Deleting an unknown id is a no-op, not an error.
	Delete(ctx context.Context, id string) error

	Close() error
}
