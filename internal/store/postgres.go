package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/skadix/skadix/internal/catalog"
	"github.com/skadix/skadix/internal/scoring"
)

// PostgresStore is the database-backed Store for deployments that outgrow the
// single-file slot. Same contract as FileStore: whole records, insertion
// order, immutable once saved.
type PostgresStore struct {
	pool *pgxpool.Pool
}

const scenarioSchema = `
CREATE TABLE IF NOT EXISTS skadix_scenarios (
	position         BIGSERIAL PRIMARY KEY,
	id               TEXT NOT NULL UNIQUE,
	name             TEXT NOT NULL,
	weights          JSONB NOT NULL,
	climate_scenario JSONB NOT NULL,
	planning_horizon INT NOT NULL,
	description      TEXT NOT NULL DEFAULT '',
	created_at       TIMESTAMPTZ NOT NULL
)`

func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if _, err := pool.Exec(ctx, scenarioSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensure scenario table: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) List(ctx context.Context) ([]*SavedScenario, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, weights, climate_scenario, planning_horizon, description, created_at
		FROM skadix_scenarios ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list scenarios: %w", err)
	}
	defer rows.Close()

	var out []*SavedScenario
	for rows.Next() {
		rec := &SavedScenario{}
		var weightsJSON, scenarioJSON []byte
		if err := rows.Scan(&rec.ID, &rec.Name, &weightsJSON, &scenarioJSON,
			&rec.PlanningHorizon, &rec.Description, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan scenario: %w", err)
		}
		if err := json.Unmarshal(weightsJSON, &rec.Weights); err != nil {
			return nil, fmt.Errorf("decode weights: %w", err)
		}
		if err := json.Unmarshal(scenarioJSON, &rec.ClimateScenario); err != nil {
			return nil, fmt.Errorf("decode climate scenario: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *PostgresStore) Save(ctx context.Context, name string, weights scoring.Weights, scenario catalog.ClimateScenario, horizon int, description string) (*SavedScenario, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if !catalog.ValidHorizon(horizon) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidHorizon, horizon)
	}

	rec := &SavedScenario{
		ID:              "scenario-" + uuid.NewString(),
		Name:            name,
		Weights:         weights,
		ClimateScenario: scenario,
		PlanningHorizon: horizon,
		Description:     description,
		CreatedAt:       time.Now().UTC(),
	}
	weightsJSON, _ := json.Marshal(rec.Weights)
	scenarioJSON, _ := json.Marshal(rec.ClimateScenario)

	_, err := s.pool.Exec(ctx, `
		INSERT INTO skadix_scenarios (id, name, weights, climate_scenario, planning_horizon, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		rec.ID, rec.Name, weightsJSON, scenarioJSON, rec.PlanningHorizon, rec.Description, rec.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("save scenario: %w", err)
	}
	return rec, nil
}

func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM skadix_scenarios WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete scenario: %w", err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
