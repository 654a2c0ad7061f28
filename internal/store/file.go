package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/skadix/skadix/internal/catalog"
	"github.com/skadix/skadix/internal/scoring"
)

// FileStore keeps the collection in a single JSON file, the server-side
// analog of the product's one localStorage slot. Every mutation rewrites the
// whole file.
type FileStore struct {
	path   string
	logger *slog.Logger

	mu        sync.Mutex
	scenarios []*SavedScenario
}

// NewFileStore loads the collection from path. A missing file starts empty; a
// corrupt file is logged and treated as empty rather than failing startup.
func NewFileStore(path string, logger *slog.Logger) (*FileStore, error) {
	s := &FileStore{path: path, logger: logger}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read scenario store: %w", err)
	}

	if err := json.Unmarshal(data, &s.scenarios); err != nil {
		logger.Warn("stored scenarios unparseable, starting with empty collection",
			"path", path, "error", err)
		s.scenarios = nil
	}
	return s, nil
}

func (s *FileStore) List(_ context.Context) ([]*SavedScenario, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*SavedScenario, len(s.scenarios))
	copy(out, s.scenarios)
	return out, nil
}

func (s *FileStore) Save(_ context.Context, name string, weights scoring.Weights, scenario catalog.ClimateScenario, horizon int, description string) (*SavedScenario, error) {
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

	s.mu.Lock()
	defer s.mu.Unlock()

	s.scenarios = append(s.scenarios, rec)
	if err := s.persist(); err != nil {
		s.scenarios = s.scenarios[:len(s.scenarios)-1]
		return nil, err
	}
	return rec, nil
}

func (s *FileStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, rec := range s.scenarios {
		if rec.ID == id {
			s.scenarios = append(s.scenarios[:i], s.scenarios[i+1:]...)
			return s.persist()
		}
	}
	return nil
}

func (s *FileStore) Close() error { return nil }

// persist rewrites the whole collection. Caller holds s.mu. Written to a temp
// file and renamed so a crash mid-write cannot corrupt the existing payload.
func (s *FileStore) persist() error {
	records := s.scenarios
	if records == nil {
		records = []*SavedScenario{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode scenarios: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".scenarios-*")
	if err != nil {
		return fmt.Errorf("write scenario store: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write scenario store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write scenario store: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write scenario store: %w", err)
	}
	return nil
}
