package store

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/skadix/skadix/internal/catalog"
	"github.com/skadix/skadix/internal/scoring"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenarios.json")
	s, err := NewFileStore(path, discardLogger())
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	return s, path
}

func testWeights() scoring.Weights {
	return scoring.Normalize(scoring.Weights{Infrastructure: 40, Energy: 30, Risk: 10, Socioeconomic: 10, Connectivity: 10})
}

func TestSaveAndList(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	rec, err := s.Save(ctx, "Plan A", testWeights(), catalog.Baseline(), 2050, "first plan")
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if rec.ID == "" {
		t.Error("expected generated id")
	}
	if rec.Name != "Plan A" {
		t.Errorf("name = %q, want Plan A", rec.Name)
	}
	if rec.CreatedAt.IsZero() {
		t.Error("expected creation timestamp")
	}

	list, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 scenario, got %d", len(list))
	}
	if list[0].ID != rec.ID {
		t.Errorf("listed id %s, want %s", list[0].ID, rec.ID)
	}
}

func TestSaveEmptyNameDeclined(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"", "   ", "\t\n"} {
		if _, err := s.Save(ctx, name, testWeights(), catalog.Baseline(), 2050, ""); !errors.Is(err, ErrEmptyName) {
			t.Errorf("Save(%q): expected ErrEmptyName, got %v", name, err)
		}
	}

	list, _ := s.List(ctx)
	if len(list) != 0 {
		t.Errorf("collection changed by declined save: %d records", len(list))
	}
}

func TestSaveInvalidHorizon(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.Save(context.Background(), "Plan B", testWeights(), catalog.Baseline(), 2040, "")
	if !errors.Is(err, ErrInvalidHorizon) {
		t.Errorf("expected ErrInvalidHorizon, got %v", err)
	}
}

func TestSavePreservesInsertionOrder(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	names := []string{"first", "second", "third"}
	for _, n := range names {
		if _, err := s.Save(ctx, n, testWeights(), catalog.Baseline(), 2030, ""); err != nil {
			t.Fatalf("Save(%s) failed: %v", n, err)
		}
	}

	list, _ := s.List(ctx)
	if len(list) != len(names) {
		t.Fatalf("expected %d scenarios, got %d", len(names), len(list))
	}
	for i, n := range names {
		if list[i].Name != n {
			t.Errorf("position %d: name = %s, want %s", i, list[i].Name, n)
		}
	}

	// Duplicate names append, they never de-duplicate.
	if _, err := s.Save(ctx, "first", testWeights(), catalog.Baseline(), 2030, ""); err != nil {
		t.Fatalf("duplicate-name Save failed: %v", err)
	}
	list, _ = s.List(ctx)
	if len(list) != 4 {
		t.Errorf("expected 4 scenarios after duplicate name, got %d", len(list))
	}
}

func TestDeleteUnknownIDIsNoop(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	if _, err := s.Save(ctx, "keep", testWeights(), catalog.Baseline(), 2100, ""); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := s.Delete(ctx, "scenario-does-not-exist"); err != nil {
		t.Errorf("Delete of unknown id returned error: %v", err)
	}

	list, _ := s.List(ctx)
	if len(list) != 1 {
		t.Errorf("expected 1 scenario after no-op delete, got %d", len(list))
	}
}

func TestDeleteRemovesRecord(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	a, _ := s.Save(ctx, "a", testWeights(), catalog.Baseline(), 2030, "")
	b, _ := s.Save(ctx, "b", testWeights(), catalog.Baseline(), 2050, "")

	if err := s.Delete(ctx, a.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	list, _ := s.List(ctx)
	if len(list) != 1 || list[0].ID != b.ID {
		t.Errorf("expected only %s to remain, got %d records", b.ID, len(list))
	}
}

func TestReloadRoundTrip(t *testing.T) {
	s, path := newTestStore(t)
	ctx := context.Background()

	scenario, _ := catalog.ClimateScenarioByID("rcp-85")
	saved, err := s.Save(ctx, "Worst case", testWeights(), scenario, 2100, "stress test")
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Simulate a restart: reopen the store from its persisted file.
	reloaded, err := NewFileStore(path, discardLogger())
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	list, err := reloaded.List(ctx)
	if err != nil {
		t.Fatalf("List after reload failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 scenario after reload, got %d", len(list))
	}

	got := list[0]
	if got.ID != saved.ID || got.Name != saved.Name || got.Description != saved.Description {
		t.Errorf("reloaded record %+v does not match saved %+v", got, saved)
	}
	if got.Weights != saved.Weights {
		t.Errorf("weights changed across reload: %+v vs %+v", got.Weights, saved.Weights)
	}
	if got.ClimateScenario != saved.ClimateScenario {
		t.Errorf("embedded scenario changed across reload: %+v vs %+v", got.ClimateScenario, saved.ClimateScenario)
	}
	if got.PlanningHorizon != saved.PlanningHorizon {
		t.Errorf("horizon changed across reload: %d vs %d", got.PlanningHorizon, saved.PlanningHorizon)
	}
	if !got.CreatedAt.Equal(saved.CreatedAt) {
		t.Errorf("timestamp changed across reload: %v vs %v", got.CreatedAt, saved.CreatedAt)
	}
}

func TestCorruptFileFallsBackToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenarios.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	s, err := NewFileStore(path, discardLogger())
	if err != nil {
		t.Fatalf("NewFileStore should not fail on corrupt payload: %v", err)
	}
	list, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("expected empty collection, got %d records", len(list))
	}
}

func TestMissingFileStartsEmpty(t *testing.T) {
	s, _ := newTestStore(t)
	list, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("expected empty collection, got %d records", len(list))
	}
}
