package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "records.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "records.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestRecordAndRuns(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	runs := []RunRecord{
		{RunID: "a", Level: 1, Outcome: OutcomeDefeat, DurationMs: 12000, HitsTaken: 5},
		{RunID: "a", Level: 1, Outcome: OutcomeWin, DurationMs: 57000, HitsTaken: 2},
		{RunID: "b", Level: 2, Outcome: OutcomeQuit, DurationMs: 3000},
	}
	for _, r := range runs {
		if _, err := store.Record(ctx, r); err != nil {
			t.Fatalf("Record() failed: %v", err)
		}
	}

	got, err := store.Runs(ctx, "a")
	if err != nil {
		t.Fatalf("Runs() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(got))
	}
	if got[0].Outcome != OutcomeDefeat || got[1].Outcome != OutcomeWin {
		t.Errorf("Runs should keep insertion order, got %s, %s", got[0].Outcome, got[1].Outcome)
	}
	if got[1].HitsTaken != 2 || got[1].DurationMs != 57000 {
		t.Errorf("Unexpected record fields: %+v", got[1])
	}
}

func TestRecordRejectsUnknownOutcome(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.Record(context.Background(), RunRecord{RunID: "x", Level: 1, Outcome: "draw"}); err == nil {
		t.Error("Expected error for unknown outcome")
	}
}

func TestStats(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for _, r := range []RunRecord{
		{RunID: "a", Level: 2, Outcome: OutcomeWin, DurationMs: 60000},
		{RunID: "a", Level: 1, Outcome: OutcomeDefeat, DurationMs: 5000},
		{RunID: "a", Level: 1, Outcome: OutcomeWin, DurationMs: 58000},
		{RunID: "b", Level: 1, Outcome: OutcomeWin, DurationMs: 57000},
		{RunID: "b", Level: 3, Outcome: OutcomeQuit, DurationMs: 1000},
	} {
		if _, err := store.Record(ctx, r); err != nil {
			t.Fatalf("Record() failed: %v", err)
		}
	}

	stats, err := store.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	want := []LevelStats{
		{Level: 1, Attempts: 3, Wins: 2, Defeats: 1, BestTimeMs: 57000},
		{Level: 2, Attempts: 1, Wins: 1, BestTimeMs: 60000},
		{Level: 3, Attempts: 1},
	}
	if len(stats) != len(want) {
		t.Fatalf("Expected %d levels, got %d", len(want), len(stats))
	}
	for i := range want {
		if stats[i] != want[i] {
			t.Errorf("stats[%d] = %+v, want %+v", i, stats[i], want[i])
		}
	}
}

func TestStatsEmpty(t *testing.T) {
	store := openTestStore(t)
	stats, err := store.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if len(stats) != 0 {
		t.Errorf("Expected no stats, got %d", len(stats))
	}
}
