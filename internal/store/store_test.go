package store

import (
	"context"
	"testing"

	"github.com/abhisek/adaptiq/internal/matrix"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestScoreRepo_AppendAndReplay(t *testing.T) {
	s := openTestStore(t)
	repo := s.ScoreRepo()
	ctx := context.Background()

	n, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("count (empty): %v", err)
	}
	if n != 0 {
		t.Errorf("count = %d, want 0", n)
	}

	events := []matrix.Observation{
		{Learner: 0, Activity: 2, Score: 1},
		{Learner: 0, Activity: 1, Score: 0.5},
		{Learner: 3, Activity: 0, Score: 0},
	}
	for i, o := range events {
		if err := repo.Append(ctx, o, ""); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := repo.Observations(ctx)
	if err != nil {
		t.Fatalf("observations: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d observations, want 3", len(got))
	}
	// Replay preserves append order.
	for i, o := range got {
		if o.Learner != events[i].Learner || o.Activity != events[i].Activity || o.Score != events[i].Score {
			t.Errorf("observation %d = %+v, want %+v", i, o, events[i])
		}
		if o.Timestamp.IsZero() {
			t.Errorf("observation %d has zero timestamp", i)
		}
	}

	n, err = repo.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 3 {
		t.Errorf("count = %d, want 3", n)
	}
}

func TestScoreRepo_LearnerUID(t *testing.T) {
	s := openTestStore(t)
	repo := s.ScoreRepo()
	ctx := context.Background()

	obs := matrix.Observation{Learner: 1, Activity: 0, Score: 1}
	if err := repo.Append(ctx, obs, "student-42"); err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := s.Client().ScoreEvent.Query().All(ctx)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].LearnerUID != "student-42" {
		t.Errorf("learner_uid = %q, want %q", events[0].LearnerUID, "student-42")
	}
}

func testSnapshotData() ParamsData {
	return ParamsData{
		Guess:   [][]float64{{0.2, 0.5}, {0.5, 0.1}},
		Slip:    [][]float64{{0.1, 0.5}, {0.5, 0.2}},
		Transit: [][]float64{{0.15, 0}, {0, 0.1}},
		Prior:   []float64{0.3, 0.2},
		Mastery: map[int][]float64{0: {0.6, 0.4}},
	}
}

func TestParamsRepo_SaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.ParamsRepo()
	ctx := context.Background()

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	if err := repo.Save(ctx, &ParamSnapshot{Sequence: 42, Data: testSnapshotData()}); err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.Guess[0][0] != 0.2 {
		t.Errorf("guess[0][0] = %v, want 0.2", snap.Data.Guess[0][0])
	}
	if snap.Data.Mastery[0][1] != 0.4 {
		t.Errorf("mastery[0][1] = %v, want 0.4", snap.Data.Mastery[0][1])
	}
}

func TestParamsRepo_Prune(t *testing.T) {
	s := openTestStore(t)
	repo := s.ParamsRepo()
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		if err := repo.Save(ctx, &ParamSnapshot{Sequence: int64(i + 1), Data: testSnapshotData()}); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().ParamSnapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestParamsRepo_PruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.ParamsRepo()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := repo.Save(ctx, &ParamSnapshot{Sequence: int64(i + 1), Data: testSnapshotData()}); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune with keep=5 should be a no-op.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().ParamSnapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	p := matrix.NewParams(2, 2)
	p.Guess.Set(0, 0, 0.2)
	p.Slip.Set(1, 1, 0.3)
	p.Transit.Set(0, 1, 0.1)
	p.Prior = []float64{0.4, 0.5}

	snap := SnapshotFromParams(p, map[int][]float64{3: {0.7, 0.2}}, 9)
	if snap.Sequence != 9 {
		t.Errorf("sequence = %d, want 9", snap.Sequence)
	}

	got, err := ParamsFromSnapshot(snap)
	if err != nil {
		t.Fatalf("from snapshot: %v", err)
	}
	if got.Guess.At(0, 0) != 0.2 {
		t.Errorf("guess(0,0) = %v, want 0.2", got.Guess.At(0, 0))
	}
	if got.Slip.At(1, 1) != 0.3 {
		t.Errorf("slip(1,1) = %v, want 0.3", got.Slip.At(1, 1))
	}
	if got.Transit.At(0, 1) != 0.1 {
		t.Errorf("transit(0,1) = %v, want 0.1", got.Transit.At(0, 1))
	}
	if got.Prior[1] != 0.5 {
		t.Errorf("prior[1] = %v, want 0.5", got.Prior[1])
	}
}

func TestParamsFromSnapshot_Invalid(t *testing.T) {
	data := testSnapshotData()
	data.Guess[0][0] = 1.5
	_, err := ParamsFromSnapshot(&ParamSnapshot{Data: data})
	if err == nil {
		t.Error("expected error for out-of-range guess value")
	}
}

func TestTrainingRepo_AppendAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.TrainingRepo()
	ctx := context.Background()

	run, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if run != nil {
		t.Fatal("expected nil run when none exist")
	}

	err = repo.Append(ctx, TrainingRunData{
		Observations:  120,
		Iterations:    14,
		LogLikelihood: -83.2,
		Converged:     true,
		DurationMs:    250,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	run, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if run == nil {
		t.Fatal("expected non-nil run")
	}
	if run.RunID == "" {
		t.Error("expected generated run id")
	}
	if run.Observations != 120 || run.Iterations != 14 || !run.Converged {
		t.Errorf("run = %+v, want 120 observations, 14 iterations, converged", run)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"score_events", "param_snapshots", "training_runs"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %q: %v", table, err)
			continue
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}
