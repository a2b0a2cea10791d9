package storage

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "nested", "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenAppliesMigrations(t *testing.T) {
	store := openTestStore(t)

	v, err := store.SchemaVersion(context.Background())
	if err != nil {
		t.Fatalf("SchemaVersion() failed: %v", err)
	}
	if v != 2 {
		t.Errorf("schema version = %d, want 2", v)
	}
}

func TestOpenTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	for i := 0; i < 2; i++ {
		store, err := Open(path)
		if err != nil {
			t.Fatalf("Open() #%d failed: %v", i, err)
		}
		if _, err := store.SaveScore("pong", i); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
		store.Close()
	}

	store, err := Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()
	scores, err := store.TopScores("pong", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Errorf("got %d scores after reopen, want 2", len(scores))
	}
}

func TestTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 200, 50} {
		if _, err := store.SaveScore("breakout", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	store.SaveScore("pong", 3)

	tests := []struct {
		name  string
		game  string
		limit int
		want  []int
	}{
		{"all sorted", "breakout", 10, []int{200, 100, 50}},
		{"limited", "breakout", 2, []int{200, 100}},
		{"other game", "pong", 10, []int{3}},
		{"unknown game", "tusmo", 10, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scores, err := store.TopScores(tt.game, tt.limit)
			if err != nil {
				t.Fatalf("TopScores() failed: %v", err)
			}
			if len(scores) != len(tt.want) {
				t.Fatalf("got %d scores, want %d", len(scores), len(tt.want))
			}
			for i, s := range scores {
				if s.Score != tt.want[i] {
					t.Errorf("scores[%d] = %d, want %d", i, s.Score, tt.want[i])
				}
				if s.GameID != tt.game {
					t.Errorf("scores[%d].GameID = %q", i, s.GameID)
				}
				if s.CreatedAt.IsZero() {
					t.Errorf("scores[%d].CreatedAt not parsed", i)
				}
			}
		})
	}
}

func TestHighScoreAndClear(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("breakout")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("empty high score = %d, want 0", high)
	}

	store.SaveScore("breakout", 40)
	store.SaveScore("breakout", 90)
	if high, _ = store.HighScore("breakout"); high != 90 {
		t.Errorf("high score = %d, want 90", high)
	}

	if err := store.ClearScores("breakout"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if high, _ = store.HighScore("breakout"); high != 0 {
		t.Errorf("high score after clear = %d, want 0", high)
	}
}

func TestStats(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore("pong", 2)
	store.SaveScore("pong", 4)

	st, err := store.Stats("pong")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.GamesCount != 2 || st.HighScore != 4 || st.AvgScore != 3 {
		t.Errorf("stats = %+v", st)
	}
	if st.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}

	empty, err := store.Stats("tusmo")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}
}

func TestSaveRun(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	episodes := []EpisodeRecord{
		{Episode: 1, Reward: 3, Steps: 120},
		{Episode: 2, Reward: -2, Steps: 500, Truncated: true},
	}
	id, err := store.SaveRun(ctx, EvalRun{GameID: "pong", Policy: "chase", Seed: 7, MeanReward: 0.5}, episodes)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if len(id) != 36 {
		t.Errorf("run ID %q is not a UUID", id)
	}

	got, err := store.RunEpisodes(ctx, id)
	if err != nil {
		t.Fatalf("RunEpisodes() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d episodes, want 2", len(got))
	}
	for i := range got {
		if got[i] != episodes[i] {
			t.Errorf("episode %d = %+v, want %+v", i, got[i], episodes[i])
		}
	}

	runs, err := store.RecentRuns(ctx, "", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}
	r := runs[0]
	if r.ID != id || r.Episodes != 2 || r.Policy != "chase" || r.Seed != 7 || r.MeanReward != 0.5 {
		t.Errorf("run = %+v", r)
	}
}

func TestSaveRunExplicitIDAndFilter(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if _, err := store.SaveRun(ctx, EvalRun{ID: "run-a", GameID: "pong", Policy: "random"}, nil); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := store.SaveRun(ctx, EvalRun{ID: "run-b", GameID: "breakout", Policy: "random"}, nil); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := store.SaveRun(ctx, EvalRun{ID: "run-a", GameID: "pong"}, nil); err == nil {
		t.Error("duplicate run ID accepted")
	}

	runs, err := store.RecentRuns(ctx, "breakout", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].ID != "run-b" {
		t.Errorf("filtered runs = %+v", runs)
	}
}

func TestSaveRunDuplicateEpisodeRollsBack(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	eps := []EpisodeRecord{{Episode: 1}, {Episode: 1}}
	if _, err := store.SaveRun(ctx, EvalRun{ID: "dup", GameID: "pong"}, eps); err == nil {
		t.Fatal("expected error for duplicate episode")
	}
	runs, err := store.RecentRuns(ctx, "", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("rolled back run still present: %+v", runs)
	}
}
