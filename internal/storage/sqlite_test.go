package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveRun(Run{GameID: "waverider", Score: 45}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	if high, _ := store.HighScore("waverider"); high != 45 {
		t.Errorf("HighScore() = %d after reopen, expected 45", high)
	}
}

func TestStoreSaveRunAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{GameID: "waverider_timed", Score: 120, Reason: "time up", Duration: 60},
		{GameID: "waverider_timed", Score: 45, Reason: "game over", Duration: 31.5},
		{GameID: "waverider_timed", Score: 300, Reason: "time up", Duration: 60},
		{GameID: "waverider", Score: 500, Reason: "game over", Duration: 240},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun(%+v) failed: %v", r, err)
		}
	}

	scores, err := store.TopScores("waverider_timed", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	want := []int{300, 120, 45}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, w)
		}
	}
	if scores[2].Reason != "game over" || scores[2].Duration != 31.5 {
		t.Errorf("run details not stored: %+v", scores[2])
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	endless, err := store.TopScores("waverider", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(endless) != 1 {
		t.Errorf("Expected 1 endless score, got %d", len(endless))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(Run{GameID: "test", Score: (i + 1) * 100})
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("waverider")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveRun(Run{GameID: "waverider", Score: 100})
	store.SaveRun(Run{GameID: "waverider", Score: 300})
	store.SaveRun(Run{GameID: "waverider", Score: 200})

	high, err = store.HighScore("waverider")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("waverider")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty != (Stats{}) {
		t.Errorf("Stats() on empty table = %+v, expected zero", empty)
	}

	store.SaveRun(Run{GameID: "waverider", Score: 30, Duration: 20})
	store.SaveRun(Run{GameID: "waverider", Score: 90, Duration: 40})

	st, err := store.Stats("waverider")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.Runs != 2 || st.Best != 90 || st.Average != 60 || st.TotalPlayed != time.Minute {
		t.Errorf("Stats() = %+v", st)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{GameID: "waverider", Score: 100})
	store.SaveRun(Run{GameID: "waverider", Score: 200})
	store.SaveRun(Run{GameID: "waverider_timed", Score: 300})

	if err := store.ClearScores("waverider"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("waverider", 10); len(scores) != 0 {
		t.Errorf("Expected 0 endless scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("waverider_timed", 10); len(scores) != 1 {
		t.Errorf("Timed scores should not be affected by clearing endless")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveRun(Run{GameID: "test", Score: i * 10})
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
	if scores[0].Score != 190 {
		t.Errorf("Expected first score 190, got %d", scores[0].Score)
	}
}

func TestStoreExpandsHome(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	store, err := Open("~/.waverider/scores.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	home, _ := os.UserHomeDir()
	if _, err := os.Stat(filepath.Join(home, ".waverider", "scores.db")); err != nil {
		t.Errorf("expected database under HOME: %v", err)
	}
}
