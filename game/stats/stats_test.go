package stats

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// chdirTemp runs the test from an empty directory so the stats file
// never touches the repository's data directory.
func chdirTemp(t *testing.T) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(old) })
}

func record(session string, score int, dur time.Duration) Record {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return Record{
		SessionID: session,
		StartTime: start,
		EndTime:   start.Add(dur),
		Score:     score,
		Steps:     score * 10,
		Outcome:   "wall",
	}
}

func TestAddGameAggregates(t *testing.T) {
	chdirTemp(t)
	s := NewGameStats()
	s.AddGame(record("a", 3, 10*time.Second))
	s.AddGame(record("a", 7, 30*time.Second))
	s.AddGame(record("b", 5, 20*time.Second))

	if got := s.GamesPlayed(); got != 3 {
		t.Fatalf("GamesPlayed = %d, want 3", got)
	}
	if got := s.HighScore(); got != 7 {
		t.Fatalf("HighScore = %d, want 7", got)
	}
	if got := s.AverageScore(); got != 5 {
		t.Fatalf("AverageScore = %v, want 5", got)
	}
	if got := s.MedianScore(); got != 5 {
		t.Fatalf("MedianScore = %v, want 5", got)
	}
	if got := s.AverageDuration(); got != 20 {
		t.Fatalf("AverageDuration = %v, want 20", got)
	}
}

func TestMedianScoreEvenCount(t *testing.T) {
	chdirTemp(t)
	s := NewGameStats()
	for _, score := range []int{1, 9, 3, 5} {
		s.AddGame(record("a", score, time.Second))
	}
	if got := s.MedianScore(); got != 4 {
		t.Fatalf("MedianScore = %v, want 4", got)
	}
}

func TestEmptyStats(t *testing.T) {
	chdirTemp(t)
	s := NewGameStats()
	if s.HighScore() != 0 || s.AverageScore() != 0 || s.MedianScore() != 0 {
		t.Fatal("empty stats should report zeros")
	}
}

func TestSaveAndReload(t *testing.T) {
	chdirTemp(t)
	s := NewGameStats()
	s.AddGame(record("a", 4, 15*time.Second))
	s.AddGame(record("a", 8, 25*time.Second))
	if err := s.SaveToFile(); err != nil {
		t.Fatalf("SaveToFile: %v", err)
	}

	loaded := NewGameStats()
	if got := loaded.GamesPlayed(); got != 2 {
		t.Fatalf("reloaded GamesPlayed = %d, want 2", got)
	}
	if got := loaded.HighScore(); got != 8 {
		t.Fatalf("reloaded HighScore = %d, want 8", got)
	}
	games := loaded.GetStats()
	if games[0].Duration != 15 {
		t.Fatalf("reloaded duration = %v, want 15", games[0].Duration)
	}
}

func TestSaveSession(t *testing.T) {
	chdirTemp(t)
	s := NewGameStats()
	s.AddGame(record("abc", 2, time.Second))
	s.AddGame(record("xyz", 6, time.Second))
	if err := s.SaveSession("abc"); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}
	if _, err := os.Stat(filepath.Join(DataDir, "games", "abc", "stats.json")); err != nil {
		t.Fatalf("session file missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(DataDir, "games", "xyz")); !os.IsNotExist(err) {
		t.Fatal("unrelated session directory was created")
	}
}

func TestSaveSessionUnknownIDIsNoop(t *testing.T) {
	chdirTemp(t)
	s := NewGameStats()
	if err := s.SaveSession("missing"); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}
	if _, err := os.Stat(DataDir); !os.IsNotExist(err) {
		t.Fatal("no-op save should not create the data directory")
	}
}
