// Package stats records finished games and persists them as JSON under
// the data directory, so high scores survive across runs.
package stats

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

const (
	DataDir   = "data"
	StatsFile = "data/stats.json"
)

// Record holds the outcome of a single finished game.
type Record struct {
	SessionID string    `json:"sessionId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Score     int       `json:"score"`
	Steps     int       `json:"steps"`
	Duration  float64   `json:"duration"`
	Outcome   string    `json:"outcome"`
}

// GameStats accumulates records across sessions. All methods are safe
// for concurrent use.
type GameStats struct {
	Games []Record
	mutex sync.RWMutex
}

// NewGameStats creates a GameStats and loads any previously saved
// records from the stats file.
func NewGameStats() *GameStats {
	stats := &GameStats{
		Games: make([]Record, 0),
	}
	stats.loadFromFile()
	return stats
}

// AddGame appends a finished game to the history.
func (s *GameStats) AddGame(rec Record) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	rec.Duration = rec.EndTime.Sub(rec.StartTime).Seconds()
	s.Games = append(s.Games, rec)
}

// GetStats returns a copy of the recorded games.
func (s *GameStats) GetStats() []Record {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := make([]Record, len(s.Games))
	copy(out, s.Games)
	return out
}

// HighScore returns the best score ever recorded.
func (s *GameStats) HighScore() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	best := 0
	for _, g := range s.Games {
		if g.Score > best {
			best = g.Score
		}
	}
	return best
}

// AverageScore returns the mean score over all recorded games.
func (s *GameStats) AverageScore() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if len(s.Games) == 0 {
		return 0
	}
	var total float64
	for _, g := range s.Games {
		total += float64(g.Score)
	}
	return total / float64(len(s.Games))
}

// MedianScore returns the median score over all recorded games.
func (s *GameStats) MedianScore() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if len(s.Games) == 0 {
		return 0
	}
	scores := make([]int, len(s.Games))
	for i, g := range s.Games {
		scores[i] = g.Score
	}
	sort.Ints(scores)
	if len(scores)%2 == 0 {
		return float64(scores[len(scores)/2-1]+scores[len(scores)/2]) / 2
	}
	return float64(scores[len(scores)/2])
}

// GamesPlayed returns the number of recorded games.
func (s *GameStats) GamesPlayed() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return len(s.Games)
}

// AverageDuration returns the mean game duration in seconds.
func (s *GameStats) AverageDuration() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if len(s.Games) == 0 {
		return 0
	}
	var total float64
	for _, g := range s.Games {
		total += g.Duration
	}
	return total / float64(len(s.Games))
}

// SaveToFile writes the records to the stats file as JSON.
func (s *GameStats) SaveToFile() error {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if err := os.MkdirAll(DataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %v", err)
	}

	jsonData, err := json.MarshalIndent(s.Games, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal stats data: %v", err)
	}

	if err := os.WriteFile(StatsFile, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write stats file: %v", err)
	}

	return nil
}

// SaveSession writes a single session's records under
// data/games/<session id>/stats.json.
func (s *GameStats) SaveSession(sessionID string) error {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var session []Record
	for _, g := range s.Games {
		if g.SessionID == sessionID {
			session = append(session, g)
		}
	}
	if len(session) == 0 {
		return nil
	}

	dir := filepath.Join(DataDir, "games", sessionID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create session directory: %v", err)
	}

	jsonData, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session data: %v", err)
	}

	file := filepath.Join(dir, "stats.json")
	if err := os.WriteFile(file, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write session file: %v", err)
	}

	return nil
}

func (s *GameStats) loadFromFile() error {
	data, err := os.ReadFile(StatsFile)
	if err != nil {
		if os.IsNotExist(err) {
			s.Games = make([]Record, 0)
			return nil
		}
		return err
	}

	if err := json.Unmarshal(data, &s.Games); err != nil {
		return err
	}

	return nil
}
