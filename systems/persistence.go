package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

// SavedStats is the on-disk record. The high score is monotonic:
// writes with a lower score are dropped.
type SavedStats struct {
	HighScore   int `json:"highScore"`
	GamesPlayed int `json:"gamesPlayed"`
}

// ScoreStore abstracts the storage backend so tests can swap in an
// in-memory one. Both methods may fail; callers treat failures as
// "no data" and never let them reach gameplay.
type ScoreStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

const statsKey = "stats"

var store ScoreStore

// InitPersistence opens the platform store. On failure the game keeps
// running with persistence disabled.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "cyber-defender",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	store = m
	return nil
}

// SetStore replaces the backend. Used by tests.
func SetStore(s ScoreStore) {
	store = s
}

func loadStats(s ScoreStore) SavedStats {
	var stats SavedStats
	if s == nil {
		return stats
	}
	data, err := s.LoadItem(statsKey)
	if err != nil {
		log.Printf("Warning: Could not load stats: %v", err)
		return stats
	}
	if len(data) == 0 {
		return stats
	}
	if err := json.Unmarshal(data, &stats); err != nil {
		log.Printf("Warning: Could not parse stats: %v", err)
		return SavedStats{}
	}
	return stats
}

func saveStats(s ScoreStore, stats SavedStats) {
	if s == nil {
		return
	}
	data, err := json.Marshal(stats)
	if err != nil {
		log.Printf("Warning: Could not serialize stats: %v", err)
		return
	}
	if err := s.SaveItem(statsKey, data); err != nil {
		log.Printf("Warning: Could not save stats: %v", err)
	}
}

// LoadHighScore returns the persisted best score, or zero when the
// store is unavailable or the record is unreadable.
func LoadHighScore() int {
	return LoadHighScoreFrom(store)
}

func LoadHighScoreFrom(s ScoreStore) int {
	return loadStats(s).HighScore
}

// SaveHighScore persists score only if it beats the stored best.
// Re-saving the same score is a no-op, so calling it from both
// terminal transitions is safe.
func SaveHighScore(score int) {
	SaveHighScoreTo(store, score)
}

func SaveHighScoreTo(s ScoreStore, score int) {
	stats := loadStats(s)
	if score <= stats.HighScore {
		return
	}
	stats.HighScore = score
	saveStats(s, stats)
}

// IncrementGamesPlayed bumps the lifetime run counter.
func IncrementGamesPlayed() {
	stats := loadStats(store)
	stats.GamesPlayed++
	saveStats(store, stats)
}

// LoadGamesPlayed returns the lifetime run counter for the menu.
func LoadGamesPlayed() int {
	return loadStats(store).GamesPlayed
}
