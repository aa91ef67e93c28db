package leaderboard

import (
	"context"
	"sort"
	"time"
)

// DefaultLimit is how many winning scores survive a session.
const DefaultLimit = 10

type Entry struct {
	ID        string    `json:"id,omitempty"`
	Name      string    `json:"name"`
	Score     int       `json:"score"`
	Artifacts int       `json:"artifacts"`
	PlayedAt  time.Time `json:"playedAt"`
}

// Service is the persistence port the game runner receives: load at
// start for display, save at end. Scores rank by value, then artifacts,
// then age (older first).
type Service interface {
	SaveScore(ctx context.Context, e Entry) error
	Top(ctx context.Context, limit int) ([]Entry, error)
	Close() error
}

func rankEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Artifacts != b.Artifacts {
			return a.Artifacts > b.Artifacts
		}
		return a.PlayedAt.Before(b.PlayedAt)
	})
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > 100 {
		return DefaultLimit
	}
	return limit
}
