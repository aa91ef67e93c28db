package leaderboard

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	_ "modernc.org/sqlite"
)

const defaultLocalDBName = "incan_gold_local.db"

type SQLiteService struct {
	db   *sql.DB
	keep int
}

func NewSQLiteServiceFromEnv() (*SQLiteService, error) {
	dbPath, err := localDatabasePathFromEnv()
	if err != nil {
		return nil, err
	}
	return NewSQLiteService(dbPath)
}

func NewSQLiteService(dbPath string) (*SQLiteService, error) {
	dbPath = strings.TrimSpace(dbPath)
	if dbPath == "" {
		return nil, fmt.Errorf("empty sqlite database path")
	}
	if dbPath != ":memory:" {
		parent := filepath.Dir(dbPath)
		if parent != "" && parent != "." {
			if err := os.MkdirAll(parent, 0o755); err != nil {
				return nil, err
			}
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := db.ExecContext(ctx, `PRAGMA busy_timeout = 5000;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, `PRAGMA journal_mode = WAL;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := ensureSQLiteSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLiteService{db: db, keep: DefaultLimit}, nil
}

func (s *SQLiteService) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLiteService) SaveScore(ctx context.Context, e Entry) error {
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("entry name is required")
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.PlayedAt.IsZero() {
		e.PlayedAt = time.Now().UTC()
	}
	if ctx == nil {
		ctx = context.Background()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
INSERT INTO leaderboard_scores (id, name, score, artifacts, played_at_ms)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT (id) DO NOTHING
`, e.ID, e.Name, e.Score, e.Artifacts, e.PlayedAt.UTC().UnixMilli())
	if err != nil {
		return err
	}

	// Keep only the top N.
	_, err = tx.ExecContext(ctx, `
DELETE FROM leaderboard_scores
WHERE id IN (
    SELECT id
    FROM leaderboard_scores
    ORDER BY score DESC, artifacts DESC, played_at_ms ASC
    LIMIT -1 OFFSET ?
)
`, s.keep)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (s *SQLiteService) Top(ctx context.Context, limit int) ([]Entry, error) {
	limit = clampLimit(limit)
	if ctx == nil {
		ctx = context.Background()
	}

	rows, err := s.db.QueryContext(ctx, `
SELECT id, name, score, artifacts, played_at_ms
FROM leaderboard_scores
ORDER BY score DESC, artifacts DESC, played_at_ms ASC
LIMIT ?
`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]Entry, 0, limit)
	for rows.Next() {
		var e Entry
		var playedAtMs int64
		if err := rows.Scan(&e.ID, &e.Name, &e.Score, &e.Artifacts, &playedAtMs); err != nil {
			return nil, err
		}
		e.PlayedAt = time.UnixMilli(playedAtMs).UTC()
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func ensureSQLiteSchema(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`
CREATE TABLE IF NOT EXISTS leaderboard_scores (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    score INTEGER NOT NULL,
    artifacts INTEGER NOT NULL DEFAULT 0,
    played_at_ms INTEGER NOT NULL
)`,
		`CREATE INDEX IF NOT EXISTS idx_leaderboard_scores_rank ON leaderboard_scores(score DESC, artifacts DESC, played_at_ms ASC)`,
	}
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func localDatabasePathFromEnv() (string, error) {
	candidates := []string{
		strings.TrimSpace(os.Getenv("LEADERBOARD_DATABASE_PATH")),
		strings.TrimSpace(os.Getenv("LOCAL_DATABASE_PATH")),
	}
	for _, candidate := range candidates {
		if candidate != "" {
			return filepath.Clean(candidate), nil
		}
	}

	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(userConfigDir, "IncanGold", defaultLocalDBName), nil
}
