package leaderboard

import (
	"fmt"
	"os"
	"strings"
)

const (
	ModeSQLite   = "sqlite"
	ModeMemory   = "memory"
	ModePostgres = "db"
)

func modeFromEnv() string {
	raw := strings.ToLower(strings.TrimSpace(os.Getenv("LEADERBOARD_MODE")))
	switch raw {
	case "", ModeSQLite, "local":
		return ModeSQLite
	case ModeMemory, "mem":
		return ModeMemory
	case ModePostgres, "postgres", "postgresql":
		return ModePostgres
	default:
		return raw
	}
}

func NewServiceFromEnv() (Service, string, error) {
	mode := modeFromEnv()

	switch mode {
	case ModeSQLite:
		svc, err := NewSQLiteServiceFromEnv()
		if err != nil {
			return nil, mode, err
		}
		return svc, mode, nil
	case ModeMemory:
		return NewMemory(), mode, nil
	case ModePostgres:
		svc, err := NewPostgresServiceFromEnv()
		if err != nil {
			return nil, mode, err
		}
		return svc, mode, nil
	default:
		return nil, mode, fmt.Errorf("invalid LEADERBOARD_MODE %q (supported: %s, %s, %s)", mode, ModeSQLite, ModeMemory, ModePostgres)
	}
}
