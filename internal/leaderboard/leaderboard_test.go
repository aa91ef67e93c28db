package leaderboard

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func TestMemory_RankingAndTrim(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 15; i++ {
		err := m.SaveScore(ctx, Entry{
			Name:     fmt.Sprintf("explorer_%d", i),
			Score:    i * 3,
			PlayedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("SaveScore err: %v", err)
		}
	}

	top, err := m.Top(ctx, 0)
	if err != nil {
		t.Fatalf("Top err: %v", err)
	}
	if len(top) != DefaultLimit {
		t.Fatalf("top size = %d, want %d", len(top), DefaultLimit)
	}
	if top[0].Name != "explorer_14" || top[0].Score != 42 {
		t.Fatalf("top entry = %s/%d, want explorer_14/42", top[0].Name, top[0].Score)
	}
	for i := 1; i < len(top); i++ {
		if top[i].Score > top[i-1].Score {
			t.Fatalf("entries out of order at %d: %d > %d", i, top[i].Score, top[i-1].Score)
		}
	}
	// explorer_0 through explorer_4 fell off the board.
	for _, e := range top {
		if e.Score < 15 {
			t.Fatalf("trimmed entry survived: %s/%d", e.Name, e.Score)
		}
	}
}

func TestMemory_TieBreaks(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	entries := []Entry{
		{Name: "late_same", Score: 50, Artifacts: 1, PlayedAt: base.Add(time.Hour)},
		{Name: "more_artifacts", Score: 50, Artifacts: 3, PlayedAt: base.Add(2 * time.Hour)},
		{Name: "early_same", Score: 50, Artifacts: 1, PlayedAt: base},
	}
	for _, e := range entries {
		if err := m.SaveScore(ctx, e); err != nil {
			t.Fatalf("SaveScore err: %v", err)
		}
	}

	top, err := m.Top(ctx, 3)
	if err != nil {
		t.Fatalf("Top err: %v", err)
	}
	want := []string{"more_artifacts", "early_same", "late_same"}
	for i, name := range want {
		if top[i].Name != name {
			t.Fatalf("rank %d = %s, want %s", i, top[i].Name, name)
		}
	}
}

func TestSQLite_SaveAndTop(t *testing.T) {
	svc, err := NewSQLiteService(":memory:")
	if err != nil {
		t.Fatalf("NewSQLiteService err: %v", err)
	}
	defer svc.Close()

	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 12; i++ {
		err := svc.SaveScore(ctx, Entry{
			Name:      fmt.Sprintf("explorer_%d", i),
			Score:     100 - i,
			Artifacts: i % 3,
			PlayedAt:  base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("SaveScore err: %v", err)
		}
	}

	top, err := svc.Top(ctx, 5)
	if err != nil {
		t.Fatalf("Top err: %v", err)
	}
	if len(top) != 5 {
		t.Fatalf("top size = %d, want 5", len(top))
	}
	if top[0].Name != "explorer_0" || top[0].Score != 100 {
		t.Fatalf("top entry = %s/%d, want explorer_0/100", top[0].Name, top[0].Score)
	}
	if top[0].PlayedAt != base {
		t.Fatalf("played_at round-trip = %v, want %v", top[0].PlayedAt, base)
	}

	// The two lowest scores were trimmed on insert.
	all, err := svc.Top(ctx, DefaultLimit)
	if err != nil {
		t.Fatalf("Top err: %v", err)
	}
	if len(all) != DefaultLimit {
		t.Fatalf("stored entries = %d, want %d", len(all), DefaultLimit)
	}
	for _, e := range all {
		if e.Score < 91 {
			t.Fatalf("trimmed entry survived: %s/%d", e.Name, e.Score)
		}
	}
}

func TestSQLite_RejectsEmptyName(t *testing.T) {
	svc, err := NewSQLiteService(":memory:")
	if err != nil {
		t.Fatalf("NewSQLiteService err: %v", err)
	}
	defer svc.Close()

	if err := svc.SaveScore(context.Background(), Entry{Score: 10}); err == nil {
		t.Fatalf("empty name should be rejected")
	}
}
