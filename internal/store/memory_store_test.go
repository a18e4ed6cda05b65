package store

import (
	"testing"
	"time"

	"nfl-prediction-service/internal/domain"
)

func TestMemoryStoreSetAndGet(t *testing.T) {
	s := NewMemoryStore()

	games := []domain.Game{
		{ID: "1", Provider: "test"},
		{ID: "2", Provider: "test"},
	}

	s.SetGames(games)

	if got := len(s.ListGames()); got != 2 {
		t.Fatalf("expected 2 games, got %d", got)
	}

	game, ok := s.GetGame("1")
	if !ok {
		t.Fatalf("expected to find game with id 1")
	}
	if game.Provider != "test" {
		t.Fatalf("unexpected provider %s", game.Provider)
	}
	if s.UpdatedAt().IsZero() {
		t.Fatalf("expected update timestamp to be stamped")
	}
}

func TestMemoryStoreGetNotFound(t *testing.T) {
	s := NewMemoryStore()
	if _, ok := s.GetGame("missing"); ok {
		t.Fatalf("expected missing id to return false")
	}
}

func TestMemoryStoreSetReplacesSnapshot(t *testing.T) {
	s := NewMemoryStore()
	s.SetGames([]domain.Game{{ID: "old"}})

	s.SetGames([]domain.Game{{ID: "new"}})

	if _, ok := s.GetGame("old"); ok {
		t.Fatalf("expected old game to be removed after replace")
	}
	if _, ok := s.GetGame("new"); !ok {
		t.Fatalf("expected new game to be present")
	}
}

func TestMemoryStoreListOrderedByKickoff(t *testing.T) {
	s := NewMemoryStore()
	base := time.Date(2025, 11, 23, 18, 0, 0, 0, time.UTC)
	s.SetGames([]domain.Game{
		{ID: "late", Scheduled: base.Add(4 * time.Hour)},
		{ID: "early", Scheduled: base},
	})

	list := s.ListGames()
	if list[0].ID != "early" || list[1].ID != "late" {
		t.Fatalf("expected kickoff ordering, got %s then %s", list[0].ID, list[1].ID)
	}
}

func TestMemoryStoreListReturnsCopy(t *testing.T) {
	s := NewMemoryStore()
	s.SetGames([]domain.Game{{ID: "copy", Provider: "original"}})

	list := s.ListGames()
	if len(list) != 1 {
		t.Fatalf("expected 1 game, got %d", len(list))
	}

	list[0].Provider = "mutated"

	game, ok := s.GetGame("copy")
	if !ok {
		t.Fatalf("expected to find game")
	}
	if game.Provider != "original" {
		t.Fatalf("expected store to remain unchanged, got %s", game.Provider)
	}
}
