package store

import (
	"errors"
	"testing"
	"time"

	model "github.com/kushalsrinivas/hyperthon/internal/models"
)

func newTestLogStore() *LogStore {
	s := NewLogStore()
	s.now = fixedClock()
	s.newID = sequentialIDs("log")
	return s
}

func testImage(id string) model.ImageRef {
	return model.ImageRef{ID: id, URL: "/media/" + id}
}

func TestSubmitLog(t *testing.T) {
	s := newTestLogStore()

	entry, err := s.SubmitLog("chal-1", "alice", testImage("img-1"), "day one")
	if err != nil {
		t.Fatalf("submit log: %v", err)
	}

	if entry.ID != "log-1" {
		t.Fatalf("expected id log-1, got %q", entry.ID)
	}
	if entry.ChallengeID != "chal-1" || entry.User != "alice" || entry.Caption != "day one" {
		t.Fatalf("unexpected entry: %+v", entry)
	}
	if !entry.Timestamp.Equal(fixedClock()()) {
		t.Fatalf("timestamp must be the call time, got %v", entry.Timestamp)
	}
}

func TestSubmitLogValidation(t *testing.T) {
	tests := []struct {
		name    string
		user    string
		image   model.ImageRef
		caption string
	}{
		{"empty user", "", testImage("img-1"), "hello"},
		{"missing image", "alice", model.ImageRef{}, "hello"},
		{"empty caption", "alice", testImage("img-1"), ""},
		{"blank caption", "alice", testImage("img-1"), "  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestLogStore()
			_, err := s.SubmitLog("chal-1", tt.user, tt.image, tt.caption)

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if got := len(s.ListLogs("chal-1")); got != 0 {
				t.Fatalf("failed submit must not mutate the store, got %d entries", got)
			}
			if got := len(s.Leaderboard("chal-1")); got != 0 {
				t.Fatalf("failed submit must not affect the leaderboard, got %d rows", got)
			}
		})
	}
}

func TestListLogsChronological(t *testing.T) {
	s := newTestLogStore()
	for _, caption := range []string{"first", "second", "third"} {
		if _, err := s.SubmitLog("chal-1", "alice", testImage("img"), caption); err != nil {
			t.Fatalf("submit log: %v", err)
		}
	}

	logs := s.ListLogs("chal-1")
	if len(logs) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(logs))
	}
	for i, want := range []string{"first", "second", "third"} {
		if logs[i].Caption != want {
			t.Fatalf("position %d: expected %q, got %q", i, want, logs[i].Caption)
		}
	}
}

func TestListLogsScopedPerChallenge(t *testing.T) {
	s := newTestLogStore()
	s.SubmitLog("chal-1", "alice", testImage("a"), "on one")
	s.SubmitLog("chal-2", "alice", testImage("b"), "on two")

	if got := len(s.ListLogs("chal-1")); got != 1 {
		t.Fatalf("expected 1 entry on chal-1, got %d", got)
	}
	if got := len(s.ListLogs("chal-3")); got != 0 {
		t.Fatalf("expected no entries on chal-3, got %d", got)
	}
}

func TestLeaderboard(t *testing.T) {
	s := newTestLogStore()
	for i := 0; i < 3; i++ {
		s.SubmitLog("chal-1", "alice", testImage("a"), "run")
	}
	s.SubmitLog("chal-1", "bob", testImage("b"), "run")

	board := s.Leaderboard("chal-1")
	if len(board) != 2 {
		t.Fatalf("expected 2 rows, got %v", board)
	}
	if board[0].UserID != "alice" || board[0].Count != 3 || board[0].Rank != 1 {
		t.Fatalf("unexpected first row: %+v", board[0])
	}
	if board[1].UserID != "bob" || board[1].Count != 1 || board[1].Rank != 2 {
		t.Fatalf("unexpected second row: %+v", board[1])
	}

	// La somme des compteurs vaut le nombre total de logs
	total := 0
	for _, row := range board {
		total += row.Count
	}
	if total != len(s.ListLogs("chal-1")) {
		t.Fatalf("leaderboard counts (%d) do not sum to log count (%d)", total, len(s.ListLogs("chal-1")))
	}
}

func TestLeaderboardTiesAreDeterministic(t *testing.T) {
	s := newTestLogStore()
	s.SubmitLog("chal-1", "bob", testImage("b"), "one")
	s.SubmitLog("chal-1", "alice", testImage("a"), "one")
	s.SubmitLog("chal-1", "carol", testImage("c"), "one")

	for i := 0; i < 10; i++ {
		board := s.Leaderboard("chal-1")
		// Égalité: ordre du premier check-in
		if board[0].UserID != "bob" || board[1].UserID != "alice" || board[2].UserID != "carol" {
			t.Fatalf("tie order not deterministic: %+v", board)
		}
	}
}

func TestLeaderboardRecomputedOnEveryCall(t *testing.T) {
	s := newTestLogStore()
	s.SubmitLog("chal-1", "alice", testImage("a"), "one")

	before := s.Leaderboard("chal-1")
	if before[0].Count != 1 {
		t.Fatalf("expected count 1, got %+v", before)
	}

	s.SubmitLog("chal-1", "alice", testImage("a"), "two")
	after := s.Leaderboard("chal-1")
	if after[0].Count != 2 {
		t.Fatalf("leaderboard served a stale count: %+v", after)
	}
}

func TestSubmitLogTimestampUsesClock(t *testing.T) {
	s := newTestLogStore()
	later := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return later }

	entry, err := s.SubmitLog("chal-1", "alice", testImage("a"), "late entry")
	if err != nil {
		t.Fatalf("submit log: %v", err)
	}
	if !entry.Timestamp.Equal(later) {
		t.Fatalf("expected %v, got %v", later, entry.Timestamp)
	}
}
