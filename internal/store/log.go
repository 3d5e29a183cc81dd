package store

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	model "github.com/kushalsrinivas/hyperthon/internal/models"
)

// LogStore enregistre les check-ins (photo + légende) par challenge.
// La séquence est append-only: une entrée n'est jamais modifiée ni
// supprimée. Le store référence les challenges mais ne les possède pas.
type LogStore struct {
	mu   sync.RWMutex
	logs map[string][]model.LogEntry // challengeID -> entrées, ordre chronologique

	now   func() time.Time
	newID func() string
}

func NewLogStore() *LogStore {
	return &LogStore{
		logs:  make(map[string][]model.LogEntry),
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// SubmitLog ajoute un check-in au challenge. Image et légende sont requises.
func (s *LogStore) SubmitLog(challengeID, wallet string, image model.ImageRef, caption string) (model.LogEntry, error) {
	if wallet == "" {
		return model.LogEntry{}, invalid("user", "must not be empty")
	}
	if image.ID == "" {
		return model.LogEntry{}, invalid("image", "is required")
	}
	if strings.TrimSpace(caption) == "" {
		return model.LogEntry{}, invalid("caption", "must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry := model.LogEntry{
		ID:          s.newID(),
		ChallengeID: challengeID,
		User:        wallet,
		Timestamp:   s.now(),
		Image:       image,
		Caption:     caption,
	}
	s.logs[challengeID] = append(s.logs[challengeID], entry)

	return entry, nil
}

// ListLogs retourne les check-ins du challenge, du plus ancien au plus récent.
func (s *LogStore) ListLogs(challengeID string) []model.LogEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]model.LogEntry{}, s.logs[challengeID]...)
}

// Leaderboard compte les check-ins par participant, recalculé à chaque
// appel depuis la séquence courante. Tri par nombre décroissant, les
// égalités départagées par ordre de premier check-in (déterministe pour
// une séquence d'entrées donnée).
func (s *LogStore) Leaderboard(challengeID string) []model.LeaderboardEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	for i, entry := range s.logs[challengeID] {
		if _, ok := counts[entry.User]; !ok {
			firstSeen[entry.User] = i
		}
		counts[entry.User]++
	}

	board := make([]model.LeaderboardEntry, 0, len(counts))
	for user, count := range counts {
		board = append(board, model.LeaderboardEntry{UserID: user, Count: count})
	}
	sort.Slice(board, func(i, j int) bool {
		if board[i].Count != board[j].Count {
			return board[i].Count > board[j].Count
		}
		return firstSeen[board[i].UserID] < firstSeen[board[j].UserID]
	})
	for i := range board {
		board[i].Rank = i + 1
	}

	return board
}
