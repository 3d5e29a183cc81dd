package store

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	model "github.com/kushalsrinivas/hyperthon/internal/models"
)

// ChallengeStore détient la liste autoritaire des challenges.
// Tout l'état vit en mémoire; rien n'est persisté entre deux démarrages.
type ChallengeStore struct {
	mu         sync.RWMutex
	challenges []model.Challenge
	index      map[string]int // id -> position dans challenges

	now   func() time.Time
	newID func() string
}

func NewChallengeStore() *ChallengeStore {
	return &ChallengeStore{
		index: make(map[string]int),
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// CreateChallenge valide les champs, calcule les dates et ajoute le
// challenge à la liste publique. Le créateur est toujours le premier
// participant.
func (s *ChallengeStore) CreateChallenge(name string, durationDays int, prizePool float64, creator string) (model.Challenge, error) {
	if strings.TrimSpace(name) == "" {
		return model.Challenge{}, invalid("name", "must not be empty")
	}
	if durationDays <= 0 {
		return model.Challenge{}, invalid("duration", "must be a positive number of days")
	}
	if prizePool < 0 {
		return model.Challenge{}, invalid("prizePool", "must not be negative")
	}
	if creator == "" {
		return model.Challenge{}, invalid("creator", "must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	start := s.now()
	challenge := model.Challenge{
		ID:           s.newID(),
		Name:         name,
		Duration:     durationDays,
		PrizePool:    prizePool,
		Creator:      creator,
		Participants: []string{creator},
		StartDate:    start,
		EndDate:      start.AddDate(0, 0, durationDays),
	}

	s.index[challenge.ID] = len(s.challenges)
	s.challenges = append(s.challenges, challenge)

	return cloneChallenge(challenge), nil
}

// JoinChallenge ajoute le wallet aux participants. Rejoindre un challenge
// dont on fait déjà partie est un no-op (idempotent).
func (s *ChallengeStore) JoinChallenge(challengeID, wallet string) (model.Challenge, error) {
	if wallet == "" {
		return model.Challenge{}, invalid("user", "must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[challengeID]
	if !ok {
		return model.Challenge{}, ErrNotFound
	}

	challenge := &s.challenges[pos]
	if !challenge.HasParticipant(wallet) {
		challenge.Participants = append(challenge.Participants, wallet)
	}

	return cloneChallenge(*challenge), nil
}

// Get retourne le challenge par son id.
func (s *ChallengeStore) Get(challengeID string) (model.Challenge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pos, ok := s.index[challengeID]
	if !ok {
		return model.Challenge{}, ErrNotFound
	}
	return cloneChallenge(s.challenges[pos]), nil
}

// ListPublic retourne tous les challenges dans l'ordre de création.
func (s *ChallengeStore) ListPublic() []model.Challenge {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Challenge, 0, len(s.challenges))
	for _, c := range s.challenges {
		out = append(out, cloneChallenge(c))
	}
	return out
}

// ListActive retourne les challenges dont le wallet est participant.
// Toujours un filtre sur l'état courant, jamais un snapshot séparé: une
// jointure est visible dans la liste active dès le même cycle de commande.
func (s *ChallengeStore) ListActive(wallet string) []model.Challenge {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []model.Challenge{}
	for _, c := range s.challenges {
		if c.HasParticipant(wallet) {
			out = append(out, cloneChallenge(c))
		}
	}
	return out
}

// cloneChallenge copie le challenge avec sa liste de participants, pour que
// les lectures ne partagent aucun slice avec l'état interne.
func cloneChallenge(c model.Challenge) model.Challenge {
	c.Participants = append([]string(nil), c.Participants...)
	return c
}
