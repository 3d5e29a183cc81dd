package payment

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Settler est le collaborateur externe de règlement on-chain. Le backend
// ne parle jamais directement à un contrat: il soumet un montant et reçoit
// un identifiant de règlement.
type Settler interface {
	// CollectFee encaisse la mise d'entrée d'un wallet sur un challenge.
	CollectFee(ctx context.Context, challengeID, wallet string, amount float64) (string, error)
	// WithdrawPrize déclenche le retrait du prize pool vers un wallet.
	WithdrawPrize(ctx context.Context, challengeID, wallet string) (string, error)
}

type Settlement struct {
	ID          string    `json:"id"`
	ChallengeID string    `json:"challengeId"`
	Wallet      string    `json:"wallet"`
	Amount      float64   `json:"amount"`
	Kind        string    `json:"kind"` // fee | prize
	CreatedAt   time.Time `json:"createdAt"`
}

// SimulatedSettler tient un registre en mémoire de faux règlements. Aucune
// transaction réelle n'est émise.
type SimulatedSettler struct {
	mu     sync.Mutex
	ledger []Settlement

	now   func() time.Time
	newID func() string
}

func NewSimulatedSettler() *SimulatedSettler {
	return &SimulatedSettler{
		now:   time.Now,
		newID: uuid.NewString,
	}
}

func (s *SimulatedSettler) CollectFee(ctx context.Context, challengeID, wallet string, amount float64) (string, error) {
	return s.record(challengeID, wallet, amount, "fee"), nil
}

func (s *SimulatedSettler) WithdrawPrize(ctx context.Context, challengeID, wallet string) (string, error) {
	return s.record(challengeID, wallet, 0, "prize"), nil
}

// Ledger retourne une copie du registre, pour inspection.
func (s *SimulatedSettler) Ledger() []Settlement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Settlement(nil), s.ledger...)
}

func (s *SimulatedSettler) record(challengeID, wallet string, amount float64, kind string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	settlement := Settlement{
		ID:          s.newID(),
		ChallengeID: challengeID,
		Wallet:      wallet,
		Amount:      amount,
		Kind:        kind,
		CreatedAt:   s.now(),
	}
	s.ledger = append(s.ledger, settlement)
	return settlement.ID
}
