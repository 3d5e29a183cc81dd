package payment

import (
	"context"
	"testing"
	"time"
)

func TestCollectFeeRecordsSettlement(t *testing.T) {
	s := NewSimulatedSettler()
	s.now = func() time.Time { return time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC) }
	s.newID = func() string { return "settle-1" }

	id, err := s.CollectFee(context.Background(), "chal-1", "0xalice", 1.5)
	if err != nil {
		t.Fatalf("collect fee: %v", err)
	}
	if id != "settle-1" {
		t.Fatalf("expected settle-1, got %q", id)
	}

	ledger := s.Ledger()
	if len(ledger) != 1 {
		t.Fatalf("expected 1 settlement, got %d", len(ledger))
	}
	entry := ledger[0]
	if entry.Kind != "fee" || entry.ChallengeID != "chal-1" || entry.Wallet != "0xalice" || entry.Amount != 1.5 {
		t.Fatalf("unexpected settlement: %+v", entry)
	}
}

func TestWithdrawPrizeRecordsSettlement(t *testing.T) {
	s := NewSimulatedSettler()

	if _, err := s.WithdrawPrize(context.Background(), "chal-1", "0xbob"); err != nil {
		t.Fatalf("withdraw prize: %v", err)
	}

	ledger := s.Ledger()
	if len(ledger) != 1 || ledger[0].Kind != "prize" {
		t.Fatalf("expected one prize settlement, got %+v", ledger)
	}
}

func TestLedgerReturnsCopy(t *testing.T) {
	s := NewSimulatedSettler()
	s.CollectFee(context.Background(), "chal-1", "0xalice", 1)

	ledger := s.Ledger()
	ledger[0].Wallet = "0xmallory"

	if s.Ledger()[0].Wallet != "0xalice" {
		t.Fatal("mutating the returned ledger leaked into the settler")
	}
}
