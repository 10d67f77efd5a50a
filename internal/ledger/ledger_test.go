package ledger

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/punchamoorthee/bankmitra/internal/domain"
)

func fixedClock() time.Time {
	return time.Date(2024, 11, 5, 14, 30, 0, 0, time.UTC)
}

func newTestLedger(snap *domain.Snapshot) *Ledger {
	l := New(snap, nil)
	l.now = fixedClock
	l.pickName = func() string { return "Aarav" }
	return l
}

func TestSendMoney(t *testing.T) {
	l := newTestLedger(&domain.Snapshot{Balance: 45000})

	if err := l.SendMoney("Rahul", 5000); err != nil {
		t.Fatalf("SendMoney failed: %v", err)
	}

	snap := l.Snapshot()
	if snap.Balance != 40000 {
		t.Fatalf("balance = %d, want 40000", snap.Balance)
	}
	if len(snap.Transactions) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(snap.Transactions))
	}
	txn := snap.Transactions[0]
	if txn.Name != "Rahul" || txn.Amount != 5000 || txn.Type != domain.DirectionSent {
		t.Fatalf("wrong transaction: %+v", txn)
	}
}

func TestSendMoneyInsufficient(t *testing.T) {
	l := newTestLedger(&domain.Snapshot{Balance: 100})

	if err := l.SendMoney("Rahul", 5000); err != ErrInsufficientFunds {
		t.Fatalf("err = %v, want ErrInsufficientFunds", err)
	}

	snap := l.Snapshot()
	if snap.Balance != 100 || len(snap.Transactions) != 0 {
		t.Fatalf("state mutated on failed send: %+v", snap)
	}
}

func TestBalanceNeverNegative(t *testing.T) {
	l := newTestLedger(&domain.Snapshot{Balance: 1000})

	// A mixed sequence of operations, some of which must be rejected.
	l.SendMoney("A", 600)
	l.SendMoney("B", 600) // rejected, would go negative
	l.AddToSavings(300)
	l.AddToSavings(300) // rejected
	l.ReceiveMoney("C", 50)
	l.SendMoney("D", -10) // rejected, not positive

	snap := l.Snapshot()
	if snap.Balance < 0 {
		t.Fatalf("balance went negative: %d", snap.Balance)
	}
	if snap.Balance != 150 {
		t.Fatalf("balance = %d, want 150", snap.Balance)
	}
}

func TestPayBill(t *testing.T) {
	l := newTestLedger(&domain.Snapshot{
		Balance: 45000,
		Bills: []domain.Bill{
			{ID: 1, Name: "Electricity", Amount: 1500, Status: domain.BillPending},
		},
	})

	if err := l.PayBill(1); err != nil {
		t.Fatalf("PayBill failed: %v", err)
	}

	snap := l.Snapshot()
	if snap.Balance != 43500 {
		t.Fatalf("balance = %d, want 43500", snap.Balance)
	}
	if snap.Bills[0].Status != domain.BillPaid {
		t.Fatalf("bill status = %q, want paid", snap.Bills[0].Status)
	}
	if len(snap.Transactions) != 1 || snap.Transactions[0].Name != "Electricity" {
		t.Fatalf("expected Electricity transaction, got %+v", snap.Transactions)
	}

	// Paying again must be a rejected no-op.
	if err := l.PayBill(1); err != ErrBillAlreadyPaid {
		t.Fatalf("second pay err = %v, want ErrBillAlreadyPaid", err)
	}
	if l.Snapshot().Balance != 43500 {
		t.Fatal("balance changed on rejected second payment")
	}
}

func TestPayBillNotFound(t *testing.T) {
	l := newTestLedger(&domain.Snapshot{Balance: 1000})
	if err := l.PayBill(42); err != ErrBillNotFound {
		t.Fatalf("err = %v, want ErrBillNotFound", err)
	}
}

func TestAddToSavingsNoTransactionRecord(t *testing.T) {
	l := newTestLedger(&domain.Snapshot{Balance: 10000, Savings: 12000})

	if err := l.AddToSavings(2000); err != nil {
		t.Fatalf("AddToSavings failed: %v", err)
	}

	snap := l.Snapshot()
	if snap.Balance != 8000 || snap.Savings != 14000 {
		t.Fatalf("balance/savings = %d/%d, want 8000/14000", snap.Balance, snap.Savings)
	}
	// Internal reallocation: no transaction is recorded.
	if len(snap.Transactions) != 0 {
		t.Fatalf("expected no transactions, got %d", len(snap.Transactions))
	}
}

func TestTransactionIDAssignment(t *testing.T) {
	l := newTestLedger(&domain.Snapshot{
		Balance: 10000,
		Transactions: []domain.Transaction{
			{ID: 7, Name: "Old", Amount: 100, Type: domain.DirectionSent},
			{ID: 3, Name: "Older", Amount: 100, Type: domain.DirectionSent},
		},
	})

	l.SendMoney("Rahul", 100)
	snap := l.Snapshot()
	if snap.Transactions[0].ID != 8 {
		t.Fatalf("new id = %d, want max+1 = 8", snap.Transactions[0].ID)
	}
}

func TestRequestMoney(t *testing.T) {
	l := newTestLedger(&domain.Snapshot{Balance: 100})

	// No balance precondition: a request does not move the user's funds.
	req, err := l.RequestMoney("Advait", 5000)
	if err != nil {
		t.Fatalf("RequestMoney failed: %v", err)
	}
	if req.Status != domain.RequestPending || req.RecipientName != "Advait" {
		t.Fatalf("wrong request: %+v", req)
	}

	snap := l.Snapshot()
	if snap.Balance != 100 {
		t.Fatalf("balance changed on request: %d", snap.Balance)
	}

	// Blank recipient gets a substitute name.
	req, err = l.RequestMoney("", 200)
	if err != nil {
		t.Fatalf("RequestMoney failed: %v", err)
	}
	if req.RecipientName != "Aarav" {
		t.Fatalf("recipient = %q, want substitute name", req.RecipientName)
	}
}

func TestCancelRequestPendingOnly(t *testing.T) {
	l := newTestLedger(&domain.Snapshot{
		MoneyRequests: []domain.MoneyRequest{
			{ID: 1, RecipientName: "Advait", Amount: 500, Status: domain.RequestPending},
			{ID: 2, RecipientName: "Rohit", Amount: 1000, Status: domain.RequestAccepted},
		},
	})

	if err := l.CancelRequest(1); err != nil {
		t.Fatalf("cancel pending failed: %v", err)
	}
	if err := l.CancelRequest(2); err != ErrRequestNotFound {
		t.Fatalf("cancel accepted err = %v, want ErrRequestNotFound", err)
	}

	snap := l.Snapshot()
	if len(snap.MoneyRequests) != 1 || snap.MoneyRequests[0].ID != 2 {
		t.Fatalf("wrong remaining requests: %+v", snap.MoneyRequests)
	}
}

func TestSaverNotifiedOnMutation(t *testing.T) {
	var saved []domain.Snapshot
	l := New(&domain.Snapshot{Balance: 1000}, func(s domain.Snapshot) {
		saved = append(saved, s)
	})
	l.now = fixedClock

	l.SendMoney("A", 100)
	l.SendMoney("B", 10000) // rejected, must not notify
	l.ReceiveMoney("C", 50)

	if len(saved) != 2 {
		t.Fatalf("saver called %d times, want 2", len(saved))
	}
	if saved[1].Balance != 950 {
		t.Fatalf("last saved balance = %d, want 950", saved[1].Balance)
	}
}

// Serializing a snapshot, reloading it and replaying the same operations
// must produce an identical trace.
func TestSnapshotRoundTripReproducesTrace(t *testing.T) {
	run := func(l *Ledger) domain.Snapshot {
		l.SendMoney("Rahul", 5000)
		l.PayBill(1)
		l.AddToSavings(2000)
		l.RequestMoney("Priya", 300)
		l.ReceiveMoney("Sneha", 750)
		return l.Snapshot()
	}

	base := &domain.Snapshot{
		Balance: 45000,
		Savings: 12000,
		Bills: []domain.Bill{
			{ID: 1, Name: "Electricity", Amount: 1500, DueDate: "5th Nov", Status: domain.BillPending},
		},
	}

	first := newTestLedger(base)
	want := run(first)

	data, err := json.Marshal(want)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var reloaded domain.Snapshot
	if err := json.Unmarshal(data, &reloaded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	second := newTestLedger(&reloaded)
	got := second.Snapshot()

	wantJSON, _ := json.Marshal(want)
	gotJSON, _ := json.Marshal(got)
	if string(wantJSON) != string(gotJSON) {
		t.Fatalf("round-trip mismatch:\nwant %s\ngot  %s", wantJSON, gotJSON)
	}

	// And replaying one more mutation on both produces the same result.
	first.SendMoney("Karan", 100)
	second.SendMoney("Karan", 100)
	aJSON, _ := json.Marshal(first.Snapshot())
	bJSON, _ := json.Marshal(second.Snapshot())
	if string(aJSON) != string(bJSON) {
		t.Fatalf("post-reload trace diverged:\n%s\n%s", aJSON, bJSON)
	}
}
