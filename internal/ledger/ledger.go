package ledger

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/punchamoorthee/bankmitra/internal/domain"
)

var (
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrBillNotFound      = errors.New("bill not found")
	ErrBillAlreadyPaid   = errors.New("bill already paid")
	ErrRequestNotFound   = errors.New("money request not found")
)

// Saver receives the new state after every successful mutation. Persistence
// is best effort; the ledger does not care whether the save succeeds.
type Saver func(domain.Snapshot)

// randomNames fills in a recipient when a money request arrives without one.
var randomNames = []string{
	"Aarav", "Vivaan", "Aditya", "Arjun", "Rohan", "Nikhil", "Priya",
	"Ananya", "Diya", "Sakshi", "Rahul", "Karan", "Sneha", "Pooja", "Neha",
	"Akshay", "Varun", "Ravi", "Sanjana", "Anjali",
}

// Ledger is the authoritative holder of balance, savings, transactions,
// bills and money requests for one session. Every mutation re-validates its
// preconditions, so the balance can never go negative regardless of what the
// caller already checked.
type Ledger struct {
	mu       sync.Mutex
	balance  domain.Money
	savings  domain.Money
	txns     []domain.Transaction
	bills    []domain.Bill
	requests []domain.MoneyRequest

	onChange Saver
	now      func() time.Time
	pickName func() string
}

// New restores a ledger from a snapshot. A nil snapshot starts from the
// built-in defaults.
func New(snap *domain.Snapshot, onChange Saver) *Ledger {
	if snap == nil {
		d := DefaultSnapshot()
		snap = &d
	}
	l := &Ledger{
		balance:  snap.Balance,
		savings:  snap.Savings,
		txns:     append([]domain.Transaction(nil), snap.Transactions...),
		bills:    append([]domain.Bill(nil), snap.Bills...),
		requests: append([]domain.MoneyRequest(nil), snap.MoneyRequests...),
		onChange: onChange,
		now:      time.Now,
		pickName: func() string { return randomNames[rand.Intn(len(randomNames))] },
	}
	return l
}

// Snapshot returns a deep copy of the current state.
func (l *Ledger) Snapshot() domain.Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshotLocked()
}

func (l *Ledger) snapshotLocked() domain.Snapshot {
	return domain.Snapshot{
		Balance:       l.balance,
		Savings:       l.savings,
		Transactions:  append([]domain.Transaction(nil), l.txns...),
		Bills:         append([]domain.Bill(nil), l.bills...),
		MoneyRequests: append([]domain.MoneyRequest(nil), l.requests...),
	}
}

func (l *Ledger) notifyLocked() {
	if l.onChange != nil {
		l.onChange(l.snapshotLocked())
	}
}

// SendMoney debits the balance and records a sent transaction.
func (l *Ledger) SendMoney(recipientName string, amount domain.Money) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if l.balance < amount {
		return ErrInsufficientFunds
	}
	l.balance -= amount
	l.appendTxnLocked(recipientName, amount, domain.DirectionSent)
	l.notifyLocked()
	return nil
}

// ReceiveMoney credits the balance and records a received transaction.
func (l *Ledger) ReceiveMoney(senderName string, amount domain.Money) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if amount <= 0 {
		return ErrInvalidAmount
	}
	l.balance += amount
	l.appendTxnLocked(senderName, amount, domain.DirectionReceived)
	l.notifyLocked()
	return nil
}

// PayBill pays a pending bill, marks it paid and records a sent transaction
// named after the bill.
func (l *Ledger) PayBill(billID int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	idx := -1
	for i := range l.bills {
		if l.bills[i].ID == billID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrBillNotFound
	}
	bill := l.bills[idx]
	if bill.Status != domain.BillPending {
		return ErrBillAlreadyPaid
	}
	if l.balance < bill.Amount {
		return ErrInsufficientFunds
	}
	l.balance -= bill.Amount
	l.bills[idx].Status = domain.BillPaid
	l.appendTxnLocked(bill.Name, bill.Amount, domain.DirectionSent)
	l.notifyLocked()
	return nil
}

// AddToSavings moves money from the balance into savings. This is an
// internal reallocation, not a counterparty transfer, so no transaction
// record is appended.
func (l *Ledger) AddToSavings(amount domain.Money) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if l.balance < amount {
		return ErrInsufficientFunds
	}
	l.balance -= amount
	l.savings += amount
	l.notifyLocked()
	return nil
}

// RequestMoney creates a pending money request. The balance is untouched; a
// request is not a transfer until the counterpart accepts, which this system
// does not model. A blank recipient gets a random name.
func (l *Ledger) RequestMoney(recipientName string, amount domain.Money) (domain.MoneyRequest, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if amount <= 0 {
		return domain.MoneyRequest{}, ErrInvalidAmount
	}
	name := recipientName
	if name == "" {
		name = l.pickName()
	}
	req := domain.MoneyRequest{
		ID:            nextID(requestIDs(l.requests)),
		RecipientName: name,
		Amount:        amount,
		Status:        domain.RequestPending,
		Date:          "Today",
		Time:          l.now().Format("3:04 PM"),
	}
	l.requests = append([]domain.MoneyRequest{req}, l.requests...)
	l.notifyLocked()
	return req, nil
}

// CancelRequest removes a money request while it is still pending.
func (l *Ledger) CancelRequest(requestID int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.requests {
		if l.requests[i].ID == requestID {
			if l.requests[i].Status != domain.RequestPending {
				return ErrRequestNotFound
			}
			l.requests = append(l.requests[:i], l.requests[i+1:]...)
			l.notifyLocked()
			return nil
		}
	}
	return ErrRequestNotFound
}

func (l *Ledger) appendTxnLocked(name string, amount domain.Money, direction string) {
	txn := domain.Transaction{
		ID:     nextID(txnIDs(l.txns)),
		Name:   name,
		Amount: amount,
		Type:   direction,
		Date:   "Today",
		Time:   l.now().Format("3:04 PM"),
	}
	l.txns = append([]domain.Transaction{txn}, l.txns...)
}

// nextID assigns one greater than the current maximum, or 1 when empty.
func nextID(ids []int64) int64 {
	var max int64
	for _, id := range ids {
		if id > max {
			max = id
		}
	}
	return max + 1
}

func txnIDs(txns []domain.Transaction) []int64 {
	ids := make([]int64, len(txns))
	for i, t := range txns {
		ids[i] = t.ID
	}
	return ids
}

func requestIDs(reqs []domain.MoneyRequest) []int64 {
	ids := make([]int64, len(reqs))
	for i, r := range reqs {
		ids[i] = r.ID
	}
	return ids
}
