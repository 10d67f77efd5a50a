// Package store persists account snapshots to a key-addressed backing
// store. Each logical section of the snapshot (balance, savings,
// transactions, bills, money requests) is stored under its own key as JSON,
// mirroring how the assistant's previous incarnation kept them in browser
// storage.
package store

import (
	"context"
	"errors"

	"github.com/punchamoorthee/bankmitra/internal/domain"
)

// ErrNoSnapshot is returned by Load when nothing has been persisted yet;
// callers fall back to the built-in defaults.
var ErrNoSnapshot = errors.New("no snapshot stored")

// Logical keys. Bills are persisted too even though the original storage
// dropped them; a snapshot that loses its bill statuses cannot reproduce the
// same mutation trace after a reload.
const (
	KeyBalance       = "balance"
	KeySavings       = "savings"
	KeyTransactions  = "transactions"
	KeyBills         = "bills"
	KeyMoneyRequests = "moneyRequests"
)

var allKeys = []string{KeyBalance, KeySavings, KeyTransactions, KeyBills, KeyMoneyRequests}

// SnapshotStore is the persistence port. Save is called after every ledger
// mutation and treated as best effort by callers.
type SnapshotStore interface {
	Load(ctx context.Context) (*domain.Snapshot, error)
	Save(ctx context.Context, snap *domain.Snapshot) error
	Close()
}
