package intent

import (
	"regexp"
	"strings"

	"github.com/punchamoorthee/bankmitra/internal/domain"
)

// Placeholder recipients used when extraction finds no name. The intent is
// still complete; the unresolved name travels into the confirmation prompt.
const (
	UnknownRecipient = "Unknown"
	DefaultRequester = "Friend"
)

// rule is one entry in the ordered classifier. Rules are evaluated top to
// bottom and the first one that matches AND builds a complete intent wins.
// A rule whose pattern matches but whose parameters cannot be resolved
// (e.g. no pending bill found) yields nil and evaluation continues.
type rule struct {
	kind  domain.IntentKind
	match func(lower string) bool
	build func(orig, lower string, snap *domain.Snapshot) *domain.Intent
}

// Detector classifies utterances into transaction intents. The bill category
// vocabulary is injected so the same engine works against a different bill
// catalog.
type Detector struct {
	rules []rule
}

// NewDetector builds the classifier for the given bill categories.
func NewDetector(categories []string) *Detector {
	sendRe := regexp.MustCompile(`send|transfer|pay|give`)
	sendGuardRe := regexp.MustCompile(`bill|request|add.*savings|save`)
	requestRe := regexp.MustCompile(`request|ask.*for|money.*from`)
	savingsRe := regexp.MustCompile(`save|add.*savings|transfer.*savings|move.*savings`)

	escaped := make([]string, len(categories))
	for i, c := range categories {
		escaped[i] = regexp.QuoteMeta(strings.ToLower(c))
	}
	catAlt := strings.Join(escaped, "|")
	billRe := regexp.MustCompile(`pay.*bill|bill.*pay|pay.*(?:` + catAlt + `)`)
	categoryRe := regexp.MustCompile(`(?:` + catAlt + `)`)

	d := &Detector{}
	d.rules = []rule{
		{
			kind: domain.IntentSendMoney,
			// The guard keeps "pay my bill" and "move to savings" out of
			// the peer-transfer path.
			match: func(lower string) bool {
				return sendRe.MatchString(lower) && !sendGuardRe.MatchString(lower)
			},
			build: func(orig, lower string, snap *domain.Snapshot) *domain.Intent {
				amount, ok := ExtractAmount(orig)
				if !ok {
					return nil
				}
				recipient, ok := ExtractRecipient(orig)
				if !ok {
					recipient = UnknownRecipient
				}
				return &domain.Intent{Kind: domain.IntentSendMoney, Amount: amount, RecipientName: recipient}
			},
		},
		{
			kind:  domain.IntentPayBill,
			match: billRe.MatchString,
			build: func(orig, lower string, snap *domain.Snapshot) *domain.Intent {
				if category := categoryRe.FindString(lower); category != "" {
					if bill, ok := findPendingBillByName(snap, category); ok {
						return &domain.Intent{Kind: domain.IntentPayBill, Amount: bill.Amount, BillID: bill.ID, BillName: bill.Name}
					}
					return nil
				}
				if amount, ok := ExtractAmount(orig); ok {
					if bill, ok := findPendingBillByAmount(snap, amount); ok {
						return &domain.Intent{Kind: domain.IntentPayBill, Amount: bill.Amount, BillID: bill.ID, BillName: bill.Name}
					}
				}
				return nil
			},
		},
		{
			kind:  domain.IntentRequestMoney,
			match: requestRe.MatchString,
			build: func(orig, lower string, snap *domain.Snapshot) *domain.Intent {
				amount, ok := ExtractAmount(orig)
				if !ok {
					return nil
				}
				recipient, ok := ExtractRecipient(orig)
				if !ok {
					recipient = DefaultRequester
				}
				return &domain.Intent{Kind: domain.IntentRequestMoney, Amount: amount, RecipientName: recipient}
			},
		},
		{
			kind:  domain.IntentAddSavings,
			match: savingsRe.MatchString,
			build: func(orig, lower string, snap *domain.Snapshot) *domain.Intent {
				amount, ok := ExtractAmount(orig)
				if !ok {
					return nil
				}
				return &domain.Intent{Kind: domain.IntentAddSavings, Amount: amount}
			},
		},
	}
	return d
}

// Detect classifies an utterance against a snapshot of account state. It
// returns nil when no complete transaction intent is present; the caller
// then falls through to the informational response path.
func (d *Detector) Detect(utterance string, snap *domain.Snapshot) *domain.Intent {
	lower := strings.ToLower(utterance)
	for _, r := range d.rules {
		if !r.match(lower) {
			continue
		}
		if in := r.build(utterance, lower, snap); in != nil {
			return in
		}
	}
	return nil
}

func findPendingBillByName(snap *domain.Snapshot, name string) (domain.Bill, bool) {
	for _, b := range snap.Bills {
		if b.Status == domain.BillPending && strings.EqualFold(b.Name, name) {
			return b, true
		}
	}
	return domain.Bill{}, false
}

func findPendingBillByAmount(snap *domain.Snapshot, amount domain.Money) (domain.Bill, bool) {
	for _, b := range snap.Bills {
		if b.Status == domain.BillPending && b.Amount == amount {
			return b, true
		}
	}
	return domain.Bill{}, false
}
