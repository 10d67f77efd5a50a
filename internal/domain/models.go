package domain

// Money amounts are whole rupees. Paise are not modeled anywhere in the
// system, so int64 is exact.
type Money = int64

// Direction of a transaction relative to the account holder.
const (
	DirectionSent     = "sent"
	DirectionReceived = "received"
)

// Bill statuses. A bill moves pending -> paid exactly once.
const (
	BillPending = "pending"
	BillPaid    = "paid"
)

// Money request statuses.
const (
	RequestPending  = "pending"
	RequestAccepted = "accepted"
	RequestDeclined = "declined"
)

// Transaction is one completed movement of money in or out of the account.
// Records are append-only and ordered newest first.
type Transaction struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Amount Money  `json:"amount"`
	Type   string `json:"type"`
	Date   string `json:"date"`
	Time   string `json:"time"`
}

// Bill is a payable item in the bill catalog.
type Bill struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Amount  Money  `json:"amount"`
	DueDate string `json:"due_date"`
	Status  string `json:"status"`
}

// MoneyRequest is an outgoing ask for funds. It never moves the balance;
// the counterpart accepting is not modeled.
type MoneyRequest struct {
	ID            int64  `json:"id"`
	RecipientName string `json:"recipient_name"`
	Amount        Money  `json:"amount"`
	Status        string `json:"status"`
	Date          string `json:"date"`
	Time          string `json:"time"`
}

// Snapshot is a complete serializable copy of account state. It is what the
// persistence layer stores and what read-only consumers see.
type Snapshot struct {
	Balance       Money          `json:"balance"`
	Savings       Money          `json:"savings"`
	Transactions  []Transaction  `json:"transactions"`
	Bills         []Bill         `json:"bills"`
	MoneyRequests []MoneyRequest `json:"money_requests"`
}

// PendingBills returns the bills still awaiting payment.
func (s *Snapshot) PendingBills() []Bill {
	var pending []Bill
	for _, b := range s.Bills {
		if b.Status == BillPending {
			pending = append(pending, b)
		}
	}
	return pending
}

// IntentKind tags the transactional action a free-text utterance asks for.
type IntentKind string

const (
	IntentSendMoney    IntentKind = "send_money"
	IntentPayBill      IntentKind = "pay_bill"
	IntentRequestMoney IntentKind = "request_money"
	IntentAddSavings   IntentKind = "add_savings"
)

// Intent is the structured form of a detected transactional utterance. An
// Intent is not applied until the user explicitly confirms it.
type Intent struct {
	Kind          IntentKind `json:"kind"`
	Amount        Money      `json:"amount"`
	RecipientName string     `json:"recipient_name,omitempty"`
	BillID        int64      `json:"bill_id,omitempty"`
	BillName      string     `json:"bill_name,omitempty"`
}

// Message roles in the conversation transcript.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one transcript entry. Assistant messages that propose a
// transaction carry the intent awaiting confirmation.
type Message struct {
	ID     string  `json:"id"`
	Role   string  `json:"role"`
	Text   string  `json:"text"`
	Action *Intent `json:"action,omitempty"`
}
