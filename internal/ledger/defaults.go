package ledger

import "github.com/punchamoorthee/bankmitra/internal/domain"

// DefaultSnapshot is the state a brand new session starts from when the
// store has nothing persisted yet.
func DefaultSnapshot() domain.Snapshot {
	return domain.Snapshot{
		Balance: 45000,
		Savings: 12000,
		Bills: []domain.Bill{
			{ID: 1, Name: "Electricity", Amount: 1500, DueDate: "5th Nov", Status: domain.BillPending},
			{ID: 2, Name: "Internet", Amount: 800, DueDate: "10th Nov", Status: domain.BillPending},
			{ID: 3, Name: "Water", Amount: 400, DueDate: "15th Nov", Status: domain.BillPaid},
			{ID: 4, Name: "Mobile", Amount: 599, DueDate: "20th Nov", Status: domain.BillPending},
		},
		Transactions: []domain.Transaction{
			{ID: 1, Name: "Grocery Store", Amount: 450, Type: domain.DirectionSent, Date: "Today", Time: "2:30 PM"},
			{ID: 2, Name: "Salary Credit", Amount: 25000, Type: domain.DirectionReceived, Date: "Yesterday", Time: "10:00 AM"},
			{ID: 3, Name: "Electricity Bill", Amount: 1200, Type: domain.DirectionSent, Date: "2 days ago", Time: "3:15 PM"},
			{ID: 4, Name: "Freelance Payment", Amount: 5000, Type: domain.DirectionReceived, Date: "3 days ago", Time: "11:45 AM"},
			{ID: 5, Name: "Restaurant", Amount: 850, Type: domain.DirectionSent, Date: "4 days ago", Time: "8:20 PM"},
		},
		MoneyRequests: []domain.MoneyRequest{
			{ID: 1, RecipientName: "Advait", Amount: 500, Status: domain.RequestPending, Date: "Today", Time: "1:15 PM"},
			{ID: 2, RecipientName: "Rohit", Amount: 1000, Status: domain.RequestAccepted, Date: "Yesterday", Time: "4:30 PM"},
			{ID: 3, RecipientName: "Priya", Amount: 250, Status: domain.RequestDeclined, Date: "2 days ago", Time: "11:20 AM"},
		},
	}
}
