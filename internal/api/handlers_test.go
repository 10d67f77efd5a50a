package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/punchamoorthee/bankmitra/internal/chat"
	"github.com/punchamoorthee/bankmitra/internal/domain"
	"github.com/punchamoorthee/bankmitra/internal/intent"
	"github.com/punchamoorthee/bankmitra/internal/ledger"
)

func newTestServer(snap *domain.Snapshot) (*httptest.Server, *ledger.Ledger) {
	l := ledger.New(snap, nil)
	d := intent.NewDetector([]string{"electricity", "internet", "water", "mobile"})
	s := chat.NewSession(l, d, chat.DefaultVocabulary(), "en-US", zap.NewNop())
	h := NewHandler(s, l, 0, zap.NewNop())
	return httptest.NewServer(NewRouter(h)), l
}

func postJSON(t *testing.T, url string, payload interface{}) *http.Response {
	t.Helper()
	body, _ := json.Marshal(payload)
	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s failed: %v", url, err)
	}
	return resp
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(&domain.Snapshot{Balance: 1000})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestChatEndpoint(t *testing.T) {
	srv, l := newTestServer(&domain.Snapshot{Balance: 45000})
	defer srv.Close()

	resp := postJSON(t, srv.URL+"/api/v1/chat", ChatRequest{Utterance: "send 5000 to Rahul", Language: "en-US"})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var out map[string]domain.Message
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	msg := out["message"]
	if msg.Role != domain.RoleAssistant || !strings.Contains(msg.Text, "Rahul") {
		t.Fatalf("unexpected message: %+v", msg)
	}

	resp = postJSON(t, srv.URL+"/api/v1/chat", ChatRequest{Utterance: "yes"})
	resp.Body.Close()
	if l.Snapshot().Balance != 40000 {
		t.Fatalf("balance = %d, want 40000", l.Snapshot().Balance)
	}
}

func TestChatRejectsEmptyUtterance(t *testing.T) {
	srv, _ := newTestServer(&domain.Snapshot{Balance: 1000})
	defer srv.Close()

	resp := postJSON(t, srv.URL+"/api/v1/chat", ChatRequest{})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestCreateTransfer(t *testing.T) {
	srv, l := newTestServer(&domain.Snapshot{Balance: 1000})
	defer srv.Close()

	resp := postJSON(t, srv.URL+"/api/v1/transfers", TransferRequest{RecipientName: "Priya", Amount: 400})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
	if l.Snapshot().Balance != 600 {
		t.Fatalf("balance = %d, want 600", l.Snapshot().Balance)
	}
}

func TestCreateTransferInsufficient(t *testing.T) {
	srv, l := newTestServer(&domain.Snapshot{Balance: 100})
	defer srv.Close()

	resp := postJSON(t, srv.URL+"/api/v1/transfers", TransferRequest{RecipientName: "Priya", Amount: 400})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", resp.StatusCode)
	}
	if l.Snapshot().Balance != 100 {
		t.Fatal("balance changed on rejected transfer")
	}
}

func TestPayBillEndpoint(t *testing.T) {
	srv, l := newTestServer(&domain.Snapshot{
		Balance: 5000,
		Bills:   []domain.Bill{{ID: 1, Name: "Internet", Amount: 800, Status: domain.BillPending}},
	})
	defer srv.Close()

	resp := postJSON(t, srv.URL+"/api/v1/bills/1/pay", nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if l.Snapshot().Bills[0].Status != domain.BillPaid {
		t.Fatal("bill not marked paid")
	}

	// Unknown bill is a 404, paying twice a 409.
	resp = postJSON(t, srv.URL+"/api/v1/bills/99/pay", nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
	resp = postJSON(t, srv.URL+"/api/v1/bills/1/pay", nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("status = %d, want 409", resp.StatusCode)
	}
}

func TestRequestsEndpoints(t *testing.T) {
	srv, l := newTestServer(&domain.Snapshot{Balance: 100})
	defer srv.Close()

	resp := postJSON(t, srv.URL+"/api/v1/requests", MoneyRequestRequest{RecipientName: "Advait", Amount: 500})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
	var created domain.MoneyRequest
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	resp.Body.Close()

	req, _ := http.NewRequest(http.MethodDelete, srv.URL+"/api/v1/requests/1", nil)
	delResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE failed: %v", err)
	}
	delResp.Body.Close()
	if delResp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", delResp.StatusCode)
	}
	if len(l.Snapshot().MoneyRequests) != 0 {
		t.Fatal("request not removed")
	}
}

func TestChatHistoryEndpoint(t *testing.T) {
	srv, _ := newTestServer(&domain.Snapshot{Balance: 1000})
	defer srv.Close()

	postJSON(t, srv.URL+"/api/v1/chat", ChatRequest{Utterance: "hello"}).Body.Close()

	resp, err := http.Get(srv.URL + "/api/v1/chat/history")
	if err != nil {
		t.Fatalf("GET history failed: %v", err)
	}
	defer resp.Body.Close()

	var history []domain.Message
	if err := json.NewDecoder(resp.Body).Decode(&history); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("history length = %d, want 2", len(history))
	}
}
