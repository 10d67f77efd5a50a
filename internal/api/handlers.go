package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/punchamoorthee/bankmitra/internal/chat"
	"github.com/punchamoorthee/bankmitra/internal/domain"
	"github.com/punchamoorthee/bankmitra/internal/ledger"
)

// Metrics
var (
	httpReqTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bankmitra_http_requests_total",
		Help: "Total HTTP requests",
	}, []string{"method", "endpoint", "status"})

	httpLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bankmitra_http_request_duration_seconds",
		Help:    "Request latency",
		Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2},
	}, []string{"method", "endpoint"})
)

// Request DTOs.
type ChatRequest struct {
	Utterance string `json:"utterance"`
	Language  string `json:"language"`
}

type TransferRequest struct {
	RecipientName string       `json:"recipient_name"`
	Amount        domain.Money `json:"amount"`
}

type ReceiveRequest struct {
	SenderName string       `json:"sender_name"`
	Amount     domain.Money `json:"amount"`
}

type MoneyRequestRequest struct {
	RecipientName string       `json:"recipient_name"`
	Amount        domain.Money `json:"amount"`
}

type Handler struct {
	session *chat.Session
	ledger  *ledger.Ledger
	delay   time.Duration
	log     *zap.Logger
}

// NewHandler wires the transport over one session and its ledger. delay is
// the artificial thinking pause applied to chat turns; it lives here, not in
// the session, because it is a UX affordance rather than engine behavior.
func NewHandler(session *chat.Session, l *ledger.Ledger, delay time.Duration, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{session: session, ledger: l, delay: delay, log: log}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"}, "GET", "/health")
}

func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	timer := prometheus.NewTimer(httpLatency.WithLabelValues("POST", "/chat"))
	defer timer.ObserveDuration()

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid JSON", "POST", "/chat")
		return
	}
	if req.Utterance == "" {
		h.respondError(w, http.StatusBadRequest, "Utterance is required", "POST", "/chat")
		return
	}

	h.think(r)
	msg := h.session.HandleTurn(r.Context(), req.Utterance, req.Language)
	h.respondJSON(w, http.StatusOK, map[string]domain.Message{"message": msg}, "POST", "/chat")
}

func (h *Handler) ChatHistory(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.session.History(), "GET", "/chat/history")
}

func (h *Handler) GetAccount(w http.ResponseWriter, r *http.Request) {
	snap := h.ledger.Snapshot()
	h.respondJSON(w, http.StatusOK, map[string]domain.Money{
		"balance": snap.Balance,
		"savings": snap.Savings,
	}, "GET", "/account")
}

func (h *Handler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	snap := h.ledger.Snapshot()
	h.respondJSON(w, http.StatusOK, snap.Transactions, "GET", "/transactions")
}

func (h *Handler) GetBills(w http.ResponseWriter, r *http.Request) {
	snap := h.ledger.Snapshot()
	h.respondJSON(w, http.StatusOK, snap.Bills, "GET", "/bills")
}

func (h *Handler) GetRequests(w http.ResponseWriter, r *http.Request) {
	snap := h.ledger.Snapshot()
	h.respondJSON(w, http.StatusOK, snap.MoneyRequests, "GET", "/requests")
}

// CreateTransfer is the direct (non-conversational) send-money path.
func (h *Handler) CreateTransfer(w http.ResponseWriter, r *http.Request) {
	timer := prometheus.NewTimer(httpLatency.WithLabelValues("POST", "/transfers"))
	defer timer.ObserveDuration()

	var req TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid JSON", "POST", "/transfers")
		return
	}
	if req.RecipientName == "" {
		h.respondError(w, http.StatusUnprocessableEntity, "Recipient name is required", "POST", "/transfers")
		return
	}
	if err := h.ledger.SendMoney(req.RecipientName, req.Amount); err != nil {
		h.respondLedgerError(w, err, "POST", "/transfers")
		return
	}
	h.respondJSON(w, http.StatusCreated, h.ledger.Snapshot().Transactions[0], "POST", "/transfers")
}

// Receive credits the account, e.g. after a scanned QR code resolves to a
// sender and amount.
func (h *Handler) Receive(w http.ResponseWriter, r *http.Request) {
	var req ReceiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid JSON", "POST", "/receive")
		return
	}
	if req.SenderName == "" {
		h.respondError(w, http.StatusUnprocessableEntity, "Sender name is required", "POST", "/receive")
		return
	}
	if err := h.ledger.ReceiveMoney(req.SenderName, req.Amount); err != nil {
		h.respondLedgerError(w, err, "POST", "/receive")
		return
	}
	h.respondJSON(w, http.StatusCreated, h.ledger.Snapshot().Transactions[0], "POST", "/receive")
}

func (h *Handler) PayBill(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid bill id", "POST", "/bills/{id}/pay")
		return
	}
	if err := h.ledger.PayBill(id); err != nil {
		h.respondLedgerError(w, err, "POST", "/bills/{id}/pay")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]string{"status": "paid"}, "POST", "/bills/{id}/pay")
}

func (h *Handler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req MoneyRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid JSON", "POST", "/requests")
		return
	}
	created, err := h.ledger.RequestMoney(req.RecipientName, req.Amount)
	if err != nil {
		h.respondLedgerError(w, err, "POST", "/requests")
		return
	}
	h.respondJSON(w, http.StatusCreated, created, "POST", "/requests")
}

func (h *Handler) CancelRequest(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request id", "DELETE", "/requests/{id}")
		return
	}
	if err := h.ledger.CancelRequest(id); err != nil {
		h.respondLedgerError(w, err, "DELETE", "/requests/{id}")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]string{"status": "cancelled"}, "DELETE", "/requests/{id}")
}

// think pauses to simulate the assistant composing a reply. Context-aware
// so a dropped client does not hold the worker.
func (h *Handler) think(r *http.Request) {
	if h.delay <= 0 {
		return
	}
	select {
	case <-time.After(h.delay):
	case <-r.Context().Done():
	}
}

func (h *Handler) respondLedgerError(w http.ResponseWriter, err error, method, endpoint string) {
	switch {
	case errors.Is(err, ledger.ErrInsufficientFunds):
		h.respondError(w, http.StatusUnprocessableEntity, "Insufficient funds", method, endpoint)
	case errors.Is(err, ledger.ErrInvalidAmount):
		h.respondError(w, http.StatusUnprocessableEntity, "Amount must be positive", method, endpoint)
	case errors.Is(err, ledger.ErrBillNotFound), errors.Is(err, ledger.ErrRequestNotFound):
		h.respondError(w, http.StatusNotFound, "Not Found", method, endpoint)
	case errors.Is(err, ledger.ErrBillAlreadyPaid):
		h.respondError(w, http.StatusConflict, "Bill already paid", method, endpoint)
	default:
		h.respondError(w, http.StatusInternalServerError, err.Error(), method, endpoint)
	}
}

// Helpers
func (h *Handler) respondJSON(w http.ResponseWriter, code int, payload interface{}, method, endpoint string) {
	httpReqTotal.WithLabelValues(method, endpoint, strconv.Itoa(code)).Inc()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

func (h *Handler) respondError(w http.ResponseWriter, code int, msg, method, endpoint string) {
	h.respondJSON(w, code, map[string]string{"error": msg}, method, endpoint)
}
