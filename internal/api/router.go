package api

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the HTTP surface: health, metrics, the chat transport
// (REST and websocket) and the direct account operations.
func NewRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.Handle("/metrics", promhttp.Handler())
	r.HandleFunc("/health", h.Health).Methods("GET")
	r.HandleFunc("/ws/chat", h.ChatSocket)

	apiV1 := r.PathPrefix("/api/v1").Subrouter()
	apiV1.HandleFunc("/chat", h.Chat).Methods("POST")
	apiV1.HandleFunc("/chat/history", h.ChatHistory).Methods("GET")
	apiV1.HandleFunc("/account", h.GetAccount).Methods("GET")
	apiV1.HandleFunc("/transactions", h.GetTransactions).Methods("GET")
	apiV1.HandleFunc("/bills", h.GetBills).Methods("GET")
	apiV1.HandleFunc("/bills/{id}/pay", h.PayBill).Methods("POST")
	apiV1.HandleFunc("/transfers", h.CreateTransfer).Methods("POST")
	apiV1.HandleFunc("/receive", h.Receive).Methods("POST")
	apiV1.HandleFunc("/requests", h.GetRequests).Methods("GET")
	apiV1.HandleFunc("/requests", h.CreateRequest).Methods("POST")
	apiV1.HandleFunc("/requests/{id}", h.CancelRequest).Methods("DELETE")

	return r
}
