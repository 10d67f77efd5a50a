package api

import (
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	"github.com/punchamoorthee/bankmitra/internal/domain"
)

func TestChatSocket(t *testing.T) {
	srv, l := newTestServer(&domain.Snapshot{Balance: 45000})
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/chat"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer conn.Close()

	if err := conn.WriteJSON(ChatRequest{Utterance: "send 5000 to Rahul", Language: "en-US"}); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	var msg domain.Message
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if msg.Role != domain.RoleAssistant || !strings.Contains(msg.Text, "Rahul") {
		t.Fatalf("unexpected reply: %+v", msg)
	}

	if err := conn.WriteJSON(ChatRequest{Utterance: "yes"}); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if l.Snapshot().Balance != 40000 {
		t.Fatalf("balance = %d, want 40000", l.Snapshot().Balance)
	}
}

func TestChatSocketPlainTextFrame(t *testing.T) {
	srv, _ := newTestServer(&domain.Snapshot{Balance: 45000})
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/chat"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer conn.Close()

	// A bare text frame is treated as the utterance itself.
	if err := conn.WriteMessage(websocket.TextMessage, []byte("what is my balance")); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	var msg domain.Message
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if !strings.Contains(msg.Text, "₹45,000") {
		t.Fatalf("unexpected reply: %q", msg.Text)
	}
}
