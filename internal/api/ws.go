package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Single-user demo; the UI is served from anywhere.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ChatSocket serves the conversation over a websocket. Each text frame is
// one turn ({"utterance": ..., "language": ...}); the reply frame is the
// assistant message. The single read loop serializes turns strictly FIFO,
// so a fast second utterance cannot race the pending-action slot.
func (h *Handler) ChatSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()
	h.log.Info("chat socket opened", zap.String("remote", conn.RemoteAddr().String()))

	for {
		_, frame, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Warn("chat socket read failed", zap.Error(err))
			}
			return
		}

		var req ChatRequest
		if err := json.Unmarshal(frame, &req); err != nil || req.Utterance == "" {
			// Fall back to treating the raw frame as the utterance.
			req = ChatRequest{Utterance: string(frame)}
		}
		if req.Utterance == "" {
			continue
		}

		h.think(r)
		msg := h.session.HandleTurn(r.Context(), req.Utterance, req.Language)
		if err := conn.WriteJSON(msg); err != nil {
			h.log.Warn("chat socket write failed", zap.Error(err))
			return
		}
	}
}
