package chat

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsRequest is the incoming WebSocket message format.
type wsRequest struct {
	Message        string       `json:"message"`
	ConversationID string       `json:"conversation_id"`
	UserContext    *UserContext `json:"user_context,omitempty"`
}

// wsError is the outgoing error frame; successful turns are written as
// plain Response frames.
type wsError struct {
	Type           string    `json:"type"`
	Error          string    `json:"error"`
	ConversationID string    `json:"conversation_id,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}

func handleWebSocket(orch *Orchestrator, enabled bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !enabled {
			http.Error(w, `{"error":"chatbot feature is disabled"}`, http.StatusNotImplemented)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			orch.logger.Error().Err(err).Msg("websocket upgrade failed")
			return
		}
		defer conn.Close()

		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					orch.logger.Warn().Err(err).Msg("websocket read failed")
				}
				return
			}

			var req wsRequest
			if err := json.Unmarshal(msg, &req); err != nil {
				sendWSError(conn, orch, "", "ungültiges Nachrichtenformat")
				continue
			}
			if req.Message == "" {
				sendWSError(conn, orch, req.ConversationID, "message is required")
				continue
			}

			resp := orch.ProcessMessage(r.Context(), Request{
				Message:        req.Message,
				ConversationID: req.ConversationID,
				UserContext:    req.UserContext,
			})
			if err := conn.WriteJSON(resp); err != nil {
				orch.logger.Warn().Err(err).Msg("websocket write failed")
				return
			}
		}
	}
}

func sendWSError(conn *websocket.Conn, orch *Orchestrator, conversationID, message string) {
	frame := wsError{
		Type:           "error",
		Error:          message,
		ConversationID: conversationID,
		Timestamp:      time.Now().UTC(),
	}
	if err := conn.WriteJSON(frame); err != nil {
		orch.logger.Warn().Err(err).Msg("websocket error write failed")
	}
}
