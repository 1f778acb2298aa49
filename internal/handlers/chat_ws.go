package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/reverie-app/journal-backend/internal/middleware"
	"github.com/reverie-app/journal-backend/internal/models"
	"github.com/reverie-app/journal-backend/internal/services"
)

var chatUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// CORS is enforced at the HTTP layer; the WebSocket handshake itself
		// is authenticated by token.
		return true
	},
}

// ChatClientMessage is a frame from the frontend.
type ChatClientMessage struct {
	Type string `json:"type"` // "message" or "ping"
	Text string `json:"text,omitempty"`
}

// ChatServerMessage is a frame sent to the frontend.
type ChatServerMessage struct {
	Type  string `json:"type"`
	Role  string `json:"role,omitempty"`
	Text  string `json:"text,omitempty"`
	Error string `json:"error,omitempty"`
}

const (
	chatReadLimit    = 64 * 1024
	chatIdleDeadline = 5 * time.Minute
	chatHistoryCap   = 20 // turns kept in the completion context per connection
)

// ChatWebSocket holds a realtime supportive conversation. The token comes
// from the Authorization header or, for browser WebSocket clients, the
// `token` query parameter. Each connection is one conversation: history lives
// in memory for the completion context and every turn is persisted async.
func ChatWebSocket(w http.ResponseWriter, r *http.Request) {
	token := middleware.ExtractBearerToken(r.Header.Get("Authorization"))
	if token == "" {
		token = r.URL.Query().Get("token")
	}
	if token == "" {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	userID, err := middleware.UserIDFromToken(token, cfg.JWTSecret)
	if err != nil {
		writeError(w, http.StatusForbidden, "Invalid or expired token")
		return
	}

	sessionType := r.URL.Query().Get("session_type")
	if sessionType == "" {
		sessionType = "general"
	}
	systemPrompt := services.TherapyPrompt(sessionType)

	conn, err := chatUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	conversationID := uuid.NewString()
	var history []services.ChatTurn

	conn.SetReadLimit(chatReadLimit)
	conn.SetReadDeadline(time.Now().Add(chatIdleDeadline))

	for {
		var msg ChatClientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		conn.SetReadDeadline(time.Now().Add(chatIdleDeadline))

		switch msg.Type {
		case "ping":
			conn.WriteJSON(ChatServerMessage{Type: "pong"})

		case "message":
			if msg.Text == "" {
				continue
			}

			services.SaveChatMessageAsync(models.ChatMessage{
				UserID:         userID,
				ConversationID: conversationID,
				SessionType:    sessionType,
				Role:           "user",
				Text:           msg.Text,
			})

			ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
			reply, err := services.AI.CompleteWithSystem(ctx, systemPrompt, history, msg.Text)
			cancel()
			if err != nil {
				log.Printf("websocket completion failed: %v", err)
				conn.WriteJSON(ChatServerMessage{Type: "error", Error: "Failed to get AI response"})
				continue
			}

			history = append(history,
				services.ChatTurn{Role: "user", Content: msg.Text},
				services.ChatTurn{Role: "assistant", Content: reply},
			)
			if len(history) > chatHistoryCap {
				history = history[len(history)-chatHistoryCap:]
			}

			services.SaveChatMessageAsync(models.ChatMessage{
				UserID:         userID,
				ConversationID: conversationID,
				SessionType:    sessionType,
				Role:           "assistant",
				Text:           reply,
			})

			if err := conn.WriteJSON(ChatServerMessage{Type: "message", Role: "assistant", Text: reply}); err != nil {
				return
			}
		}
	}
}

// GetChatHistory returns the user's persisted chat messages, newest first.
func GetChatHistory(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	limit := queryInt(r, "limit", 50)
	skip := queryInt(r, "skip", 0)

	messages, err := services.LoadChatHistory(r.Context(), userID, limit, skip)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load chat history")
		return
	}

	writeJSON(w, http.StatusOK, messages)
}
