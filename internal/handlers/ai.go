package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/reverie-app/journal-backend/internal/services"
)

// The AI relay endpoints share one shape: fixed system prompt, caller text
// (plus optional history), model reply passed back as {"response": ...}.
// Failures surface as a generic 500; there is no retry or streaming.

type AnalyzeRequest struct {
	Entry string `json:"entry"`
}

type ChatRequest struct {
	Message string              `json:"message"`
	History []services.ChatTurn `json:"history"`
}

type DreamRequest struct {
	Dream string `json:"dream"`
}

type TherapyChatRequest struct {
	Message     string              `json:"message"`
	SessionType string              `json:"sessionType"`
	History     []services.ChatTurn `json:"history"`
}

func relayCompletion(w http.ResponseWriter, r *http.Request, system string, history []services.ChatTurn, message string) {
	reply, err := services.AI.CompleteWithSystem(r.Context(), system, history, message)
	if err != nil {
		log.Printf("completion failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to get AI response")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"response": reply})
}

// AnalyzeEntry responds to a journal entry with empathetic feedback.
func AnalyzeEntry(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Entry) == "" {
		writeError(w, http.StatusBadRequest, "No entry provided")
		return
	}

	relayCompletion(w, r, services.AnalyzePrompt, nil, req.Entry)
}

// Chat is the open-ended supportive conversation endpoint.
func Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, "No message provided")
		return
	}

	relayCompletion(w, r, services.ChatPrompt, req.History, req.Message)
}

// InterpretDream relays a dream description to the interpreter prompt.
func InterpretDream(w http.ResponseWriter, r *http.Request) {
	var req DreamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Dream) == "" {
		writeError(w, http.StatusBadRequest, "No dream provided")
		return
	}

	relayCompletion(w, r, services.DreamPrompt, nil, req.Dream)
}

// TherapyChat relays a message under one of five session-type prompt
// variants; unknown types fall back to the general prompt.
func TherapyChat(w http.ResponseWriter, r *http.Request) {
	var req TherapyChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, "No message provided")
		return
	}

	relayCompletion(w, r, services.TherapyPrompt(req.SessionType), req.History, req.Message)
}
