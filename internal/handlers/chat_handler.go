// File: internal/handlers/chat_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/rsaadi/chathub/internal/repository/chat"
	"github.com/rsaadi/chathub/internal/services"
	"github.com/rsaadi/chathub/internal/services/ai"
)

type ChatHandler struct {
	ChatService *services.ChatService
}

func NewChatHandler(cs *services.ChatService) (*ChatHandler, error) {
	if cs == nil {
		return nil, errors.New("chat service is required")
	}
	return &ChatHandler{ChatService: cs}, nil
}

// ListProviders serves the static provider catalog for the configuration
// UI.
func (h *ChatHandler) ListProviders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ai.Providers())
}

// GetChats handles the request to retrieve all chats, most recently
// updated first.
func (h *ChatHandler) GetChats(w http.ResponseWriter, r *http.Request) {
	chats, err := h.ChatService.GetAllChats(r.Context())
	if err != nil {
		writeError(w, "Error fetching chats", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, chats)
}

// CreateChat creates a new chat with the default provider/model preset.
func (h *ChatHandler) CreateChat(w http.ResponseWriter, r *http.Request) {
	newChat, err := h.ChatService.CreateChat(r.Context(), ai.ProviderOpenAI, "gpt-3.5-turbo")
	if err != nil {
		writeError(w, "Error creating chat", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, newChat)
}

// GetChatMessages handles the request to retrieve all messages for a
// specific chat.
func (h *ChatHandler) GetChatMessages(w http.ResponseWriter, r *http.Request) {
	chatID, ok := chatIDFromRequest(w, r)
	if !ok {
		return
	}

	messages, err := h.ChatService.GetChatMessages(r.Context(), chatID)
	if err != nil {
		if errors.Is(err, chat.ErrChatNotFound) {
			writeError(w, "Chat not found", http.StatusNotFound)
			return
		}
		writeError(w, "Failed to fetch messages", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, messages)
}

// SendMessage persists the user's turn, generates the assistant's reply
// and returns the pair.
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	chatID, ok := chatIDFromRequest(w, r)
	if !ok {
		return
	}

	var req struct {
		Content string              `json:"content"`
		Config  ai.GenerationConfig `json:"config"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	userMessage, assistantMessage, err := h.ChatService.SendMessage(r.Context(), chatID, req.Content, req.Config)
	if err != nil {
		if errors.Is(err, chat.ErrChatNotFound) {
			writeError(w, "Chat not found", http.StatusNotFound)
			return
		}
		writeError(w, err.Error(), statusForError(err))
		return
	}

	writeJSON(w, http.StatusOK, []interface{}{userMessage, assistantMessage})
}

// Generate dispatches a caller-supplied message list without persisting
// messages.
func (h *ChatHandler) Generate(w http.ResponseWriter, r *http.Request) {
	chatID, ok := chatIDFromRequest(w, r)
	if !ok {
		return
	}

	var req struct {
		Messages []ai.ChatMessage    `json:"messages"`
		Config   ai.GenerationConfig `json:"config"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.ChatService.GenerateOnly(r.Context(), chatID, req.Messages, req.Config)
	if err != nil {
		writeError(w, err.Error(), statusForError(err))
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// DeleteChat removes a chat and its messages.
func (h *ChatHandler) DeleteChat(w http.ResponseWriter, r *http.Request) {
	chatID, ok := chatIDFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.ChatService.DeleteChat(r.Context(), chatID); err != nil {
		if errors.Is(err, chat.ErrChatNotFound) {
			writeError(w, "Chat not found", http.StatusNotFound)
			return
		}
		writeError(w, "Could not delete chat", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// chatIDFromRequest parses the {id} path variable, writing a 400 on
// failure.
func chatIDFromRequest(w http.ResponseWriter, r *http.Request) (uint, bool) {
	vars := mux.Vars(r)
	chatID, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		writeError(w, "Invalid chat ID", http.StatusBadRequest)
		return 0, false
	}
	return uint(chatID), true
}

// statusForError maps layer errors onto the HTTP status surface: not
// found vs. bad configuration vs. internal failure.
func statusForError(err error) int {
	if errors.Is(err, chat.ErrChatNotFound) {
		return http.StatusNotFound
	}
	if ai.IsType(err, ai.ErrTypeInvalidConfig) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// writeJSON is a helper for sending JSON responses.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError is a helper for sending JSON error responses.
func writeError(w http.ResponseWriter, message string, status int) {
	writeJSON(w, status, map[string]string{"error": message})
}
