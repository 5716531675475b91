package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/rsaadi/chathub/internal/domain"
	chatrepo "github.com/rsaadi/chathub/internal/repository/chat"
	messagerepo "github.com/rsaadi/chathub/internal/repository/message"
	"github.com/rsaadi/chathub/internal/services"
	"github.com/rsaadi/chathub/internal/services/ai"
)

// stubAdapter stands in for the network edge: it is registered on a real
// dispatcher so validation, defaults and error wrapping stay exercised.
type stubAdapter struct {
	result *ai.Result
	err    error
}

func (s *stubAdapter) Generate(ctx context.Context, messages []ai.ChatMessage, cfg ai.GenerationConfig) (*ai.Result, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func newTestRouter(t *testing.T, adapter ai.Provider) *mux.Router {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Chat{}, &domain.Message{}))

	dispatcher := ai.NewDispatcher()
	dispatcher.Register(ai.ProviderOpenAI, adapter)

	svc, err := services.NewChatService(
		chatrepo.NewChatRepository(db),
		messagerepo.NewMessageRepository(db),
		dispatcher,
		&services.NoOpLogger{},
	)
	require.NoError(t, err)

	h, err := NewChatHandler(svc)
	require.NoError(t, err)

	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/providers", h.ListProviders).Methods("GET")
	api.HandleFunc("/chats", h.GetChats).Methods("GET")
	api.HandleFunc("/chats", h.CreateChat).Methods("POST")
	api.HandleFunc("/chats/{id:[0-9]+}/messages", h.GetChatMessages).Methods("GET")
	api.HandleFunc("/chats/{id:[0-9]+}/messages", h.SendMessage).Methods("POST")
	api.HandleFunc("/chats/{id:[0-9]+}/generate", h.Generate).Methods("POST")
	api.HandleFunc("/chats/{id:[0-9]+}", h.DeleteChat).Methods("DELETE")
	return r
}

func createChat(t *testing.T, router *mux.Router) domain.Chat {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/api/chats", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var created domain.Chat
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	return created
}

func sendMessage(t *testing.T, router *mux.Router, chatID uint, content string, cfg ai.GenerationConfig) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(map[string]interface{}{"content": content, "config": cfg})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", fmt.Sprintf("/api/chats/%d/messages", chatID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestListProviders(t *testing.T) {
	router := newTestRouter(t, &stubAdapter{result: &ai.Result{Content: "ok"}})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/providers", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var catalog []ai.ProviderInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &catalog))
	require.Len(t, catalog, 3)
	assert.Equal(t, "openai", catalog[0].ID)
}

func TestSendMessageEndToEnd(t *testing.T) {
	router := newTestRouter(t, &stubAdapter{result: &ai.Result{Content: "Hi! How can I help?"}})
	created := createChat(t, router)

	rec := sendMessage(t, router, created.ID, "Hello", ai.GenerationConfig{
		Provider: "openai",
		Model:    "gpt-3.5-turbo",
		APIKey:   "sk-test",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var pair []domain.Message
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pair))
	require.Len(t, pair, 2)

	assert.True(t, pair[0].IsUser)
	assert.Equal(t, "Hello", pair[0].Content)
	assert.False(t, pair[1].IsUser)
	assert.NotEmpty(t, pair[1].Content)

	// The pair is persisted, retrievable in creation order.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", fmt.Sprintf("/api/chats/%d/messages", created.ID), nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var stored []domain.Message
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stored))
	require.Len(t, stored, 2)
}

func TestSendMessageUnknownChatIs404(t *testing.T) {
	router := newTestRouter(t, &stubAdapter{result: &ai.Result{Content: "ok"}})

	rec := sendMessage(t, router, 404404, "Hello", ai.GenerationConfig{
		Provider: "openai",
		Model:    "gpt-3.5-turbo",
		APIKey:   "sk-test",
	})
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Chat not found", body["error"])
}

func TestSendMessageInvalidCredentialMessage(t *testing.T) {
	// Whatever provider the stub impersonates, the caller sees one
	// stable message.
	router := newTestRouter(t, &stubAdapter{err: fmt.Errorf("status 401: Incorrect API key provided")})
	created := createChat(t, router)

	rec := sendMessage(t, router, created.ID, "Hello", ai.GenerationConfig{
		Provider: "openai",
		Model:    "gpt-3.5-turbo",
		APIKey:   "sk-bad",
	})
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Invalid API key. Please check your API key and try again.", body["error"])
}

func TestSendMessageMissingConfigIs400(t *testing.T) {
	router := newTestRouter(t, &stubAdapter{result: &ai.Result{Content: "ok"}})
	created := createChat(t, router)

	rec := sendMessage(t, router, created.ID, "Hello", ai.GenerationConfig{Provider: "openai"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Missing required configuration: provider, model, or API key", body["error"])
}

func TestGenerateRouteDoesNotPersist(t *testing.T) {
	router := newTestRouter(t, &stubAdapter{result: &ai.Result{Content: "generated"}})
	created := createChat(t, router)

	payload, err := json.Marshal(map[string]interface{}{
		"messages": []ai.ChatMessage{{Role: ai.RoleUser, Content: "Hello"}},
		"config":   ai.GenerationConfig{Provider: "openai", Model: "gpt-3.5-turbo", APIKey: "sk-test"},
	})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", fmt.Sprintf("/api/chats/%d/generate", created.ID), bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var result ai.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "generated", result.Content)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", fmt.Sprintf("/api/chats/%d/messages", created.ID), nil))
	var stored []domain.Message
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stored))
	assert.Empty(t, stored)
}

func TestDeleteChat(t *testing.T) {
	router := newTestRouter(t, &stubAdapter{result: &ai.Result{Content: "ok"}})
	created := createChat(t, router)

	req := httptest.NewRequest("DELETE", fmt.Sprintf("/api/chats/%d", created.ID), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", fmt.Sprintf("/api/chats/%d/messages", created.ID), nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
