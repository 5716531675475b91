// File: internal/services/chat_service.go
package services

import (
	"context"
	"errors"
	"strings"

	"github.com/rsaadi/chathub/internal/domain"
	"github.com/rsaadi/chathub/internal/repository/chat"
	"github.com/rsaadi/chathub/internal/repository/message"
	"github.com/rsaadi/chathub/internal/services/ai"
)

// Generator is the dispatch capability the chat service depends on.
// *ai.Dispatcher satisfies it; tests substitute a stub.
type Generator interface {
	Generate(ctx context.Context, messages []ai.ChatMessage, cfg ai.GenerationConfig) (*ai.Result, error)
}

// ChatService orchestrates the persistence flow around one generation
// request: store the user turn, route the full history to the configured
// provider, store the assistant turn. The user's message stays persisted
// even when generation fails, so history is never silently lost.
type ChatService struct {
	chatRepo    chat.ChatRepository
	messageRepo message.MessageRepository
	generator   Generator
	logger      Logger
}

func NewChatService(
	chatRepo chat.ChatRepository,
	messageRepo message.MessageRepository,
	generator Generator,
	logger Logger,
) (*ChatService, error) {
	if chatRepo == nil {
		return nil, errors.New("chat repository is required")
	}
	if messageRepo == nil {
		return nil, errors.New("message repository is required")
	}
	if generator == nil {
		return nil, errors.New("generator is required")
	}
	if logger == nil {
		logger = &NoOpLogger{}
	}

	return &ChatService{
		chatRepo:    chatRepo,
		messageRepo: messageRepo,
		generator:   generator,
		logger:      logger,
	}, nil
}

// CreateChat creates a new conversation with the given provider/model
// preset.
func (s *ChatService) CreateChat(ctx context.Context, provider, model string) (*domain.Chat, error) {
	newChat := &domain.Chat{
		Title:         "New Chat",
		ModelProvider: provider,
		ModelName:     model,
	}
	created, err := s.chatRepo.Create(ctx, newChat)
	if err != nil {
		return nil, err
	}
	s.logger.Info("chat created", "chat_id", created.ID, "provider", provider, "model", model)
	return created, nil
}

// GetAllChats returns every chat, most recently updated first.
func (s *ChatService) GetAllChats(ctx context.Context) ([]domain.Chat, error) {
	return s.chatRepo.FindAll(ctx)
}

// GetChat returns one chat or chat.ErrChatNotFound.
func (s *ChatService) GetChat(ctx context.Context, chatID uint) (*domain.Chat, error) {
	return s.chatRepo.FindByID(ctx, chatID)
}

// GetChatMessages returns a chat's history in creation order, verifying
// the chat exists first.
func (s *ChatService) GetChatMessages(ctx context.Context, chatID uint) ([]domain.Message, error) {
	if _, err := s.chatRepo.FindByID(ctx, chatID); err != nil {
		return nil, err
	}
	return s.messageRepo.FindByChatID(ctx, chatID)
}

// DeleteChat removes a chat and its messages.
func (s *ChatService) DeleteChat(ctx context.Context, chatID uint) error {
	if err := s.chatRepo.Delete(ctx, chatID); err != nil {
		return err
	}
	return s.messageRepo.DeleteByChatID(ctx, chatID)
}

// SendMessage runs the full submit flow for one user turn and returns the
// persisted (userMessage, assistantMessage) pair.
func (s *ChatService) SendMessage(ctx context.Context, chatID uint, content string, cfg ai.GenerationConfig) (*domain.Message, *domain.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, nil, ai.NewInvalidConfigError("Message content cannot be empty")
	}

	// Verify the chat exists before persisting anything.
	if _, err := s.chatRepo.FindByID(ctx, chatID); err != nil {
		return nil, nil, err
	}

	existing, err := s.messageRepo.FindByChatID(ctx, chatID)
	if err != nil {
		return nil, nil, err
	}

	userMessage, err := s.messageRepo.Create(ctx, &domain.Message{
		ChatID:  chatID,
		Role:    ai.RoleUser,
		Content: content,
		IsUser:  true,
	})
	if err != nil {
		return nil, nil, err
	}

	// Copy the requested provider/model pair onto the chat record.
	if cfg.Provider != "" && cfg.Model != "" {
		if err := s.chatRepo.UpdateSettings(ctx, chatID, cfg.Provider, cfg.Model); err != nil {
			s.logger.Warn("failed to update chat settings", "chat_id", chatID, "error", err)
		}
	}

	history := buildHistory(existing, content, cfg.SystemPrompt)

	s.logger.Info("generating response",
		"chat_id", chatID, "provider", cfg.Provider, "model", cfg.Model, "history_len", len(history))

	result, err := s.generator.Generate(ctx, history, cfg)
	if err != nil {
		// The user's message stays persisted; the caller re-invokes
		// generation to retry.
		s.logger.Error("generation failed", "chat_id", chatID, "provider", cfg.Provider, "error", err)
		return userMessage, nil, err
	}

	assistantMessage, err := s.messageRepo.Create(ctx, &domain.Message{
		ChatID:   chatID,
		Role:     ai.RoleAssistant,
		Content:  result.Content,
		ImageURL: result.ImageURL,
		IsUser:   false,
	})
	if err != nil {
		return userMessage, nil, err
	}

	if err := s.chatRepo.TouchUpdatedAt(ctx, chatID); err != nil {
		s.logger.Warn("failed to touch chat timestamp", "chat_id", chatID, "error", err)
	}

	return userMessage, assistantMessage, nil
}

// GenerateOnly dispatches a caller-supplied message list without touching
// the message table. Chat settings are updated best-effort.
func (s *ChatService) GenerateOnly(ctx context.Context, chatID uint, messages []ai.ChatMessage, cfg ai.GenerationConfig) (*ai.Result, error) {
	if cfg.Provider != "" && cfg.Model != "" {
		if err := s.chatRepo.UpdateSettings(ctx, chatID, cfg.Provider, cfg.Model); err != nil {
			s.logger.Warn("failed to update chat settings", "chat_id", chatID, "error", err)
		}
	}
	return s.generator.Generate(ctx, messages, cfg)
}

// buildHistory assembles the canonical message list fed to the provider:
// the configured system prompt first, then the stored history with role
// derived from authorship, then the new user turn.
func buildHistory(existing []domain.Message, content, systemPrompt string) []ai.ChatMessage {
	history := make([]ai.ChatMessage, 0, len(existing)+2)
	if systemPrompt != "" {
		history = append(history, ai.ChatMessage{Role: ai.RoleSystem, Content: systemPrompt})
	}
	for _, m := range existing {
		role := ai.RoleAssistant
		if m.IsUser {
			role = ai.RoleUser
		}
		history = append(history, ai.ChatMessage{Role: role, Content: m.Content})
	}
	return append(history, ai.ChatMessage{Role: ai.RoleUser, Content: content})
}
