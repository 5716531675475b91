package chat

import (
	"context"

	"github.com/rsaadi/chathub/internal/domain"
)

// ChatRepository handles chat data operations.
type ChatRepository interface {
	Create(ctx context.Context, chat *domain.Chat) (*domain.Chat, error)
	FindByID(ctx context.Context, id uint) (*domain.Chat, error)
	FindAll(ctx context.Context) ([]domain.Chat, error)
	UpdateSettings(ctx context.Context, chatID uint, provider, model string) error
	TouchUpdatedAt(ctx context.Context, chatID uint) error
	Delete(ctx context.Context, chatID uint) error
}
