// File: internal/domain/message.go
package domain

import "time"

// Message represents a single message within a chat. Messages are
// immutable once created; creation-time ascending order within a chat
// is the canonical conversation history.
type Message struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	ChatID    uint      `json:"chatId" gorm:"not null"`
	Role      string    `json:"role" gorm:"not null"` // "system", "user" or "assistant"
	Content   string    `json:"content" gorm:"not null"`
	ImageURL  string    `json:"imageUrl,omitempty"` // set only for image-generation results
	IsUser    bool      `json:"isUser"`
	CreatedAt time.Time `json:"createdAt"`
}
