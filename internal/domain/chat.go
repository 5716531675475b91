// File: internal/domain/chat.go
package domain

import "time"

// Chat represents a single conversation thread together with the
// provider/model pair it was last generated with.
type Chat struct {
	ID            uint      `json:"id" gorm:"primarykey"`
	Title         string    `json:"title"` // The title of the chat, e.g., "New Chat"
	ModelProvider string    `json:"modelProvider" gorm:"not null"`
	ModelName     string    `json:"modelName" gorm:"not null"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	Messages      []Message `json:"messages,omitempty"`
}
