package model

import "time"

// Message roles for conversation messages.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ConversationMessage is one persisted turn of a coaching conversation.
// Metadata carries per-message context such as the FRI total and stress level
// at the time the message was produced.
type ConversationMessage struct {
	ID         string            `json:"id"`
	CustomerID string            `json:"customer_id"`
	Role       string            `json:"role"`
	Content    string            `json:"content"`
	Metadata   map[string]string `json:"metadata,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
}

// Transcript is the archival export format for a customer's conversation.
type Transcript struct {
	CustomerID string                `json:"customer_id"`
	ExportedAt time.Time             `json:"exported_at"`
	Messages   []ConversationMessage `json:"messages"`
}
