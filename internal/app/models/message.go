package models

import "time"

// Message is one chat message inside a conversation. Everything except
// ReadAt is immutable once created.
type Message struct {
	Meta
	ConversationID string     `json:"conversationId"`
	SenderID       string     `json:"senderId"`
	SenderRole     RoleType   `json:"senderRole"`
	RecipientID    string     `json:"recipientId"`
	Content        string     `json:"content"`
	ReadAt         *time.Time `json:"readAt,omitempty"`
}

// Unread reports whether the message has not been read yet.
func (m *Message) Unread() bool { return m.ReadAt == nil }
