package repositories

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/kaanyld/tutorhub/internal/app/models"
	"github.com/kaanyld/tutorhub/internal/storage"
)

// MessageRepository handles storage operations for messages
type MessageRepository struct {
	table *Table[models.Message, *models.Message]
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(medium storage.Medium, lgr zerolog.Logger) *MessageRepository {
	return &MessageRepository{
		table: NewTable[models.Message, *models.Message](medium, models.TableMessages, lgr),
	}
}

// Create inserts a new message.
func (r *MessageRepository) Create(message *models.Message) (*models.Message, error) {
	return r.table.Create(message)
}

// GetByID returns the message with the given id.
func (r *MessageRepository) GetByID(id string) (*models.Message, bool) {
	return r.table.GetByID(id)
}

// ByConversation returns the conversation's messages in insertion order.
func (r *MessageRepository) ByConversation(conversationID string) []models.Message {
	return r.table.Filter(func(m *models.Message) bool {
		return m.ConversationID == conversationID
	})
}

// UnreadCount counts the messages in the conversation addressed to the
// recipient that have not been read yet. An empty conversationID counts
// across all conversations.
func (r *MessageRepository) UnreadCount(conversationID, recipientID string) int {
	count := 0
	for _, m := range r.table.List() {
		if conversationID != "" && m.ConversationID != conversationID {
			continue
		}
		if m.RecipientID == recipientID && m.Unread() {
			count++
		}
	}
	return count
}

// MarkRead stamps the message as read. Marking an already-read message again
// is a no-op and keeps the original read time.
func (r *MessageRepository) MarkRead(id string, at time.Time) (*models.Message, bool, error) {
	return r.table.Update(id, func(m *models.Message) {
		if m.ReadAt == nil {
			t := at
			m.ReadAt = &t
		}
	})
}

// MarkConversationRead stamps every unread message addressed to the
// recipient in the conversation. Returns how many messages changed state.
func (r *MessageRepository) MarkConversationRead(conversationID, recipientID string, at time.Time) (int, error) {
	rows := r.table.List()
	changed := 0
	for i := range rows {
		m := &rows[i]
		if m.ConversationID == conversationID && m.RecipientID == recipientID && m.Unread() {
			t := at
			m.ReadAt = &t
			changed++
		}
	}
	if changed == 0 {
		return 0, nil
	}
	if err := storage.SaveTable(r.table.medium, r.table.key, rows); err != nil {
		return 0, err
	}
	return changed, nil
}
