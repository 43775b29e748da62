package repositories

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kaanyld/tutorhub/internal/app/models"
	"github.com/kaanyld/tutorhub/internal/storage"
)

// conversationNamespace seeds the deterministic conversation ids. Changing
// it would orphan every persisted conversation, so it is frozen.
var conversationNamespace = uuid.MustParse("9b1dbfd0-5c5a-4c5e-8e2f-6a1f0c9d4b21")

// DeriveConversationID computes the conversation id for a participant pair.
// The pair is put in canonical order first, so both sides derive the same id
// regardless of who asks.
func DeriveConversationID(a, b string) string {
	lo, hi := a, b
	if hi < lo {
		lo, hi = hi, lo
	}
	return uuid.NewSHA1(conversationNamespace, []byte(lo+":"+hi)).String()
}

// ConversationSummary is the per-viewer digest of one conversation.
type ConversationSummary struct {
	ConversationID  string          `json:"conversationId"`
	ParticipantID   string          `json:"participantId"`
	ParticipantRole models.RoleType `json:"participantRole"`
	LastMessage     string          `json:"lastMessage,omitempty"`
	LastMessageAt   time.Time       `json:"lastMessageAt,omitempty"`
	UnreadCount     int             `json:"unreadCount"`
}

// ConversationRepository handles storage operations for conversations
type ConversationRepository struct {
	table *Table[models.Conversation, *models.Conversation]
}

// NewConversationRepository creates a new ConversationRepository
func NewConversationRepository(medium storage.Medium, lgr zerolog.Logger) *ConversationRepository {
	return &ConversationRepository{
		table: NewTable[models.Conversation, *models.Conversation](medium, models.TableConversations, lgr),
	}
}

// GetByID returns the conversation with the given id.
func (r *ConversationRepository) GetByID(id string) (*models.Conversation, bool) {
	return r.table.GetByID(id)
}

// Ensure returns the conversation for the pair, creating it with its derived
// id when it does not exist yet. Neither participant id is checked against
// the account table; referential integrity stays advisory.
func (r *ConversationRepository) Ensure(parentID, tutorID string) (*models.Conversation, error) {
	id := DeriveConversationID(parentID, tutorID)
	if conv, ok := r.table.GetByID(id); ok {
		return conv, nil
	}
	conv := &models.Conversation{
		ParentID: parentID,
		TutorID:  tutorID,
	}
	conv.SetEntityID(id)
	return r.table.Create(conv)
}

// Touch records the latest message preview on the conversation.
func (r *ConversationRepository) Touch(id, lastMessage string, at time.Time) (*models.Conversation, bool, error) {
	return r.table.Update(id, func(c *models.Conversation) {
		c.LastMessage = lastMessage
		c.LastMessageAt = at
	})
}

// ForAccount returns the conversations the account takes part in.
func (r *ConversationRepository) ForAccount(accountID string) []models.Conversation {
	return r.table.Filter(func(c *models.Conversation) bool {
		return c.ParentID == accountID || c.TutorID == accountID
	})
}

// SummariesFor builds the per-viewer conversation digests: the other
// participant, the latest message preview and the count of messages still
// unread by the viewer. Sorted most recently active first. Unread counts are
// recomputed from the message table on every call, never persisted.
func (r *ConversationRepository) SummariesFor(accountID string, messages *MessageRepository) []ConversationSummary {
	conversations := r.ForAccount(accountID)
	out := make([]ConversationSummary, 0, len(conversations))
	for _, conv := range conversations {
		participantID, participantRole, ok := conv.ParticipantFor(accountID)
		if !ok {
			continue
		}
		out = append(out, ConversationSummary{
			ConversationID:  conv.ID,
			ParticipantID:   participantID,
			ParticipantRole: participantRole,
			LastMessage:     conv.LastMessage,
			LastMessageAt:   conv.LastMessageAt,
			UnreadCount:     messages.UnreadCount(conv.ID, accountID),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LastMessageAt.After(out[j].LastMessageAt)
	})
	return out
}
