package models

import "time"

// Conversation groups the messages between one parent and one tutor. Its id
// is derived deterministically from the participant pair, so there is at
// most one conversation per pair and both sides always agree on the id.
// Unread counts are not stored here; they are computed per viewer from the
// message table.
type Conversation struct {
	Meta
	ParentID      string    `json:"parentId"`
	TutorID       string    `json:"tutorId"`
	LastMessage   string    `json:"lastMessage,omitempty"`
	LastMessageAt time.Time `json:"lastMessageAt,omitempty"`
}

// ParticipantFor returns the id of the other side of the conversation as
// seen from accountID, and whether accountID takes part at all.
func (c *Conversation) ParticipantFor(accountID string) (string, RoleType, bool) {
	switch accountID {
	case c.ParentID:
		return c.TutorID, RoleTutor, true
	case c.TutorID:
		return c.ParentID, RoleParent, true
	}
	return "", "", false
}
