package models

import "time"

// Table keys under which each entity collection is persisted.
const (
	TableAccounts            = "accounts"
	TableBookings            = "bookings"
	TablePayments            = "payments"
	TableAvailability        = "availability_slots"
	TableConversations       = "conversations"
	TableMessages            = "messages"
	TableAnnouncements       = "announcements"
	TableParentAnnouncements = "parent_announcements"
)

// Meta carries the identity fields shared by every stored entity.
type Meta struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

// EntityID returns the stable identifier of the entity.
func (m *Meta) EntityID() string { return m.ID }

// SetEntityID assigns the identifier. Only the entity store calls this.
func (m *Meta) SetEntityID(id string) { m.ID = id }

// StampCreated sets the creation time once; later calls are no-ops so
// createdAt stays immutable for the entity lifetime.
func (m *Meta) StampCreated(t time.Time) {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = t
	}
}
