package models

import "time"

// Audience defines who a global announcement is addressed to
type Audience string

const (
	AudienceAll      Audience = "all"
	AudienceTutors   Audience = "tutors"
	AudienceStudents Audience = "students"
	AudienceParents  Audience = "parents"
)

// ValidAudience reports whether a is one of the known audiences.
func ValidAudience(a Audience) bool {
	switch a {
	case AudienceAll, AudienceTutors, AudienceStudents, AudienceParents:
		return true
	}
	return false
}

// ForParents reports whether the audience includes parent accounts.
func (a Audience) ForParents() bool {
	return a == AudienceAll || a == AudienceParents
}

// ForTutors reports whether the audience includes tutor accounts.
func (a Audience) ForTutors() bool {
	return a == AudienceAll || a == AudienceTutors
}

// Announcement is a global, admin-authored notice.
type Announcement struct {
	Meta
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Audience    Audience `json:"audience"`
	CreatedBy   string   `json:"createdBy"`
	PublishDate string   `json:"publishDate"` // YYYY-MM-DD
}

// ParentAnnouncement is the parent-visible copy of a notice, synthesized per
// parent so read state can be tracked. ReadAt is the only field that may
// change after creation.
type ParentAnnouncement struct {
	Meta
	ParentID    string     `json:"parentId"`
	SourceID    string     `json:"sourceId"` // id of the global announcement, if any
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Source      string     `json:"source"`
	SourceName  string     `json:"sourceName"`
	PublishDate string     `json:"publishDate"`
	ReadAt      *time.Time `json:"readAt,omitempty"`
}
