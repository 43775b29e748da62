package repositories

import (
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/kaanyld/tutorhub/internal/app/models"
	"github.com/kaanyld/tutorhub/internal/storage"
)

// AnnouncementRepository handles storage operations for global announcements
// and their per-parent synthesized copies.
type AnnouncementRepository struct {
	global  *Table[models.Announcement, *models.Announcement]
	parents *Table[models.ParentAnnouncement, *models.ParentAnnouncement]
}

// NewAnnouncementRepository creates a new AnnouncementRepository
func NewAnnouncementRepository(medium storage.Medium, lgr zerolog.Logger) *AnnouncementRepository {
	return &AnnouncementRepository{
		global:  NewTable[models.Announcement, *models.Announcement](medium, models.TableAnnouncements, lgr),
		parents: NewTable[models.ParentAnnouncement, *models.ParentAnnouncement](medium, models.TableParentAnnouncements, lgr),
	}
}

// Create inserts a new global announcement.
func (r *AnnouncementRepository) Create(a *models.Announcement) (*models.Announcement, error) {
	return r.global.Create(a)
}

// GetByID returns the global announcement with the given id.
func (r *AnnouncementRepository) GetByID(id string) (*models.Announcement, bool) {
	return r.global.GetByID(id)
}

// Update applies the mutation to the global announcement with the given id.
func (r *AnnouncementRepository) Update(id string, apply func(*models.Announcement)) (*models.Announcement, bool, error) {
	return r.global.Update(id, apply)
}

// Delete removes a global announcement. Parent copies already synthesized
// from it stay in the parents' feeds.
func (r *AnnouncementRepository) Delete(id string) (bool, error) {
	return r.global.Delete(id)
}

// List returns all global announcements, newest publish date first.
func (r *AnnouncementRepository) List() []models.Announcement {
	rows := r.global.List()
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].PublishDate > rows[j].PublishDate
	})
	return rows
}

// FeedFor returns the parent's announcement feed, newest first. Global
// announcements addressed to parents that have no per-parent copy yet are
// synthesized into one first, so read state can be tracked per parent.
func (r *AnnouncementRepository) FeedFor(parentID string) ([]models.ParentAnnouncement, error) {
	copies := r.parents.Filter(func(pa *models.ParentAnnouncement) bool {
		return pa.ParentID == parentID
	})

	seen := make(map[string]bool, len(copies))
	for _, c := range copies {
		if c.SourceID != "" {
			seen[c.SourceID] = true
		}
	}

	for _, a := range r.global.List() {
		if !a.Audience.ForParents() || seen[a.ID] {
			continue
		}
		notice := &models.ParentAnnouncement{
			ParentID:    parentID,
			SourceID:    a.ID,
			Title:       a.Title,
			Content:     a.Content,
			Source:      "admin",
			SourceName:  "TutorHub",
			PublishDate: a.PublishDate,
		}
		created, err := r.parents.Create(notice)
		if err != nil {
			return nil, err
		}
		copies = append(copies, *created)
	}

	sort.SliceStable(copies, func(i, j int) bool {
		return copies[i].PublishDate > copies[j].PublishDate
	})
	return copies, nil
}

// GetNotice returns the parent copy with the given id.
func (r *AnnouncementRepository) GetNotice(id string) (*models.ParentAnnouncement, bool) {
	return r.parents.GetByID(id)
}

// MarkRead stamps a parent copy as read. Idempotent; the first read time is
// kept on repeated calls.
func (r *AnnouncementRepository) MarkRead(id string, at time.Time) (*models.ParentAnnouncement, bool, error) {
	return r.parents.Update(id, func(pa *models.ParentAnnouncement) {
		if pa.ReadAt == nil {
			t := at
			pa.ReadAt = &t
		}
	})
}

// UnreadCountFor counts the parent's unread feed entries.
func (r *AnnouncementRepository) UnreadCountFor(parentID string) int {
	count := 0
	for _, pa := range r.parents.List() {
		if pa.ParentID == parentID && pa.ReadAt == nil {
			count++
		}
	}
	return count
}

// Notify inserts a per-parent notice that does not come from a global
// announcement, e.g. a booking confirmation.
func (r *AnnouncementRepository) Notify(notice *models.ParentAnnouncement) (*models.ParentAnnouncement, error) {
	return r.parents.Create(notice)
}
