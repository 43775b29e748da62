package repositories_test

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/kaanyld/tutorhub/internal/app/models"
	"github.com/kaanyld/tutorhub/internal/app/repositories"
	"github.com/kaanyld/tutorhub/internal/storage"
)

func newAnnouncementRepo() *repositories.AnnouncementRepository {
	return repositories.NewAnnouncementRepository(storage.NewMemoryMedium(), zerolog.Nop())
}

func TestAnnouncementRepository_ListNewestFirst(t *testing.T) {
	repo := newAnnouncementRepo()

	for _, a := range []models.Announcement{
		{Title: "middle", Audience: models.AudienceAll, PublishDate: "2025-02-01"},
		{Title: "newest", Audience: models.AudienceAll, PublishDate: "2025-03-01"},
		{Title: "oldest", Audience: models.AudienceAll, PublishDate: "2025-01-01"},
	} {
		ann := a
		if _, err := repo.Create(&ann); err != nil {
			t.Fatal(err)
		}
	}

	rows := repo.List()
	want := []string{"newest", "middle", "oldest"}
	for i, w := range want {
		if rows[i].Title != w {
			t.Fatalf("position %d: got %s want %s", i, rows[i].Title, w)
		}
	}
}

func TestAnnouncementRepository_FeedSynthesizesParentCopies(t *testing.T) {
	repo := newAnnouncementRepo()

	forParents := &models.Announcement{Title: "term dates", Audience: models.AudienceParents, PublishDate: "2025-02-01"}
	forAll := &models.Announcement{Title: "holiday", Audience: models.AudienceAll, PublishDate: "2025-02-10"}
	forTutors := &models.Announcement{Title: "payroll", Audience: models.AudienceTutors, PublishDate: "2025-02-05"}
	for _, a := range []*models.Announcement{forParents, forAll, forTutors} {
		if _, err := repo.Create(a); err != nil {
			t.Fatal(err)
		}
	}

	feed, err := repo.FeedFor("parent-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(feed) != 2 {
		t.Fatalf("expected 2 feed entries, got %d: %#v", len(feed), feed)
	}
	if feed[0].Title != "holiday" || feed[1].Title != "term dates" {
		t.Fatalf("feed order wrong: %s, %s", feed[0].Title, feed[1].Title)
	}
	for _, entry := range feed {
		if entry.ParentID != "parent-1" {
			t.Fatalf("feed entry for wrong parent: %#v", entry)
		}
		if entry.ReadAt != nil {
			t.Fatal("fresh feed entry already read")
		}
	}

	// a second call reuses the copies instead of duplicating them
	again, err := repo.FeedFor("parent-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(again) != 2 {
		t.Fatalf("second feed duplicated copies: %d entries", len(again))
	}

	// another parent gets its own copies with independent read state
	other, err := repo.FeedFor("parent-2")
	if err != nil {
		t.Fatal(err)
	}
	if len(other) != 2 {
		t.Fatalf("parent-2 feed: %d entries", len(other))
	}
	if other[0].ID == again[0].ID {
		t.Fatal("parents share a feed entry")
	}
}

func TestAnnouncementRepository_MarkReadAndUnreadCount(t *testing.T) {
	repo := newAnnouncementRepo()

	if _, err := repo.Create(&models.Announcement{Title: "a", Audience: models.AudienceParents, PublishDate: "2025-02-01"}); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.Create(&models.Announcement{Title: "b", Audience: models.AudienceParents, PublishDate: "2025-02-02"}); err != nil {
		t.Fatal(err)
	}

	feed, err := repo.FeedFor("parent-1")
	if err != nil {
		t.Fatal(err)
	}
	if got := repo.UnreadCountFor("parent-1"); got != 2 {
		t.Fatalf("unread before mark: %d", got)
	}

	first := time.Date(2025, 2, 3, 9, 0, 0, 0, time.UTC)
	notice, found, err := repo.MarkRead(feed[0].ID, first)
	if err != nil || !found {
		t.Fatalf("mark read: found=%v err=%v", found, err)
	}
	if notice.ReadAt == nil || !notice.ReadAt.Equal(first) {
		t.Fatalf("read time: %v", notice.ReadAt)
	}
	if got := repo.UnreadCountFor("parent-1"); got != 1 {
		t.Fatalf("unread after mark: %d", got)
	}

	// repeated mark keeps the original read time
	notice, _, err = repo.MarkRead(feed[0].ID, first.Add(time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if !notice.ReadAt.Equal(first) {
		t.Fatalf("read time moved: %v", notice.ReadAt)
	}
}

func TestAnnouncementRepository_NotifyAddsStandaloneNotice(t *testing.T) {
	repo := newAnnouncementRepo()

	created, err := repo.Notify(&models.ParentAnnouncement{
		ParentID:    "parent-1",
		Title:       "Booking confirmed",
		Content:     "Your lesson on 2025-03-01 is confirmed.",
		Source:      "system",
		SourceName:  "TutorHub",
		PublishDate: "2025-02-20",
	})
	if err != nil {
		t.Fatal(err)
	}
	if created.ID == "" {
		t.Fatal("notice has no id")
	}

	feed, err := repo.FeedFor("parent-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(feed) != 1 || feed[0].Title != "Booking confirmed" {
		t.Fatalf("notice missing from feed: %#v", feed)
	}
	if got := repo.UnreadCountFor("parent-1"); got != 1 {
		t.Fatalf("unread: %d", got)
	}
}
