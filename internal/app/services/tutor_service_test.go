package services_test

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/kaanyld/tutorhub/internal/app/models"
	"github.com/kaanyld/tutorhub/internal/app/models/dto"
	"github.com/kaanyld/tutorhub/internal/app/repositories"
	"github.com/kaanyld/tutorhub/internal/app/services"
	"github.com/kaanyld/tutorhub/internal/pkg/apperrors"
	"github.com/kaanyld/tutorhub/internal/storage"
)

type tutorFixture struct {
	repos *repositories.Repositories
	svc   services.TutorService
}

func newTutorFixture(t *testing.T) *tutorFixture {
	t.Helper()
	medium := storage.NewMemoryMedium()
	repos := repositories.NewRepositories(medium, zerolog.Nop())
	return &tutorFixture{
		repos: repos,
		svc:   services.NewTutorService(repos, zerolog.Nop()),
	}
}

func TestTutorService_SlotLifecycle(t *testing.T) {
	f := newTutorFixture(t)

	slot, err := f.svc.CreateSlot("tutor-1", dto.CreateSlotRequest{
		DayOfWeek: "Monday",
		StartTime: "09:00",
		EndTime:   "11:00",
		Recurring: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if slot.TutorID != "tutor-1" {
		t.Fatalf("slot owner: %s", slot.TutorID)
	}

	day := "Friday"
	updated, err := f.svc.UpdateSlot("tutor-1", slot.ID, dto.UpdateSlotRequest{DayOfWeek: &day})
	if err != nil {
		t.Fatal(err)
	}
	if updated.DayOfWeek != "Friday" {
		t.Fatalf("day after update: %s", updated.DayOfWeek)
	}
	if updated.StartTime != "09:00" || !updated.Recurring {
		t.Fatalf("untouched fields changed: %#v", updated)
	}

	blocked, err := f.svc.BlockDate("tutor-1", slot.ID, dto.BlockDateRequest{Date: "2025-03-14"})
	if err != nil {
		t.Fatal(err)
	}
	if len(blocked.BlockedDates) != 1 {
		t.Fatalf("blocked dates: %v", blocked.BlockedDates)
	}

	removed, err := f.svc.DeleteSlot("tutor-1", slot.ID)
	if err != nil || !removed {
		t.Fatalf("delete: removed=%v err=%v", removed, err)
	}
	if got := len(f.svc.Slots("tutor-1")); got != 0 {
		t.Fatalf("slots after delete: %d", got)
	}
}

func TestTutorService_SlotScopedToOwner(t *testing.T) {
	f := newTutorFixture(t)

	slot, err := f.svc.CreateSlot("tutor-1", dto.CreateSlotRequest{
		DayOfWeek: "Monday",
		StartTime: "09:00",
		EndTime:   "11:00",
	})
	if err != nil {
		t.Fatal(err)
	}

	day := "Sunday"
	if _, err := f.svc.UpdateSlot("tutor-2", slot.ID, dto.UpdateSlotRequest{DayOfWeek: &day}); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("foreign update: got %v", err)
	}
	if _, err := f.svc.DeleteSlot("tutor-2", slot.ID); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("foreign delete: got %v", err)
	}
	if _, err := f.svc.DeleteSlot("tutor-1", "missing"); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("missing slot: got %v", err)
	}
}

func TestTutorService_CompleteBookingAndMeetingLink(t *testing.T) {
	f := newTutorFixture(t)

	booking, err := f.repos.BookingRepository.Create(&models.Booking{
		ParentID: "parent-1",
		TutorID:  "tutor-1",
		Date:     "2025-04-01",
		Status:   models.BookingConfirmed,
	})
	if err != nil {
		t.Fatal(err)
	}

	linked, err := f.svc.SetMeetingLink("tutor-1", booking.ID, dto.MeetingLinkRequest{
		MeetingLink: "https://meet.example.com/abc",
	})
	if err != nil {
		t.Fatal(err)
	}
	if linked.MeetingLink != "https://meet.example.com/abc" {
		t.Fatalf("meeting link: %s", linked.MeetingLink)
	}

	done, err := f.svc.CompleteBooking("tutor-1", booking.ID)
	if err != nil {
		t.Fatal(err)
	}
	if done.Status != models.BookingCompleted {
		t.Fatalf("status: %s", done.Status)
	}
	if done.MeetingLink == "" {
		t.Fatal("meeting link lost on completion")
	}

	if _, err := f.svc.CompleteBooking("tutor-2", booking.ID); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("foreign completion: got %v", err)
	}
}

func TestTutorService_SendMessageUsesSharedConversation(t *testing.T) {
	medium := storage.NewMemoryMedium()
	repos := repositories.NewRepositories(medium, zerolog.Nop())
	tutorSvc := services.NewTutorService(repos, zerolog.Nop())
	parentSvc := services.NewParentService(medium, repos, zerolog.Nop())

	fromParent, err := parentSvc.SendMessage("parent-1", dto.SendMessageRequest{
		ParticipantID: "tutor-1",
		Content:       "Hello",
	})
	if err != nil {
		t.Fatal(err)
	}

	fromTutor, err := tutorSvc.SendMessage("tutor-1", dto.SendMessageRequest{
		ParticipantID: "parent-1",
		Content:       "Hi back",
	})
	if err != nil {
		t.Fatal(err)
	}

	// both directions land in the same derived conversation
	if fromParent.ConversationID != fromTutor.ConversationID {
		t.Fatalf("conversations differ: %s vs %s", fromParent.ConversationID, fromTutor.ConversationID)
	}
	if fromTutor.SenderRole != models.RoleTutor {
		t.Fatalf("sender role: %s", fromTutor.SenderRole)
	}

	msgs, err := tutorSvc.Messages("tutor-1", fromTutor.ConversationID)
	if err != nil {
		t.Fatal(err)
	}
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}

	changed, err := tutorSvc.MarkConversationRead("tutor-1", fromTutor.ConversationID)
	if err != nil {
		t.Fatal(err)
	}
	if changed != 1 {
		t.Fatalf("expected 1 message marked, got %d", changed)
	}
	if got := tutorSvc.UnreadMessageCount("tutor-1"); got != 0 {
		t.Fatalf("tutor unread after mark: %d", got)
	}
}
