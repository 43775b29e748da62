package repositories_test

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/kaanyld/tutorhub/internal/app/models"
	"github.com/kaanyld/tutorhub/internal/app/repositories"
	"github.com/kaanyld/tutorhub/internal/storage"
)

func seedMessages(t *testing.T, repo *repositories.MessageRepository, msgs []models.Message) []models.Message {
	t.Helper()
	out := make([]models.Message, 0, len(msgs))
	for _, m := range msgs {
		msg := m
		created, err := repo.Create(&msg)
		if err != nil {
			t.Fatal(err)
		}
		out = append(out, *created)
	}
	return out
}

func TestMessageRepository_UnreadCount(t *testing.T) {
	repo := repositories.NewMessageRepository(storage.NewMemoryMedium(), zerolog.Nop())

	created := seedMessages(t, repo, []models.Message{
		{ConversationID: "conv-1", SenderID: "t", RecipientID: "p", Content: "a"},
		{ConversationID: "conv-1", SenderID: "t", RecipientID: "p", Content: "b"},
		{ConversationID: "conv-2", SenderID: "t2", RecipientID: "p", Content: "c"},
		{ConversationID: "conv-1", SenderID: "p", RecipientID: "t", Content: "d"},
	})

	if got := repo.UnreadCount("conv-1", "p"); got != 2 {
		t.Fatalf("conv-1 unread for p: %d", got)
	}
	// empty conversation id counts across all conversations
	if got := repo.UnreadCount("", "p"); got != 3 {
		t.Fatalf("total unread for p: %d", got)
	}
	if got := repo.UnreadCount("conv-1", "t"); got != 1 {
		t.Fatalf("conv-1 unread for t: %d", got)
	}

	if _, _, err := repo.MarkRead(created[0].ID, time.Now()); err != nil {
		t.Fatal(err)
	}
	if got := repo.UnreadCount("conv-1", "p"); got != 1 {
		t.Fatalf("unread after one read: %d", got)
	}
}

func TestMessageRepository_MarkReadKeepsFirstReadTime(t *testing.T) {
	repo := repositories.NewMessageRepository(storage.NewMemoryMedium(), zerolog.Nop())

	created := seedMessages(t, repo, []models.Message{
		{ConversationID: "conv-1", SenderID: "t", RecipientID: "p", Content: "a"},
	})

	first := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	msg, found, err := repo.MarkRead(created[0].ID, first)
	if err != nil || !found {
		t.Fatalf("mark read: found=%v err=%v", found, err)
	}
	if msg.ReadAt == nil || !msg.ReadAt.Equal(first) {
		t.Fatalf("read time: %v", msg.ReadAt)
	}

	msg, _, err = repo.MarkRead(created[0].ID, first.Add(time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if !msg.ReadAt.Equal(first) {
		t.Fatalf("second mark moved the read time: %v", msg.ReadAt)
	}
}

func TestMessageRepository_MarkConversationRead(t *testing.T) {
	repo := repositories.NewMessageRepository(storage.NewMemoryMedium(), zerolog.Nop())

	seedMessages(t, repo, []models.Message{
		{ConversationID: "conv-1", SenderID: "t", RecipientID: "p", Content: "a"},
		{ConversationID: "conv-1", SenderID: "t", RecipientID: "p", Content: "b"},
		{ConversationID: "conv-1", SenderID: "p", RecipientID: "t", Content: "c"},
		{ConversationID: "conv-2", SenderID: "t", RecipientID: "p", Content: "d"},
	})

	changed, err := repo.MarkConversationRead("conv-1", "p", time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if changed != 2 {
		t.Fatalf("expected 2 messages marked, got %d", changed)
	}

	// only the recipient's side and only that conversation changed
	if got := repo.UnreadCount("conv-1", "p"); got != 0 {
		t.Fatalf("conv-1 unread for p after mark: %d", got)
	}
	if got := repo.UnreadCount("conv-1", "t"); got != 1 {
		t.Fatalf("sender's own unread touched: %d", got)
	}
	if got := repo.UnreadCount("conv-2", "p"); got != 1 {
		t.Fatalf("other conversation touched: %d", got)
	}

	// marking again is a no-op
	changed, err = repo.MarkConversationRead("conv-1", "p", time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if changed != 0 {
		t.Fatalf("second mark changed %d messages", changed)
	}
}
