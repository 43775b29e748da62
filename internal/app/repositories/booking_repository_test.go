package repositories_test

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/kaanyld/tutorhub/internal/app/models"
	"github.com/kaanyld/tutorhub/internal/app/repositories"
	"github.com/kaanyld/tutorhub/internal/storage"
)

func TestBookingRepository_ByParentSortsDateDescending(t *testing.T) {
	repo := repositories.NewBookingRepository(storage.NewMemoryMedium(), zerolog.Nop())

	for _, date := range []string{"2025-03-10", "2025-03-25", "2025-03-01"} {
		if _, err := repo.Create(&models.Booking{
			ParentID: "parent-1",
			Date:     date,
			Status:   models.BookingPending,
		}); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := repo.Create(&models.Booking{ParentID: "parent-2", Date: "2025-03-30"}); err != nil {
		t.Fatal(err)
	}

	rows := repo.ByParent("parent-1")
	if len(rows) != 3 {
		t.Fatalf("expected 3 bookings, got %d", len(rows))
	}
	want := []string{"2025-03-25", "2025-03-10", "2025-03-01"}
	for i, w := range want {
		if rows[i].Date != w {
			t.Fatalf("position %d: got %s want %s", i, rows[i].Date, w)
		}
	}
}

func TestBookingRepository_UpdateKeepsUntouchedFields(t *testing.T) {
	repo := repositories.NewBookingRepository(storage.NewMemoryMedium(), zerolog.Nop())

	created, err := repo.Create(&models.Booking{
		ParentID:    "parent-1",
		TutorID:     "tutor-1",
		StudentName: "Mia",
		Subject:     "Math",
		Date:        "2025-04-01",
		Total:       80,
		Status:      models.BookingPending,
	})
	if err != nil {
		t.Fatal(err)
	}

	updated, found, err := repo.Update(created.ID, func(b *models.Booking) {
		b.Status = models.BookingConfirmed
	})
	if err != nil || !found {
		t.Fatalf("update: found=%v err=%v", found, err)
	}
	if updated.Status != models.BookingConfirmed {
		t.Fatalf("status not updated: %s", updated.Status)
	}
	if updated.StudentName != "Mia" || updated.Subject != "Math" || updated.Total != 80 {
		t.Fatalf("untouched fields changed: %#v", updated)
	}
	if updated.CreatedAt != created.CreatedAt {
		t.Fatal("creation time changed on update")
	}
}

func TestBookingRepository_StageStatusDefersWrite(t *testing.T) {
	medium := storage.NewMemoryMedium()
	repo := repositories.NewBookingRepository(medium, zerolog.Nop())

	created, err := repo.Create(&models.Booking{ParentID: "parent-1", Date: "2025-05-01", Status: models.BookingPending})
	if err != nil {
		t.Fatal(err)
	}

	uow := storage.NewUnitOfWork(medium)
	staged, found, err := repo.StageStatus(uow, created.ID, models.BookingConfirmed)
	if err != nil || !found {
		t.Fatalf("stage: found=%v err=%v", found, err)
	}
	if staged.Status != models.BookingConfirmed {
		t.Fatalf("staged copy has status %s", staged.Status)
	}

	// the table is untouched until commit
	current, _ := repo.GetByID(created.ID)
	if current.Status != models.BookingPending {
		t.Fatalf("table changed before commit: %s", current.Status)
	}

	if err := uow.Commit(); err != nil {
		t.Fatal(err)
	}
	current, _ = repo.GetByID(created.ID)
	if current.Status != models.BookingConfirmed {
		t.Fatalf("status after commit: %s", current.Status)
	}
}

func TestBookingRepository_StageStatusUnknownID(t *testing.T) {
	medium := storage.NewMemoryMedium()
	repo := repositories.NewBookingRepository(medium, zerolog.Nop())

	uow := storage.NewUnitOfWork(medium)
	_, found, err := repo.StageStatus(uow, "missing", models.BookingConfirmed)
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Fatal("unknown id reported as found")
	}
	if uow.Len() != 0 {
		t.Fatal("unknown id staged a write")
	}
}
