package repositories_test

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/kaanyld/tutorhub/internal/app/models"
	"github.com/kaanyld/tutorhub/internal/app/repositories"
	"github.com/kaanyld/tutorhub/internal/storage"
)

func TestPaymentRepository_MonthlySpend(t *testing.T) {
	repo := repositories.NewPaymentRepository(storage.NewMemoryMedium(), zerolog.Nop())

	payments := []models.Payment{
		{ParentID: "parent-1", Amount: 10, Status: models.PaymentCompleted, TransactionDate: "2024-01-15"},
		{ParentID: "parent-1", Amount: 5, Status: models.PaymentFailed, TransactionDate: "2024-01-20"},
		{ParentID: "parent-1", Amount: 20, Status: models.PaymentCompleted, TransactionDate: "2024-02-01"},
		{ParentID: "parent-1", Amount: 7, Status: models.PaymentCompleted, TransactionDate: "2024-01-28"},
		{ParentID: "parent-2", Amount: 99, Status: models.PaymentCompleted, TransactionDate: "2024-01-05"},
	}
	for i := range payments {
		if _, err := repo.Create(&payments[i]); err != nil {
			t.Fatal(err)
		}
	}

	totals := repo.MonthlySpend("parent-1")
	if len(totals) != 2 {
		t.Fatalf("expected 2 months, got %d: %#v", len(totals), totals)
	}
	if totals[0].Month != "2024-02" || totals[0].Total != 20 {
		t.Fatalf("newest month wrong: %#v", totals[0])
	}
	if totals[1].Month != "2024-01" || totals[1].Total != 17 {
		t.Fatalf("older month wrong: %#v", totals[1])
	}
}

func TestPaymentRepository_MonthlySpendEmpty(t *testing.T) {
	repo := repositories.NewPaymentRepository(storage.NewMemoryMedium(), zerolog.Nop())

	totals := repo.MonthlySpend("parent-1")
	if len(totals) != 0 {
		t.Fatalf("expected no totals, got %#v", totals)
	}
}

func TestPaymentRepository_UpdateStatusOnly(t *testing.T) {
	repo := repositories.NewPaymentRepository(storage.NewMemoryMedium(), zerolog.Nop())

	created, err := repo.Create(&models.Payment{
		ParentID:        "parent-1",
		Amount:          45,
		Currency:        "USD",
		Status:          models.PaymentPending,
		TransactionDate: "2024-03-01",
	})
	if err != nil {
		t.Fatal(err)
	}

	updated, found, err := repo.UpdateStatus(created.ID, models.PaymentCompleted)
	if err != nil || !found {
		t.Fatalf("update: found=%v err=%v", found, err)
	}
	if updated.Status != models.PaymentCompleted {
		t.Fatalf("status: %s", updated.Status)
	}
	if updated.Amount != 45 || updated.Currency != "USD" {
		t.Fatalf("immutable fields changed: %#v", updated)
	}
}

func TestPaymentRepository_StageCreateDefersWrite(t *testing.T) {
	medium := storage.NewMemoryMedium()
	repo := repositories.NewPaymentRepository(medium, zerolog.Nop())

	uow := storage.NewUnitOfWork(medium)
	payment := &models.Payment{ParentID: "parent-1", Amount: 30, Status: models.PaymentCompleted, TransactionDate: "2024-04-01"}
	if err := repo.StageCreate(uow, payment); err != nil {
		t.Fatal(err)
	}
	if payment.ID == "" {
		t.Fatal("staged payment was not stamped with an id")
	}
	if len(repo.List()) != 0 {
		t.Fatal("payment visible before commit")
	}

	if err := uow.Commit(); err != nil {
		t.Fatal(err)
	}
	rows := repo.List()
	if len(rows) != 1 || rows[0].ID != payment.ID {
		t.Fatalf("payment not persisted by commit: %#v", rows)
	}
}
