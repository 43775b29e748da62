package repositories_test

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/kaanyld/tutorhub/internal/app/models"
	"github.com/kaanyld/tutorhub/internal/app/repositories"
	"github.com/kaanyld/tutorhub/internal/pkg/apperrors"
	"github.com/kaanyld/tutorhub/internal/storage"
)

func newAccountRepo() *repositories.AccountRepository {
	return repositories.NewAccountRepository(storage.NewMemoryMedium(), zerolog.Nop())
}

func TestAccountRepository_CreateAndAuthenticate(t *testing.T) {
	repo := newAccountRepo()

	created, err := repo.Create(&models.Account{
		Email:     "parent@example.com",
		Password:  "secret1234",
		Role:      models.RoleParent,
		FirstName: "Ada",
		LastName:  "Byron",
	})
	if err != nil {
		t.Fatal(err)
	}
	if created.ID == "" {
		t.Fatal("created account has no id")
	}
	if created.CreatedAt.IsZero() {
		t.Fatal("created account has no creation time")
	}
	if created.Password == "secret1234" {
		t.Fatal("password stored in plaintext")
	}

	account, err := repo.Authenticate("parent@example.com", "secret1234")
	if err != nil {
		t.Fatal(err)
	}
	if account.ID != created.ID {
		t.Fatalf("authenticated as %s, want %s", account.ID, created.ID)
	}

	if _, err := repo.Authenticate("parent@example.com", "wrong"); !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("wrong password: got %v", err)
	}
	if _, err := repo.Authenticate("nobody@example.com", "secret1234"); !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("unknown email: got %v", err)
	}
}

func TestAccountRepository_EmailUniquenessIgnoresCase(t *testing.T) {
	repo := newAccountRepo()

	if _, err := repo.Create(&models.Account{Email: "Tutor@Example.com", Password: "pw", Role: models.RoleTutor}); err != nil {
		t.Fatal(err)
	}

	_, err := repo.Create(&models.Account{Email: "tutor@example.COM", Password: "pw", Role: models.RoleTutor})
	if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		t.Fatalf("expected duplicate email error, got %v", err)
	}

	if _, ok := repo.FindByEmail("TUTOR@example.com"); !ok {
		t.Fatal("case-insensitive lookup failed")
	}
}

func TestAccountRepository_DeleteIsTerminal(t *testing.T) {
	repo := newAccountRepo()

	created, err := repo.Create(&models.Account{Email: "a@b.co", Password: "pw", Role: models.RoleParent})
	if err != nil {
		t.Fatal(err)
	}

	removed, err := repo.Delete(created.ID)
	if err != nil || !removed {
		t.Fatalf("delete: removed=%v err=%v", removed, err)
	}
	if _, ok := repo.GetByID(created.ID); ok {
		t.Fatal("account still readable after delete")
	}

	removed, err = repo.Delete(created.ID)
	if err != nil {
		t.Fatal(err)
	}
	if removed {
		t.Fatal("second delete reported a removal")
	}
}

func TestAccountRepository_ListByRole(t *testing.T) {
	repo := newAccountRepo()

	for _, a := range []models.Account{
		{Email: "p1@x.co", Password: "pw", Role: models.RoleParent},
		{Email: "t1@x.co", Password: "pw", Role: models.RoleTutor},
		{Email: "p2@x.co", Password: "pw", Role: models.RoleParent},
	} {
		account := a
		if _, err := repo.Create(&account); err != nil {
			t.Fatal(err)
		}
	}

	parents := repo.ListByRole(models.RoleParent)
	if len(parents) != 2 {
		t.Fatalf("expected 2 parents, got %d", len(parents))
	}
	tutors := repo.ListByRole(models.RoleTutor)
	if len(tutors) != 1 {
		t.Fatalf("expected 1 tutor, got %d", len(tutors))
	}
}
