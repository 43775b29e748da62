package repositories

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/kaanyld/tutorhub/internal/app/models"
	"github.com/kaanyld/tutorhub/internal/pkg/apperrors"
	"github.com/kaanyld/tutorhub/internal/pkg/auth"
	"github.com/kaanyld/tutorhub/internal/storage"
)

// AccountRepository handles storage operations for accounts
type AccountRepository struct {
	table *Table[models.Account, *models.Account]
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(medium storage.Medium, lgr zerolog.Logger) *AccountRepository {
	return &AccountRepository{
		table: NewTable[models.Account, *models.Account](medium, models.TableAccounts, lgr),
	}
}

// Create inserts a new account after hashing its password. Email uniqueness
// is enforced case-insensitively at creation time.
func (r *AccountRepository) Create(account *models.Account) (*models.Account, error) {
	if _, ok := r.FindByEmail(account.Email); ok {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashed, err := auth.HashPassword(account.Password)
	if err != nil {
		return nil, err
	}
	account.Password = hashed

	return r.table.Create(account)
}

// GetByID returns the account with the given id.
func (r *AccountRepository) GetByID(id string) (*models.Account, bool) {
	return r.table.GetByID(id)
}

// FindByEmail looks an account up by email, ignoring case.
func (r *AccountRepository) FindByEmail(email string) (*models.Account, bool) {
	needle := strings.ToLower(strings.TrimSpace(email))
	rows := r.table.Filter(func(a *models.Account) bool {
		return strings.ToLower(a.Email) == needle
	})
	if len(rows) == 0 {
		return nil, false
	}
	return &rows[0], true
}

// Authenticate verifies the credentials and returns the matching account.
func (r *AccountRepository) Authenticate(email, password string) (*models.Account, error) {
	account, ok := r.FindByEmail(email)
	if !ok {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !auth.CheckPassword(account.Password, password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	return account, nil
}

// Update applies the mutation to the account with the given id.
func (r *AccountRepository) Update(id string, apply func(*models.Account)) (*models.Account, bool, error) {
	return r.table.Update(id, apply)
}

// Delete removes an account. Bookings, payments and messages referencing it
// are left in place and treated as dangling by readers.
func (r *AccountRepository) Delete(id string) (bool, error) {
	return r.table.Delete(id)
}

// List returns all accounts in insertion order.
func (r *AccountRepository) List() []models.Account {
	return r.table.List()
}

// ListByRole returns the accounts holding the given role.
func (r *AccountRepository) ListByRole(role models.RoleType) []models.Account {
	return r.table.Filter(func(a *models.Account) bool { return a.Role == role })
}
