package repositories

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/kaanyld/tutorhub/internal/app/models"
	"github.com/kaanyld/tutorhub/internal/storage"
)

// MonthlyTotal is the aggregated spend for one year-month.
type MonthlyTotal struct {
	Month string  `json:"month"` // YYYY-MM
	Total float64 `json:"total"`
}

// PaymentRepository handles storage operations for payments
type PaymentRepository struct {
	table *Table[models.Payment, *models.Payment]
}

// NewPaymentRepository creates a new PaymentRepository
func NewPaymentRepository(medium storage.Medium, lgr zerolog.Logger) *PaymentRepository {
	return &PaymentRepository{
		table: NewTable[models.Payment, *models.Payment](medium, models.TablePayments, lgr),
	}
}

// Create inserts a new payment.
func (r *PaymentRepository) Create(payment *models.Payment) (*models.Payment, error) {
	return r.table.Create(payment)
}

// GetByID returns the payment with the given id.
func (r *PaymentRepository) GetByID(id string) (*models.Payment, bool) {
	return r.table.GetByID(id)
}

// UpdateStatus changes the settlement state of a payment. The amount is
// immutable once recorded, so status is the only mutable field here.
func (r *PaymentRepository) UpdateStatus(id string, status models.PaymentStatus) (*models.Payment, bool, error) {
	return r.table.Update(id, func(p *models.Payment) { p.Status = status })
}

// List returns all payments in insertion order.
func (r *PaymentRepository) List() []models.Payment {
	return r.table.List()
}

// ByParent returns the parent's payments in insertion order.
func (r *PaymentRepository) ByParent(parentID string) []models.Payment {
	return r.table.Filter(func(p *models.Payment) bool { return p.ParentID == parentID })
}

// MonthlySpend groups the parent's completed payments by the year-month
// prefix of their transaction date and sums the amounts, most recent month
// first. Pending and failed payments are excluded.
func (r *PaymentRepository) MonthlySpend(parentID string) []MonthlyTotal {
	totals := make(map[string]float64)
	for _, p := range r.ByParent(parentID) {
		if p.Status != models.PaymentCompleted {
			continue
		}
		if len(p.TransactionDate) < 7 {
			continue
		}
		totals[p.TransactionDate[:7]] += p.Amount
	}

	out := make([]MonthlyTotal, 0, len(totals))
	for month, total := range totals {
		out = append(out, MonthlyTotal{Month: month, Total: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month > out[j].Month })
	return out
}

// StageCreate stamps identity onto the payment and stages its insert on the
// unit of work, without writing the table yet.
func (r *PaymentRepository) StageCreate(uow *storage.UnitOfWork, payment *models.Payment) error {
	r.table.Stamp(payment)
	rows := r.table.List()
	rows = append(rows, *payment)
	return r.table.StageReplace(uow, rows)
}
