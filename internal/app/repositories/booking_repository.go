package repositories

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/kaanyld/tutorhub/internal/app/models"
	"github.com/kaanyld/tutorhub/internal/storage"
)

// BookingRepository handles storage operations for bookings
type BookingRepository struct {
	table *Table[models.Booking, *models.Booking]
}

// NewBookingRepository creates a new BookingRepository
func NewBookingRepository(medium storage.Medium, lgr zerolog.Logger) *BookingRepository {
	return &BookingRepository{
		table: NewTable[models.Booking, *models.Booking](medium, models.TableBookings, lgr),
	}
}

// Create inserts a new booking.
func (r *BookingRepository) Create(booking *models.Booking) (*models.Booking, error) {
	return r.table.Create(booking)
}

// GetByID returns the booking with the given id.
func (r *BookingRepository) GetByID(id string) (*models.Booking, bool) {
	return r.table.GetByID(id)
}

// Update applies the mutation to the booking with the given id.
func (r *BookingRepository) Update(id string, apply func(*models.Booking)) (*models.Booking, bool, error) {
	return r.table.Update(id, apply)
}

// Delete removes a booking. Payments referencing it keep their bookingId.
func (r *BookingRepository) Delete(id string) (bool, error) {
	return r.table.Delete(id)
}

// List returns all bookings sorted by date descending.
func (r *BookingRepository) List() []models.Booking {
	return sortByDateDesc(r.table.List())
}

// ByParent returns the parent's bookings sorted by date descending.
func (r *BookingRepository) ByParent(parentID string) []models.Booking {
	rows := r.table.Filter(func(b *models.Booking) bool { return b.ParentID == parentID })
	return sortByDateDesc(rows)
}

// ByTutor returns the bookings assigned to a tutor, date descending.
func (r *BookingRepository) ByTutor(tutorID string) []models.Booking {
	rows := r.table.Filter(func(b *models.Booking) bool { return b.TutorID == tutorID })
	return sortByDateDesc(rows)
}

// StageStatus stages a status change for the booking on the unit of work.
// The table itself is not written until the unit of work commits. Returns
// the updated booking, or false when the id is unknown.
func (r *BookingRepository) StageStatus(uow *storage.UnitOfWork, id string, status models.BookingStatus) (*models.Booking, bool, error) {
	rows := r.table.List()
	for i := range rows {
		if rows[i].ID == id {
			rows[i].Status = status
			if err := r.table.StageReplace(uow, rows); err != nil {
				return nil, true, err
			}
			booking := rows[i]
			return &booking, true, nil
		}
	}
	return nil, false, nil
}

// Dates are YYYY-MM-DD strings, so lexicographic order is date order.
func sortByDateDesc(rows []models.Booking) []models.Booking {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date > rows[j].Date
	})
	return rows
}
