package repositories

import (
	"github.com/rs/zerolog"

	"github.com/kaanyld/tutorhub/internal/app/models"
	"github.com/kaanyld/tutorhub/internal/storage"
)

// AvailabilityRepository handles storage operations for availability slots
type AvailabilityRepository struct {
	table *Table[models.AvailabilitySlot, *models.AvailabilitySlot]
}

// NewAvailabilityRepository creates a new AvailabilityRepository
func NewAvailabilityRepository(medium storage.Medium, lgr zerolog.Logger) *AvailabilityRepository {
	return &AvailabilityRepository{
		table: NewTable[models.AvailabilitySlot, *models.AvailabilitySlot](medium, models.TableAvailability, lgr),
	}
}

// Create inserts a new slot.
func (r *AvailabilityRepository) Create(slot *models.AvailabilitySlot) (*models.AvailabilitySlot, error) {
	return r.table.Create(slot)
}

// GetByID returns the slot with the given id.
func (r *AvailabilityRepository) GetByID(id string) (*models.AvailabilitySlot, bool) {
	return r.table.GetByID(id)
}

// Update applies the mutation to the slot with the given id.
func (r *AvailabilityRepository) Update(id string, apply func(*models.AvailabilitySlot)) (*models.AvailabilitySlot, bool, error) {
	return r.table.Update(id, apply)
}

// Delete removes a slot.
func (r *AvailabilityRepository) Delete(id string) (bool, error) {
	return r.table.Delete(id)
}

// ByTutor returns the tutor's slots in insertion order.
func (r *AvailabilityRepository) ByTutor(tutorID string) []models.AvailabilitySlot {
	return r.table.Filter(func(s *models.AvailabilitySlot) bool { return s.TutorID == tutorID })
}

// BlockDate adds a date to the slot's blocked list. Blocking an already
// blocked date is a no-op.
func (r *AvailabilityRepository) BlockDate(id, date string) (*models.AvailabilitySlot, bool, error) {
	return r.table.Update(id, func(s *models.AvailabilitySlot) {
		for _, d := range s.BlockedDates {
			if d == date {
				return
			}
		}
		s.BlockedDates = append(s.BlockedDates, date)
	})
}
