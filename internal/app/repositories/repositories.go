package repositories

import (
	"github.com/rs/zerolog"

	"github.com/kaanyld/tutorhub/internal/storage"
)

// Repositories holds all the repository instances
type Repositories struct {
	AccountRepository      *AccountRepository
	BookingRepository      *BookingRepository
	PaymentRepository      *PaymentRepository
	AvailabilityRepository *AvailabilityRepository
	ConversationRepository *ConversationRepository
	MessageRepository      *MessageRepository
	AnnouncementRepository *AnnouncementRepository
}

// NewRepositories initializes all repositories on one shared storage medium
func NewRepositories(medium storage.Medium, lgr zerolog.Logger) *Repositories {
	return &Repositories{
		AccountRepository:      NewAccountRepository(medium, lgr),
		BookingRepository:      NewBookingRepository(medium, lgr),
		PaymentRepository:      NewPaymentRepository(medium, lgr),
		AvailabilityRepository: NewAvailabilityRepository(medium, lgr),
		ConversationRepository: NewConversationRepository(medium, lgr),
		MessageRepository:      NewMessageRepository(medium, lgr),
		AnnouncementRepository: NewAnnouncementRepository(medium, lgr),
	}
}
