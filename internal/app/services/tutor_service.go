package services

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/kaanyld/tutorhub/internal/app/models"
	"github.com/kaanyld/tutorhub/internal/app/models/dto"
	"github.com/kaanyld/tutorhub/internal/app/repositories"
	"github.com/kaanyld/tutorhub/internal/pkg/apperrors"
)

// TutorService is the tutor-facing façade over the entity store. Every
// method is scoped to the calling tutor's id.
type TutorService interface {
	Profile(tutorID string) (*dto.AccountResponse, error)
	UpdateProfile(tutorID string, req dto.UpdateProfileRequest) (*dto.AccountResponse, error)

	CreateSlot(tutorID string, req dto.CreateSlotRequest) (*models.AvailabilitySlot, error)
	Slots(tutorID string) []models.AvailabilitySlot
	UpdateSlot(tutorID, slotID string, req dto.UpdateSlotRequest) (*models.AvailabilitySlot, error)
	DeleteSlot(tutorID, slotID string) (bool, error)
	BlockDate(tutorID, slotID string, req dto.BlockDateRequest) (*models.AvailabilitySlot, error)

	Bookings(tutorID string) []models.Booking
	CompleteBooking(tutorID, bookingID string) (*models.Booking, error)
	SetMeetingLink(tutorID, bookingID string, req dto.MeetingLinkRequest) (*models.Booking, error)

	SendMessage(tutorID string, req dto.SendMessageRequest) (*models.Message, error)
	Conversations(tutorID string) []repositories.ConversationSummary
	Messages(tutorID, conversationID string) ([]models.Message, error)
	MarkConversationRead(tutorID, conversationID string) (int, error)
	UnreadMessageCount(tutorID string) int
}

// tutorServiceImpl implements TutorService
type tutorServiceImpl struct {
	accountRepo      *repositories.AccountRepository
	availabilityRepo *repositories.AvailabilityRepository
	bookingRepo      *repositories.BookingRepository
	convRepo         *repositories.ConversationRepository
	messageRepo      *repositories.MessageRepository
	validate         *validator.Validate
	logger           zerolog.Logger
}

// NewTutorService creates a new TutorService
func NewTutorService(repos *repositories.Repositories, logger zerolog.Logger) TutorService {
	return &tutorServiceImpl{
		accountRepo:      repos.AccountRepository,
		availabilityRepo: repos.AvailabilityRepository,
		bookingRepo:      repos.BookingRepository,
		convRepo:         repos.ConversationRepository,
		messageRepo:      repos.MessageRepository,
		validate:         newValidator(),
		logger:           logger,
	}
}

// Profile returns the calling tutor's account data
func (s *tutorServiceImpl) Profile(tutorID string) (*dto.AccountResponse, error) {
	account, ok := s.accountRepo.GetByID(tutorID)
	if !ok {
		return nil, apperrors.NewResourceNotFoundError("Account not found")
	}
	resp := dto.ToAccountResponse(account)
	return &resp, nil
}

// UpdateProfile merges the non-nil request fields into the account
func (s *tutorServiceImpl) UpdateProfile(tutorID string, req dto.UpdateProfileRequest) (*dto.AccountResponse, error) {
	account, found, err := s.accountRepo.Update(tutorID, func(a *models.Account) {
		if req.FirstName != nil {
			a.FirstName = *req.FirstName
		}
		if req.LastName != nil {
			a.LastName = *req.LastName
		}
		if req.Phone != nil {
			a.Phone = *req.Phone
		}
		if req.Subjects != nil {
			a.Subjects = *req.Subjects
		}
		if req.HourlyRate != nil {
			a.HourlyRate = *req.HourlyRate
		}
		if req.Bio != nil {
			a.Bio = *req.Bio
		}
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.NewResourceNotFoundError("Account not found")
	}
	resp := dto.ToAccountResponse(account)
	return &resp, nil
}

// CreateSlot adds a weekly availability window. Start before end is
// expected but deliberately not enforced here.
func (s *tutorServiceImpl) CreateSlot(tutorID string, req dto.CreateSlotRequest) (*models.AvailabilitySlot, error) {
	if err := checkRequest(s.validate, req); err != nil {
		return nil, err
	}

	slot := &models.AvailabilitySlot{
		TutorID:   tutorID,
		DayOfWeek: req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Recurring: req.Recurring,
	}
	created, err := s.availabilityRepo.Create(slot)
	if err != nil {
		s.logger.Error().Err(err).Str("tutorId", tutorID).Msg("Failed to create availability slot")
		return nil, err
	}
	return created, nil
}

// Slots returns the tutor's availability windows
func (s *tutorServiceImpl) Slots(tutorID string) []models.AvailabilitySlot {
	return s.availabilityRepo.ByTutor(tutorID)
}

// UpdateSlot merges the non-nil request fields into one of the tutor's slots
func (s *tutorServiceImpl) UpdateSlot(tutorID, slotID string, req dto.UpdateSlotRequest) (*models.AvailabilitySlot, error) {
	if err := checkRequest(s.validate, req); err != nil {
		return nil, err
	}
	if err := s.requireOwnSlot(tutorID, slotID); err != nil {
		return nil, err
	}

	updated, _, err := s.availabilityRepo.Update(slotID, func(slot *models.AvailabilitySlot) {
		if req.DayOfWeek != nil {
			slot.DayOfWeek = *req.DayOfWeek
		}
		if req.StartTime != nil {
			slot.StartTime = *req.StartTime
		}
		if req.EndTime != nil {
			slot.EndTime = *req.EndTime
		}
		if req.Recurring != nil {
			slot.Recurring = *req.Recurring
		}
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteSlot removes one of the tutor's slots
func (s *tutorServiceImpl) DeleteSlot(tutorID, slotID string) (bool, error) {
	if err := s.requireOwnSlot(tutorID, slotID); err != nil {
		return false, err
	}
	return s.availabilityRepo.Delete(slotID)
}

// BlockDate marks one date of a slot as unavailable
func (s *tutorServiceImpl) BlockDate(tutorID, slotID string, req dto.BlockDateRequest) (*models.AvailabilitySlot, error) {
	if err := checkRequest(s.validate, req); err != nil {
		return nil, err
	}
	if err := s.requireOwnSlot(tutorID, slotID); err != nil {
		return nil, err
	}

	updated, _, err := s.availabilityRepo.BlockDate(slotID, req.Date)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *tutorServiceImpl) requireOwnSlot(tutorID, slotID string) error {
	slot, ok := s.availabilityRepo.GetByID(slotID)
	if !ok {
		return apperrors.NewResourceNotFoundError("Availability slot not found")
	}
	if slot.TutorID != tutorID {
		return apperrors.NewForbiddenError("Slot belongs to another tutor")
	}
	return nil
}

// Bookings returns the bookings assigned to the tutor, most recent first
func (s *tutorServiceImpl) Bookings(tutorID string) []models.Booking {
	return s.bookingRepo.ByTutor(tutorID)
}

// CompleteBooking marks one of the tutor's bookings as completed
func (s *tutorServiceImpl) CompleteBooking(tutorID, bookingID string) (*models.Booking, error) {
	if err := s.requireOwnBooking(tutorID, bookingID); err != nil {
		return nil, err
	}

	updated, _, err := s.bookingRepo.Update(bookingID, func(b *models.Booking) {
		b.Status = models.BookingCompleted
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// SetMeetingLink attaches a meeting link to one of the tutor's bookings
func (s *tutorServiceImpl) SetMeetingLink(tutorID, bookingID string, req dto.MeetingLinkRequest) (*models.Booking, error) {
	if err := checkRequest(s.validate, req); err != nil {
		return nil, err
	}
	if err := s.requireOwnBooking(tutorID, bookingID); err != nil {
		return nil, err
	}

	updated, _, err := s.bookingRepo.Update(bookingID, func(b *models.Booking) {
		b.MeetingLink = req.MeetingLink
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *tutorServiceImpl) requireOwnBooking(tutorID, bookingID string) error {
	booking, ok := s.bookingRepo.GetByID(bookingID)
	if !ok {
		return apperrors.NewResourceNotFoundError("Booking not found")
	}
	if booking.TutorID != tutorID {
		return apperrors.NewForbiddenError("Booking belongs to another tutor")
	}
	return nil
}

// SendMessage sends a message to a parent, creating the conversation on
// first contact
func (s *tutorServiceImpl) SendMessage(tutorID string, req dto.SendMessageRequest) (*models.Message, error) {
	if err := checkRequest(s.validate, req); err != nil {
		return nil, err
	}

	conv, err := s.convRepo.Ensure(req.ParticipantID, tutorID)
	if err != nil {
		return nil, err
	}

	message := &models.Message{
		ConversationID: conv.ID,
		SenderID:       tutorID,
		SenderRole:     models.RoleTutor,
		RecipientID:    req.ParticipantID,
		Content:        req.Content,
	}
	created, err := s.messageRepo.Create(message)
	if err != nil {
		return nil, err
	}

	if _, _, err := s.convRepo.Touch(conv.ID, created.Content, created.CreatedAt); err != nil {
		return nil, err
	}
	return created, nil
}

// Conversations returns the tutor's conversation summaries
func (s *tutorServiceImpl) Conversations(tutorID string) []repositories.ConversationSummary {
	return s.convRepo.SummariesFor(tutorID, s.messageRepo)
}

// Messages returns the messages of one of the tutor's conversations
func (s *tutorServiceImpl) Messages(tutorID, conversationID string) ([]models.Message, error) {
	conv, ok := s.convRepo.GetByID(conversationID)
	if !ok {
		return nil, apperrors.NewResourceNotFoundError("Conversation not found")
	}
	if _, _, participates := conv.ParticipantFor(tutorID); !participates {
		return nil, apperrors.NewForbiddenError("Not a participant in this conversation")
	}
	return s.messageRepo.ByConversation(conversationID), nil
}

// MarkConversationRead marks the conversation's messages addressed to the
// tutor as read
func (s *tutorServiceImpl) MarkConversationRead(tutorID, conversationID string) (int, error) {
	return s.messageRepo.MarkConversationRead(conversationID, tutorID, time.Now())
}

// UnreadMessageCount counts the tutor's unread messages
func (s *tutorServiceImpl) UnreadMessageCount(tutorID string) int {
	return s.messageRepo.UnreadCount("", tutorID)
}
