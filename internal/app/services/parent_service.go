package services

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/kaanyld/tutorhub/internal/app/models"
	"github.com/kaanyld/tutorhub/internal/app/models/dto"
	"github.com/kaanyld/tutorhub/internal/app/repositories"
	"github.com/kaanyld/tutorhub/internal/pkg/apperrors"
	"github.com/kaanyld/tutorhub/internal/storage"
)

// ParentService is the parent-facing façade over the entity store. Every
// method is scoped to the calling parent's id; a parent can only see and
// touch its own rows.
type ParentService interface {
	Profile(parentID string) (*dto.AccountResponse, error)
	UpdateProfile(parentID string, req dto.UpdateProfileRequest) (*dto.AccountResponse, error)

	CreateBooking(parentID string, req dto.CreateBookingRequest) (*models.Booking, error)
	Bookings(parentID string) []models.Booking
	CancelBooking(parentID, bookingID string) (*models.Booking, error)
	Checkout(parentID string, req dto.CheckoutRequest) (*models.Payment, error)

	Payments(parentID string) []models.Payment
	MonthlySpend(parentID string) []repositories.MonthlyTotal

	SendMessage(parentID string, req dto.SendMessageRequest) (*models.Message, error)
	Conversations(parentID string) []repositories.ConversationSummary
	Messages(parentID, conversationID string) ([]models.Message, error)
	MarkConversationRead(parentID, conversationID string) (int, error)
	UnreadMessageCount(parentID string) int

	AnnouncementFeed(parentID string) ([]models.ParentAnnouncement, error)
	MarkAnnouncementRead(parentID, noticeID string) (*models.ParentAnnouncement, error)
	UnreadAnnouncementCount(parentID string) int
}

// parentServiceImpl implements ParentService
type parentServiceImpl struct {
	medium       storage.Medium
	accountRepo  *repositories.AccountRepository
	bookingRepo  *repositories.BookingRepository
	paymentRepo  *repositories.PaymentRepository
	convRepo     *repositories.ConversationRepository
	messageRepo  *repositories.MessageRepository
	announceRepo *repositories.AnnouncementRepository
	validate     *validator.Validate
	logger       zerolog.Logger
}

// NewParentService creates a new ParentService
func NewParentService(
	medium storage.Medium,
	repos *repositories.Repositories,
	logger zerolog.Logger,
) ParentService {
	return &parentServiceImpl{
		medium:       medium,
		accountRepo:  repos.AccountRepository,
		bookingRepo:  repos.BookingRepository,
		paymentRepo:  repos.PaymentRepository,
		convRepo:     repos.ConversationRepository,
		messageRepo:  repos.MessageRepository,
		announceRepo: repos.AnnouncementRepository,
		validate:     newValidator(),
		logger:       logger,
	}
}

// Profile returns the calling parent's account data
func (s *parentServiceImpl) Profile(parentID string) (*dto.AccountResponse, error) {
	account, ok := s.accountRepo.GetByID(parentID)
	if !ok {
		return nil, apperrors.NewResourceNotFoundError("Account not found")
	}
	resp := dto.ToAccountResponse(account)
	return &resp, nil
}

// UpdateProfile merges the non-nil request fields into the account
func (s *parentServiceImpl) UpdateProfile(parentID string, req dto.UpdateProfileRequest) (*dto.AccountResponse, error) {
	account, found, err := s.accountRepo.Update(parentID, func(a *models.Account) {
		if req.FirstName != nil {
			a.FirstName = *req.FirstName
		}
		if req.LastName != nil {
			a.LastName = *req.LastName
		}
		if req.Phone != nil {
			a.Phone = *req.Phone
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

// CreateBooking books a lesson. The total is derived from rate and hours
// here, once; later rate edits never recompute it.
func (s *parentServiceImpl) CreateBooking(parentID string, req dto.CreateBookingRequest) (*models.Booking, error) {
	if err := checkRequest(s.validate, req); err != nil {
		return nil, err
	}

	hours := req.Hours
	if hours <= 0 {
		hours = 1
	}

	booking := &models.Booking{
		ParentID:    parentID,
		TutorID:     req.TutorID,
		StudentName: req.StudentName,
		Subject:     req.Subject,
		Date:        req.Date,
		Slot:        req.Slot,
		LessonType:  req.LessonType,
		RatePerHour: req.RatePerHour,
		Total:       req.RatePerHour * hours,
		Status:      models.BookingPending,
	}
	created, err := s.bookingRepo.Create(booking)
	if err != nil {
		s.logger.Error().Err(err).Str("parentId", parentID).Msg("Failed to create booking")
		return nil, err
	}

	s.logger.Info().Str("bookingId", created.ID).Str("parentId", parentID).Msg("Booking created")
	return created, nil
}

// Bookings returns the parent's bookings, most recent date first
func (s *parentServiceImpl) Bookings(parentID string) []models.Booking {
	return s.bookingRepo.ByParent(parentID)
}

// CancelBooking cancels one of the parent's own bookings
func (s *parentServiceImpl) CancelBooking(parentID, bookingID string) (*models.Booking, error) {
	booking, ok := s.bookingRepo.GetByID(bookingID)
	if !ok {
		return nil, apperrors.NewResourceNotFoundError("Booking not found")
	}
	if booking.ParentID != parentID {
		return nil, apperrors.NewForbiddenError("Booking belongs to another account")
	}

	updated, _, err := s.bookingRepo.Update(bookingID, func(b *models.Booking) {
		b.Status = models.BookingCancelled
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Checkout confirms a pending booking and records its payment. Both table
// writes go through one unit of work so the pair commits together instead
// of as two independent saves.
func (s *parentServiceImpl) Checkout(parentID string, req dto.CheckoutRequest) (*models.Payment, error) {
	if err := checkRequest(s.validate, req); err != nil {
		return nil, err
	}

	booking, ok := s.bookingRepo.GetByID(req.BookingID)
	if !ok {
		return nil, apperrors.NewResourceNotFoundError("Booking not found")
	}
	if booking.ParentID != parentID {
		return nil, apperrors.NewForbiddenError("Booking belongs to another account")
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}
	transactionDate := req.TransactionDate
	if transactionDate == "" {
		transactionDate = time.Now().Format("2006-01-02")
	}

	uow := storage.NewUnitOfWork(s.medium)

	if _, _, err := s.bookingRepo.StageStatus(uow, req.BookingID, models.BookingConfirmed); err != nil {
		return nil, err
	}

	payment := &models.Payment{
		ParentID:        parentID,
		BookingID:       booking.ID,
		Amount:          booking.Total,
		Currency:        currency,
		PaymentMethod:   req.PaymentMethod,
		Status:          models.PaymentCompleted,
		TransactionDate: transactionDate,
	}
	if err := s.paymentRepo.StageCreate(uow, payment); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		s.logger.Error().Err(err).Str("bookingId", booking.ID).Msg("Checkout commit failed")
		return nil, err
	}

	s.logger.Info().
		Str("bookingId", booking.ID).
		Str("paymentId", payment.ID).
		Float64("amount", payment.Amount).
		Msg("Checkout completed")
	return payment, nil
}

// Payments returns the parent's payments in insertion order
func (s *parentServiceImpl) Payments(parentID string) []models.Payment {
	return s.paymentRepo.ByParent(parentID)
}

// MonthlySpend returns the parent's completed spend grouped by month
func (s *parentServiceImpl) MonthlySpend(parentID string) []repositories.MonthlyTotal {
	return s.paymentRepo.MonthlySpend(parentID)
}

// SendMessage sends a message to a tutor, creating the conversation on
// first contact. The tutor id is accepted without checking that such an
// account exists.
func (s *parentServiceImpl) SendMessage(parentID string, req dto.SendMessageRequest) (*models.Message, error) {
	if err := checkRequest(s.validate, req); err != nil {
		return nil, err
	}

	conv, err := s.convRepo.Ensure(parentID, req.ParticipantID)
	if err != nil {
		return nil, err
	}

	message := &models.Message{
		ConversationID: conv.ID,
		SenderID:       parentID,
		SenderRole:     models.RoleParent,
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

// Conversations returns the parent's conversation summaries
func (s *parentServiceImpl) Conversations(parentID string) []repositories.ConversationSummary {
	return s.convRepo.SummariesFor(parentID, s.messageRepo)
}

// Messages returns the messages of one of the parent's conversations
func (s *parentServiceImpl) Messages(parentID, conversationID string) ([]models.Message, error) {
	conv, ok := s.convRepo.GetByID(conversationID)
	if !ok {
		return nil, apperrors.NewResourceNotFoundError("Conversation not found")
	}
	if _, _, participates := conv.ParticipantFor(parentID); !participates {
		return nil, apperrors.NewForbiddenError("Not a participant in this conversation")
	}
	return s.messageRepo.ByConversation(conversationID), nil
}

// MarkConversationRead marks the conversation's messages addressed to the
// parent as read and reports how many changed state
func (s *parentServiceImpl) MarkConversationRead(parentID, conversationID string) (int, error) {
	return s.messageRepo.MarkConversationRead(conversationID, parentID, time.Now())
}

// UnreadMessageCount counts the parent's unread messages across all
// conversations
func (s *parentServiceImpl) UnreadMessageCount(parentID string) int {
	return s.messageRepo.UnreadCount("", parentID)
}

// AnnouncementFeed returns the parent's notices, synthesizing copies of new
// global announcements first
func (s *parentServiceImpl) AnnouncementFeed(parentID string) ([]models.ParentAnnouncement, error) {
	return s.announceRepo.FeedFor(parentID)
}

// MarkAnnouncementRead marks one of the parent's notices as read
func (s *parentServiceImpl) MarkAnnouncementRead(parentID, noticeID string) (*models.ParentAnnouncement, error) {
	notice, ok := s.announceRepo.GetNotice(noticeID)
	if !ok {
		return nil, apperrors.NewResourceNotFoundError("Announcement not found")
	}
	if notice.ParentID != parentID {
		return nil, apperrors.NewForbiddenError("Announcement belongs to another account")
	}

	marked, _, err := s.announceRepo.MarkRead(noticeID, time.Now())
	if err != nil {
		return nil, err
	}
	return marked, nil
}

// UnreadAnnouncementCount counts the parent's unread notices
func (s *parentServiceImpl) UnreadAnnouncementCount(parentID string) int {
	return s.announceRepo.UnreadCountFor(parentID)
}
