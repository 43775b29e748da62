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

// AdminService is the admin-facing façade: platform-wide oversight of
// accounts, bookings and payments plus announcement authoring.
type AdminService interface {
	Accounts(role string) []dto.AccountResponse
	DeleteAccount(id string) (bool, error)

	Bookings() []models.Booking
	UpdateBookingStatus(id string, req dto.UpdateBookingStatusRequest) (*models.Booking, error)
	DeleteBooking(id string) (bool, error)

	Payments() []models.Payment
	UpdatePaymentStatus(id string, req dto.UpdatePaymentStatusRequest) (*models.Payment, error)

	CreateAnnouncement(adminID string, req dto.CreateAnnouncementRequest) (*models.Announcement, error)
	Announcements() []models.Announcement
	UpdateAnnouncement(id string, req dto.UpdateAnnouncementRequest) (*models.Announcement, error)
	DeleteAnnouncement(id string) (bool, error)
}

// adminServiceImpl implements AdminService
type adminServiceImpl struct {
	accountRepo  *repositories.AccountRepository
	bookingRepo  *repositories.BookingRepository
	paymentRepo  *repositories.PaymentRepository
	announceRepo *repositories.AnnouncementRepository
	validate     *validator.Validate
	logger       zerolog.Logger
}

// NewAdminService creates a new AdminService
func NewAdminService(repos *repositories.Repositories, logger zerolog.Logger) AdminService {
	return &adminServiceImpl{
		accountRepo:  repos.AccountRepository,
		bookingRepo:  repos.BookingRepository,
		paymentRepo:  repos.PaymentRepository,
		announceRepo: repos.AnnouncementRepository,
		validate:     newValidator(),
		logger:       logger,
	}
}

// Accounts lists all accounts, optionally filtered by role
func (s *adminServiceImpl) Accounts(role string) []dto.AccountResponse {
	var accounts []models.Account
	if role == "" {
		accounts = s.accountRepo.List()
	} else {
		accounts = s.accountRepo.ListByRole(models.RoleType(role))
	}

	out := make([]dto.AccountResponse, 0, len(accounts))
	for i := range accounts {
		out = append(out, dto.ToAccountResponse(&accounts[i]))
	}
	return out
}

// DeleteAccount removes an account. Rows referencing it in other tables are
// left dangling; read paths tolerate the missing account.
func (s *adminServiceImpl) DeleteAccount(id string) (bool, error) {
	removed, err := s.accountRepo.Delete(id)
	if err != nil {
		return false, err
	}
	if removed {
		s.logger.Info().Str("accountId", id).Msg("Account deleted")
	}
	return removed, nil
}

// Bookings lists every booking, most recent date first
func (s *adminServiceImpl) Bookings() []models.Booking {
	return s.bookingRepo.List()
}

// UpdateBookingStatus changes a booking's lifecycle state
func (s *adminServiceImpl) UpdateBookingStatus(id string, req dto.UpdateBookingStatusRequest) (*models.Booking, error) {
	if err := checkRequest(s.validate, req); err != nil {
		return nil, err
	}

	updated, found, err := s.bookingRepo.Update(id, func(b *models.Booking) {
		b.Status = models.BookingStatus(req.Status)
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.NewResourceNotFoundError("Booking not found")
	}
	return updated, nil
}

// DeleteBooking removes a booking. Payments referencing it keep their
// bookingId and are reported with an absent booking from then on.
func (s *adminServiceImpl) DeleteBooking(id string) (bool, error) {
	return s.bookingRepo.Delete(id)
}

// Payments lists every payment in insertion order
func (s *adminServiceImpl) Payments() []models.Payment {
	return s.paymentRepo.List()
}

// UpdatePaymentStatus changes a payment's settlement state. The amount is
// immutable once recorded.
func (s *adminServiceImpl) UpdatePaymentStatus(id string, req dto.UpdatePaymentStatusRequest) (*models.Payment, error) {
	if err := checkRequest(s.validate, req); err != nil {
		return nil, err
	}

	updated, found, err := s.paymentRepo.UpdateStatus(id, models.PaymentStatus(req.Status))
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.NewResourceNotFoundError("Payment not found")
	}
	return updated, nil
}

// CreateAnnouncement publishes a global notice
func (s *adminServiceImpl) CreateAnnouncement(adminID string, req dto.CreateAnnouncementRequest) (*models.Announcement, error) {
	if err := checkRequest(s.validate, req); err != nil {
		return nil, err
	}

	publishDate := req.PublishDate
	if publishDate == "" {
		publishDate = time.Now().Format("2006-01-02")
	}

	announcement := &models.Announcement{
		Title:       req.Title,
		Content:     req.Content,
		Audience:    models.Audience(req.Audience),
		CreatedBy:   adminID,
		PublishDate: publishDate,
	}
	created, err := s.announceRepo.Create(announcement)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to create announcement")
		return nil, err
	}

	s.logger.Info().Str("announcementId", created.ID).Str("audience", req.Audience).Msg("Announcement published")
	return created, nil
}

// Announcements lists every global announcement, newest first
func (s *adminServiceImpl) Announcements() []models.Announcement {
	return s.announceRepo.List()
}

// UpdateAnnouncement merges the non-nil request fields into an announcement
func (s *adminServiceImpl) UpdateAnnouncement(id string, req dto.UpdateAnnouncementRequest) (*models.Announcement, error) {
	if err := checkRequest(s.validate, req); err != nil {
		return nil, err
	}

	updated, found, err := s.announceRepo.Update(id, func(a *models.Announcement) {
		if req.Title != nil {
			a.Title = *req.Title
		}
		if req.Content != nil {
			a.Content = *req.Content
		}
		if req.Audience != nil {
			a.Audience = models.Audience(*req.Audience)
		}
		if req.PublishDate != nil {
			a.PublishDate = *req.PublishDate
		}
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.NewResourceNotFoundError("Announcement not found")
	}
	return updated, nil
}

// DeleteAnnouncement removes a global announcement
func (s *adminServiceImpl) DeleteAnnouncement(id string) (bool, error) {
	return s.announceRepo.Delete(id)
}
