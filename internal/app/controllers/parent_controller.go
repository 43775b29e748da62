package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kaanyld/tutorhub/internal/app/models/dto"
	"github.com/kaanyld/tutorhub/internal/app/services"
	"github.com/kaanyld/tutorhub/internal/middleware"
)

// ParentController exposes the parent façade over HTTP. The parent id
// always comes from the authenticated token, never from the request body.
type ParentController struct {
	parentService services.ParentService
}

// NewParentController creates a new ParentController
func NewParentController(parentService services.ParentService) *ParentController {
	return &ParentController{
		parentService: parentService,
	}
}

// GetProfile returns the caller's account data
func (c *ParentController) GetProfile(ctx *gin.Context) {
	resp, err := c.parentService.Profile(middleware.CallerID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp, Timestamp: time.Now()})
}

// UpdateProfile updates the caller's account data
func (c *ParentController) UpdateProfile(ctx *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid profile data", err)
		return
	}

	resp, err := c.parentService.UpdateProfile(middleware.CallerID(ctx), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp, Timestamp: time.Now()})
}

// CreateBooking books a lesson for the caller
func (c *ParentController) CreateBooking(ctx *gin.Context) {
	var req dto.CreateBookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid booking data", err)
		return
	}

	booking, err := c.parentService.CreateBooking(middleware.CallerID(ctx), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: booking, Timestamp: time.Now()})
}

// GetBookings lists the caller's bookings
func (c *ParentController) GetBookings(ctx *gin.Context) {
	bookings := c.parentService.Bookings(middleware.CallerID(ctx))
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: bookings, Timestamp: time.Now()})
}

// CancelBooking cancels one of the caller's bookings
func (c *ParentController) CancelBooking(ctx *gin.Context) {
	booking, err := c.parentService.CancelBooking(middleware.CallerID(ctx), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: booking, Timestamp: time.Now()})
}

// Checkout confirms a booking and records its payment
func (c *ParentController) Checkout(ctx *gin.Context) {
	var req dto.CheckoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid checkout data", err)
		return
	}

	payment, err := c.parentService.Checkout(middleware.CallerID(ctx), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: payment, Timestamp: time.Now()})
}

// GetPayments lists the caller's payments
func (c *ParentController) GetPayments(ctx *gin.Context) {
	payments := c.parentService.Payments(middleware.CallerID(ctx))
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: payments, Timestamp: time.Now()})
}

// GetMonthlySpend returns the caller's spend grouped by month
func (c *ParentController) GetMonthlySpend(ctx *gin.Context) {
	totals := c.parentService.MonthlySpend(middleware.CallerID(ctx))
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: totals, Timestamp: time.Now()})
}

// SendMessage sends a message to a tutor
func (c *ParentController) SendMessage(ctx *gin.Context) {
	var req dto.SendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid message data", err)
		return
	}

	message, err := c.parentService.SendMessage(middleware.CallerID(ctx), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: message, Timestamp: time.Now()})
}

// GetConversations lists the caller's conversation summaries
func (c *ParentController) GetConversations(ctx *gin.Context) {
	summaries := c.parentService.Conversations(middleware.CallerID(ctx))
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: summaries, Timestamp: time.Now()})
}

// GetMessages lists the messages of one conversation
func (c *ParentController) GetMessages(ctx *gin.Context) {
	messages, err := c.parentService.Messages(middleware.CallerID(ctx), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: messages, Timestamp: time.Now()})
}

// MarkConversationRead marks a conversation's messages as read
func (c *ParentController) MarkConversationRead(ctx *gin.Context) {
	marked, err := c.parentService.MarkConversationRead(middleware.CallerID(ctx), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.MarkReadResponse{Marked: marked}, Timestamp: time.Now()})
}

// GetUnreadMessageCount returns the caller's unread message count
func (c *ParentController) GetUnreadMessageCount(ctx *gin.Context) {
	unread := c.parentService.UnreadMessageCount(middleware.CallerID(ctx))
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.UnreadCountResponse{Unread: unread}, Timestamp: time.Now()})
}

// GetAnnouncements returns the caller's announcement feed
func (c *ParentController) GetAnnouncements(ctx *gin.Context) {
	feed, err := c.parentService.AnnouncementFeed(middleware.CallerID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: feed, Timestamp: time.Now()})
}

// MarkAnnouncementRead marks one feed entry as read
func (c *ParentController) MarkAnnouncementRead(ctx *gin.Context) {
	notice, err := c.parentService.MarkAnnouncementRead(middleware.CallerID(ctx), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: notice, Timestamp: time.Now()})
}

// GetUnreadAnnouncementCount returns the caller's unread feed count
func (c *ParentController) GetUnreadAnnouncementCount(ctx *gin.Context) {
	unread := c.parentService.UnreadAnnouncementCount(middleware.CallerID(ctx))
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.UnreadCountResponse{Unread: unread}, Timestamp: time.Now()})
}

// badRequest writes the standard malformed-body response
func badRequest(ctx *gin.Context, message string, err error) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message)
	errorDetail = errorDetail.WithDetails(err.Error())
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
}
