package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kaanyld/tutorhub/internal/app/models/dto"
	"github.com/kaanyld/tutorhub/internal/app/services"
	"github.com/kaanyld/tutorhub/internal/middleware"
)

// TutorController exposes the tutor façade over HTTP. The tutor id always
// comes from the authenticated token.
type TutorController struct {
	tutorService services.TutorService
}

// NewTutorController creates a new TutorController
func NewTutorController(tutorService services.TutorService) *TutorController {
	return &TutorController{
		tutorService: tutorService,
	}
}

// GetProfile returns the caller's account data
func (c *TutorController) GetProfile(ctx *gin.Context) {
	resp, err := c.tutorService.Profile(middleware.CallerID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp, Timestamp: time.Now()})
}

// UpdateProfile updates the caller's account data
func (c *TutorController) UpdateProfile(ctx *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid profile data", err)
		return
	}

	resp, err := c.tutorService.UpdateProfile(middleware.CallerID(ctx), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp, Timestamp: time.Now()})
}

// CreateSlot adds an availability window
func (c *TutorController) CreateSlot(ctx *gin.Context) {
	var req dto.CreateSlotRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid slot data", err)
		return
	}

	slot, err := c.tutorService.CreateSlot(middleware.CallerID(ctx), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: slot, Timestamp: time.Now()})
}

// GetSlots lists the caller's availability windows
func (c *TutorController) GetSlots(ctx *gin.Context) {
	slots := c.tutorService.Slots(middleware.CallerID(ctx))
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: slots, Timestamp: time.Now()})
}

// UpdateSlot updates one availability window
func (c *TutorController) UpdateSlot(ctx *gin.Context) {
	var req dto.UpdateSlotRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid slot data", err)
		return
	}

	slot, err := c.tutorService.UpdateSlot(middleware.CallerID(ctx), ctx.Param("id"), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: slot, Timestamp: time.Now()})
}

// DeleteSlot removes one availability window
func (c *TutorController) DeleteSlot(ctx *gin.Context) {
	removed, err := c.tutorService.DeleteSlot(middleware.CallerID(ctx), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if !removed {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Availability slot not found")
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(errorDetail))
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Slot deleted"}, Timestamp: time.Now()})
}

// BlockDate marks one date of a slot as unavailable
func (c *TutorController) BlockDate(ctx *gin.Context) {
	var req dto.BlockDateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid date", err)
		return
	}

	slot, err := c.tutorService.BlockDate(middleware.CallerID(ctx), ctx.Param("id"), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: slot, Timestamp: time.Now()})
}

// GetBookings lists the caller's assigned bookings
func (c *TutorController) GetBookings(ctx *gin.Context) {
	bookings := c.tutorService.Bookings(middleware.CallerID(ctx))
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: bookings, Timestamp: time.Now()})
}

// CompleteBooking marks a booking as completed
func (c *TutorController) CompleteBooking(ctx *gin.Context) {
	booking, err := c.tutorService.CompleteBooking(middleware.CallerID(ctx), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: booking, Timestamp: time.Now()})
}

// SetMeetingLink attaches a meeting link to a booking
func (c *TutorController) SetMeetingLink(ctx *gin.Context) {
	var req dto.MeetingLinkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid meeting link", err)
		return
	}

	booking, err := c.tutorService.SetMeetingLink(middleware.CallerID(ctx), ctx.Param("id"), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: booking, Timestamp: time.Now()})
}

// SendMessage sends a message to a parent
func (c *TutorController) SendMessage(ctx *gin.Context) {
	var req dto.SendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid message data", err)
		return
	}

	message, err := c.tutorService.SendMessage(middleware.CallerID(ctx), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: message, Timestamp: time.Now()})
}

// GetConversations lists the caller's conversation summaries
func (c *TutorController) GetConversations(ctx *gin.Context) {
	summaries := c.tutorService.Conversations(middleware.CallerID(ctx))
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: summaries, Timestamp: time.Now()})
}

// GetMessages lists the messages of one conversation
func (c *TutorController) GetMessages(ctx *gin.Context) {
	messages, err := c.tutorService.Messages(middleware.CallerID(ctx), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: messages, Timestamp: time.Now()})
}

// MarkConversationRead marks a conversation's messages as read
func (c *TutorController) MarkConversationRead(ctx *gin.Context) {
	marked, err := c.tutorService.MarkConversationRead(middleware.CallerID(ctx), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.MarkReadResponse{Marked: marked}, Timestamp: time.Now()})
}

// GetUnreadMessageCount returns the caller's unread message count
func (c *TutorController) GetUnreadMessageCount(ctx *gin.Context) {
	unread := c.tutorService.UnreadMessageCount(middleware.CallerID(ctx))
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.UnreadCountResponse{Unread: unread}, Timestamp: time.Now()})
}
