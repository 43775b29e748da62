package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kaanyld/tutorhub/internal/app/models/dto"
	"github.com/kaanyld/tutorhub/internal/app/services"
	"github.com/kaanyld/tutorhub/internal/middleware"
)

// AdminController exposes the admin façade over HTTP
type AdminController struct {
	adminService services.AdminService
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService services.AdminService) *AdminController {
	return &AdminController{
		adminService: adminService,
	}
}

// GetAccounts lists accounts, optionally filtered by ?role=
func (c *AdminController) GetAccounts(ctx *gin.Context) {
	accounts := c.adminService.Accounts(ctx.Query("role"))
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: accounts, Timestamp: time.Now()})
}

// DeleteAccount removes an account
func (c *AdminController) DeleteAccount(ctx *gin.Context) {
	removed, err := c.adminService.DeleteAccount(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if !removed {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Account not found")
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(errorDetail))
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Account deleted"}, Timestamp: time.Now()})
}

// GetBookings lists every booking
func (c *AdminController) GetBookings(ctx *gin.Context) {
	bookings := c.adminService.Bookings()
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: bookings, Timestamp: time.Now()})
}

// UpdateBookingStatus changes a booking's lifecycle state
func (c *AdminController) UpdateBookingStatus(ctx *gin.Context) {
	var req dto.UpdateBookingStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid status", err)
		return
	}

	booking, err := c.adminService.UpdateBookingStatus(ctx.Param("id"), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: booking, Timestamp: time.Now()})
}

// DeleteBooking removes a booking
func (c *AdminController) DeleteBooking(ctx *gin.Context) {
	removed, err := c.adminService.DeleteBooking(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if !removed {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Booking not found")
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(errorDetail))
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Booking deleted"}, Timestamp: time.Now()})
}

// GetPayments lists every payment
func (c *AdminController) GetPayments(ctx *gin.Context) {
	payments := c.adminService.Payments()
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: payments, Timestamp: time.Now()})
}

// UpdatePaymentStatus changes a payment's settlement state
func (c *AdminController) UpdatePaymentStatus(ctx *gin.Context) {
	var req dto.UpdatePaymentStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid status", err)
		return
	}

	payment, err := c.adminService.UpdatePaymentStatus(ctx.Param("id"), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: payment, Timestamp: time.Now()})
}

// CreateAnnouncement publishes a global notice
func (c *AdminController) CreateAnnouncement(ctx *gin.Context) {
	var req dto.CreateAnnouncementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid announcement data", err)
		return
	}

	announcement, err := c.adminService.CreateAnnouncement(middleware.CallerID(ctx), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: announcement, Timestamp: time.Now()})
}

// GetAnnouncements lists every global announcement
func (c *AdminController) GetAnnouncements(ctx *gin.Context) {
	announcements := c.adminService.Announcements()
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: announcements, Timestamp: time.Now()})
}

// UpdateAnnouncement updates a global announcement
func (c *AdminController) UpdateAnnouncement(ctx *gin.Context) {
	var req dto.UpdateAnnouncementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid announcement data", err)
		return
	}

	announcement, err := c.adminService.UpdateAnnouncement(ctx.Param("id"), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: announcement, Timestamp: time.Now()})
}

// DeleteAnnouncement removes a global announcement
func (c *AdminController) DeleteAnnouncement(ctx *gin.Context) {
	removed, err := c.adminService.DeleteAnnouncement(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if !removed {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Announcement not found")
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(errorDetail))
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Announcement deleted"}, Timestamp: time.Now()})
}
