package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/kaanyld/tutorhub/internal/app/controllers"
	"github.com/kaanyld/tutorhub/internal/app/models"
	"github.com/kaanyld/tutorhub/internal/app/models/dto"
	"github.com/kaanyld/tutorhub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	parentController *controllers.ParentController,
	tutorController *controllers.TutorController,
	adminController *controllers.AdminController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register/parent", authController.RegisterParent)
		auth.POST("/register/tutor", authController.RegisterTutor)
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	// Parent routes
	parent := authenticated.Group("/parent")
	parent.Use(authMiddleware.RoleRequired(string(models.RoleParent)))
	{
		parent.GET("/profile", parentController.GetProfile)
		parent.PUT("/profile", parentController.UpdateProfile)

		parent.POST("/bookings", parentController.CreateBooking)
		parent.GET("/bookings", parentController.GetBookings)
		parent.POST("/bookings/:id/cancel", parentController.CancelBooking)
		parent.POST("/bookings/checkout", parentController.Checkout)

		parent.GET("/payments", parentController.GetPayments)
		parent.GET("/payments/monthly", parentController.GetMonthlySpend)

		parent.POST("/messages", parentController.SendMessage)
		parent.GET("/conversations", parentController.GetConversations)
		parent.GET("/conversations/:id/messages", parentController.GetMessages)
		parent.POST("/conversations/:id/read", parentController.MarkConversationRead)
		parent.GET("/messages/unread-count", parentController.GetUnreadMessageCount)

		parent.GET("/announcements", parentController.GetAnnouncements)
		parent.POST("/announcements/:id/read", parentController.MarkAnnouncementRead)
		parent.GET("/announcements/unread-count", parentController.GetUnreadAnnouncementCount)
	}

	// Tutor routes
	tutor := authenticated.Group("/tutor")
	tutor.Use(authMiddleware.RoleRequired(string(models.RoleTutor)))
	{
		tutor.GET("/profile", tutorController.GetProfile)
		tutor.PUT("/profile", tutorController.UpdateProfile)

		tutor.POST("/availability", tutorController.CreateSlot)
		tutor.GET("/availability", tutorController.GetSlots)
		tutor.PUT("/availability/:id", tutorController.UpdateSlot)
		tutor.DELETE("/availability/:id", tutorController.DeleteSlot)
		tutor.POST("/availability/:id/block", tutorController.BlockDate)

		tutor.GET("/bookings", tutorController.GetBookings)
		tutor.POST("/bookings/:id/complete", tutorController.CompleteBooking)
		tutor.PUT("/bookings/:id/meeting-link", tutorController.SetMeetingLink)

		tutor.POST("/messages", tutorController.SendMessage)
		tutor.GET("/conversations", tutorController.GetConversations)
		tutor.GET("/conversations/:id/messages", tutorController.GetMessages)
		tutor.POST("/conversations/:id/read", tutorController.MarkConversationRead)
		tutor.GET("/messages/unread-count", tutorController.GetUnreadMessageCount)
	}

	// Admin routes
	admin := authenticated.Group("/admin")
	admin.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
	{
		admin.GET("/accounts", adminController.GetAccounts)
		admin.DELETE("/accounts/:id", adminController.DeleteAccount)

		admin.GET("/bookings", adminController.GetBookings)
		admin.PUT("/bookings/:id/status", adminController.UpdateBookingStatus)
		admin.DELETE("/bookings/:id", adminController.DeleteBooking)

		admin.GET("/payments", adminController.GetPayments)
		admin.PUT("/payments/:id/status", adminController.UpdatePaymentStatus)

		admin.POST("/announcements", adminController.CreateAnnouncement)
		admin.GET("/announcements", adminController.GetAnnouncements)
		admin.PUT("/announcements/:id", adminController.UpdateAnnouncement)
		admin.DELETE("/announcements/:id", adminController.DeleteAnnouncement)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
