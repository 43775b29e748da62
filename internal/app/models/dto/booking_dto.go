package dto

// CreateBookingRequest represents a parent booking a lesson. Hours defaults
// to one when omitted; the booking total is derived from rate and hours at
// creation time.
type CreateBookingRequest struct {
	TutorID     string  `json:"tutorId"`
	StudentName string  `json:"studentName" binding:"required"`
	Subject     string  `json:"subject" binding:"required"`
	Date        string  `json:"date" binding:"required"` // YYYY-MM-DD
	Slot        string  `json:"slot" binding:"required"`
	LessonType  string  `json:"lessonType" binding:"required"`
	RatePerHour float64 `json:"ratePerHour" binding:"required,gt=0"`
	Hours       float64 `json:"hours"`
}

// UpdateBookingStatusRequest changes a booking's lifecycle state
type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed completed cancelled"`
}

// MeetingLinkRequest attaches a meeting link to a booking
type MeetingLinkRequest struct {
	MeetingLink string `json:"meetingLink" binding:"required,url"`
}

// CheckoutRequest confirms a pending booking and records its payment in one
// step. The payment amount always comes from the booking total, never from
// the caller.
type CheckoutRequest struct {
	BookingID       string `json:"bookingId" binding:"required"`
	PaymentMethod   string `json:"paymentMethod" binding:"required"`
	Currency        string `json:"currency"`
	TransactionDate string `json:"transactionDate"` // YYYY-MM-DD, defaults to today
}

// UpdatePaymentStatusRequest changes a payment's settlement state
type UpdatePaymentStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=completed pending failed"`
}
