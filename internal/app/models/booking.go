package models

// BookingStatus represents the lifecycle state of a booking
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// ValidBookingStatus reports whether s is one of the known booking states.
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// Booking represents a lesson booked by a parent. Total is derived from the
// rate when the booking is created and is never recomputed afterwards.
type Booking struct {
	Meta
	ParentID    string        `json:"parentId"`
	TutorID     string        `json:"tutorId,omitempty"`
	StudentName string        `json:"studentName"`
	Subject     string        `json:"subject"`
	Date        string        `json:"date"` // YYYY-MM-DD
	Slot        string        `json:"slot"` // e.g. "10:00-11:00"
	LessonType  string        `json:"lessonType"`
	RatePerHour float64       `json:"ratePerHour"`
	Total       float64       `json:"total"`
	Status      BookingStatus `json:"status"`
	MeetingLink string        `json:"meetingLink,omitempty"`
}
