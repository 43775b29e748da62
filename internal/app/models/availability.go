package models

// Weekday names accepted for availability slots.
var Weekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// ValidWeekday reports whether day is one of the seven weekday names.
func ValidWeekday(day string) bool {
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

// AvailabilitySlot represents a weekly teaching window of a tutor.
// StartTime < EndTime is expected but deliberately not enforced.
type AvailabilitySlot struct {
	Meta
	TutorID      string   `json:"tutorId"`
	DayOfWeek    string   `json:"dayOfWeek"`
	StartTime    string   `json:"startTime"` // HH:MM
	EndTime      string   `json:"endTime"`   // HH:MM
	Recurring    bool     `json:"recurring"`
	BlockedDates []string `json:"blockedDates,omitempty"` // YYYY-MM-DD
}
