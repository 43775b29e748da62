package dto

// CreateSlotRequest represents a tutor adding a weekly availability window.
// Start and end times are HH:MM strings; start before end is expected but
// not enforced.
type CreateSlotRequest struct {
	DayOfWeek string `json:"dayOfWeek" binding:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
	Recurring bool   `json:"recurring"`
}

// UpdateSlotRequest represents a partial slot update. Nil fields are left
// untouched.
type UpdateSlotRequest struct {
	DayOfWeek *string `json:"dayOfWeek,omitempty" binding:"omitempty,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	StartTime *string `json:"startTime,omitempty"`
	EndTime   *string `json:"endTime,omitempty"`
	Recurring *bool   `json:"recurring,omitempty"`
}

// BlockDateRequest marks one date of a recurring slot as unavailable
type BlockDateRequest struct {
	Date string `json:"date" binding:"required"` // YYYY-MM-DD
}
