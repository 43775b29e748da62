package models

// PaymentStatus represents the settlement state of a payment
type PaymentStatus string

const (
	PaymentCompleted PaymentStatus = "completed"
	PaymentPending   PaymentStatus = "pending"
	PaymentFailed    PaymentStatus = "failed"
)

// ValidPaymentStatus reports whether s is one of the known payment states.
func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentCompleted, PaymentPending, PaymentFailed:
		return true
	}
	return false
}

// Payment records money paid by a parent for a booking. Amount is immutable
// once recorded; only the status may change afterwards. The referenced
// booking may have been deleted since, readers must tolerate that.
type Payment struct {
	Meta
	ParentID        string        `json:"parentId"`
	BookingID       string        `json:"bookingId"`
	Amount          float64       `json:"amount"`
	Currency        string        `json:"currency"`
	PaymentMethod   string        `json:"paymentMethod"`
	Status          PaymentStatus `json:"status"`
	TransactionDate string        `json:"transactionDate"` // YYYY-MM-DD
}
