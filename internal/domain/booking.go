package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCompleted BookingStatus = "COMPLETED"
	BookingCancelled BookingStatus = "CANCELLED"
)

// ParseBookingStatus matches case-sensitively against the closed status set.
func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch BookingStatus(s) {
	case BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled:
		return BookingStatus(s), true
	}
	return "", false
}

type Booking struct {
	ID               int64         `json:"id" gorm:"primaryKey"`
	UserID           int64         `json:"user_id" gorm:"index"`
	ProviderID       int64         `json:"provider_id" gorm:"index"`
	ServiceListingID int64         `json:"service_listing_id"`
	Status           BookingStatus `json:"status" gorm:"index"`
	ScheduledAt      *time.Time    `json:"scheduled_at,omitempty"`
	Notes            string        `json:"notes,omitempty" gorm:"type:text"`
	// Snapshot of the listing price at creation, immutable afterwards.
	PriceAtBooking     float64   `json:"price_at_booking"`
	CancellationReason string    `json:"cancellation_reason,omitempty" gorm:"type:text"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
