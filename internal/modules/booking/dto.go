package booking

import "time"

type CreateBookingRequest struct {
	ServiceListingID int64      `json:"service_listing_id" binding:"required"`
	ScheduledAt      *time.Time `json:"scheduled_at,omitempty"`
	Notes            string     `json:"notes,omitempty"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason,omitempty"`
}
