package domain

import "time"

type Message struct {
	ID               int64  `json:"id" gorm:"primaryKey"`
	FromUserID       int64  `json:"from_user_id" gorm:"index"`
	ToUserID         int64  `json:"to_user_id" gorm:"index"`
	BookingID        *int64 `json:"booking_id,omitempty" gorm:"index"`
	ServiceListingID *int64 `json:"service_listing_id,omitempty"`
	Content          string `json:"content" gorm:"type:text"`
	// ReadAt is persisted but no operation sets it; kept for schema parity.
	ReadAt    *time.Time `json:"read_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
