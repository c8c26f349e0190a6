package domain

import "time"

type Review struct {
	ID               int64     `json:"id" gorm:"primaryKey"`
	BookingID        int64     `json:"booking_id" gorm:"uniqueIndex"`
	UserID           int64     `json:"user_id" gorm:"index"`
	ProviderID       int64     `json:"provider_id" gorm:"index"`
	ServiceListingID int64     `json:"service_listing_id" gorm:"index"`
	Rating           int       `json:"rating" gorm:"check:rating >= 1 AND rating <= 5"`
	Comment          string    `json:"comment,omitempty" gorm:"type:text"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
