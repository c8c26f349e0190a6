package domain

import (
	"time"

	"gorm.io/datatypes"
)

type NotificationType string

const (
	NotifBookingCreated        NotificationType = "BOOKING_CREATED"
	NotifBookingConfirmed      NotificationType = "BOOKING_CONFIRMED"
	NotifBookingCompleted      NotificationType = "BOOKING_COMPLETED"
	NotifBookingCancelled      NotificationType = "BOOKING_CANCELLED"
	NotifBookingCancelledAdmin NotificationType = "BOOKING_CANCELLED_ADMIN"
	NotifMessageReceived       NotificationType = "MESSAGE_RECEIVED"
	NotifReviewReceived        NotificationType = "REVIEW_RECEIVED"
	NotifAdminAnnouncement     NotificationType = "ADMIN_ANNOUNCEMENT"
)

func ParseNotificationType(s string) (NotificationType, bool) {
	switch NotificationType(s) {
	case NotifBookingCreated, NotifBookingConfirmed, NotifBookingCompleted,
		NotifBookingCancelled, NotifBookingCancelledAdmin,
		NotifMessageReceived, NotifReviewReceived, NotifAdminAnnouncement:
		return NotificationType(s), true
	}
	return "", false
}

// NotificationTarget is the audience selector for admin broadcasts.
type NotificationTarget string

const (
	TargetAll          NotificationTarget = "ALL"
	TargetAllUsers     NotificationTarget = "ALL_USERS"
	TargetAllProviders NotificationTarget = "ALL_PROVIDERS"
	TargetUser         NotificationTarget = "USER"
	TargetProvider     NotificationTarget = "PROVIDER"
)

type Notification struct {
	ID               int64            `json:"id" gorm:"primaryKey"`
	UserID           int64            `json:"user_id" gorm:"index:idx_notifications_user_unread"`
	Type             NotificationType `json:"type"`
	Title            string           `json:"title"`
	Message          string           `json:"message,omitempty" gorm:"type:text"`
	RelatedBookingID *int64           `json:"related_booking_id,omitempty"`
	RelatedListingID *int64           `json:"related_listing_id,omitempty"`
	RelatedUserID    *int64           `json:"related_user_id,omitempty"`
	IsRead           bool             `json:"is_read" gorm:"index:idx_notifications_user_unread"`
	ReadAt           *time.Time       `json:"read_at,omitempty"`
	Metadata         datatypes.JSON   `json:"metadata,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
}
