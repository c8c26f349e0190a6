package message

import (
	"context"

	"serveez/internal/domain"
)

type MessageRepository interface {
	Create(ctx context.Context, m *domain.Message) error
	ListByBooking(ctx context.Context, bookingID int64) ([]domain.Message, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Message, error)
	ListAll(ctx context.Context) ([]domain.Message, error)
}

type BookingGate interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

type NotificationSender interface {
	NotifyMessageReceived(ctx context.Context, toUserID int64, bookingID, listingID *int64, fromUserID int64) error
}

// Pusher delivers a message to connected websocket clients. Delivery is best
// effort, a persisted notification is created regardless.
type Pusher interface {
	SendToUser(userID int64, payload interface{}) bool
}
