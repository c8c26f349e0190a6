package booking

import (
	"context"

	"serveez/internal/domain"
)

type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	CancelWithReason(ctx context.Context, id int64, reason string) error
	ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error)
	ListByProvider(ctx context.Context, providerID int64) ([]domain.Booking, error)
	ListAll(ctx context.Context, status *domain.BookingStatus) ([]domain.Booking, error)
}

// ListingGate is the read-only listing lookup used at creation time.
type ListingGate interface {
	GetListingByID(ctx context.Context, id int64) (*domain.ServiceListing, error)
}

// NotificationSender fires the per-transition fan-out. Failures never roll
// back the transition that triggered them.
type NotificationSender interface {
	NotifyBookingCreated(ctx context.Context, providerID, bookingID, listingID, customerID int64, listingTitle string) error
	NotifyBookingConfirmed(ctx context.Context, customerID, bookingID, listingID, providerID int64) error
	NotifyBookingCompleted(ctx context.Context, customerID, bookingID, listingID, providerID int64) error
	NotifyBookingCancelled(ctx context.Context, providerID, bookingID, listingID, customerID int64, reason string) error
	NotifyBookingCancelledAdmin(ctx context.Context, customerID, providerID, bookingID, listingID int64, reason string) error
}
