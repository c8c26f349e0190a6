package review

import (
	"context"

	"serveez/internal/domain"
)

type ReviewRepository interface {
	Create(ctx context.Context, rv *domain.Review) error
	GetByID(ctx context.Context, id int64) (*domain.Review, error)
	UpdateRatingAndComment(ctx context.Context, id int64, rating int, comment string) error
	Delete(ctx context.Context, id int64) error
	ExistsByBookingID(ctx context.Context, bookingID int64) (bool, error)
	ListByProvider(ctx context.Context, providerID int64) ([]domain.Review, error)
	ListByListing(ctx context.Context, listingID int64) ([]domain.Review, error)
	ListAll(ctx context.Context) ([]domain.Review, error)
}

// BookingGate gives read access to the booking a review refers to.
type BookingGate interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

// RatingRecomputer refreshes the provider's derived rating after every review
// mutation.
type RatingRecomputer interface {
	Recompute(ctx context.Context, providerID int64) error
}

type NotificationSender interface {
	NotifyReviewReceived(ctx context.Context, providerID, bookingID, listingID, customerID int64, rating int) error
}
