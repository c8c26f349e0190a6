package review

import (
	"context"
	"errors"
	"log"

	"serveez/internal/domain"
	"serveez/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	reviews  ReviewRepository
	bookings BookingGate
	rating   RatingRecomputer
	notifier NotificationSender
}

func NewService(reviews ReviewRepository, bookings BookingGate, rating RatingRecomputer, notifier NotificationSender) *Service {
	return &Service{reviews: reviews, bookings: bookings, rating: rating, notifier: notifier}
}

// Create submits a review for a completed booking. One review per booking,
// enforced both by a pre-check and by the unique index on booking_id.
func (s *Service) Create(ctx context.Context, customerID, bookingID int64, req ReviewRequest) (*domain.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrValidation
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if b.UserID != customerID {
		return nil, ErrForbidden
	}
	if b.Status != domain.BookingCompleted {
		return nil, ErrBookingNotCompleted
	}

	exists, err := s.reviews.ExistsByBookingID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrConflict
	}

	rv := &domain.Review{
		BookingID:        bookingID,
		UserID:           customerID,
		ProviderID:       b.ProviderID,
		ServiceListingID: b.ServiceListingID,
		Rating:           req.Rating,
		Comment:          req.Comment,
	}
	if err := s.reviews.Create(ctx, rv); err != nil {
		// Concurrent submission that slipped past the pre-check loses here.
		if repository.IsUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}

	if err := s.rating.Recompute(ctx, b.ProviderID); err != nil {
		return nil, err
	}

	if err := s.notifier.NotifyReviewReceived(ctx, b.ProviderID, b.ID, b.ServiceListingID, customerID, rv.Rating); err != nil {
		log.Printf("review: failed to notify provider %d about review %d: %v", b.ProviderID, rv.ID, err)
	}

	return rv, nil
}

// Update edits an existing review's rating and comment. No notification is
// sent for edits.
func (s *Service) Update(ctx context.Context, customerID, reviewID int64, req ReviewRequest) (*domain.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrValidation
	}

	rv, err := s.load(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if rv.UserID != customerID {
		return nil, ErrForbidden
	}

	if err := s.reviews.UpdateRatingAndComment(ctx, reviewID, req.Rating, req.Comment); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := s.rating.Recompute(ctx, rv.ProviderID); err != nil {
		return nil, err
	}

	return s.load(ctx, reviewID)
}

// Delete removes a review and recomputes the provider's rating from the
// remaining set. Admins may delete any review.
func (s *Service) Delete(ctx context.Context, actorID int64, isAdmin bool, reviewID int64) error {
	rv, err := s.load(ctx, reviewID)
	if err != nil {
		return err
	}
	if !isAdmin && rv.UserID != actorID {
		return ErrForbidden
	}

	if err := s.reviews.Delete(ctx, reviewID); err != nil {
		return err
	}

	return s.rating.Recompute(ctx, rv.ProviderID)
}

func (s *Service) ListByListing(ctx context.Context, listingID int64) ([]domain.Review, error) {
	return s.reviews.ListByListing(ctx, listingID)
}

func (s *Service) ListByProvider(ctx context.Context, providerID int64) ([]domain.Review, error) {
	return s.reviews.ListByProvider(ctx, providerID)
}

func (s *Service) ListAll(ctx context.Context) ([]domain.Review, error) {
	return s.reviews.ListAll(ctx)
}

func (s *Service) load(ctx context.Context, id int64) (*domain.Review, error) {
	rv, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rv, nil
}
