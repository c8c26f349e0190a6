package booking

import (
	"context"
	"errors"
	"log"
	"time"

	"serveez/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	bookings BookingRepository
	listings ListingGate
	notifs   NotificationSender
}

func NewService(bookings BookingRepository, listings ListingGate, notifs NotificationSender) *Service {
	return &Service{
		bookings: bookings,
		listings: listings,
		notifs:   notifs,
	}
}

// Create opens a booking in PENDING against an active listing. ProviderID and
// PriceAtBooking are snapshotted from the listing and never change afterwards.
func (s *Service) Create(ctx context.Context, customerID int64, req CreateBookingRequest) (*domain.Booking, error) {
	listing, err := s.listings.GetListingByID(ctx, req.ServiceListingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	if !listing.IsActive {
		return nil, ErrListingInactive
	}

	now := time.Now().UTC()
	b := &domain.Booking{
		UserID:           customerID,
		ProviderID:       listing.ProviderID,
		ServiceListingID: listing.ID,
		Status:           domain.BookingPending,
		ScheduledAt:      req.ScheduledAt,
		Notes:            req.Notes,
		PriceAtBooking:   listing.Price,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		if err := s.notifs.NotifyBookingCreated(ctx, b.ProviderID, b.ID, listing.ID, customerID, listing.Title); err != nil {
			log.Printf("booking notification failed booking_id=%d type=created err=%v", b.ID, err)
		}
	}

	return b, nil
}

func (s *Service) GetByID(ctx context.Context, bookingID, callerID int64, callerRole domain.UserRole) (*domain.Booking, error) {
	b, err := s.load(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if callerRole != domain.RoleAdmin && b.UserID != callerID && b.ProviderID != callerID {
		return nil, ErrForbidden
	}
	return b, nil
}

func (s *Service) ListForUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	return s.bookings.ListByUser(ctx, userID)
}

func (s *Service) ListForProvider(ctx context.Context, providerID int64) ([]domain.Booking, error) {
	return s.bookings.ListByProvider(ctx, providerID)
}

// Confirm moves PENDING -> CONFIRMED. Only the booking's provider may do this.
func (s *Service) Confirm(ctx context.Context, providerID, bookingID int64) (*domain.Booking, error) {
	b, err := s.load(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.ProviderID != providerID {
		return nil, ErrForbidden
	}
	if b.Status != domain.BookingPending {
		return nil, ErrInvalidStatus
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, domain.BookingConfirmed); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		if err := s.notifs.NotifyBookingConfirmed(ctx, b.UserID, b.ID, b.ServiceListingID, providerID); err != nil {
			log.Printf("booking notification failed booking_id=%d type=confirmed err=%v", b.ID, err)
		}
	}

	return s.load(ctx, bookingID)
}

// Complete moves CONFIRMED -> COMPLETED, the terminal success state.
func (s *Service) Complete(ctx context.Context, providerID, bookingID int64) (*domain.Booking, error) {
	b, err := s.load(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.ProviderID != providerID {
		return nil, ErrForbidden
	}
	if b.Status != domain.BookingConfirmed {
		return nil, ErrInvalidStatus
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, domain.BookingCompleted); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		if err := s.notifs.NotifyBookingCompleted(ctx, b.UserID, b.ID, b.ServiceListingID, providerID); err != nil {
			log.Printf("booking notification failed booking_id=%d type=completed err=%v", b.ID, err)
		}
	}

	return s.load(ctx, bookingID)
}

// Cancel is the customer path: guarded by the state machine, terminal states
// cannot be cancelled.
func (s *Service) Cancel(ctx context.Context, customerID, bookingID int64, reason string) (*domain.Booking, error) {
	b, err := s.load(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.UserID != customerID {
		return nil, ErrForbidden
	}
	if b.Status == domain.BookingCompleted || b.Status == domain.BookingCancelled {
		return nil, ErrInvalidStatus
	}

	if err := s.bookings.CancelWithReason(ctx, bookingID, reason); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		if err := s.notifs.NotifyBookingCancelled(ctx, b.ProviderID, b.ID, b.ServiceListingID, customerID, reason); err != nil {
			log.Printf("booking notification failed booking_id=%d type=cancelled err=%v", b.ID, err)
		}
	}

	return s.load(ctx, bookingID)
}

// AdminCancel bypasses the state machine on purpose: it cancels regardless of
// the current status, COMPLETED included, and notifies both parties. Kept as
// its own operation so the guarded customer path cannot inherit the bypass.
func (s *Service) AdminCancel(ctx context.Context, bookingID int64, reason string) (*domain.Booking, error) {
	b, err := s.load(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := s.bookings.CancelWithReason(ctx, bookingID, reason); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		if err := s.notifs.NotifyBookingCancelledAdmin(ctx, b.UserID, b.ProviderID, b.ID, b.ServiceListingID, reason); err != nil {
			log.Printf("booking notification failed booking_id=%d type=admin_cancelled err=%v", b.ID, err)
		}
	}

	return s.load(ctx, bookingID)
}

// ListAll is the privileged listing; statusFilter must match an enumerated
// status exactly when present.
func (s *Service) ListAll(ctx context.Context, statusFilter string) ([]domain.Booking, error) {
	var status *domain.BookingStatus
	if statusFilter != "" {
		parsed, ok := domain.ParseBookingStatus(statusFilter)
		if !ok {
			return nil, ErrValidation
		}
		status = &parsed
	}
	return s.bookings.ListAll(ctx, status)
}

func (s *Service) load(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}
