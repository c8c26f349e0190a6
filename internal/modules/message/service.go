package message

import (
	"context"
	"errors"
	"log"
	"strings"

	"serveez/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	messages MessageRepository
	bookings BookingGate
	notifier NotificationSender
	pusher   Pusher
}

func NewService(messages MessageRepository, bookings BookingGate, notifier NotificationSender, pusher Pusher) *Service {
	return &Service{messages: messages, bookings: bookings, notifier: notifier, pusher: pusher}
}

// Send persists a message and notifies the recipient. When a booking is
// referenced the sender must be one of its parties and the recipient must be
// one of its parties too. The two checks are independent, so a party may
// message themselves within a booking.
func (s *Service) Send(ctx context.Context, fromUserID int64, req SendMessageRequest) (*domain.Message, error) {
	if strings.TrimSpace(req.Content) == "" || req.ToUserID <= 0 {
		return nil, ErrValidation
	}

	if req.BookingID != nil {
		b, err := s.bookings.GetByID(ctx, *req.BookingID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrBookingNotFound
			}
			return nil, err
		}
		if fromUserID != b.UserID && fromUserID != b.ProviderID {
			return nil, ErrForbidden
		}
		if req.ToUserID != b.UserID && req.ToUserID != b.ProviderID {
			return nil, ErrBadRecipient
		}
	}

	m := &domain.Message{
		FromUserID:       fromUserID,
		ToUserID:         req.ToUserID,
		BookingID:        req.BookingID,
		ServiceListingID: req.ServiceListingID,
		Content:          req.Content,
	}
	if err := s.messages.Create(ctx, m); err != nil {
		return nil, err
	}

	if err := s.notifier.NotifyMessageReceived(ctx, m.ToUserID, m.BookingID, m.ServiceListingID, fromUserID); err != nil {
		log.Printf("message: failed to notify user %d about message %d: %v", m.ToUserID, m.ID, err)
	}

	if s.pusher != nil {
		s.pusher.SendToUser(m.ToUserID, m)
	}

	return m, nil
}

// ListByBooking returns a booking's messages oldest first. Only the booking's
// parties may read them.
func (s *Service) ListByBooking(ctx context.Context, callerID, bookingID int64) ([]domain.Message, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if callerID != b.UserID && callerID != b.ProviderID {
		return nil, ErrForbidden
	}

	return s.messages.ListByBooking(ctx, bookingID)
}

// Conversations returns every message the user sent or received.
func (s *Service) Conversations(ctx context.Context, userID int64) ([]domain.Message, error) {
	return s.messages.ListByUser(ctx, userID)
}

func (s *Service) ListAll(ctx context.Context) ([]domain.Message, error) {
	return s.messages.ListAll(ctx)
}
