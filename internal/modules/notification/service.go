package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"serveez/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	repo  NotificationRepository
	users UserDirectory
}

func NewService(repo NotificationRepository, users UserDirectory) *Service {
	return &Service{repo: repo, users: users}
}

// Create writes a single notification record. This is the whole dispatch
// contract: no delivery transport, no batching, no dedup.
func (s *Service) Create(ctx context.Context, userID int64, t domain.NotificationType, title, message string,
	relatedBookingID, relatedListingID, relatedUserID *int64, metadata map[string]any) error {

	n := &domain.Notification{
		UserID:           userID,
		Type:             t,
		Title:            title,
		Message:          message,
		RelatedBookingID: relatedBookingID,
		RelatedListingID: relatedListingID,
		RelatedUserID:    relatedUserID,
		IsRead:           false,
		CreatedAt:        time.Now().UTC(),
	}
	if metadata != nil {
		raw, err := json.Marshal(metadata)
		if err != nil {
			return err
		}
		n.Metadata = raw
	}

	if err := s.repo.Create(ctx, n); err != nil {
		return err
	}
	log.Printf("notification created user_id=%d type=%s", userID, t)
	return nil
}

func (s *Service) List(ctx context.Context, userID int64, isRead *bool, limit, offset int) ([]domain.Notification, int64, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	list, total, err := s.repo.ListByUser(ctx, userID, isRead, limit, offset)
	if err != nil {
		return nil, 0, 0, err
	}

	unread, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		unread = 0
	}
	return list, unread, total, nil
}

func (s *Service) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	return s.repo.CountUnread(ctx, userID)
}

// MarkAsRead is idempotent: re-marking an already-read notification succeeds
// without touching read_at.
func (s *Service) MarkAsRead(ctx context.Context, notificationID, userID int64) (*domain.Notification, error) {
	n, err := s.repo.GetByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if n.UserID != userID {
		return nil, ErrForbidden
	}
	if n.IsRead {
		return n, nil
	}

	now := time.Now().UTC()
	if err := s.repo.MarkRead(ctx, notificationID, now); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	n.IsRead = true
	n.ReadAt = &now
	return n, nil
}

func (s *Service) MarkAllAsRead(ctx context.Context, userID int64) error {
	return s.repo.MarkAllRead(ctx, userID, time.Now().UTC())
}

// SendAdminNotification fans a broadcast out to the resolved audience, one
// record per recipient, with no related-entity fields.
func (s *Service) SendAdminNotification(ctx context.Context, req AdminNotificationRequest) (int, error) {
	t, ok := domain.ParseNotificationType(req.Type)
	if !ok {
		return 0, ErrValidation
	}

	recipients, err := s.resolveTarget(ctx, domain.NotificationTarget(req.TargetType), req.TargetUserID)
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	ns := make([]domain.Notification, 0, len(recipients))
	for _, userID := range recipients {
		ns = append(ns, domain.Notification{
			UserID:    userID,
			Type:      t,
			Title:     req.Title,
			Message:   req.Message,
			IsRead:    false,
			CreatedAt: now,
		})
	}

	if err := s.repo.CreateBatch(ctx, ns); err != nil {
		return 0, err
	}
	log.Printf("admin broadcast sent count=%d target=%s", len(ns), req.TargetType)
	return len(ns), nil
}

func (s *Service) resolveTarget(ctx context.Context, target domain.NotificationTarget, targetUserID *int64) ([]int64, error) {
	switch target {
	case domain.TargetAll:
		users, err := s.users.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		return userIDs(users), nil
	case domain.TargetAllUsers:
		users, err := s.users.ListByRole(ctx, domain.RoleUser)
		if err != nil {
			return nil, err
		}
		return userIDs(users), nil
	case domain.TargetAllProviders:
		users, err := s.users.ListByRole(ctx, domain.RoleProvider)
		if err != nil {
			return nil, err
		}
		return userIDs(users), nil
	case domain.TargetUser, domain.TargetProvider:
		if targetUserID == nil {
			return nil, ErrValidation
		}
		return []int64{*targetUserID}, nil
	default:
		return nil, ErrValidation
	}
}

func userIDs(users []domain.User) []int64 {
	out := make([]int64, 0, len(users))
	for _, u := range users {
		out = append(out, u.ID)
	}
	return out
}

const noReasonPlaceholder = "No reason provided"

func reasonOrPlaceholder(reason string) string {
	if reason == "" {
		return noReasonPlaceholder
	}
	return reason
}

func (s *Service) NotifyBookingCreated(ctx context.Context, providerID, bookingID, listingID, customerID int64, listingTitle string) error {
	return s.Create(ctx, providerID, domain.NotifBookingCreated,
		"New Booking Request",
		"You have a new booking request for "+listingTitle,
		&bookingID, &listingID, &customerID, nil)
}

func (s *Service) NotifyBookingConfirmed(ctx context.Context, customerID, bookingID, listingID, providerID int64) error {
	return s.Create(ctx, customerID, domain.NotifBookingConfirmed,
		"Booking Confirmed",
		"Your booking has been confirmed by the provider",
		&bookingID, &listingID, &providerID, nil)
}

func (s *Service) NotifyBookingCompleted(ctx context.Context, customerID, bookingID, listingID, providerID int64) error {
	return s.Create(ctx, customerID, domain.NotifBookingCompleted,
		"Booking Completed",
		"Your booking has been completed. Please leave a review!",
		&bookingID, &listingID, &providerID, nil)
}

func (s *Service) NotifyBookingCancelled(ctx context.Context, providerID, bookingID, listingID, customerID int64, reason string) error {
	return s.Create(ctx, providerID, domain.NotifBookingCancelled,
		"Booking Cancelled",
		"A booking has been cancelled by the customer. Reason: "+reasonOrPlaceholder(reason),
		&bookingID, &listingID, &customerID, nil)
}

// NotifyBookingCancelledAdmin notifies both booking parties; the admin actor is
// not recorded as a related user.
func (s *Service) NotifyBookingCancelledAdmin(ctx context.Context, customerID, providerID, bookingID, listingID int64, reason string) error {
	msg := "This booking has been cancelled by admin. Reason: " + reasonOrPlaceholder(reason)

	if err := s.Create(ctx, customerID, domain.NotifBookingCancelledAdmin,
		"Booking Cancelled by Admin", msg, &bookingID, &listingID, nil, nil); err != nil {
		return err
	}
	return s.Create(ctx, providerID, domain.NotifBookingCancelledAdmin,
		"Booking Cancelled by Admin", msg, &bookingID, &listingID, nil, nil)
}

func (s *Service) NotifyReviewReceived(ctx context.Context, providerID, bookingID, listingID, customerID int64, rating int) error {
	return s.Create(ctx, providerID, domain.NotifReviewReceived,
		"New Review",
		fmt.Sprintf("You received a %d-star review", rating),
		&bookingID, &listingID, &customerID, nil)
}

func (s *Service) NotifyMessageReceived(ctx context.Context, toUserID int64, bookingID, listingID *int64, fromUserID int64) error {
	return s.Create(ctx, toUserID, domain.NotifMessageReceived,
		"New Message",
		"You have received a new message",
		bookingID, listingID, &fromUserID, nil)
}
