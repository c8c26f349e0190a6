package notification

import (
	"context"
	"time"

	"serveez/internal/domain"
)

// NotificationRepository is the persistence contract of the dispatcher.
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	CreateBatch(ctx context.Context, ns []domain.Notification) error
	GetByID(ctx context.Context, id int64) (*domain.Notification, error)
	ListByUser(ctx context.Context, userID int64, isRead *bool, limit, offset int) ([]domain.Notification, int64, error)
	CountUnread(ctx context.Context, userID int64) (int64, error)
	MarkRead(ctx context.Context, id int64, readAt time.Time) error
	MarkAllRead(ctx context.Context, userID int64, readAt time.Time) error
}

// UserDirectory resolves broadcast audiences.
type UserDirectory interface {
	ListAll(ctx context.Context) ([]domain.User, error)
	ListByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error)
}
