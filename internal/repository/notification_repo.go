package repository

import (
	"context"
	"time"

	"serveez/internal/domain"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

type notificationModel struct {
	ID               int64          `gorm:"column:id;primaryKey"`
	UserID           int64          `gorm:"column:user_id"`
	Type             string         `gorm:"column:type"`
	Title            string         `gorm:"column:title"`
	Message          *string        `gorm:"column:message"`
	RelatedBookingID *int64         `gorm:"column:related_booking_id"`
	RelatedListingID *int64         `gorm:"column:related_listing_id"`
	RelatedUserID    *int64         `gorm:"column:related_user_id"`
	IsRead           bool           `gorm:"column:is_read"`
	ReadAt           *time.Time     `gorm:"column:read_at"`
	Metadata         datatypes.JSON `gorm:"column:metadata"`
	CreatedAt        time.Time      `gorm:"column:created_at"`
}

func (notificationModel) TableName() string { return "notifications" }

func toDomainNotification(m notificationModel) *domain.Notification {
	var msg string
	if m.Message != nil {
		msg = *m.Message
	}
	return &domain.Notification{
		ID:               m.ID,
		UserID:           m.UserID,
		Type:             domain.NotificationType(m.Type),
		Title:            m.Title,
		Message:          msg,
		RelatedBookingID: m.RelatedBookingID,
		RelatedListingID: m.RelatedListingID,
		RelatedUserID:    m.RelatedUserID,
		IsRead:           m.IsRead,
		ReadAt:           m.ReadAt,
		Metadata:         m.Metadata,
		CreatedAt:        m.CreatedAt,
	}
}

func toNotificationModel(n *domain.Notification) notificationModel {
	var msg *string
	if n.Message != "" {
		v := n.Message
		msg = &v
	}
	return notificationModel{
		ID:               n.ID,
		UserID:           n.UserID,
		Type:             string(n.Type),
		Title:            n.Title,
		Message:          msg,
		RelatedBookingID: n.RelatedBookingID,
		RelatedListingID: n.RelatedListingID,
		RelatedUserID:    n.RelatedUserID,
		IsRead:           n.IsRead,
		ReadAt:           n.ReadAt,
		Metadata:         n.Metadata,
		CreatedAt:        n.CreatedAt,
	}
}

func (r *NotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	m := toNotificationModel(n)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*n = *toDomainNotification(m)
	return nil
}

// CreateBatch persists one notification per broadcast recipient.
func (r *NotificationRepository) CreateBatch(ctx context.Context, ns []domain.Notification) error {
	if len(ns) == 0 {
		return nil
	}
	rows := make([]notificationModel, 0, len(ns))
	for i := range ns {
		rows = append(rows, toNotificationModel(&ns[i]))
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *NotificationRepository) GetByID(ctx context.Context, id int64) (*domain.Notification, error) {
	var m notificationModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainNotification(m), nil
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userID int64, isRead *bool, limit, offset int) ([]domain.Notification, int64, error) {
	q := r.db.WithContext(ctx).
		Model(&notificationModel{}).
		Where("user_id = ?", userID)
	if isRead != nil {
		q = q.Where("is_read = ?", *isRead)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []notificationModel
	tx := q.Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows)
	if tx.Error != nil {
		return nil, 0, tx.Error
	}

	out := make([]domain.Notification, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainNotification(m))
	}
	return out, total, nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&notificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

// MarkRead sets is_read and read_at together so the two can never disagree.
func (r *NotificationRepository) MarkRead(ctx context.Context, id int64, readAt time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&notificationModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_read": true,
			"read_at": readAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID int64, readAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&notificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Updates(map[string]any{
			"is_read": true,
			"read_at": readAt,
		}).Error
}
