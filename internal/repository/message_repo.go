package repository

import (
	"context"

	"serveez/internal/domain"

	"gorm.io/gorm"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Create(ctx context.Context, m *domain.Message) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MessageRepository) ListByBooking(ctx context.Context, bookingID int64) ([]domain.Message, error) {
	var out []domain.Message
	tx := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("created_at ASC").
		Find(&out)
	return out, tx.Error
}

// ListByUser returns every message where the user is sender or recipient.
func (r *MessageRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Message, error) {
	var out []domain.Message
	tx := r.db.WithContext(ctx).
		Where("from_user_id = ? OR to_user_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&out)
	return out, tx.Error
}

func (r *MessageRepository) ListAll(ctx context.Context) ([]domain.Message, error) {
	var out []domain.Message
	tx := r.db.WithContext(ctx).Order("created_at DESC").Find(&out)
	return out, tx.Error
}
