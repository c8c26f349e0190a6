package repository

import (
	"context"
	"time"

	"serveez/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID                 int64      `gorm:"column:id;primaryKey"`
	UserID             int64      `gorm:"column:user_id"`
	ProviderID         int64      `gorm:"column:provider_id"`
	ServiceListingID   int64      `gorm:"column:service_listing_id"`
	Status             string     `gorm:"column:status"`
	ScheduledAt        *time.Time `gorm:"column:scheduled_at"`
	Notes              *string    `gorm:"column:notes"`
	PriceAtBooking     float64    `gorm:"column:price_at_booking"`
	CancellationReason *string    `gorm:"column:cancellation_reason"`
	CreatedAt          time.Time  `gorm:"column:created_at"`
	UpdatedAt          time.Time  `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	var notes, reason string
	if m.Notes != nil {
		notes = *m.Notes
	}
	if m.CancellationReason != nil {
		reason = *m.CancellationReason
	}

	return &domain.Booking{
		ID:                 m.ID,
		UserID:             m.UserID,
		ProviderID:         m.ProviderID,
		ServiceListingID:   m.ServiceListingID,
		Status:             domain.BookingStatus(m.Status),
		ScheduledAt:        m.ScheduledAt,
		Notes:              notes,
		PriceAtBooking:     m.PriceAtBooking,
		CancellationReason: reason,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	var notes, reason *string
	if b.Notes != "" {
		v := b.Notes
		notes = &v
	}
	if b.CancellationReason != "" {
		v := b.CancellationReason
		reason = &v
	}

	return bookingModel{
		ID:                 b.ID,
		UserID:             b.UserID,
		ProviderID:         b.ProviderID,
		ServiceListingID:   b.ServiceListingID,
		Status:             string(b.Status),
		ScheduledAt:        b.ScheduledAt,
		Notes:              notes,
		PriceAtBooking:     b.PriceAtBooking,
		CancellationReason: reason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// UpdateStatus writes the new lifecycle status. PriceAtBooking and the
// creation-time fields are never touched here.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	return r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": time.Now().UTC(),
		}).Error
}

func (r *BookingRepository) CancelWithReason(ctx context.Context, id int64, reason string) error {
	updates := map[string]any{
		"status":     string(domain.BookingCancelled),
		"updated_at": time.Now().UTC(),
	}
	if reason != "" {
		updates["cancellation_reason"] = reason
	}
	return r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	var rows []bookingModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBookings(rows), nil
}

func (r *BookingRepository) ListByProvider(ctx context.Context, providerID int64) ([]domain.Booking, error) {
	var rows []bookingModel
	tx := r.db.WithContext(ctx).
		Where("provider_id = ?", providerID).
		Order("created_at DESC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBookings(rows), nil
}

// ListAll returns every booking, optionally filtered by exact status.
func (r *BookingRepository) ListAll(ctx context.Context, status *domain.BookingStatus) ([]domain.Booking, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if status != nil {
		q = q.Where("status = ?", string(*status))
	}

	var rows []bookingModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return toDomainBookings(rows), nil
}

func toDomainBookings(rows []bookingModel) []domain.Booking {
	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out
}
