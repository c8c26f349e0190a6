package repository

import (
	"context"
	"time"

	"serveez/internal/domain"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

type reviewModel struct {
	ID               int64     `gorm:"column:id;primaryKey"`
	BookingID        int64     `gorm:"column:booking_id;uniqueIndex"`
	UserID           int64     `gorm:"column:user_id"`
	ProviderID       int64     `gorm:"column:provider_id"`
	ServiceListingID int64     `gorm:"column:service_listing_id"`
	Rating           int       `gorm:"column:rating"`
	Comment          *string   `gorm:"column:comment"`
	CreatedAt        time.Time `gorm:"column:created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at"`
}

func (reviewModel) TableName() string { return "reviews" }

func toDomainReview(m reviewModel) *domain.Review {
	var comment string
	if m.Comment != nil {
		comment = *m.Comment
	}
	return &domain.Review{
		ID:               m.ID,
		BookingID:        m.BookingID,
		UserID:           m.UserID,
		ProviderID:       m.ProviderID,
		ServiceListingID: m.ServiceListingID,
		Rating:           m.Rating,
		Comment:          comment,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func toReviewModel(rv *domain.Review) reviewModel {
	var comment *string
	if rv.Comment != "" {
		v := rv.Comment
		comment = &v
	}
	return reviewModel{
		ID:               rv.ID,
		BookingID:        rv.BookingID,
		UserID:           rv.UserID,
		ProviderID:       rv.ProviderID,
		ServiceListingID: rv.ServiceListingID,
		Rating:           rv.Rating,
		Comment:          comment,
		CreatedAt:        rv.CreatedAt,
		UpdatedAt:        rv.UpdatedAt,
	}
}

// Create relies on the unique index over booking_id; concurrent submissions for
// the same booking lose with a unique violation rather than producing duplicates.
func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	m := toReviewModel(rv)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*rv = *toDomainReview(m)
	return nil
}

func (r *ReviewRepository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	var m reviewModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainReview(m), nil
}

func (r *ReviewRepository) UpdateRatingAndComment(ctx context.Context, id int64, rating int, comment string) error {
	updates := map[string]any{
		"rating":     rating,
		"comment":    nil,
		"updated_at": time.Now().UTC(),
	}
	if comment != "" {
		updates["comment"] = comment
	}
	res := r.db.WithContext(ctx).
		Model(&reviewModel{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&reviewModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ReviewRepository) ExistsByBookingID(ctx context.Context, bookingID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&reviewModel{}).
		Where("booking_id = ?", bookingID).
		Count(&count).Error
	return count > 0, err
}

func (r *ReviewRepository) ListByProvider(ctx context.Context, providerID int64) ([]domain.Review, error) {
	return r.list(ctx, "provider_id = ?", providerID)
}

func (r *ReviewRepository) ListByListing(ctx context.Context, listingID int64) ([]domain.Review, error) {
	return r.list(ctx, "service_listing_id = ?", listingID)
}

func (r *ReviewRepository) ListAll(ctx context.Context) ([]domain.Review, error) {
	var rows []reviewModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return toDomainReviews(rows), nil
}

func (r *ReviewRepository) list(ctx context.Context, cond string, arg any) ([]domain.Review, error) {
	var rows []reviewModel
	tx := r.db.WithContext(ctx).
		Where(cond, arg).
		Order("created_at DESC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainReviews(rows), nil
}

func toDomainReviews(rows []reviewModel) []domain.Review {
	out := make([]domain.Review, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainReview(m))
	}
	return out
}
