package repository

import (
	"context"
	"time"

	"serveez/internal/domain"

	"gorm.io/gorm"
)

type ListingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) *ListingRepository {
	return &ListingRepository{db: db}
}

func (r *ListingRepository) CreateCategory(ctx context.Context, c *domain.ServiceCategory) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ListingRepository) ListCategories(ctx context.Context) ([]domain.ServiceCategory, error) {
	var out []domain.ServiceCategory
	tx := r.db.WithContext(ctx).Order("name ASC").Find(&out)
	return out, tx.Error
}

func (r *ListingRepository) CreateListing(ctx context.Context, l *domain.ServiceListing) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *ListingRepository) GetListingByID(ctx context.Context, id int64) (*domain.ServiceListing, error) {
	var l domain.ServiceListing
	tx := r.db.WithContext(ctx).First(&l, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &l, nil
}

func (r *ListingRepository) UpdateListing(ctx context.Context, l *domain.ServiceListing) error {
	l.UpdatedAt = time.Now().UTC()
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *ListingRepository) SetActive(ctx context.Context, id int64, active bool) error {
	res := r.db.WithContext(ctx).
		Model(&domain.ServiceListing{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_active":  active,
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListListings filters by category and/or provider when set; zero means no filter.
func (r *ListingRepository) ListListings(ctx context.Context, categoryID, providerID int64, activeOnly bool) ([]domain.ServiceListing, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if categoryID > 0 {
		q = q.Where("category_id = ?", categoryID)
	}
	if providerID > 0 {
		q = q.Where("provider_id = ?", providerID)
	}
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}

	var out []domain.ServiceListing
	tx := q.Find(&out)
	return out, tx.Error
}
