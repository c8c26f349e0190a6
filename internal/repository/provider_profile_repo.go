package repository

import (
	"context"
	"time"

	"serveez/internal/domain"

	"gorm.io/gorm"
)

type ProviderProfileRepository struct {
	db *gorm.DB
}

func NewProviderProfileRepository(db *gorm.DB) *ProviderProfileRepository {
	return &ProviderProfileRepository{db: db}
}

func (r *ProviderProfileRepository) Create(ctx context.Context, p *domain.ProviderProfile) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProviderProfileRepository) GetByUserID(ctx context.Context, userID int64) (*domain.ProviderProfile, error) {
	var p domain.ProviderProfile
	tx := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&p)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &p, nil
}

func (r *ProviderProfileRepository) GetByID(ctx context.Context, id int64) (*domain.ProviderProfile, error) {
	var p domain.ProviderProfile
	tx := r.db.WithContext(ctx).First(&p, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &p, nil
}

func (r *ProviderProfileRepository) ExistsByUserID(ctx context.Context, userID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.ProviderProfile{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count > 0, err
}

func (r *ProviderProfileRepository) Update(ctx context.Context, p *domain.ProviderProfile) error {
	p.UpdatedAt = time.Now().UTC()
	return r.db.WithContext(ctx).Save(p).Error
}

// SetRating writes the derived aggregate fields. Nothing else may change them.
func (r *ProviderProfileRepository) SetRating(ctx context.Context, userID int64, avg float64, total int) error {
	res := r.db.WithContext(ctx).
		Model(&domain.ProviderProfile{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"average_rating": avg,
			"total_reviews":  total,
			"updated_at":     time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
