package repository

import (
	"context"
	"strings"

	"serveez/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	tx := r.db.WithContext(ctx).First(&u, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	tx := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&u)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &u, nil
}

func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *UserRepository) ListAll(ctx context.Context) ([]domain.User, error) {
	var out []domain.User
	tx := r.db.WithContext(ctx).Find(&out)
	return out, tx.Error
}

func (r *UserRepository) ListByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error) {
	var out []domain.User
	tx := r.db.WithContext(ctx).Where("role = ?", string(role)).Find(&out)
	return out, tx.Error
}
