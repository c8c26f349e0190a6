package provider

import (
	"context"

	"serveez/internal/domain"
)

type ProfileRepository interface {
	Create(ctx context.Context, p *domain.ProviderProfile) error
	GetByUserID(ctx context.Context, userID int64) (*domain.ProviderProfile, error)
	ExistsByUserID(ctx context.Context, userID int64) (bool, error)
	Update(ctx context.Context, p *domain.ProviderProfile) error
}
