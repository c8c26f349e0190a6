package catalog

import (
	"context"

	"serveez/internal/domain"
)

type CatalogRepository interface {
	CreateCategory(ctx context.Context, c *domain.ServiceCategory) error
	ListCategories(ctx context.Context) ([]domain.ServiceCategory, error)
	CreateListing(ctx context.Context, l *domain.ServiceListing) error
	GetListingByID(ctx context.Context, id int64) (*domain.ServiceListing, error)
	UpdateListing(ctx context.Context, l *domain.ServiceListing) error
	SetActive(ctx context.Context, id int64, active bool) error
	ListListings(ctx context.Context, categoryID, providerID int64, activeOnly bool) ([]domain.ServiceListing, error)
}
