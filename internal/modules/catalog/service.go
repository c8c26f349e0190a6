package catalog

import (
	"context"
	"errors"

	"serveez/internal/domain"
	"serveez/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	repo CatalogRepository
}

func NewService(repo CatalogRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateCategory(ctx context.Context, req CreateCategoryRequest) (*domain.ServiceCategory, error) {
	cat := &domain.ServiceCategory{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repo.CreateCategory(ctx, cat); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrNameTaken
		}
		return nil, err
	}
	return cat, nil
}

func (s *Service) ListCategories(ctx context.Context) ([]domain.ServiceCategory, error) {
	return s.repo.ListCategories(ctx)
}

func (s *Service) CreateListing(ctx context.Context, providerID int64, req CreateListingRequest) (*domain.ServiceListing, error) {
	l := &domain.ServiceListing{
		ProviderID:        providerID,
		CategoryID:        req.CategoryID,
		Title:             req.Title,
		Description:       req.Description,
		Price:             req.Price,
		Location:          req.Location,
		EstimatedDuration: req.EstimatedDuration,
		IsActive:          true,
	}
	if err := s.repo.CreateListing(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *Service) GetListing(ctx context.Context, id int64) (*domain.ServiceListing, error) {
	l, err := s.repo.GetListingByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return l, nil
}

// UpdateListing applies a partial update. Only the owning provider may edit.
func (s *Service) UpdateListing(ctx context.Context, providerID, listingID int64, req UpdateListingRequest) (*domain.ServiceListing, error) {
	l, err := s.GetListing(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if l.ProviderID != providerID {
		return nil, ErrForbidden
	}

	if req.CategoryID != nil {
		l.CategoryID = *req.CategoryID
	}
	if req.Title != nil {
		l.Title = *req.Title
	}
	if req.Description != nil {
		l.Description = *req.Description
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			return nil, ErrValidation
		}
		l.Price = *req.Price
	}
	if req.Location != nil {
		l.Location = *req.Location
	}
	if req.EstimatedDuration != nil {
		l.EstimatedDuration = *req.EstimatedDuration
	}
	if req.IsActive != nil {
		l.IsActive = *req.IsActive
	}

	if err := s.repo.UpdateListing(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// Deactivate hides the listing from new bookings. Existing bookings keep
// their snapshotted price and proceed normally.
func (s *Service) Deactivate(ctx context.Context, providerID, listingID int64) error {
	l, err := s.GetListing(ctx, listingID)
	if err != nil {
		return err
	}
	if l.ProviderID != providerID {
		return ErrForbidden
	}
	return s.repo.SetActive(ctx, listingID, false)
}

func (s *Service) ListListings(ctx context.Context, categoryID, providerID int64, activeOnly bool) ([]domain.ServiceListing, error) {
	return s.repo.ListListings(ctx, categoryID, providerID, activeOnly)
}
