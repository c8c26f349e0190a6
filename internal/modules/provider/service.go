package provider

import (
	"context"
	"errors"

	"serveez/internal/domain"
	"serveez/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	profiles ProfileRepository
}

func NewService(profiles ProfileRepository) *Service {
	return &Service{profiles: profiles}
}

// CreateProfile sets up the provider's public profile. One per user. The
// rating fields start at zero and only the aggregator touches them after.
func (s *Service) CreateProfile(ctx context.Context, userID int64, req ProfileRequest) (*domain.ProviderProfile, error) {
	exists, err := s.profiles.ExistsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyExists
	}

	p := &domain.ProviderProfile{
		UserID:      userID,
		DisplayName: req.DisplayName,
		Bio:         req.Bio,
		City:        req.City,
		Area:        req.Area,
		Phone:       req.Phone,
	}
	if err := s.profiles.Create(ctx, p); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrAlreadyExists
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) GetProfile(ctx context.Context, userID int64) (*domain.ProviderProfile, error) {
	p, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// UpdateProfile edits the descriptive fields. AverageRating and TotalReviews
// are never writable through this path.
func (s *Service) UpdateProfile(ctx context.Context, userID int64, req ProfileRequest) (*domain.ProviderProfile, error) {
	p, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	p.DisplayName = req.DisplayName
	p.Bio = req.Bio
	p.City = req.City
	p.Area = req.Area
	p.Phone = req.Phone

	if err := s.profiles.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
