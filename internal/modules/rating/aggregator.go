package rating

import (
	"context"
	"errors"
	"math"

	"serveez/internal/domain"

	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("provider profile not found")

type ReviewLister interface {
	ListByProvider(ctx context.Context, providerID int64) ([]domain.Review, error)
}

type ProfileWriter interface {
	SetRating(ctx context.Context, userID int64, avg float64, total int) error
}

// Aggregator recomputes a provider's derived rating from the full review set.
// Always a full recompute, never an incremental patch, so it self-corrects
// after any individual write race.
type Aggregator struct {
	reviews  ReviewLister
	profiles ProfileWriter
}

func NewAggregator(reviews ReviewLister, profiles ProfileWriter) *Aggregator {
	return &Aggregator{reviews: reviews, profiles: profiles}
}

func (a *Aggregator) Recompute(ctx context.Context, providerID int64) error {
	reviews, err := a.reviews.ListByProvider(ctx, providerID)
	if err != nil {
		return err
	}

	avg := 0.0
	if len(reviews) > 0 {
		sum := 0
		for _, rv := range reviews {
			sum += rv.Rating
		}
		avg = math.Round(float64(sum)/float64(len(reviews))*100) / 100
	}

	if err := a.profiles.SetRating(ctx, providerID, avg, len(reviews)); err != nil {
		// A review referencing a provider without a profile is a data
		// integrity violation upstream; surface it, never swallow it.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProfileNotFound
		}
		return err
	}
	return nil
}
