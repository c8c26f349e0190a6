package rating

import (
	"context"
	"testing"

	"serveez/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockReviewLister struct {
	mock.Mock
}

func (m *MockReviewLister) ListByProvider(ctx context.Context, providerID int64) ([]domain.Review, error) {
	args := m.Called(ctx, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

type MockProfileWriter struct {
	mock.Mock
}

func (m *MockProfileWriter) SetRating(ctx context.Context, userID int64, avg float64, total int) error {
	args := m.Called(ctx, userID, avg, total)
	return args.Error(0)
}

func ratings(values ...int) []domain.Review {
	out := make([]domain.Review, 0, len(values))
	for _, v := range values {
		out = append(out, domain.Review{ProviderID: 2, Rating: v})
	}
	return out
}

func TestRecompute_RoundsToTwoDecimals(t *testing.T) {
	reviews := new(MockReviewLister)
	profiles := new(MockProfileWriter)
	agg := NewAggregator(reviews, profiles)
	ctx := context.Background()

	// 4, 5, 5 -> 4.666... -> 4.67
	reviews.On("ListByProvider", ctx, int64(2)).Return(ratings(4, 5, 5), nil)
	profiles.On("SetRating", ctx, int64(2), 4.67, 3).Return(nil)

	assert.NoError(t, agg.Recompute(ctx, 2))
	profiles.AssertExpectations(t)
}

func TestRecompute_EmptySetResetsToZero(t *testing.T) {
	reviews := new(MockReviewLister)
	profiles := new(MockProfileWriter)
	agg := NewAggregator(reviews, profiles)
	ctx := context.Background()

	reviews.On("ListByProvider", ctx, int64(2)).Return([]domain.Review{}, nil)
	profiles.On("SetRating", ctx, int64(2), 0.0, 0).Return(nil)

	assert.NoError(t, agg.Recompute(ctx, 2))
	profiles.AssertExpectations(t)
}

func TestRecompute_SingleReview(t *testing.T) {
	reviews := new(MockReviewLister)
	profiles := new(MockProfileWriter)
	agg := NewAggregator(reviews, profiles)
	ctx := context.Background()

	reviews.On("ListByProvider", ctx, int64(2)).Return(ratings(4), nil)
	profiles.On("SetRating", ctx, int64(2), 4.0, 1).Return(nil)

	assert.NoError(t, agg.Recompute(ctx, 2))
	profiles.AssertExpectations(t)
}

func TestRecompute_MissingProfileSurfaced(t *testing.T) {
	reviews := new(MockReviewLister)
	profiles := new(MockProfileWriter)
	agg := NewAggregator(reviews, profiles)
	ctx := context.Background()

	reviews.On("ListByProvider", ctx, int64(2)).Return(ratings(3), nil)
	profiles.On("SetRating", ctx, int64(2), 3.0, 1).Return(gorm.ErrRecordNotFound)

	assert.ErrorIs(t, agg.Recompute(ctx, 2), ErrProfileNotFound)
}
