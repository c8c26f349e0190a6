package review

import (
	"context"
	"errors"
	"testing"

	"serveez/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	args := m.Called(ctx, rv)
	if rv != nil {
		rv.ID = 555
	}
	return args.Error(0)
}

func (m *MockReviewRepository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewRepository) UpdateRatingAndComment(ctx context.Context, id int64, rating int, comment string) error {
	args := m.Called(ctx, id, rating, comment)
	return args.Error(0)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockReviewRepository) ExistsByBookingID(ctx context.Context, bookingID int64) (bool, error) {
	args := m.Called(ctx, bookingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockReviewRepository) ListByProvider(ctx context.Context, providerID int64) ([]domain.Review, error) {
	args := m.Called(ctx, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *MockReviewRepository) ListByListing(ctx context.Context, listingID int64) ([]domain.Review, error) {
	args := m.Called(ctx, listingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *MockReviewRepository) ListAll(ctx context.Context) ([]domain.Review, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

type MockBookingGate struct {
	mock.Mock
}

func (m *MockBookingGate) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type MockRatingRecomputer struct {
	mock.Mock
}

func (m *MockRatingRecomputer) Recompute(ctx context.Context, providerID int64) error {
	args := m.Called(ctx, providerID)
	return args.Error(0)
}

type MockNotificationSender struct {
	mock.Mock
}

func (m *MockNotificationSender) NotifyReviewReceived(ctx context.Context, providerID, bookingID, listingID, customerID int64, rating int) error {
	args := m.Called(ctx, providerID, bookingID, listingID, customerID, rating)
	return args.Error(0)
}

func newTestService() (*Service, *MockReviewRepository, *MockBookingGate, *MockRatingRecomputer, *MockNotificationSender) {
	reviews := new(MockReviewRepository)
	bookings := new(MockBookingGate)
	rating := new(MockRatingRecomputer)
	notifs := new(MockNotificationSender)
	return NewService(reviews, bookings, rating, notifs), reviews, bookings, rating, notifs
}

func completedBooking() *domain.Booking {
	return &domain.Booking{
		ID:               5,
		UserID:           1,
		ProviderID:       2,
		ServiceListingID: 10,
		Status:           domain.BookingCompleted,
	}
}

func TestCreate_HappyPath(t *testing.T) {
	svc, reviews, bookings, rating, notifs := newTestService()
	ctx := context.Background()

	bookings.On("GetByID", ctx, int64(5)).Return(completedBooking(), nil)
	reviews.On("ExistsByBookingID", ctx, int64(5)).Return(false, nil)
	reviews.On("Create", ctx, mock.AnythingOfType("*domain.Review")).Return(nil)
	rating.On("Recompute", ctx, int64(2)).Return(nil)
	notifs.On("NotifyReviewReceived", ctx, int64(2), int64(5), int64(10), int64(1), 4).Return(nil)

	rv, err := svc.Create(ctx, 1, 5, ReviewRequest{Rating: 4, Comment: "solid work"})

	assert.NoError(t, err)
	assert.Equal(t, int64(2), rv.ProviderID)
	assert.Equal(t, int64(10), rv.ServiceListingID)
	assert.Equal(t, 4, rv.Rating)
	rating.AssertExpectations(t)
	notifs.AssertExpectations(t)
}

func TestCreate_RatingOutOfRange(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	ctx := context.Background()

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.Create(ctx, 1, 5, ReviewRequest{Rating: rating})
		assert.ErrorIs(t, err, ErrValidation, "rating %d must be rejected", rating)
	}
}

func TestCreate_BookingNotCompleted(t *testing.T) {
	svc, _, bookings, _, _ := newTestService()
	ctx := context.Background()

	b := completedBooking()
	b.Status = domain.BookingConfirmed
	bookings.On("GetByID", ctx, int64(5)).Return(b, nil)

	_, err := svc.Create(ctx, 1, 5, ReviewRequest{Rating: 5})
	assert.ErrorIs(t, err, ErrBookingNotCompleted)
}

func TestCreate_NotBookingOwner(t *testing.T) {
	svc, _, bookings, _, _ := newTestService()
	ctx := context.Background()

	bookings.On("GetByID", ctx, int64(5)).Return(completedBooking(), nil)

	_, err := svc.Create(ctx, 42, 5, ReviewRequest{Rating: 5})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCreate_DuplicateReview(t *testing.T) {
	svc, reviews, bookings, _, _ := newTestService()
	ctx := context.Background()

	bookings.On("GetByID", ctx, int64(5)).Return(completedBooking(), nil)
	reviews.On("ExistsByBookingID", ctx, int64(5)).Return(true, nil)

	_, err := svc.Create(ctx, 1, 5, ReviewRequest{Rating: 5})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCreate_UniqueViolationOnInsert(t *testing.T) {
	svc, reviews, bookings, _, _ := newTestService()
	ctx := context.Background()

	bookings.On("GetByID", ctx, int64(5)).Return(completedBooking(), nil)
	reviews.On("ExistsByBookingID", ctx, int64(5)).Return(false, nil)
	reviews.On("Create", ctx, mock.AnythingOfType("*domain.Review")).
		Return(errors.New("UNIQUE constraint failed: reviews.booking_id"))

	_, err := svc.Create(ctx, 1, 5, ReviewRequest{Rating: 5})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCreate_BookingNotFound(t *testing.T) {
	svc, _, bookings, _, _ := newTestService()
	ctx := context.Background()

	bookings.On("GetByID", ctx, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Create(ctx, 1, 404, ReviewRequest{Rating: 5})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCreate_NotificationFailureDoesNotFail(t *testing.T) {
	svc, reviews, bookings, rating, notifs := newTestService()
	ctx := context.Background()

	bookings.On("GetByID", ctx, int64(5)).Return(completedBooking(), nil)
	reviews.On("ExistsByBookingID", ctx, int64(5)).Return(false, nil)
	reviews.On("Create", ctx, mock.AnythingOfType("*domain.Review")).Return(nil)
	rating.On("Recompute", ctx, int64(2)).Return(nil)
	notifs.On("NotifyReviewReceived", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("store down"))

	rv, err := svc.Create(ctx, 1, 5, ReviewRequest{Rating: 3})

	assert.NoError(t, err)
	assert.NotNil(t, rv)
}

func existingReview() *domain.Review {
	return &domain.Review{
		ID:               555,
		BookingID:        5,
		UserID:           1,
		ProviderID:       2,
		ServiceListingID: 10,
		Rating:           4,
	}
}

func TestUpdate_RecomputesRating(t *testing.T) {
	svc, reviews, _, rating, _ := newTestService()
	ctx := context.Background()

	updated := *existingReview()
	updated.Rating = 2

	reviews.On("GetByID", ctx, int64(555)).Return(existingReview(), nil).Once()
	reviews.On("UpdateRatingAndComment", ctx, int64(555), 2, "changed my mind").Return(nil)
	rating.On("Recompute", ctx, int64(2)).Return(nil)
	reviews.On("GetByID", ctx, int64(555)).Return(&updated, nil).Once()

	rv, err := svc.Update(ctx, 1, 555, ReviewRequest{Rating: 2, Comment: "changed my mind"})

	assert.NoError(t, err)
	assert.Equal(t, 2, rv.Rating)
	rating.AssertExpectations(t)
}

func TestUpdate_NotAuthor(t *testing.T) {
	svc, reviews, _, _, _ := newTestService()
	ctx := context.Background()

	reviews.On("GetByID", ctx, int64(555)).Return(existingReview(), nil)

	_, err := svc.Update(ctx, 42, 555, ReviewRequest{Rating: 2})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestDelete_AuthorAndAdmin(t *testing.T) {
	svc, reviews, _, rating, _ := newTestService()
	ctx := context.Background()

	reviews.On("GetByID", ctx, int64(555)).Return(existingReview(), nil)
	reviews.On("Delete", ctx, int64(555)).Return(nil)
	rating.On("Recompute", ctx, int64(2)).Return(nil)

	assert.NoError(t, svc.Delete(ctx, 1, false, 555))
	assert.NoError(t, svc.Delete(ctx, 99, true, 555))
	assert.ErrorIs(t, svc.Delete(ctx, 99, false, 555), ErrForbidden)
	rating.AssertNumberOfCalls(t, "Recompute", 2)
}

func TestDelete_NotFound(t *testing.T) {
	svc, reviews, _, _, _ := newTestService()
	ctx := context.Background()

	reviews.On("GetByID", ctx, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, 1, false, 404), ErrNotFound)
}
