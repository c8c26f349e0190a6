package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"serveez/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// Mock repositories
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil {
		b.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockBookingRepository) CancelWithReason(ctx context.Context, id int64, reason string) error {
	args := m.Called(ctx, id, reason)
	return args.Error(0)
}

func (m *MockBookingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListByProvider(ctx context.Context, providerID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListAll(ctx context.Context, status *domain.BookingStatus) ([]domain.Booking, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

type MockListingGate struct {
	mock.Mock
}

func (m *MockListingGate) GetListingByID(ctx context.Context, id int64) (*domain.ServiceListing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceListing), args.Error(1)
}

type MockNotificationSender struct {
	mock.Mock
}

func (m *MockNotificationSender) NotifyBookingCreated(ctx context.Context, providerID, bookingID, listingID, customerID int64, listingTitle string) error {
	args := m.Called(ctx, providerID, bookingID, listingID, customerID, listingTitle)
	return args.Error(0)
}

func (m *MockNotificationSender) NotifyBookingConfirmed(ctx context.Context, customerID, bookingID, listingID, providerID int64) error {
	args := m.Called(ctx, customerID, bookingID, listingID, providerID)
	return args.Error(0)
}

func (m *MockNotificationSender) NotifyBookingCompleted(ctx context.Context, customerID, bookingID, listingID, providerID int64) error {
	args := m.Called(ctx, customerID, bookingID, listingID, providerID)
	return args.Error(0)
}

func (m *MockNotificationSender) NotifyBookingCancelled(ctx context.Context, providerID, bookingID, listingID, customerID int64, reason string) error {
	args := m.Called(ctx, providerID, bookingID, listingID, customerID, reason)
	return args.Error(0)
}

func (m *MockNotificationSender) NotifyBookingCancelledAdmin(ctx context.Context, customerID, providerID, bookingID, listingID int64, reason string) error {
	args := m.Called(ctx, customerID, providerID, bookingID, listingID, reason)
	return args.Error(0)
}

func newTestService() (*Service, *MockBookingRepository, *MockListingGate, *MockNotificationSender) {
	repo := new(MockBookingRepository)
	listings := new(MockListingGate)
	notifs := new(MockNotificationSender)
	return NewService(repo, listings, notifs), repo, listings, notifs
}

func activeListing() *domain.ServiceListing {
	return &domain.ServiceListing{
		ID:         10,
		ProviderID: 2,
		Title:      "Apartment Deep Cleaning",
		Price:      50.0,
		IsActive:   true,
	}
}

func TestCreate_SnapshotsPriceAndProvider(t *testing.T) {
	svc, repo, listings, notifs := newTestService()
	ctx := context.Background()

	listings.On("GetListingByID", ctx, int64(10)).Return(activeListing(), nil)
	repo.On("Create", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)
	notifs.On("NotifyBookingCreated", ctx, int64(2), int64(999), int64(10), int64(1), "Apartment Deep Cleaning").Return(nil)

	b, err := svc.Create(ctx, 1, CreateBookingRequest{ServiceListingID: 10})

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingPending, b.Status)
	assert.Equal(t, int64(2), b.ProviderID)
	assert.Equal(t, 50.0, b.PriceAtBooking)
	notifs.AssertExpectations(t)
}

func TestCreate_InactiveListing(t *testing.T) {
	svc, _, listings, _ := newTestService()
	ctx := context.Background()

	l := activeListing()
	l.IsActive = false
	listings.On("GetListingByID", ctx, int64(10)).Return(l, nil)

	_, err := svc.Create(ctx, 1, CreateBookingRequest{ServiceListingID: 10})
	assert.ErrorIs(t, err, ErrListingInactive)
}

func TestCreate_ListingNotFound(t *testing.T) {
	svc, _, listings, _ := newTestService()
	ctx := context.Background()

	listings.On("GetListingByID", ctx, int64(77)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Create(ctx, 1, CreateBookingRequest{ServiceListingID: 77})
	assert.ErrorIs(t, err, ErrListingNotFound)
}

func TestCreate_NotificationFailureDoesNotRollBack(t *testing.T) {
	svc, repo, listings, notifs := newTestService()
	ctx := context.Background()

	listings.On("GetListingByID", ctx, int64(10)).Return(activeListing(), nil)
	repo.On("Create", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)
	notifs.On("NotifyBookingCreated", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("notification store down"))

	b, err := svc.Create(ctx, 1, CreateBookingRequest{ServiceListingID: 10})

	assert.NoError(t, err)
	assert.NotNil(t, b)
}

func pendingBooking() *domain.Booking {
	return &domain.Booking{
		ID:               5,
		UserID:           1,
		ProviderID:       2,
		ServiceListingID: 10,
		Status:           domain.BookingPending,
		PriceAtBooking:   50.0,
	}
}

func TestConfirm_HappyPath(t *testing.T) {
	svc, repo, _, notifs := newTestService()
	ctx := context.Background()

	b := pendingBooking()
	confirmed := *b
	confirmed.Status = domain.BookingConfirmed

	repo.On("GetByID", ctx, int64(5)).Return(b, nil).Once()
	repo.On("UpdateStatus", ctx, int64(5), domain.BookingConfirmed).Return(nil)
	notifs.On("NotifyBookingConfirmed", ctx, int64(1), int64(5), int64(10), int64(2)).Return(nil)
	repo.On("GetByID", ctx, int64(5)).Return(&confirmed, nil).Once()

	out, err := svc.Confirm(ctx, 2, 5)

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingConfirmed, out.Status)
	repo.AssertExpectations(t)
}

func TestConfirm_WrongProvider(t *testing.T) {
	svc, repo, _, _ := newTestService()
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(5)).Return(pendingBooking(), nil)

	_, err := svc.Confirm(ctx, 99, 5)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestConfirm_AlreadyConfirmed(t *testing.T) {
	svc, repo, _, _ := newTestService()
	ctx := context.Background()

	b := pendingBooking()
	b.Status = domain.BookingConfirmed
	repo.On("GetByID", ctx, int64(5)).Return(b, nil)

	_, err := svc.Confirm(ctx, 2, 5)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestComplete_RequiresConfirmed(t *testing.T) {
	svc, repo, _, _ := newTestService()
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(5)).Return(pendingBooking(), nil)

	_, err := svc.Complete(ctx, 2, 5)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestComplete_HappyPath(t *testing.T) {
	svc, repo, _, notifs := newTestService()
	ctx := context.Background()

	b := pendingBooking()
	b.Status = domain.BookingConfirmed
	done := *b
	done.Status = domain.BookingCompleted

	repo.On("GetByID", ctx, int64(5)).Return(b, nil).Once()
	repo.On("UpdateStatus", ctx, int64(5), domain.BookingCompleted).Return(nil)
	notifs.On("NotifyBookingCompleted", ctx, int64(1), int64(5), int64(10), int64(2)).Return(nil)
	repo.On("GetByID", ctx, int64(5)).Return(&done, nil).Once()

	out, err := svc.Complete(ctx, 2, 5)

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingCompleted, out.Status)
}

func TestCancel_TerminalStatesRejected(t *testing.T) {
	svc, repo, _, _ := newTestService()
	ctx := context.Background()

	for _, status := range []domain.BookingStatus{domain.BookingCompleted, domain.BookingCancelled} {
		b := pendingBooking()
		b.Status = status
		repo.ExpectedCalls = nil
		repo.On("GetByID", ctx, int64(5)).Return(b, nil)

		_, err := svc.Cancel(ctx, 1, 5, "changed my mind")
		assert.ErrorIs(t, err, ErrInvalidStatus, "status %s must reject cancel", status)
	}
}

func TestCancel_OwnerOnly(t *testing.T) {
	svc, repo, _, _ := newTestService()
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(5)).Return(pendingBooking(), nil)

	_, err := svc.Cancel(ctx, 42, 5, "")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCancel_NotifiesProviderWithReason(t *testing.T) {
	svc, repo, _, notifs := newTestService()
	ctx := context.Background()

	b := pendingBooking()
	cancelled := *b
	cancelled.Status = domain.BookingCancelled
	cancelled.CancellationReason = "schedule conflict"

	repo.On("GetByID", ctx, int64(5)).Return(b, nil).Once()
	repo.On("CancelWithReason", ctx, int64(5), "schedule conflict").Return(nil)
	notifs.On("NotifyBookingCancelled", ctx, int64(2), int64(5), int64(10), int64(1), "schedule conflict").Return(nil)
	repo.On("GetByID", ctx, int64(5)).Return(&cancelled, nil).Once()

	out, err := svc.Cancel(ctx, 1, 5, "schedule conflict")

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, out.Status)
	notifs.AssertExpectations(t)
}

func TestAdminCancel_BypassesStateMachine(t *testing.T) {
	svc, repo, _, notifs := newTestService()
	ctx := context.Background()

	b := pendingBooking()
	b.Status = domain.BookingCompleted
	cancelled := *b
	cancelled.Status = domain.BookingCancelled

	repo.On("GetByID", ctx, int64(5)).Return(b, nil).Once()
	repo.On("CancelWithReason", ctx, int64(5), "fraud").Return(nil)
	notifs.On("NotifyBookingCancelledAdmin", ctx, int64(1), int64(2), int64(5), int64(10), "fraud").Return(nil)
	repo.On("GetByID", ctx, int64(5)).Return(&cancelled, nil).Once()

	out, err := svc.AdminCancel(ctx, 5, "fraud")

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, out.Status)
	notifs.AssertExpectations(t)
}

func TestListAll_InvalidStatusFilter(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.ListAll(context.Background(), "pending")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestListAll_StatusFilterPassedThrough(t *testing.T) {
	svc, repo, _, _ := newTestService()
	ctx := context.Background()

	status := domain.BookingPending
	repo.On("ListAll", ctx, &status).Return([]domain.Booking{*pendingBooking()}, nil)

	out, err := svc.ListAll(ctx, "PENDING")

	assert.NoError(t, err)
	assert.Len(t, out, 1)
}

func TestGetByID_AccessControl(t *testing.T) {
	svc, repo, _, _ := newTestService()
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(5)).Return(pendingBooking(), nil)

	_, err := svc.GetByID(ctx, 5, 1, domain.RoleUser)
	assert.NoError(t, err)

	_, err = svc.GetByID(ctx, 5, 2, domain.RoleProvider)
	assert.NoError(t, err)

	_, err = svc.GetByID(ctx, 5, 77, domain.RoleAdmin)
	assert.NoError(t, err)

	_, err = svc.GetByID(ctx, 5, 77, domain.RoleUser)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestGetByID_NotFound(t *testing.T) {
	svc, repo, _, _ := newTestService()
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetByID(ctx, 404, 1, domain.RoleUser)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreate_ScheduledAtPassedThrough(t *testing.T) {
	svc, repo, listings, notifs := newTestService()
	ctx := context.Background()

	when := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	listings.On("GetListingByID", ctx, int64(10)).Return(activeListing(), nil)
	repo.On("Create", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)
	notifs.On("NotifyBookingCreated", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	b, err := svc.Create(ctx, 1, CreateBookingRequest{ServiceListingID: 10, ScheduledAt: &when})

	assert.NoError(t, err)
	assert.Equal(t, when, *b.ScheduledAt)
}
