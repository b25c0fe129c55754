package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/playden/GPR-BookingService/internal/domain"
	bookingRepo "github.com/playden/GPR-BookingService/internal/infra/storage/booking"
	"github.com/playden/GPR-BookingService/internal/service/bookings/models"
	"github.com/playden/GPR-BookingService/pkg/ptr"
)

// Mock repositories

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	args := m.Called(ctx, userID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByParlourAndDate(ctx context.Context, parlourID int64, date time.Time) ([]*domain.Booking, error) {
	args := m.Called(ctx, parlourID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockBookingRepository) Update(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	args := m.Called(ctx, booking)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type MockParlourRepository struct {
	mock.Mock
}

func (m *MockParlourRepository) GetByID(ctx context.Context, id int64) (*domain.Parlour, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Parlour), args.Error(1)
}

// nopLogger глушит логи в тестах
type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:            555,
		UserID:        42,
		ParlourID:     10,
		DeviceID:      100,
		ConsoleUnitID: "PS5-1",
		BookingDate:   time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		StartTime:     "10:00",
		EndTime:       "13:00",
		DurationHours: 3,
		TotalPrice:    15,
		Status:        domain.StatusPending,
		PaymentStatus: domain.PaymentPending,
	}
}

func newTestService(bookings *MockBookingRepository, parlours *MockParlourRepository) *Service {
	return NewService(bookings, parlours, nopLogger{})
}

// GetByID

func TestService_GetByID_Owner(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("GetByID", mock.Anything, int64(555)).Return(testBooking(), nil)

	svc := newTestService(mockBookings, new(MockParlourRepository))
	resp, err := svc.GetByID(context.Background(), 555, domain.Actor{UserID: 42})

	require.NoError(t, err)
	assert.Equal(t, int64(555), resp.ID)
	assert.Equal(t, "2026-03-15", resp.BookingDate)
}

func TestService_GetByID_ForeignUserDenied(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("GetByID", mock.Anything, int64(555)).Return(testBooking(), nil)

	svc := newTestService(mockBookings, new(MockParlourRepository))
	_, err := svc.GetByID(context.Background(), 555, domain.Actor{UserID: 7})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_GetByID_AdminAllowed(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("GetByID", mock.Anything, int64(555)).Return(testBooking(), nil)

	svc := newTestService(mockBookings, new(MockParlourRepository))
	resp, err := svc.GetByID(context.Background(), 555, domain.Actor{UserID: 7, IsAdmin: true})

	require.NoError(t, err)
	assert.Equal(t, int64(555), resp.ID)
}

func TestService_GetByID_NotFound(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("GetByID", mock.Anything, int64(404)).Return(nil, bookingRepo.ErrBookingNotFound)

	svc := newTestService(mockBookings, new(MockParlourRepository))
	_, err := svc.GetByID(context.Background(), 404, domain.Actor{UserID: 42})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

// GetUserBookings

func TestService_GetUserBookings_Self(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("GetByUserID", mock.Anything, int64(42), (*domain.BookingStatus)(nil)).
		Return([]*domain.Booking{testBooking()}, nil)

	svc := newTestService(mockBookings, new(MockParlourRepository))
	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		Actor:  domain.Actor{UserID: 42},
		UserID: 42,
	})

	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(555), resp.Bookings[0].ID)
}

func TestService_GetUserBookings_ForeignDenied(t *testing.T) {
	mockBookings := new(MockBookingRepository)

	svc := newTestService(mockBookings, new(MockParlourRepository))
	_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		Actor:  domain.Actor{UserID: 7},
		UserID: 42,
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
	mockBookings.AssertNotCalled(t, "GetByUserID", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_GetUserBookings_StatusFilter(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	confirmed := domain.StatusConfirmed
	mockBookings.On("GetByUserID", mock.Anything, int64(42), &confirmed).
		Return([]*domain.Booking{}, nil)

	svc := newTestService(mockBookings, new(MockParlourRepository))
	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		Actor:  domain.Actor{UserID: 42},
		UserID: 42,
		Status: ptr.Ptr("confirmed"),
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Bookings)
	mockBookings.AssertExpectations(t)
}

func TestService_GetUserBookings_InvalidStatus(t *testing.T) {
	svc := newTestService(new(MockBookingRepository), new(MockParlourRepository))
	_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		Actor:  domain.Actor{UserID: 42},
		UserID: 42,
		Status: ptr.Ptr("in_progress"),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

// GetParlourBookings

func TestService_GetParlourBookings_PublicProjection(t *testing.T) {
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	cancelled := testBooking()
	cancelled.ID = 556
	cancelled.Status = domain.StatusCancelled

	mockBookings := new(MockBookingRepository)
	mockBookings.On("GetByParlourAndDate", mock.Anything, int64(10), date).
		Return([]*domain.Booking{testBooking(), cancelled}, nil)

	mockParlours := new(MockParlourRepository)
	mockParlours.On("GetByID", mock.Anything, int64(10)).
		Return(&domain.Parlour{ID: 10, Name: "Pixel Palace"}, nil)

	svc := newTestService(mockBookings, mockParlours)
	resp, err := svc.GetParlourBookings(context.Background(), &models.GetParlourBookingsRequest{
		ParlourID: 10,
		Date:      date,
	})

	require.NoError(t, err)
	// Отмененные бронирования в публичную проекцию не попадают
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "10:00", resp.Bookings[0].StartTime)
	assert.Equal(t, "PS5-1", resp.Bookings[0].ConsoleUnitID)
}

// Cancel

func TestService_Cancel_Owner(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("GetByID", mock.Anything, int64(555)).Return(testBooking(), nil)
	mockBookings.On("UpdateStatus", mock.Anything, int64(555), domain.StatusCancelled).Return(nil)

	svc := newTestService(mockBookings, new(MockParlourRepository))
	err := svc.Cancel(context.Background(), 555, &models.CancelBookingRequest{
		Actor: domain.Actor{UserID: 42},
	})

	require.NoError(t, err)
	mockBookings.AssertExpectations(t)
}

func TestService_Cancel_ForeignUserDenied(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("GetByID", mock.Anything, int64(555)).Return(testBooking(), nil)

	svc := newTestService(mockBookings, new(MockParlourRepository))
	err := svc.Cancel(context.Background(), 555, &models.CancelBookingRequest{
		Actor: domain.Actor{UserID: 7},
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
	// Статус не трогаем при отказе в доступе
	mockBookings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Cancel_AlreadyCancelled(t *testing.T) {
	booking := testBooking()
	booking.Status = domain.StatusCancelled

	mockBookings := new(MockBookingRepository)
	mockBookings.On("GetByID", mock.Anything, int64(555)).Return(booking, nil)

	svc := newTestService(mockBookings, new(MockParlourRepository))
	err := svc.Cancel(context.Background(), 555, &models.CancelBookingRequest{
		Actor: domain.Actor{UserID: 42},
	})

	assert.ErrorIs(t, err, ErrCannotCancel)
	mockBookings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Cancel_Completed(t *testing.T) {
	booking := testBooking()
	booking.Status = domain.StatusCompleted

	mockBookings := new(MockBookingRepository)
	mockBookings.On("GetByID", mock.Anything, int64(555)).Return(booking, nil)

	svc := newTestService(mockBookings, new(MockParlourRepository))
	err := svc.Cancel(context.Background(), 555, &models.CancelBookingRequest{
		Actor: domain.Actor{UserID: 42},
	})

	assert.ErrorIs(t, err, ErrCannotCancel)
}

// Update

func TestService_Update_StatusTransition(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("GetByID", mock.Anything, int64(555)).Return(testBooking(), nil)
	mockBookings.On("Update", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.Status == domain.StatusConfirmed
	})).Return(&domain.Booking{ID: 555, UserID: 42, Status: domain.StatusConfirmed}, nil)

	svc := newTestService(mockBookings, new(MockParlourRepository))
	resp, err := svc.Update(context.Background(), 555, &models.UpdateBookingRequest{
		Actor:  domain.Actor{UserID: 42},
		Status: ptr.Ptr("confirmed"),
	})

	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
}

func TestService_Update_InvalidTransition(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("GetByID", mock.Anything, int64(555)).Return(testBooking(), nil)

	svc := newTestService(mockBookings, new(MockParlourRepository))
	// pending -> completed запрещен, подтверждение обязательно
	_, err := svc.Update(context.Background(), 555, &models.UpdateBookingRequest{
		Actor:  domain.Actor{UserID: 42},
		Status: ptr.Ptr("completed"),
	})

	assert.ErrorIs(t, err, ErrInvalidTransition)
	mockBookings.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Update_TerminalStateImmutable(t *testing.T) {
	booking := testBooking()
	booking.Status = domain.StatusCompleted

	mockBookings := new(MockBookingRepository)
	mockBookings.On("GetByID", mock.Anything, int64(555)).Return(booking, nil)

	svc := newTestService(mockBookings, new(MockParlourRepository))
	_, err := svc.Update(context.Background(), 555, &models.UpdateBookingRequest{
		Actor:           domain.Actor{UserID: 42},
		SpecialRequests: ptr.Ptr("поменяйте геймпад"),
	})

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestService_Update_SpecialRequests(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("GetByID", mock.Anything, int64(555)).Return(testBooking(), nil)
	mockBookings.On("Update", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.SpecialRequests != nil && *b.SpecialRequests == "два геймпада"
	})).Return(testBooking(), nil)

	svc := newTestService(mockBookings, new(MockParlourRepository))
	_, err := svc.Update(context.Background(), 555, &models.UpdateBookingRequest{
		Actor:           domain.Actor{UserID: 42},
		SpecialRequests: ptr.Ptr("два геймпада"),
	})

	require.NoError(t, err)
	mockBookings.AssertExpectations(t)
}

func TestService_Update_ForeignUserDenied(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("GetByID", mock.Anything, int64(555)).Return(testBooking(), nil)

	svc := newTestService(mockBookings, new(MockParlourRepository))
	_, err := svc.Update(context.Background(), 555, &models.UpdateBookingRequest{
		Actor:  domain.Actor{UserID: 7},
		Status: ptr.Ptr("confirmed"),
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
}
