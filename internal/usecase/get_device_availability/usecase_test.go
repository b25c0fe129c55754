package get_device_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/playden/GPR-BookingService/internal/domain"
	deviceRepo "github.com/playden/GPR-BookingService/internal/infra/storage/device"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) GetByDeviceAndDate(ctx context.Context, deviceID int64, date time.Time) ([]*domain.Booking, error) {
	args := m.Called(ctx, deviceID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

type MockDeviceRepository struct {
	mock.Mock
}

func (m *MockDeviceRepository) GetByID(ctx context.Context, id int64) (*domain.Device, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Device), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestUseCase_Execute_Success(t *testing.T) {
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	mockDevices := new(MockDeviceRepository)
	mockDevices.On("GetByID", mock.Anything, int64(100)).Return(availabilityTestDevice(), nil)

	mockBookings := new(MockBookingRepository)
	mockBookings.On("GetByDeviceAndDate", mock.Anything, int64(100), date).
		Return([]*domain.Booking{
			{ConsoleUnitID: "PS5-1", StartTime: "11:00", EndTime: "13:00", Status: domain.StatusConfirmed},
		}, nil)

	uc := NewUseCase(mockBookings, mockDevices, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{DeviceID: 100, Date: date})

	require.NoError(t, err)
	assert.Equal(t, int64(100), resp.DeviceID)
	assert.Equal(t, domain.DevicePlayStation5, resp.DeviceType)
	require.Len(t, resp.Units, 3)
	assert.Equal(t, domain.SlotBooked, resp.Units[0].Slots[1].State)
}

func TestUseCase_Execute_DeviceNotFound(t *testing.T) {
	mockDevices := new(MockDeviceRepository)
	mockDevices.On("GetByID", mock.Anything, int64(404)).Return(nil, deviceRepo.ErrDeviceNotFound)

	uc := NewUseCase(new(MockBookingRepository), mockDevices, nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{
		DeviceID: 404,
		Date:     time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrDeviceNotFound)
}

func TestUseCase_Execute_InvalidInput(t *testing.T) {
	uc := NewUseCase(new(MockBookingRepository), new(MockDeviceRepository), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{DeviceID: 0, Date: time.Now()})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{DeviceID: 100})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
