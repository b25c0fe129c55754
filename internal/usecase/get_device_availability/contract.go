package get_device_availability

import (
	"context"
	"time"

	"github.com/playden/GPR-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetByDeviceAndDate возвращает неотмененные бронирования устройства
	// на дату (все консоли)
	GetByDeviceAndDate(ctx context.Context, deviceID int64, date time.Time) ([]*domain.Booking, error)
}

// DeviceRepository интерфейс репозитория устройств
type DeviceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Device, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
