package create_booking

import (
	"context"
	"time"

	"github.com/playden/GPR-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	// GetForSlot возвращает неотмененные бронирования для той же
	// (устройство, консоль, дата) - кандидатов на пересечение
	GetForSlot(ctx context.Context, deviceID int64, consoleUnitID string, date time.Time) ([]*domain.Booking, error)
}

// ParlourRepository интерфейс репозитория парлоров
type ParlourRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Parlour, error)
}

// DeviceRepository интерфейс репозитория устройств
type DeviceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Device, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
