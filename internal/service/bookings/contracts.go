package bookings

import (
	"context"
	"time"

	"github.com/playden/GPR-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetByParlourAndDate(ctx context.Context, parlourID int64, date time.Time) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Update(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// ParlourRepository интерфейс репозитория клубов
type ParlourRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Parlour, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
