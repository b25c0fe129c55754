package get_parlour_bookings

import (
	"context"

	"github.com/playden/GPR-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetParlourBookings(ctx context.Context, req *models.GetParlourBookingsRequest) (*models.ParlourBookingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
