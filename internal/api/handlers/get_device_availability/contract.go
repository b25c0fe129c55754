package get_device_availability

import (
	"context"

	deviceAvailability "github.com/playden/GPR-BookingService/internal/usecase/get_device_availability"
)

type GetDeviceAvailabilityUseCase interface {
	Execute(ctx context.Context, req *deviceAvailability.Request) (*deviceAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
