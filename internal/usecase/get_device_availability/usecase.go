package get_device_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/playden/GPR-BookingService/internal/domain"
	deviceRepo "github.com/playden/GPR-BookingService/internal/infra/storage/device"
)

// UseCase use case для получения доступности консолей устройства на дату
type UseCase struct {
	bookingRepo BookingRepository
	deviceRepo  DeviceRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	deviceRepo DeviceRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		deviceRepo:  deviceRepo,
		logger:      logger,
	}
}

// Execute выполняет use case получения доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDeviceAvailability: device=%d, date=%s",
		req.DeviceID, req.Date.Format(domain.DateFormat))

	if req.DeviceID <= 0 {
		return nil, fmt.Errorf("%w: deviceID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	device, err := uc.deviceRepo.GetByID(ctx, req.DeviceID)
	if err != nil {
		if errors.Is(err, deviceRepo.ErrDeviceNotFound) {
			uc.logger.Warn("GetDeviceAvailability: device id=%d not found", req.DeviceID)
			return nil, ErrDeviceNotFound
		}
		uc.logger.Error("GetDeviceAvailability: failed to get device id=%d: %v", req.DeviceID, err)
		return nil, fmt.Errorf("%w: failed to get device: %v", ErrInternal, err)
	}

	bookings, err := uc.bookingRepo.GetByDeviceAndDate(ctx, req.DeviceID, req.Date)
	if err != nil {
		uc.logger.Error("GetDeviceAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	units := computeAvailability(device, bookings)

	uc.logger.Info("GetDeviceAvailability: computed availability for %d units, device=%d, date=%s",
		len(units), req.DeviceID, req.Date.Format(domain.DateFormat))

	return &Response{
		DeviceID:     device.ID,
		Date:         req.Date,
		DeviceType:   device.Type,
		PricePerHour: device.PricePerHour,
		Units:        units,
	}, nil
}
