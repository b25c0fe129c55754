package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/playden/GPR-BookingService/internal/domain"
	bookingRepo "github.com/playden/GPR-BookingService/internal/infra/storage/booking"
	deviceRepo "github.com/playden/GPR-BookingService/internal/infra/storage/device"
	parlourRepo "github.com/playden/GPR-BookingService/internal/infra/storage/parlour"
)

// UseCase use case для создания бронирования
// Объединяет проверку конфликтов и вычисление производных полей
// (длительность, итоговая цена) в одной точке
type UseCase struct {
	bookingRepo  BookingRepository
	parlourRepo  ParlourRepository
	deviceRepo   DeviceRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	parlourRepo ParlourRepository,
	deviceRepo DeviceRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		parlourRepo:  parlourRepo,
		deviceRepo:   deviceRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Порядок проверок фиксирован: парлор -> устройство -> консоль -> статус
// консоли -> дата -> интервал -> пересечения. Проверка пересечений и
// вставка выполняются в сериализуемой транзакции с блокировкой строк,
// чтобы два конкурентных запроса на один слот не прошли одновременно.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, parlour=%d, device=%d, unit=%s, date=%s, time=%s-%s",
		req.UserID, req.ParlourID, req.DeviceID, req.ConsoleUnitID,
		req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем парлор (источник почасовой цены)
	parlour, err := uc.parlourRepo.GetByID(ctx, req.ParlourID)
	if err != nil {
		if errors.Is(err, parlourRepo.ErrParlourNotFound) {
			uc.logger.Warn("CreateBooking: parlour id=%d not found", req.ParlourID)
			return nil, ErrParlourNotFound
		}
		uc.logger.Error("CreateBooking: failed to get parlour id=%d: %v", req.ParlourID, err)
		return nil, fmt.Errorf("%w: failed to get parlour: %v", ErrInternal, err)
	}

	// 4. Получаем устройство и проверяем принадлежность парлору
	device, err := uc.deviceRepo.GetByID(ctx, req.DeviceID)
	if err != nil {
		if errors.Is(err, deviceRepo.ErrDeviceNotFound) {
			uc.logger.Warn("CreateBooking: device id=%d not found", req.DeviceID)
			return nil, ErrDeviceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get device id=%d: %v", req.DeviceID, err)
		return nil, fmt.Errorf("%w: failed to get device: %v", ErrInternal, err)
	}

	if device.ParlourID != parlour.ID {
		uc.logger.Warn("CreateBooking: device id=%d does not belong to parlour id=%d",
			req.DeviceID, req.ParlourID)
		return nil, ErrDeviceNotFound
	}

	// 5. Проверяем существование консоли в устройстве
	unit, ok := device.FindConsoleUnit(req.ConsoleUnitID)
	if !ok {
		uc.logger.Warn("CreateBooking: console unit %s not found in device id=%d",
			req.ConsoleUnitID, req.DeviceID)
		return nil, fmt.Errorf("%w: %s", ErrConsoleUnitNotFound, req.ConsoleUnitID)
	}

	// 6. Консоль должна быть в статусе available
	if unit.Status != domain.UnitAvailable {
		uc.logger.Warn("CreateBooking: console unit %s is %s", req.ConsoleUnitID, unit.Status)
		return nil, fmt.Errorf("%w: %s (status: %s)", ErrConsoleUnitUnavailable, req.ConsoleUnitID, unit.Status)
	}

	// 7. Дата не должна быть в прошлом (проверяется только календарная дата)
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 8. Парсим интервал и вычисляем длительность
	durationHours, err := validateTimeRange(req.StartTime, req.EndTime)
	if err != nil {
		uc.logger.Warn("CreateBooking: time range validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// 9. Проверка пересечений и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 9.1. Бронирования той же консоли на ту же дату (FOR UPDATE)
		existing, err := uc.bookingRepo.GetForSlot(txCtx, req.DeviceID, req.ConsoleUnitID, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get existing bookings: %v", err)
			return fmt.Errorf("%w: failed to get existing bookings: %v", ErrInternal, err)
		}

		// 9.2. Запрошенный интервал не должен пересекаться ни с одним из них
		if conflict := findOverlap(existing, req.StartTime, req.EndTime); conflict != nil {
			uc.logger.Warn("CreateBooking: slot taken by booking id=%d (%s-%s)",
				conflict.ID, conflict.StartTime, conflict.EndTime)
			return fmt.Errorf("%w: overlaps %s-%s", ErrSlotTaken, conflict.StartTime, conflict.EndTime)
		}

		// 9.3. Создаем бронирование с производными полями
		booking := &domain.Booking{
			UserID:          req.UserID,
			ParlourID:       req.ParlourID,
			DeviceID:        req.DeviceID,
			ConsoleUnitID:   req.ConsoleUnitID,
			BookingDate:     req.Date,
			StartTime:       req.StartTime,
			EndTime:         req.EndTime,
			DurationHours:   durationHours,
			TotalPrice:      durationHours * parlour.Price,
			Status:          domain.StatusPending,
			PaymentStatus:   domain.PaymentPending,
			SpecialRequests: req.SpecialRequests,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: unique index rejected insert for unit=%s", req.ConsoleUnitID)
				return ErrSlotTaken
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d (duration=%.2fh, total=%.2f)",
		result.ID, result.DurationHours, result.TotalPrice)

	return &Response{
		ID:              result.ID,
		UserID:          result.UserID,
		ParlourID:       result.ParlourID,
		DeviceID:        result.DeviceID,
		ConsoleUnitID:   result.ConsoleUnitID,
		BookingDate:     result.BookingDate,
		StartTime:       result.StartTime,
		EndTime:         result.EndTime,
		DurationHours:   result.DurationHours,
		TotalPrice:      result.TotalPrice,
		Status:          string(result.Status),
		PaymentStatus:   string(result.PaymentStatus),
		SpecialRequests: result.SpecialRequests,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
