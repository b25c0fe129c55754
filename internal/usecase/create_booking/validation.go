package create_booking

import (
	"fmt"
	"time"

	"github.com/playden/GPR-BookingService/internal/domain"
	"github.com/playden/GPR-BookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.ParlourID <= 0 {
		return fmt.Errorf("%w: parlourID must be positive", ErrInvalidInput)
	}

	if req.DeviceID <= 0 {
		return fmt.Errorf("%w: deviceID must be positive", ErrInvalidInput)
	}

	if req.ConsoleUnitID == "" {
		return fmt.Errorf("%w: consoleUnitId is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if req.EndTime.IsZero() {
		return fmt.Errorf("%w: endTime is required", ErrInvalidInput)
	}

	if req.SpecialRequests != nil && len(*req.SpecialRequests) > domain.MaxSpecialRequestsLength {
		return fmt.Errorf("%w: specialRequests cannot be more than %d characters",
			ErrInvalidInput, domain.MaxSpecialRequestsLength)
	}

	return nil
}

// validateDate проверяет, что дата бронирования не в прошлом
// Сравниваются только календарные даты: бронирование на сегодня с уже
// прошедшим временем начала не отклоняется
func validateDate(bookingDate time.Time, now time.Time) error {
	if isDateInPast(bookingDate, now) {
		return ErrDateInPast
	}
	return nil
}

// validateTimeRange парсит времена начала и окончания и возвращает
// длительность в часах (дробная допустима)
func validateTimeRange(startTime, endTime types.TimeString) (float64, error) {
	if err := startTime.Validate(); err != nil {
		return 0, fmt.Errorf("%w: startTime: %v", ErrInvalidTimeFormat, err)
	}

	if err := endTime.Validate(); err != nil {
		return 0, fmt.Errorf("%w: endTime: %v", ErrInvalidTimeFormat, err)
	}

	minutes, err := startTime.MinutesUntil(endTime)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidTimeFormat, err)
	}

	if minutes <= 0 {
		return 0, fmt.Errorf("%w: %s-%s", ErrEndBeforeStart, startTime, endTime)
	}

	return float64(minutes) / 60.0, nil
}

// findOverlap возвращает первое активное бронирование, пересекающееся
// с запрошенным интервалом [startTime, endTime)
func findOverlap(bookings []*domain.Booking, startTime, endTime types.TimeString) *domain.Booking {
	for _, booking := range bookings {
		// Отмененные бронирования слот не занимают
		if !booking.IsActive() {
			continue
		}

		if domain.Overlaps(startTime, endTime, booking.StartTime, booking.EndTime) {
			return booking
		}
	}
	return nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
