package create_booking

import "errors"

var (
	// ErrParlourNotFound возвращается, когда парлор не найден
	ErrParlourNotFound = errors.New("create_booking: parlour not found")

	// ErrDeviceNotFound возвращается, когда устройство не найдено
	// (или принадлежит другому парлору)
	ErrDeviceNotFound = errors.New("create_booking: device not found")

	// ErrConsoleUnitNotFound возвращается, когда консоль с указанным
	// consoleId отсутствует в устройстве
	ErrConsoleUnitNotFound = errors.New("create_booking: console unit not found")

	// ErrConsoleUnitUnavailable возвращается, когда консоль не в статусе
	// available (обслуживание или занята)
	ErrConsoleUnitUnavailable = errors.New("create_booking: console unit is not available")

	// ErrDateInPast возвращается, когда дата бронирования раньше сегодняшней
	// Сравниваются только календарные даты, время начала не учитывается
	ErrDateInPast = errors.New("create_booking: booking date is in the past")

	// ErrInvalidTimeFormat возвращается при некорректном формате времени
	ErrInvalidTimeFormat = errors.New("create_booking: invalid time format")

	// ErrEndBeforeStart возвращается, когда время окончания не позже времени начала
	ErrEndBeforeStart = errors.New("create_booking: end time must be after start time")

	// ErrSlotTaken возвращается, когда запрошенный интервал пересекается с
	// существующим неотмененным бронированием той же консоли
	ErrSlotTaken = errors.New("create_booking: time slot is already booked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
