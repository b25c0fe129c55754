package get_device_availability

import "errors"

var (
	// ErrDeviceNotFound возвращается, когда устройство не найдено
	ErrDeviceNotFound = errors.New("get_device_availability: device not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_device_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_device_availability: internal error")
)
