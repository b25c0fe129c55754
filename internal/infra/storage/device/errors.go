package device

import "errors"

var (
	// ErrDeviceNotFound возвращается, когда устройство не найдено
	ErrDeviceNotFound = errors.New("device.repository: device not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("device.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("device.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("device.repository: failed to scan row")
)
