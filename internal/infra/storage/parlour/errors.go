package parlour

import "errors"

var (
	// ErrParlourNotFound возвращается, когда парлор не найден
	ErrParlourNotFound = errors.New("parlour.repository: parlour not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("parlour.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("parlour.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("parlour.repository: failed to scan row")
)
