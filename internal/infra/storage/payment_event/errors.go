package payment_event

import "errors"

var (
	// ErrDuplicateEvent возвращается при повторной вставке записи с тем же ID
	ErrDuplicateEvent = errors.New("payment_event.repository: event already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("payment_event.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("payment_event.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("payment_event.repository: failed to scan row")
)
