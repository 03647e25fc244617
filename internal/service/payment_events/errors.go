package payment_events

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных параметрах фильтра
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
