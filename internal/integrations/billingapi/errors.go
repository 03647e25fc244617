package billingapi

import "errors"

var (
	// ErrWriteFailed возвращается, когда бэкенд ответил не-2xx на запись подписки или платежа
	ErrWriteFailed = errors.New("billingapi client: write failed")

	// ErrInternal возвращается при внутренних ошибках клиента (сеть, таймаут, сериализация)
	ErrInternal = errors.New("billingapi client: internal error")
)
